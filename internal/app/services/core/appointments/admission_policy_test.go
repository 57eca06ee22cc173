package appointments

import (
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/dto/requests"
	"math/rand/v2"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedDraw(value float64) func() float64 {
	return func() float64 { return value }
}

func newAppointmentRequest() *requests.CreateAppointment {
	age := 34
	return &requests.CreateAppointment{
		HospitalName:       "City Hospital",
		DoctorName:         "Dr. Rao",
		PatientName:        "Asha Verma",
		Gender:             "Female",
		PatientAge:         &age,
		PatientContact:     "9876543210",
		PatientEmail:       "asha@example.com",
		PatientSymptoms:    "fever and cough",
		RequestedTime:      "10:00 AM",
		AdditionalComments: "prefers morning",
	}
}

func TestStochasticAdmissionPolicy_Decide(t *testing.T) {
	t.Run("Draw Above Threshold Confirms", func(t *testing.T) {
		policy := NewStochasticAdmissionPolicy(fixedDraw(0.5))

		appointment := policy.Decide(newAppointmentRequest())

		assert.Equal(t, constvars.AppointmentStatusConfirmed, appointment.Status)
		require.NotNil(t, appointment.FinalTime)
		assert.Equal(t, "10:00 AM", *appointment.FinalTime)
	})

	t.Run("Draw Below Threshold Waitlists", func(t *testing.T) {
		policy := NewStochasticAdmissionPolicy(fixedDraw(0.1))

		appointment := policy.Decide(newAppointmentRequest())

		assert.Equal(t, constvars.AppointmentStatusWaitingList, appointment.Status)
		assert.Nil(t, appointment.FinalTime)
	})

	t.Run("Draw Equal To Threshold Waitlists", func(t *testing.T) {
		policy := NewStochasticAdmissionPolicy(fixedDraw(0.3))

		appointment := policy.Decide(newAppointmentRequest())

		assert.Equal(t, constvars.AppointmentStatusWaitingList, appointment.Status)
		assert.Nil(t, appointment.FinalTime)
	})

	t.Run("Zero Draw Waitlists", func(t *testing.T) {
		policy := NewStochasticAdmissionPolicy(fixedDraw(0))

		appointment := policy.Decide(newAppointmentRequest())

		assert.Equal(t, constvars.AppointmentStatusWaitingList, appointment.Status)
	})

	t.Run("Request Fields Are Carried Through", func(t *testing.T) {
		request := newAppointmentRequest()
		policy := NewStochasticAdmissionPolicy(fixedDraw(0.9))

		appointment := policy.Decide(request)

		assert.Equal(t, request.HospitalName, appointment.HospitalName)
		assert.Equal(t, request.DoctorName, appointment.DoctorName)
		assert.Equal(t, request.PatientName, appointment.PatientName)
		assert.Equal(t, request.Gender, appointment.Gender)
		assert.Equal(t, *request.PatientAge, appointment.PatientAge)
		assert.Equal(t, request.PatientContact, appointment.PatientContact)
		assert.Equal(t, request.PatientEmail, appointment.PatientEmail)
		assert.Equal(t, request.PatientSymptoms, appointment.PatientSymptoms)
		assert.Equal(t, request.RequestedTime, appointment.RequestedTime)
		assert.Equal(t, request.AdditionalComments, appointment.AdditionalComments)
		assert.True(t, appointment.ID.IsZero(), "id is assigned by storage, not by the policy")
	})

	t.Run("Final Time Does Not Alias The Request", func(t *testing.T) {
		request := newAppointmentRequest()
		policy := NewStochasticAdmissionPolicy(fixedDraw(0.9))

		appointment := policy.Decide(request)
		request.RequestedTime = "11:30 AM"

		assert.Equal(t, "10:00 AM", *appointment.FinalTime)
		assert.Equal(t, "10:00 AM", appointment.RequestedTime)
	})
}

func TestStochasticAdmissionPolicy_Invariant(t *testing.T) {
	policy := NewStochasticAdmissionPolicy(nil)
	request := newAppointmentRequest()

	for i := 0; i < 1000; i++ {
		appointment := policy.Decide(request)

		switch appointment.Status {
		case constvars.AppointmentStatusConfirmed:
			require.NotNil(t, appointment.FinalTime)
			assert.Equal(t, appointment.RequestedTime, *appointment.FinalTime)
		case constvars.AppointmentStatusWaitingList:
			assert.Nil(t, appointment.FinalTime)
		default:
			t.Fatalf("unexpected status %q", appointment.Status)
		}
		assert.Equal(t, "10:00 AM", appointment.RequestedTime)
	}
}

func TestStochasticAdmissionPolicy_ConfirmationRate(t *testing.T) {
	const trials = 100000
	source := rand.New(rand.NewPCG(2024, 7))
	policy := NewStochasticAdmissionPolicy(source.Float64)
	request := newAppointmentRequest()

	confirmed := 0
	for i := 0; i < trials; i++ {
		if policy.Decide(request).Status == constvars.AppointmentStatusConfirmed {
			confirmed++
		}
	}

	rate := float64(confirmed) / trials
	assert.InDelta(t, 0.7, rate, 0.01, "confirmation rate should converge to 0.7")
}

func TestStochasticAdmissionPolicy_ConcurrentUse(t *testing.T) {
	policy := NewStochasticAdmissionPolicy(nil)

	var wg sync.WaitGroup
	results := make([]string, 64)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = policy.Decide(newAppointmentRequest()).Status
		}(i)
	}
	wg.Wait()

	for _, status := range results {
		assert.Contains(t, []string{constvars.AppointmentStatusConfirmed, constvars.AppointmentStatusWaitingList}, status)
	}
}
