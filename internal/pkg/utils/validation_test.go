package utils

import (
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/dto/requests"
	"mime/multipart"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateUpload(t *testing.T) {
	t.Run("Nil Header Is Valid", func(t *testing.T) {
		assert.NoError(t, ValidateUpload(nil, 1, []string{".png"}))
	})

	t.Run("Allowed Extension", func(t *testing.T) {
		header := &multipart.FileHeader{Filename: "poster.PNG", Size: 1024}
		assert.NoError(t, ValidateUpload(header, 1, []string{".png"}))
	})

	t.Run("Rejected Extension", func(t *testing.T) {
		header := &multipart.FileHeader{Filename: "poster.exe", Size: 1024}
		assert.Error(t, ValidateUpload(header, 1, []string{".png"}))
	})

	t.Run("Too Large", func(t *testing.T) {
		header := &multipart.FileHeader{Filename: "poster.png", Size: 2*1024*1024 + 1}
		assert.Error(t, ValidateUpload(header, 2, []string{".png"}))
	})
}

func TestValidateUpload_LicenseAcceptsImagesAndPDF(t *testing.T) {
	for _, name := range []string{"license.jpg", "license.jpeg", "license.png", "license.gif", "license.webp", "license.pdf"} {
		header := &multipart.FileHeader{Filename: name, Size: 1024}
		assert.NoError(t, ValidateUpload(header, 1, constvars.AllowedLicenseExtensions), name)
	}

	assert.Error(t, ValidateUpload(&multipart.FileHeader{Filename: "license.docx", Size: 1024}, 1, constvars.AllowedLicenseExtensions))
	assert.NotContains(t, constvars.AllowedImageExtensions, ".pdf")
}

func TestValidateStruct_UsesJSONFieldNames(t *testing.T) {
	age := -1
	request := &requests.CreateAppointment{
		HospitalName:    "City Hospital",
		DoctorName:      "Dr. Rao",
		PatientName:     "Asha",
		Gender:          "Female",
		PatientAge:      &age,
		PatientContact:  "9876543210",
		PatientEmail:    "asha@example.com",
		PatientSymptoms: "fever",
		RequestedTime:   "10:00 AM",
	}

	err := ValidateStruct(request)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "patientAge")
}

func TestValidateStruct_RequestedTimeNotBlank(t *testing.T) {
	age := 34
	request := &requests.CreateAppointment{
		HospitalName:    "City Hospital",
		DoctorName:      "Dr. Rao",
		PatientName:     "Asha",
		Gender:          "Female",
		PatientAge:      &age,
		PatientContact:  "9876543210",
		PatientEmail:    "asha@example.com",
		PatientSymptoms: "fever",
		RequestedTime:   " \t ",
	}

	err := ValidateStruct(request)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "notblank")

	request.RequestedTime = " 10:00 AM "
	assert.NoError(t, ValidateStruct(request))
}

func TestParseDate(t *testing.T) {
	parsed, err := ParseDate("2024-03-15")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), parsed)

	parsed, err = ParseDate("2024-03-15T08:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, 8, parsed.Hour())

	parsed, err = ParseDate("")
	require.NoError(t, err)
	assert.True(t, parsed.IsZero())

	_, err = ParseDate("15/03/2024")
	assert.Error(t, err)
}

func TestGenerateUploadFileName(t *testing.T) {
	first := GenerateUploadFileName("Poster.JPG")
	second := GenerateUploadFileName("Poster.JPG")

	assert.NotEqual(t, first, second)
	assert.Regexp(t, `^\d+-[0-9a-f]{8}\.jpg$`, first)
}
