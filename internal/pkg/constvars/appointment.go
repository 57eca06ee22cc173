package constvars

const (
	AppointmentStatusConfirmed   = "Confirmed"
	AppointmentStatusWaitingList = "Waiting List"
)

// An appointment is confirmed only when the draw is strictly greater than this
// value, so a draw equal to it waitlists.
const AppointmentConfirmationThreshold = 0.3

const (
	EventAppointmentCreated = "appointment.created"
)
