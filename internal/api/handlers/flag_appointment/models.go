package flag_appointment

// FlagAppointmentRequest HTTP request model
type FlagAppointmentRequest struct {
	Reason string `json:"reason"`
}
