package models

// MessageResponse is the body of a successful JSON API call.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the body of a failed JSON API call. Details carries the
// transport error text and is only set for send-offer dispatch failures.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// HealthResponse is the body of GET /healthz.
type HealthResponse struct {
	Status    string `json:"status"`
	MailReady bool   `json:"mail_ready"`
}
