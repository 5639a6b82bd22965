package dto

// MessageResponse is the body of every non-resource reply.
type MessageResponse struct {
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// StatusResponse reports service health.
type StatusResponse struct {
	Status string `json:"status"`
}
