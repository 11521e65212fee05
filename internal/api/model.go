package api

type queryRequest struct {
	Password string `json:"password" binding:"required"`
}

type errorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}
