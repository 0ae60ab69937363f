package domain

// ErrorResponse is the body produced by the api error handler.
type ErrorResponse struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// StatusResponse is the envelope used by data endpoints.
type StatusResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}
