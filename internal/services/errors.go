package services

type APIError struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

func (a *APIError) Error() string {
	return a.Message
}
