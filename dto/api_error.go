package dto

type APIErrorResponse struct {
	Message string `json:"message"`
}
