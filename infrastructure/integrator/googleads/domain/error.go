package adsdomain

import "fmt"

// ErrorResponse representa o envelope de erro da API do Google Ads
type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

type ErrorDetails struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

// APIError carrega o status HTTP da resposta upstream para que a política de
// retry consiga classificar a falha.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("google ads api: status %d: %s", e.Status, e.Message)
}

func (e *APIError) StatusCode() int {
	return e.Status
}
