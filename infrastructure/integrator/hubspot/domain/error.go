package hubspotdomain

import "fmt"

// ErrorResponse é o corpo de erro padrão da API do HubSpot
type ErrorResponse struct {
	Status   string `json:"status"`
	Message  string `json:"message"`
	Category string `json:"category"`
}

// APIError representa uma resposta de erro HTTP da API do HubSpot.
type APIError struct {
	Status   int
	Category string
	Message  string
}

func (e *APIError) Error() string {
	if e.Category != "" {
		return fmt.Sprintf("hubspot api: status %d (%s): %s", e.Status, e.Category, e.Message)
	}

	return fmt.Sprintf("hubspot api: status %d: %s", e.Status, e.Message)
}

// StatusCode informa o código HTTP ao mecanismo de retry
func (e *APIError) StatusCode() int {
	return e.Status
}
