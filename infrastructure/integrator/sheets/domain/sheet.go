package sheetsdomain

import "fmt"

// UpdateRequest é o corpo da escrita de valores em um intervalo.
type UpdateRequest struct {
	Range          string          `json:"range"`
	MajorDimension string          `json:"majorDimension"`
	Values         [][]interface{} `json:"values"`
}

type UpdateResponse struct {
	UpdatedRange   string `json:"updatedRange"`
	UpdatedRows    int    `json:"updatedRows"`
	UpdatedColumns int    `json:"updatedColumns"`
	UpdatedCells   int    `json:"updatedCells"`
}

type ClearResponse struct {
	ClearedRange string `json:"clearedRange"`
}

// ErrorResponse é o corpo de erro padrão das APIs do Google.
type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

type ErrorDetails struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

// APIError representa uma resposta de erro HTTP da API do Google Sheets.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("google sheets api: status %d: %s", e.Status, e.Message)
}

// StatusCode informa o código HTTP ao mecanismo de retry
func (e *APIError) StatusCode() int {
	return e.Status
}
