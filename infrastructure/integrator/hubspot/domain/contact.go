package hubspotdomain

// SearchRequest é o corpo da busca paginada de contatos do CRM.
type SearchRequest struct {
	FilterGroups []FilterGroup `json:"filterGroups"`
	Properties   []string      `json:"properties"`
	Limit        int           `json:"limit"`
	After        string        `json:"after,omitempty"`
}

type FilterGroup struct {
	Filters []Filter `json:"filters"`
}

type Filter struct {
	PropertyName string `json:"propertyName"`
	Operator     string `json:"operator"`
	Value        string `json:"value"`
}

type SearchResponse struct {
	Total   int            `json:"total"`
	Results []ObjectResult `json:"results"`
	Paging  *Paging        `json:"paging,omitempty"`
}

// ObjectResult é um objeto do CRM com suas propriedades achatadas.
type ObjectResult struct {
	ID         string            `json:"id"`
	Properties map[string]string `json:"properties"`
}

// Paging carrega o cursor opaco da próxima página. O valor de After deve ser
// reenviado exatamente como recebido; a ausência de Next encerra a paginação.
type Paging struct {
	Next *NextPage `json:"next,omitempty"`
}

type NextPage struct {
	After string `json:"after"`
}
