package domain

// AggregationRow é uma linha agregada por campanha ou por formulário, com a
// contagem de negócios por balde. ClosedLost só aparece na visão por
// formulário.
// FormAggregationRow é a linha agregada por formulário, com as métricas do
// período quando disponíveis.
type FormAggregationRow struct {
	FormName    string `json:"form_name"`
	Views       int    `json:"views"`
	Submissions int    `json:"submissions"`
	Open        int    `json:"open"`
	ClosedWon   int    `json:"closed_won"`
	ClosedLost  int    `json:"closed_lost"`
}

type AggregationRow struct {
	Key        string
	Network    string
	Cost       float64
	Open       int
	ClosedWon  int
	ClosedLost int
}
