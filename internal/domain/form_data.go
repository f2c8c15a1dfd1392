package domain

// FormSubmissionData é o resultado consolidado da coleta de envios de
// formulário: as linhas brutas, os deals associados já classificados e os
// vínculos contato -> deals usados na agregação por formulário.
type FormSubmissionData struct {
	Records []FormSubmissionRecord

	// Deals indexa os deals associados por ID
	Deals map[string]Deal

	// ContactDeals mapeia o ID do contato para os IDs dos deals associados
	ContactDeals map[string][]string

	// FormStats mapeia o nome do formulário para as métricas do período.
	// Vazio quando a API de estatísticas não está disponível no portal.
	FormStats map[string]FormStatistics
}
