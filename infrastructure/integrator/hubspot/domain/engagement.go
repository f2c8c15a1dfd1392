package hubspotdomain

// EngagementResponse é a resposta da API de engajamentos. Para envios de
// formulário, o identificador e o título do formulário chegam nos metadados.
type EngagementResponse struct {
	Engagement Engagement         `json:"engagement"`
	Metadata   EngagementMetadata `json:"metadata"`
}

type Engagement struct {
	ID          int64  `json:"id"`
	Type        string `json:"type"`
	Timestamp   int64  `json:"timestamp"`
	CreatedAt   int64  `json:"createdAt"`
	BodyPreview string `json:"bodyPreview"`
}

type EngagementMetadata struct {
	FormID string `json:"formId"`
	Title  string `json:"title"`
	Body   string `json:"body"`
}

// EngagementTypeFormSubmission é o tipo de engajamento de envio de formulário
const EngagementTypeFormSubmission = "FORM_SUBMISSION"

// FormStatisticsResponse são as métricas de um formulário no período.
type FormStatisticsResponse struct {
	Views       int `json:"views"`
	Submissions int `json:"submissions"`
}

// Capabilities reflete os escopos disponíveis para o token do portal,
// sondados uma única vez na construção do cliente. APIs indisponíveis pelo
// plano desabilitam os caminhos correspondentes do pipeline.
type Capabilities struct {
	EngagementDetails bool
	FormStatistics    bool
}
