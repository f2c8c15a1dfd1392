package domain

// FormNameNotFound é o valor sentinela usado quando nenhuma fonte consegue
// resolver o nome do formulário. O valor nunca é vazio na linha de saída,
// para que o agrupamento trate todos os casos como um único balde.
const FormNameNotFound = "Formulário não encontrado"

// Contact é um contato retornado pela busca paginada do CRM, com as
// propriedades de origem usadas para inferência do formulário.
type Contact struct {
	ID                       string
	Email                    string
	CreateDate               string
	SourceLabel              string
	FormName                 string
	FirstConversionEventName string
	GCLID                    string
	AnalyticsSource          string
	AnalyticsSourceData1     string
	AssociatedDealCount      int
}

// FormSubmissionRecord é a linha bruta de envio de formulário derivada de um
// contato, com o nome do formulário já resolvido (ou o sentinela).
type FormSubmissionRecord struct {
	ContactID           string
	Email               string
	OriginalSource      string
	OriginalSourceData  string
	FormName            string
	GCLID               string
	SubmittedAt         string
	RecordSource        string
	AssociatedDealCount int
}

// FormStatistics são as métricas de um formulário no período, quando o plano
// do portal permite consultá-las. Zeradas quando a API não está disponível.
type FormStatistics struct {
	Views       int
	Submissions int
}
