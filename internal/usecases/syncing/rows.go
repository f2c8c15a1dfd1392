package syncing

import (
	"github.com/vfg2006/ads-crm-sync-api/internal/domain"
)

// Nomes das abas da planilha de saída
const (
	sheetCampaigns       = "Google Ads Campaigns"
	sheetConversions     = "User Conversions"
	sheetFormSubmissions = "Form Submissions"
	sheetCampaignSummary = "Resumo por Campanha"
	sheetFormSummary     = "Resumo por Formulário"
)

// A planilha escreve por posição: a ordem dos cabeçalhos e a ordem dos
// campos em cada linha precisam bater célula a célula.
var (
	campaignHeaders = []string{
		"Campaign ID",
		"Campaign Name",
		"Ad Network Type",
		"Cost (BRL)",
		"Clicks",
		"Impressions",
		"Conversions",
	}

	conversionHeaders = []string{
		"Date",
		"Campaign ID",
		"GCLID",
	}

	formSubmissionHeaders = []string{
		"Contact ID",
		"Email",
		"Original Source",
		"Detalhes da Fonte Original",
		"Nome do Formulário",
		"GCLID",
		"Timestamp do Envio",
		"Record Source",
		"Número de Negócios Associados",
	}

	campaignSummaryHeaders = []string{
		"Campanha",
		"Rede",
		"Custo (BRL)",
		"Negócios Abertos",
		"Negócios Ganhos",
		"Negócios Perdidos",
	}

	formSummaryHeaders = []string{
		"Formulário",
		"Visualizações",
		"Envios",
		"Negócios Abertos",
		"Negócios Ganhos",
		"Negócios Perdidos",
	}
)

func campaignRows(campaigns []domain.Campaign) [][]interface{} {
	rows := make([][]interface{}, 0, len(campaigns))

	for _, c := range campaigns {
		rows = append(rows, []interface{}{
			c.ID, c.Name, c.Network, c.Cost, c.Clicks, c.Impressions, c.Conversions,
		})
	}

	return rows
}

func conversionRows(conversions []domain.ConversionEvent) [][]interface{} {
	rows := make([][]interface{}, 0, len(conversions))

	for _, c := range conversions {
		rows = append(rows, []interface{}{c.Date, c.CampaignID, c.GCLID})
	}

	return rows
}

func formSubmissionRows(records []domain.FormSubmissionRecord) [][]interface{} {
	rows := make([][]interface{}, 0, len(records))

	for _, r := range records {
		rows = append(rows, []interface{}{
			r.ContactID,
			r.Email,
			r.OriginalSource,
			r.OriginalSourceData,
			r.FormName,
			r.GCLID,
			r.SubmittedAt,
			r.RecordSource,
			r.AssociatedDealCount,
		})
	}

	return rows
}

func aggregationRows(summary []domain.AggregationRow) [][]interface{} {
	rows := make([][]interface{}, 0, len(summary))

	for _, r := range summary {
		rows = append(rows, []interface{}{
			r.Key, r.Network, r.Cost, r.Open, r.ClosedWon, r.ClosedLost,
		})
	}

	return rows
}

func formAggregationRows(summary []domain.FormAggregationRow) [][]interface{} {
	rows := make([][]interface{}, 0, len(summary))

	for _, r := range summary {
		rows = append(rows, []interface{}{
			r.FormName, r.Views, r.Submissions, r.Open, r.ClosedWon, r.ClosedLost,
		})
	}

	return rows
}
