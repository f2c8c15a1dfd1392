package hubspot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	hubspotdomain "github.com/vfg2006/ads-crm-sync-api/infrastructure/integrator/hubspot/domain"
	"github.com/vfg2006/ads-crm-sync-api/internal/domain"
)

func formEngagement(formID, title string, createdAt int64) *hubspotdomain.EngagementResponse {
	return &hubspotdomain.EngagementResponse{
		Engagement: hubspotdomain.Engagement{
			Type:      hubspotdomain.EngagementTypeFormSubmission,
			CreatedAt: createdAt,
		},
		Metadata: hubspotdomain.EngagementMetadata{
			FormID: formID,
			Title:  title,
		},
	}
}

func TestResolveFormName(t *testing.T) {
	tests := []struct {
		name           string
		contact        domain.Contact
		engagement     *hubspotdomain.EngagementResponse
		expectedName   string
		expectedFormID string
	}{
		{
			name: "engajamento tem prioridade sobre a propriedade do contato",
			contact: domain.Contact{
				FormName:             "Formulário da Propriedade",
				AnalyticsSourceData1: "Form Submission: Outro Formulário",
			},
			engagement:     formEngagement("form-123", "Formulário de Contato", 1700000000),
			expectedName:   "Formulário de Contato",
			expectedFormID: "form-123",
		},
		{
			name: "engajamento sem formId cai para a propriedade",
			contact: domain.Contact{
				FormName: "Formulário da Propriedade",
			},
			engagement: &hubspotdomain.EngagementResponse{
				Engagement: hubspotdomain.Engagement{Type: hubspotdomain.EngagementTypeFormSubmission},
				Metadata:   hubspotdomain.EngagementMetadata{Title: "Sem ID"},
			},
			expectedName: "Formulário da Propriedade",
		},
		{
			name: "propriedade form_name do contato",
			contact: domain.Contact{
				FormName: "Fale Conosco",
			},
			expectedName: "Fale Conosco",
		},
		{
			name: "form_name N/A cai para o primeiro evento de conversão",
			contact: domain.Contact{
				FormName:                 "N/A",
				FirstConversionEventName: "Newsletter Rodapé",
			},
			expectedName: "Newsletter Rodapé",
		},
		{
			name: "heurística com prefixo em inglês",
			contact: domain.Contact{
				AnalyticsSourceData1: "Form Submission: Orçamento Rápido",
			},
			expectedName: "Orçamento Rápido",
		},
		{
			name: "heurística com prefixo em português",
			contact: domain.Contact{
				AnalyticsSourceData1: "Envio de Formulário: Landing Page Black Friday",
			},
			expectedName: "Landing Page Black Friday",
		},
		{
			name: "modelo por tipo de origem FORM",
			contact: domain.Contact{
				AnalyticsSource:      "FORM",
				AnalyticsSourceData1: "pagina-de-precos",
			},
			expectedName: "Formulário: pagina-de-precos",
		},
		{
			name: "modelo por tipo de origem PAID_SEARCH",
			contact: domain.Contact{
				AnalyticsSource:      "PAID_SEARCH",
				AnalyticsSourceData1: "google-brand",
			},
			expectedName: "Busca Paga: google-brand",
		},
		{
			name: "origem sem dado complementar não gera nome",
			contact: domain.Contact{
				AnalyticsSource: "FORM",
			},
			expectedName: domain.FormNameNotFound,
		},
		{
			name: "nenhuma fonte resolve, usa o sentinela",
			contact: domain.Contact{
				AnalyticsSource:      "DIRECT_TRAFFIC",
				AnalyticsSourceData1: "homepage",
			},
			expectedName: domain.FormNameNotFound,
		},
		{
			name:         "contato vazio usa o sentinela",
			contact:      domain.Contact{},
			expectedName: domain.FormNameNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, formID := ResolveFormName(tt.contact, tt.engagement)

			assert.Equal(t, tt.expectedName, name)
			assert.Equal(t, tt.expectedFormID, formID)
		})
	}
}

func TestResolveFormNameNeverEmpty(t *testing.T) {
	contacts := []domain.Contact{
		{},
		{FormName: "N/A", FirstConversionEventName: "n/a"},
		{AnalyticsSource: "EMAIL"},
	}

	for _, contact := range contacts {
		name, _ := ResolveFormName(contact, nil)
		assert.NotEmpty(t, name)
	}
}
