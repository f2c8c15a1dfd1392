package hubspot

import (
	"fmt"
	"regexp"
	"strings"

	hubspotdomain "github.com/vfg2006/ads-crm-sync-api/infrastructure/integrator/hubspot/domain"
	"github.com/vfg2006/ads-crm-sync-api/internal/domain"
)

// patternRule extrai o nome do formulário de um texto livre de origem.
// As regras são avaliadas em ordem e a primeira captura vence.
type patternRule struct {
	pattern *regexp.Regexp
}

var sourceDataRules = []patternRule{
	{pattern: regexp.MustCompile(`(?i)^Form Submission:\s*(.+)$`)},
	{pattern: regexp.MustCompile(`(?i)^Envio de Formulário:?\s*(.+)$`)},
	{pattern: regexp.MustCompile(`(?i)^Submitted form:\s*(.+)$`)},
}

// sourceTypeTemplates dá um rótulo por tipo de origem quando o texto livre
// não identifica o formulário diretamente.
var sourceTypeTemplates = map[string]string{
	"FORM":         "Formulário: %s",
	"OFFLINE_FORM": "Formulário Offline: %s",
	"PAID_SEARCH":  "Busca Paga: %s",
	"EMAIL":        "E-mail: %s",
}

// ResolveFormName resolve o nome do formulário de um contato seguindo a
// ordem de prioridade das fontes:
//
//  1. metadados do engajamento de envio de formulário mais recente
//  2. propriedade form_name do contato
//  3. propriedade first_conversion_event_name do contato
//  4. heurísticas sobre os campos de origem de analytics
//  5. sentinela "Formulário não encontrado"
//
// Retorna também o ID do formulário quando a fonte o conhece (somente o
// engajamento), para a consulta posterior de estatísticas.
func ResolveFormName(contact domain.Contact, engagement *hubspotdomain.EngagementResponse) (string, string) {
	if engagement != nil && engagement.Metadata.FormID != "" && engagement.Metadata.Title != "" {
		return engagement.Metadata.Title, engagement.Metadata.FormID
	}

	if hasValue(contact.FormName) {
		return contact.FormName, ""
	}

	if hasValue(contact.FirstConversionEventName) {
		return contact.FirstConversionEventName, ""
	}

	if name := inferFromSource(contact.AnalyticsSource, contact.AnalyticsSourceData1); name != "" {
		return name, ""
	}

	return domain.FormNameNotFound, ""
}

// inferFromSource tenta extrair o nome do formulário dos campos de origem.
// Primeiro os prefixos conhecidos no texto livre, depois o modelo por tipo
// de origem usando o texto livre como complemento.
func inferFromSource(source, sourceData string) string {
	sourceData = strings.TrimSpace(sourceData)

	if hasValue(sourceData) {
		for _, rule := range sourceDataRules {
			if match := rule.pattern.FindStringSubmatch(sourceData); match != nil {
				return strings.TrimSpace(match[1])
			}
		}
	}

	template, ok := sourceTypeTemplates[strings.ToUpper(strings.TrimSpace(source))]
	if !ok || !hasValue(sourceData) {
		return ""
	}

	return fmt.Sprintf(template, sourceData)
}

func hasValue(value string) bool {
	value = strings.TrimSpace(value)

	return value != "" && !strings.EqualFold(value, "N/A")
}
