package hubspot

import (
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	hubspotdomain "github.com/vfg2006/ads-crm-sync-api/infrastructure/integrator/hubspot/domain"
	"github.com/vfg2006/ads-crm-sync-api/infrastructure/integrator/hubspot/hubspotclient"
	"github.com/vfg2006/ads-crm-sync-api/internal/config"
	"github.com/vfg2006/ads-crm-sync-api/internal/domain"
	"github.com/vfg2006/ads-crm-sync-api/pkg/retry"
)

const searchPageSize = 100

// contactProperties são as propriedades pedidas na busca de contatos. A
// inferência do nome do formulário depende das propriedades de origem.
var contactProperties = []string{
	"createdate",
	"email",
	"gclid",
	"hs_analytics_source",
	"hs_analytics_source_data_1",
	"hs_object_source_label",
	"form_name",
	"first_conversion_event_name",
	"num_associated_deals",
}

type CRMIntegrator struct {
	cfg    *config.Config
	Client hubspotclient.Client
	retry  *retry.Policy
	caps   hubspotdomain.Capabilities
	sleep  func(time.Duration)

	// cache de nomes de campanha para não repetir a busca por deal
	campaignMu    sync.Mutex
	campaignNames map[string]string
}

func New(cfg *config.Config, client hubspotclient.Client, retryPolicy *retry.Policy) *CRMIntegrator {
	s := &CRMIntegrator{
		cfg:           cfg,
		Client:        client,
		retry:         retryPolicy,
		sleep:         time.Sleep,
		campaignNames: make(map[string]string),
	}

	if client != nil {
		s.caps = client.ProbeCapabilities()
	}

	return s
}

// SearchFormContacts busca os contatos originados por formulário criados a
// partir de startDate, paginando com o cursor opaco da Search API. Se uma
// página falhar depois de esgotadas as tentativas, os contatos já coletados
// são retornados com um aviso em vez de descartar o lote inteiro.
func (s *CRMIntegrator) SearchFormContacts(startDate time.Time) ([]domain.Contact, error) {
	filters := []hubspotdomain.Filter{
		{
			PropertyName: "hs_object_source_label",
			Operator:     "EQ",
			Value:        "FORM",
		},
		{
			PropertyName: "createdate",
			Operator:     "GTE",
			Value:        strconv.FormatInt(startDate.UnixMilli(), 10),
		},
	}

	if s.cfg.Sync.OnlyWithDeals {
		filters = append(filters, hubspotdomain.Filter{
			PropertyName: "num_associated_deals",
			Operator:     "GT",
			Value:        "0",
		})
	}

	req := &hubspotdomain.SearchRequest{
		FilterGroups: []hubspotdomain.FilterGroup{{Filters: filters}},
		Properties:   contactProperties,
		Limit:        searchPageSize,
	}

	contacts := make([]domain.Contact, 0, searchPageSize)

	for {
		var resp *hubspotdomain.SearchResponse

		err := s.retry.Do("hubspot_search_contacts", func() error {
			var reqErr error
			resp, reqErr = s.Client.SearchContacts(req)
			return reqErr
		})
		if err != nil {
			if len(contacts) > 0 {
				logrus.WithError(err).WithField("contacts_collected", len(contacts)).
					Warn("Falha ao buscar página de contatos, retornando resultado parcial")
				return contacts, nil
			}

			logrus.WithError(err).Error("Erro ao buscar contatos no HubSpot")
			return nil, err
		}

		for _, result := range resp.Results {
			contacts = append(contacts, factoryContact(result))
		}

		if len(contacts) >= s.cfg.Sync.MaxContacts {
			logrus.WithFields(logrus.Fields{
				"contacts_collected": len(contacts),
				"max_contacts":       s.cfg.Sync.MaxContacts,
			}).Warn("Limite de contatos atingido, interrompendo a paginação")
			break
		}

		if resp.Paging == nil || resp.Paging.Next == nil || resp.Paging.Next.After == "" {
			break
		}

		// O cursor volta para a API exatamente como chegou
		req.After = resp.Paging.Next.After

		s.sleep(time.Duration(s.cfg.Sync.PageDelayMs) * time.Millisecond)
	}

	logrus.WithField("contacts", len(contacts)).Info("Busca de contatos concluída")

	return contacts, nil
}

func factoryContact(result hubspotdomain.ObjectResult) domain.Contact {
	props := result.Properties

	dealCount := 0
	if raw := props["num_associated_deals"]; raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			dealCount = n
		}
	}

	return domain.Contact{
		ID:                       result.ID,
		Email:                    props["email"],
		CreateDate:               props["createdate"],
		SourceLabel:              props["hs_object_source_label"],
		FormName:                 props["form_name"],
		FirstConversionEventName: props["first_conversion_event_name"],
		GCLID:                    props["gclid"],
		AnalyticsSource:          props["hs_analytics_source"],
		AnalyticsSourceData1:     props["hs_analytics_source_data_1"],
		AssociatedDealCount:      dealCount,
	}
}

// lowerBound calcula o início da janela de busca: o começo do ano corrente
// quando configurado, ou os últimos N dias.
func (s *CRMIntegrator) lowerBound(reference time.Time) time.Time {
	if s.cfg.Sync.YearToDate {
		return time.Date(reference.Year(), time.January, 1, 0, 0, 0, 0, reference.Location())
	}

	return reference.AddDate(0, 0, -s.cfg.Sync.LookbackDays)
}

// dealNameUnavailable marca deals cujo lote de leitura falhou
const dealNameUnavailable = "Erro ao Buscar Nome"

func campaignPlaceholderName(id string) string {
	return fmt.Sprintf("ID: %s (Nome Indisponível)", id)
}

func (s *CRMIntegrator) campaignNameFromCache(campaignID string) (string, bool) {
	s.campaignMu.Lock()
	defer s.campaignMu.Unlock()

	name, ok := s.campaignNames[campaignID]

	return name, ok
}

func (s *CRMIntegrator) storeCampaignName(campaignID, name string) {
	s.campaignMu.Lock()
	defer s.campaignMu.Unlock()

	s.campaignNames[campaignID] = name
}
