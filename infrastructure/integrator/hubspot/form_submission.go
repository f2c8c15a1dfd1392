package hubspot

import (
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	hubspotdomain "github.com/vfg2006/ads-crm-sync-api/infrastructure/integrator/hubspot/domain"
	"github.com/vfg2006/ads-crm-sync-api/internal/domain"
)

// A API de leitura em lote de deals aceita no máximo 100 IDs por chamada
const dealBatchSize = 100

var dealProperties = []string{"dealname", "dealstage"}

// FetchFormSubmissionData coleta os envios de formulário a partir dos
// contatos do CRM: busca os contatos, resolve os deals associados e o nome
// do formulário de cada contato, e consulta as estatísticas dos formulários
// quando o portal permite. Falhas em itens individuais não derrubam a
// coleta: o item recebe valores de indisponibilidade e a coleta segue.
func (s *CRMIntegrator) FetchFormSubmissionData(reference time.Time) (*domain.FormSubmissionData, error) {
	startDate := s.lowerBound(reference)

	contacts, err := s.SearchFormContacts(startDate)
	if err != nil {
		return nil, err
	}

	contactDeals := s.resolveDealAssociations(contacts)
	deals := s.fetchDeals(dedupeDealIDs(contactDeals))
	engagements := s.resolveFormEngagements(contacts)

	records := make([]domain.FormSubmissionRecord, 0, len(contacts))
	formIDs := make(map[string]string)

	for _, contact := range contacts {
		name, formID := ResolveFormName(contact, engagements[contact.ID])
		if formID != "" {
			formIDs[name] = formID
		}

		records = append(records, domain.FormSubmissionRecord{
			ContactID:           contact.ID,
			Email:               defaultNA(contact.Email),
			OriginalSource:      defaultNA(contact.AnalyticsSource),
			OriginalSourceData:  defaultNA(contact.AnalyticsSourceData1),
			FormName:            name,
			GCLID:               defaultNA(contact.GCLID),
			SubmittedAt:         defaultNA(contact.CreateDate),
			RecordSource:        defaultNA(contact.SourceLabel),
			AssociatedDealCount: contact.AssociatedDealCount,
		})
	}

	stats := make(map[string]domain.FormStatistics)
	if s.caps.FormStatistics && len(formIDs) > 0 {
		stats = s.FetchFormStatistics(formIDs, startDate, reference)
	}

	logrus.WithFields(logrus.Fields{
		"contacts": len(contacts),
		"deals":    len(deals),
		"forms":    len(formIDs),
	}).Info("Coleta de envios de formulário concluída")

	return &domain.FormSubmissionData{
		Records:      records,
		Deals:        deals,
		ContactDeals: contactDeals,
		FormStats:    stats,
	}, nil
}

// resolveDealAssociations busca, com concorrência limitada, os IDs dos deals
// associados a cada contato. Falha em um contato rende uma lista vazia.
func (s *CRMIntegrator) resolveDealAssociations(contacts []domain.Contact) map[string][]string {
	result := make(map[string][]string, len(contacts))

	var mu sync.Mutex
	var wg sync.WaitGroup
	sem := make(chan struct{}, s.cfg.Sync.MaxConcurrentLookups)

	for _, contact := range contacts {
		if contact.AssociatedDealCount == 0 {
			continue
		}

		wg.Add(1)
		sem <- struct{}{}

		go func(contactID string) {
			defer wg.Done()
			defer func() { <-sem }()

			var page *hubspotdomain.AssociationPage

			err := s.retry.Do("hubspot_contact_deals", func() error {
				var reqErr error
				page, reqErr = s.Client.GetAssociationPage("contacts", contactID, "deals")
				return reqErr
			})
			if err != nil {
				logrus.WithError(err).WithField("contact_id", contactID).
					Warn("Falha ao buscar deals associados ao contato")
				return
			}

			ids := make([]string, 0, len(page.Results))
			for _, assoc := range page.Results {
				ids = append(ids, strconv.FormatInt(assoc.ToObjectID, 10))
			}

			mu.Lock()
			result[contactID] = ids
			mu.Unlock()
		}(contact.ID)
	}

	wg.Wait()

	return result
}

// fetchDeals lê os deals em lotes e classifica o estágio de cada um. Lotes
// que falham viram deals com nome de indisponibilidade, classificados como
// perdidos para não inflar as contagens de abertos e ganhos.
func (s *CRMIntegrator) fetchDeals(dealIDs []string) map[string]domain.Deal {
	deals := make(map[string]domain.Deal, len(dealIDs))

	for start := 0; start < len(dealIDs); start += dealBatchSize {
		end := start + dealBatchSize
		if end > len(dealIDs) {
			end = len(dealIDs)
		}
		chunk := dealIDs[start:end]

		var resp *hubspotdomain.BatchReadResponse

		err := s.retry.Do("hubspot_batch_read_deals", func() error {
			var reqErr error
			resp, reqErr = s.Client.BatchReadDeals(chunk, dealProperties)
			return reqErr
		})
		if err != nil {
			logrus.WithError(err).WithField("batch_size", len(chunk)).
				Warn("Falha ao ler lote de deals, usando nomes de indisponibilidade")

			for _, id := range chunk {
				deals[id] = domain.Deal{
					ID:     id,
					Name:   dealNameUnavailable,
					Bucket: domain.DealBucketClosedLost,
				}
			}

			continue
		}

		for _, result := range resp.Results {
			stage := result.Properties["dealstage"]

			deals[result.ID] = domain.Deal{
				ID:    result.ID,
				Name:  defaultNA(result.Properties["dealname"]),
				Stage: stage,
				Bucket: domain.ClassifyStage(
					stage,
					s.cfg.HubSpot.ClosedWonStageID,
					s.cfg.HubSpot.ClosedLostStageID,
				),
				AssociatedCampaignNames: s.resolveDealCampaignNames(result.ID),
			}
		}
	}

	return deals
}

// resolveDealCampaignNames busca os nomes das campanhas de marketing
// associadas a um deal. Campanha cujo nome não pôde ser buscado entra com
// um nome derivado do próprio ID.
func (s *CRMIntegrator) resolveDealCampaignNames(dealID string) []string {
	var page *hubspotdomain.AssociationPage

	err := s.retry.Do("hubspot_deal_campaigns", func() error {
		var reqErr error
		page, reqErr = s.Client.GetAssociationPage("deals", dealID, "marketing_campaigns")
		return reqErr
	})
	if err != nil {
		logrus.WithError(err).WithField("deal_id", dealID).
			Warn("Falha ao buscar campanhas associadas ao deal")
		return nil
	}

	names := make([]string, 0, len(page.Results))

	for _, assoc := range page.Results {
		campaignID := strconv.FormatInt(assoc.ToObjectID, 10)

		name, ok := s.campaignNameFromCache(campaignID)
		if !ok {
			name = s.fetchCampaignName(campaignID)
			s.storeCampaignName(campaignID, name)
		}

		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

func (s *CRMIntegrator) fetchCampaignName(campaignID string) string {
	var campaign *hubspotdomain.MarketingCampaign

	err := s.retry.Do("hubspot_marketing_campaign", func() error {
		var reqErr error
		campaign, reqErr = s.Client.GetMarketingCampaign(campaignID)
		return reqErr
	})
	if err != nil || campaign.Properties.Name == "" {
		if err != nil {
			logrus.WithError(err).WithField("campaign_id", campaignID).
				Warn("Falha ao buscar nome da campanha de marketing")
		}
		return campaignPlaceholderName(campaignID)
	}

	return campaign.Properties.Name
}

// resolveFormEngagements busca, com concorrência limitada, o engajamento de
// envio de formulário mais recente de cada contato. Desabilitado quando o
// portal não expõe a API de engajamentos.
func (s *CRMIntegrator) resolveFormEngagements(contacts []domain.Contact) map[string]*hubspotdomain.EngagementResponse {
	result := make(map[string]*hubspotdomain.EngagementResponse)

	if !s.caps.EngagementDetails {
		return result
	}

	var mu sync.Mutex
	var wg sync.WaitGroup
	sem := make(chan struct{}, s.cfg.Sync.MaxConcurrentLookups)

	for _, contact := range contacts {
		wg.Add(1)
		sem <- struct{}{}

		go func(contactID string) {
			defer wg.Done()
			defer func() { <-sem }()

			engagement := s.latestFormEngagement(contactID)
			if engagement == nil {
				return
			}

			mu.Lock()
			result[contactID] = engagement
			mu.Unlock()
		}(contact.ID)
	}

	wg.Wait()

	return result
}

func (s *CRMIntegrator) latestFormEngagement(contactID string) *hubspotdomain.EngagementResponse {
	var page *hubspotdomain.AssociationPage

	err := s.retry.Do("hubspot_contact_engagements", func() error {
		var reqErr error
		page, reqErr = s.Client.GetAssociationPage("contacts", contactID, "engagements")
		return reqErr
	})
	if err != nil {
		logrus.WithError(err).WithField("contact_id", contactID).
			Warn("Falha ao buscar engajamentos do contato")
		return nil
	}

	var latest *hubspotdomain.EngagementResponse

	for _, assoc := range page.Results {
		var engagement *hubspotdomain.EngagementResponse

		err := s.retry.Do("hubspot_engagement", func() error {
			var reqErr error
			engagement, reqErr = s.Client.GetEngagement(assoc.ToObjectID)
			return reqErr
		})
		if err != nil {
			continue
		}

		if engagement.Engagement.Type != hubspotdomain.EngagementTypeFormSubmission {
			continue
		}

		// Só qualifica o engajamento que identifica o formulário por completo
		if engagement.Metadata.FormID == "" || engagement.Metadata.Title == "" {
			continue
		}

		if latest == nil || engagement.Engagement.CreatedAt > latest.Engagement.CreatedAt {
			latest = engagement
		}
	}

	return latest
}

func dedupeDealIDs(contactDeals map[string][]string) []string {
	seen := make(map[string]struct{})
	ids := make([]string, 0, len(contactDeals))

	for _, dealIDs := range contactDeals {
		for _, id := range dealIDs {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}

	sort.Strings(ids)

	return ids
}

func defaultNA(value string) string {
	if value == "" {
		return "N/A"
	}

	return value
}
