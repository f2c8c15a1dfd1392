package aggregating

import (
	"sort"

	"github.com/vfg2006/ads-crm-sync-api/internal/domain"
	"github.com/vfg2006/ads-crm-sync-api/pkg/utils"
)

type Service interface {
	AggregateByCampaign(campaigns []domain.Campaign, deals map[string]domain.Deal) []domain.AggregationRow
	AggregateByForm(data *domain.FormSubmissionData) []domain.FormAggregationRow
}

type aggregator struct{}

func New() Service {
	return &aggregator{}
}

// AggregateByCampaign junta as campanhas de anúncio com os deals do CRM pelo
// nome da campanha e conta os deals de cada balde. Campanha sem nenhum deal
// aberto nem ganho fica fora da saída. Deal sem associação de campanha não
// contribui para nenhuma linha. A saída é ordenada pelo nome da campanha,
// então entradas iguais produzem saídas idênticas.
func (a *aggregator) AggregateByCampaign(campaigns []domain.Campaign, deals map[string]domain.Deal) []domain.AggregationRow {
	rowsByName := make(map[string]*domain.AggregationRow, len(campaigns))

	for _, campaign := range campaigns {
		rowsByName[campaign.Name] = &domain.AggregationRow{
			Key:     campaign.Name,
			Network: campaign.Network,
			Cost:    utils.RoundWithTwoDecimalPlace(campaign.Cost),
		}
	}

	for _, deal := range deals {
		for _, campaignName := range deal.AssociatedCampaignNames {
			row, ok := rowsByName[campaignName]
			if !ok {
				// Campanha conhecida só pelo CRM: entra sem custo
				row = &domain.AggregationRow{Key: campaignName, Network: "N/A"}
				rowsByName[campaignName] = row
			}

			switch deal.Bucket {
			case domain.DealBucketOpen:
				row.Open++
			case domain.DealBucketClosedWon:
				row.ClosedWon++
			case domain.DealBucketClosedLost:
				row.ClosedLost++
			}
		}
	}

	rows := make([]domain.AggregationRow, 0, len(rowsByName))

	for _, row := range rowsByName {
		if row.Open == 0 && row.ClosedWon == 0 {
			continue
		}

		rows = append(rows, *row)
	}

	sort.Slice(rows, func(i, j int) bool {
		return rows[i].Key < rows[j].Key
	})

	return rows
}

// AggregateByForm agrupa os envios pelo nome resolvido do formulário e conta
// os baldes dos deals dos contatos de cada grupo. O balde do sentinela de
// formulário não encontrado fica fora da saída, mesmo que tenha deals.
func (a *aggregator) AggregateByForm(data *domain.FormSubmissionData) []domain.FormAggregationRow {
	rowsByForm := make(map[string]*domain.FormAggregationRow)

	for _, record := range data.Records {
		if record.FormName == domain.FormNameNotFound {
			continue
		}

		row, ok := rowsByForm[record.FormName]
		if !ok {
			row = &domain.FormAggregationRow{FormName: record.FormName}

			if stats, found := data.FormStats[record.FormName]; found {
				row.Views = stats.Views
				row.Submissions = stats.Submissions
			}

			rowsByForm[record.FormName] = row
		}

		for _, dealID := range data.ContactDeals[record.ContactID] {
			deal, found := data.Deals[dealID]
			if !found {
				continue
			}

			switch deal.Bucket {
			case domain.DealBucketOpen:
				row.Open++
			case domain.DealBucketClosedWon:
				row.ClosedWon++
			case domain.DealBucketClosedLost:
				row.ClosedLost++
			}
		}
	}

	rows := make([]domain.FormAggregationRow, 0, len(rowsByForm))

	for _, row := range rowsByForm {
		rows = append(rows, *row)
	}

	sort.Slice(rows, func(i, j int) bool {
		return rows[i].FormName < rows[j].FormName
	})

	return rows
}
