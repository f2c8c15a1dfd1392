package aggregating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-crm-sync-api/internal/domain"
)

func TestAggregateByCampaign(t *testing.T) {
	service := New()

	campaigns := []domain.Campaign{
		{ID: "1", Name: "A", Network: "SEARCH", Cost: 100},
		{ID: "2", Name: "B", Network: "DISPLAY", Cost: 50},
	}

	deals := map[string]domain.Deal{
		"d1": {ID: "d1", Bucket: domain.DealBucketOpen, AssociatedCampaignNames: []string{"A"}},
		"d2": {ID: "d2", Bucket: domain.DealBucketClosedWon, AssociatedCampaignNames: []string{"A"}},
		"d3": {ID: "d3", Bucket: domain.DealBucketClosedLost, AssociatedCampaignNames: []string{"B"}},
	}

	rows := service.AggregateByCampaign(campaigns, deals)

	// "B" só tem um deal perdido, então não entra na saída
	require.Len(t, rows, 1)
	assert.Equal(t, "A", rows[0].Key)
	assert.Equal(t, 1, rows[0].Open)
	assert.Equal(t, 1, rows[0].ClosedWon)
	assert.Equal(t, 0, rows[0].ClosedLost)
	assert.Equal(t, 100.0, rows[0].Cost)
	assert.Equal(t, "SEARCH", rows[0].Network)
}

func TestAggregateByCampaignDealWithoutAssociation(t *testing.T) {
	service := New()

	deals := map[string]domain.Deal{
		"d1": {ID: "d1", Bucket: domain.DealBucketOpen},
	}

	rows := service.AggregateByCampaign(nil, deals)

	assert.Empty(t, rows)
}

func TestAggregateByCampaignUnknownCampaignFromCRM(t *testing.T) {
	service := New()

	deals := map[string]domain.Deal{
		"d1": {ID: "d1", Bucket: domain.DealBucketOpen, AssociatedCampaignNames: []string{"Campanha Externa"}},
	}

	rows := service.AggregateByCampaign(nil, deals)

	require.Len(t, rows, 1)
	assert.Equal(t, "Campanha Externa", rows[0].Key)
	assert.Equal(t, 0.0, rows[0].Cost)
	assert.Equal(t, "N/A", rows[0].Network)
}

func TestAggregateByCampaignRoundsCost(t *testing.T) {
	service := New()

	campaigns := []domain.Campaign{
		{Name: "A", Cost: 10.567},
	}
	deals := map[string]domain.Deal{
		"d1": {ID: "d1", Bucket: domain.DealBucketOpen, AssociatedCampaignNames: []string{"A"}},
	}

	rows := service.AggregateByCampaign(campaigns, deals)

	require.Len(t, rows, 1)
	assert.Equal(t, 10.57, rows[0].Cost)
}

func TestAggregateByCampaignIdempotence(t *testing.T) {
	service := New()

	campaigns := []domain.Campaign{
		{Name: "C", Network: "SEARCH", Cost: 1},
		{Name: "A", Network: "SEARCH", Cost: 2},
		{Name: "B", Network: "DISPLAY", Cost: 3},
	}

	deals := map[string]domain.Deal{
		"d1": {ID: "d1", Bucket: domain.DealBucketOpen, AssociatedCampaignNames: []string{"A", "B", "C"}},
		"d2": {ID: "d2", Bucket: domain.DealBucketClosedWon, AssociatedCampaignNames: []string{"B"}},
	}

	first := service.AggregateByCampaign(campaigns, deals)
	second := service.AggregateByCampaign(campaigns, deals)

	assert.Equal(t, first, second)
	assert.Equal(t, "A", first[0].Key)
	assert.Equal(t, "B", first[1].Key)
	assert.Equal(t, "C", first[2].Key)
}

func TestAggregateByForm(t *testing.T) {
	service := New()

	data := &domain.FormSubmissionData{
		Records: []domain.FormSubmissionRecord{
			{ContactID: "c1", FormName: "Fale Conosco"},
			{ContactID: "c2", FormName: "Fale Conosco"},
			{ContactID: "c3", FormName: "Orçamento"},
		},
		ContactDeals: map[string][]string{
			"c1": {"d1"},
			"c2": {"d2"},
			"c3": {"d3"},
		},
		Deals: map[string]domain.Deal{
			"d1": {ID: "d1", Bucket: domain.DealBucketOpen},
			"d2": {ID: "d2", Bucket: domain.DealBucketClosedWon},
			"d3": {ID: "d3", Bucket: domain.DealBucketClosedLost},
		},
		FormStats: map[string]domain.FormStatistics{
			"Fale Conosco": {Views: 300, Submissions: 20},
		},
	}

	rows := service.AggregateByForm(data)

	require.Len(t, rows, 2)

	assert.Equal(t, "Fale Conosco", rows[0].FormName)
	assert.Equal(t, 1, rows[0].Open)
	assert.Equal(t, 1, rows[0].ClosedWon)
	assert.Equal(t, 300, rows[0].Views)
	assert.Equal(t, 20, rows[0].Submissions)

	assert.Equal(t, "Orçamento", rows[1].FormName)
	assert.Equal(t, 1, rows[1].ClosedLost)
}

func TestAggregateByFormExcludesSentinel(t *testing.T) {
	service := New()

	// Contato sem formulário resolvido fica fora da saída por formulário,
	// mesmo com deal ganho
	data := &domain.FormSubmissionData{
		Records: []domain.FormSubmissionRecord{
			{ContactID: "c1", FormName: domain.FormNameNotFound},
		},
		ContactDeals: map[string][]string{
			"c1": {"d1"},
		},
		Deals: map[string]domain.Deal{
			"d1": {ID: "d1", Bucket: domain.DealBucketClosedWon},
		},
	}

	rows := service.AggregateByForm(data)

	assert.Empty(t, rows)
}

func TestAggregateByFormWithoutStats(t *testing.T) {
	service := New()

	data := &domain.FormSubmissionData{
		Records: []domain.FormSubmissionRecord{
			{ContactID: "c1", FormName: "Newsletter"},
		},
	}

	rows := service.AggregateByForm(data)

	require.Len(t, rows, 1)
	assert.Equal(t, 0, rows[0].Views)
	assert.Equal(t, 0, rows[0].Submissions)
}
