package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyStage(t *testing.T) {
	tests := []struct {
		name       string
		stage      string
		wonStageID string
		lostStage  string
		expected   DealBucket
	}{
		{
			name:     "Estágio closedwon vai para o balde de ganhos",
			stage:    "closedwon",
			expected: DealBucketClosedWon,
		},
		{
			name:     "Estágio closedlost vai para o balde de perdidos",
			stage:    "closedlost",
			expected: DealBucketClosedLost,
		},
		{
			name:       "ID customizado de ganho configurado pelo portal",
			stage:      "148309307",
			wonStageID: "148309307",
			expected:   DealBucketClosedWon,
		},
		{
			name:      "ID customizado de perda configurado pelo portal",
			stage:     "148309310",
			lostStage: "148309310",
			expected:  DealBucketClosedLost,
		},
		{
			name:     "Estágio desconhecido cai em aberto, nunca é descartado",
			stage:    "appointmentscheduled",
			expected: DealBucketOpen,
		},
		{
			name:     "Estágio vazio cai em aberto",
			stage:    "",
			expected: DealBucketOpen,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bucket := ClassifyStage(tt.stage, tt.wonStageID, tt.lostStage)
			assert.Equal(t, tt.expected, bucket)
		})
	}
}

// Todo estágio cai em exatamente um dos três baldes.
func TestClassifyStageIsTotal(t *testing.T) {
	stages := []string{"closedwon", "closedlost", "qualifiedtobuy", "", "123456", "CLOSEDWON"}
	for _, stage := range stages {
		bucket := ClassifyStage(stage, "148309307", "148309310")
		assert.Contains(t, []DealBucket{DealBucketOpen, DealBucketClosedWon, DealBucketClosedLost}, bucket)
	}
}
