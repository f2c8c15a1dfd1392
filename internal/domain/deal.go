package domain

// DealBucket é o balde de classificação do estágio de um negócio.
type DealBucket string

const (
	DealBucketOpen       DealBucket = "OPEN"
	DealBucketClosedWon  DealBucket = "CLOSED_WON"
	DealBucketClosedLost DealBucket = "CLOSED_LOST"
)

// Estágios conhecidos do funil de vendas do HubSpot
const (
	StageClosedWon  = "closedwon"
	StageClosedLost = "closedlost"
)

// Deal é um negócio do CRM já resolvido: estágio, nome e os nomes das
// campanhas de marketing associadas.
type Deal struct {
	ID                      string
	Stage                   string
	Name                    string
	AssociatedCampaignNames []string
	Bucket                  DealBucket
}

// ClassifyStage classifica um estágio em exatamente um dos três baldes.
// A ordem de avaliação é ganho (literal conhecido ou ID configurado),
// depois perdido, e qualquer outro valor cai em aberto — um estágio
// desconhecido nunca é descartado.
func ClassifyStage(stage, closedWonStageID, closedLostStageID string) DealBucket {
	if stage == "" {
		return DealBucketOpen
	}

	switch stage {
	case StageClosedWon, closedWonStageID:
		return DealBucketClosedWon
	case StageClosedLost, closedLostStageID:
		return DealBucketClosedLost
	default:
		return DealBucketOpen
	}
}
