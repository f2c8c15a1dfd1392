package domain

// Campaign representa uma campanha do Google Ads com as métricas do período
// consultado. Imutável depois da busca; não é persistida entre execuções.
type Campaign struct {
	ID          string
	Name        string
	Network     string
	Cost        float64 // Em unidades monetárias padrão, já convertido de micros
	Clicks      int64
	Impressions int64
	Conversions float64
	Status      string
}

// ConversionEvent é um clique convertido em um dia específico. A ordem de
// acumulação é crescente por data (iteração dia a dia) e, dentro do dia, a
// ordem de emissão do stream.
type ConversionEvent struct {
	Date       string
	CampaignID string
	GCLID      string
}
