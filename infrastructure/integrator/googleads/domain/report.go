package adsdomain

import "strconv"

// ReportRow é uma linha do stream de relatório do Google Ads. Os campos
// chegam com caminhos pontuados (campaign.id, metrics.cost_micros); aqui
// cada segmento vira um struct aninhado.
type ReportRow struct {
	Campaign  Campaign  `json:"campaign"`
	Metrics   Metrics   `json:"metrics"`
	Segments  Segments  `json:"segments"`
	ClickView ClickView `json:"clickView"`
}

type Campaign struct {
	ID     int64  `json:"id,string"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

type Metrics struct {
	CostMicros  int64   `json:"costMicros,string"`
	Clicks      int64   `json:"clicks,string"`
	Impressions int64   `json:"impressions,string"`
	Conversions float64 `json:"conversions"`
}

type Segments struct {
	Date          string `json:"date"`
	AdNetworkType int64  `json:"adNetworkType"`
}

type ClickView struct {
	GCLID string `json:"gclid"`
}

// SearchStreamChunk é um bloco da resposta do endpoint searchStream; o
// stream completo é um array de blocos.
type SearchStreamChunk struct {
	Results []ReportRow `json:"results"`
}

// Códigos do enum AdNetworkType reportados no stream
var adNetworkTypeLabels = map[int64]string{
	0: "UNSPECIFIED",
	1: "UNKNOWN",
	2: "SEARCH",
	3: "SEARCH_PARTNERS",
	4: "DISPLAY",
	5: "YOUTUBE_SEARCH",
	6: "YOUTUBE_WATCH",
	7: "MIXED",
	8: "CROSS_NETWORK",
}

// NetworkLabel converte o código numérico da rede em rótulo legível. Código
// não mapeado vira "UNKNOWN_VALUE_<código>" em vez de falhar.
func NetworkLabel(code int64) string {
	if label, ok := adNetworkTypeLabels[code]; ok {
		return label
	}
	return "UNKNOWN_VALUE_" + strconv.FormatInt(code, 10)
}
