package hubspotdomain

// AssociationPage é a página de associações de um objeto para um tipo de
// destino. Um contato pode associar a zero ou muitos negócios e engajamentos.
type AssociationPage struct {
	Results []AssociationResult `json:"results"`
}

type AssociationResult struct {
	ToObjectID int64 `json:"toObjectId"`
}

// BatchReadRequest é o corpo da leitura em lote de objetos por ID.
type BatchReadRequest struct {
	Inputs     []BatchInput `json:"inputs"`
	Properties []string     `json:"properties"`
}

type BatchInput struct {
	ID string `json:"id"`
}

type BatchReadResponse struct {
	Results []ObjectResult `json:"results"`
}

// MarketingCampaign é uma campanha de marketing do CRM, usada para resolver
// o nome das campanhas associadas a um negócio.
type MarketingCampaign struct {
	ID         string                      `json:"id"`
	Properties MarketingCampaignProperties `json:"properties"`
}

type MarketingCampaignProperties struct {
	Name string `json:"hs_name"`
}
