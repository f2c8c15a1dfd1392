package hubspotclient

import (
	hubspotdomain "github.com/vfg2006/ads-crm-sync-api/infrastructure/integrator/hubspot/domain"
)

// BatchReadDeals busca as propriedades de vários deals em uma única chamada.
// A API aceita no máximo 100 IDs por lote; quem chama é responsável por
// fatiar a lista.
func (c *HubSpotClient) BatchReadDeals(ids []string, properties []string) (*hubspotdomain.BatchReadResponse, error) {
	req := &hubspotdomain.BatchReadRequest{
		Properties: properties,
	}

	for _, id := range ids {
		req.Inputs = append(req.Inputs, hubspotdomain.BatchInput{ID: id})
	}

	var response hubspotdomain.BatchReadResponse
	if err := c.doRequest("POST", "/crm/v3/objects/deals/batch/read", req, &response); err != nil {
		return nil, err
	}

	return &response, nil
}
