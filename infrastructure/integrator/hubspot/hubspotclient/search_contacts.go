package hubspotclient

import (
	hubspotdomain "github.com/vfg2006/ads-crm-sync-api/infrastructure/integrator/hubspot/domain"
)

// SearchContacts consulta a Search API de contatos. O cursor de paginação
// (after) vai e volta opaco: a página seguinte usa exatamente o valor que a
// API devolveu em paging.next.after.
func (c *HubSpotClient) SearchContacts(req *hubspotdomain.SearchRequest) (*hubspotdomain.SearchResponse, error) {
	var response hubspotdomain.SearchResponse
	if err := c.doRequest("POST", "/crm/v3/objects/contacts/search", req, &response); err != nil {
		return nil, err
	}

	return &response, nil
}
