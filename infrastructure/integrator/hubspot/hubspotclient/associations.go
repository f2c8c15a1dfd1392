package hubspotclient

import (
	"fmt"

	hubspotdomain "github.com/vfg2006/ads-crm-sync-api/infrastructure/integrator/hubspot/domain"
)

// GetAssociationPage lista as associações de um objeto para outro tipo,
// ex.: contato -> deals ou deal -> marketing_campaigns.
func (c *HubSpotClient) GetAssociationPage(fromType, fromID, toType string) (*hubspotdomain.AssociationPage, error) {
	path := fmt.Sprintf("/crm/v4/objects/%s/%s/associations/%s", fromType, fromID, toType)

	var response hubspotdomain.AssociationPage
	if err := c.doRequest("GET", path, nil, &response); err != nil {
		return nil, err
	}

	return &response, nil
}
