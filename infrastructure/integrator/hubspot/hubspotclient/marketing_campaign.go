package hubspotclient

import (
	"fmt"

	hubspotdomain "github.com/vfg2006/ads-crm-sync-api/infrastructure/integrator/hubspot/domain"
)

// GetMarketingCampaign busca o nome de uma campanha de marketing pelo ID.
func (c *HubSpotClient) GetMarketingCampaign(campaignID string) (*hubspotdomain.MarketingCampaign, error) {
	path := fmt.Sprintf("/marketing/v3/campaigns/%s", campaignID)

	var response hubspotdomain.MarketingCampaign
	if err := c.doRequest("GET", path, nil, &response); err != nil {
		return nil, err
	}

	return &response, nil
}
