package hubspotclient

import (
	"fmt"

	hubspotdomain "github.com/vfg2006/ads-crm-sync-api/infrastructure/integrator/hubspot/domain"
)

// GetEngagement busca um engajamento pelo ID. Para engajamentos do tipo
// FORM_SUBMISSION os metadados trazem o formId e o título do formulário.
func (c *HubSpotClient) GetEngagement(engagementID int64) (*hubspotdomain.EngagementResponse, error) {
	path := fmt.Sprintf("/engagements/v1/engagements/%d", engagementID)

	var response hubspotdomain.EngagementResponse
	if err := c.doRequest("GET", path, nil, &response); err != nil {
		return nil, err
	}

	return &response, nil
}
