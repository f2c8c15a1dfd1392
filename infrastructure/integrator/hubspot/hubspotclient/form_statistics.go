package hubspotclient

import (
	"fmt"
	"net/url"
	"time"

	hubspotdomain "github.com/vfg2006/ads-crm-sync-api/infrastructure/integrator/hubspot/domain"
	"github.com/vfg2006/ads-crm-sync-api/pkg/utils"
)

// GetFormStatistics busca visualizações e envios de um formulário no período.
func (c *HubSpotClient) GetFormStatistics(formID string, startDate, endDate time.Time) (*hubspotdomain.FormStatisticsResponse, error) {
	params := url.Values{}
	params.Add("startDate", utils.FormatDate(startDate))
	params.Add("endDate", utils.FormatDate(endDate))

	path := fmt.Sprintf("/forms/v2/forms/%s/statistics?%s", formID, params.Encode())

	var response hubspotdomain.FormStatisticsResponse
	if err := c.doRequest("GET", path, nil, &response); err != nil {
		return nil, err
	}

	return &response, nil
}
