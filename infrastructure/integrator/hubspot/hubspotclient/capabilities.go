package hubspotclient

import (
	"errors"

	"github.com/sirupsen/logrus"
	hubspotdomain "github.com/vfg2006/ads-crm-sync-api/infrastructure/integrator/hubspot/domain"
)

// ProbeCapabilities sonda uma única vez as APIs que dependem de escopo ou de
// plano do portal. Caminhos indisponíveis são desligados em vez de gerar
// erro a cada execução da sincronização.
func (c *HubSpotClient) ProbeCapabilities() hubspotdomain.Capabilities {
	caps := hubspotdomain.Capabilities{
		EngagementDetails: c.probeEndpoint("/engagements/v1/engagements/paged?limit=1"),
		FormStatistics:    c.probeEndpoint("/forms/v2/forms?limit=1"),
	}

	logrus.WithFields(logrus.Fields{
		"engagement_details": caps.EngagementDetails,
		"form_statistics":    caps.FormStatistics,
	}).Info("Capacidades do portal HubSpot detectadas")

	return caps
}

func (c *HubSpotClient) probeEndpoint(path string) bool {
	err := c.doRequest("GET", path, nil, nil)
	if err == nil {
		return true
	}

	var apiErr *hubspotdomain.APIError
	if errors.As(err, &apiErr) && (apiErr.Status == 403 || apiErr.Status == 404) {
		logrus.WithFields(logrus.Fields{
			"path":   path,
			"status": apiErr.Status,
		}).Warn("API do HubSpot indisponível para este portal")

		return false
	}

	// Falha transitória na sondagem não desabilita a funcionalidade
	return true
}
