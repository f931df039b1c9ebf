package service

import (
	"context"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// SiteStatus is the outcome of one reachability probe.
type SiteStatus struct {
	SiteID     int64     `json:"site_id"`
	URL        string    `json:"url"`
	Reachable  bool      `json:"reachable"`
	StatusCode int       `json:"status_code,omitempty"`
	CheckedAt  time.Time `json:"checked_at"`
}

// SiteChecker probes a site's stored URL over HTTP. Read-only: it never
// touches the sites cache region or storage.
type SiteChecker struct {
	httpClient *resty.Client
	sites      *SiteService
	logger     *zap.Logger
}

func NewSiteChecker(sites *SiteService, logger *zap.Logger) *SiteChecker {
	client := resty.New().
		SetTimeout(10 * time.Second).
		SetRetryCount(2).
		SetRetryWaitTime(500 * time.Millisecond).
		SetRetryMaxWaitTime(2 * time.Second).
		SetHeader("Accept", "*/*")

	return &SiteChecker{
		httpClient: client,
		sites:      sites,
		logger:     logger,
	}
}

// Check fetches the site's URL and reports whether it answered. Transport
// failures are reported as unreachable, not as errors; only an unknown site
// id is an error.
func (c *SiteChecker) Check(ctx context.Context, siteID int64) (*SiteStatus, error) {
	site, err := c.sites.Show(ctx, siteID)
	if err != nil {
		return nil, err
	}

	status := &SiteStatus{
		SiteID:    site.ID,
		URL:       site.URL,
		CheckedAt: time.Now().UTC(),
	}

	resp, err := c.httpClient.R().SetContext(ctx).Get(site.URL)
	if err != nil {
		c.logger.Info("site unreachable", zap.Int64("site_id", site.ID), zap.String("url", site.URL), zap.Error(err))
		return status, nil
	}

	status.StatusCode = resp.StatusCode()
	status.Reachable = resp.StatusCode() < 500
	return status, nil
}
