// Package geo resolves IP addresses to locations through the ip-api.com
// JSON endpoint.
package geo

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/99minutos/auth-profile-api/internal/core/domain"
)

const (
	defaultBaseURL = "http://ip-api.com"
	defaultTimeout = 5 * time.Second

	lookupFields = "status,message,query,country,countryCode,regionName,city,zip,lat,lon,timezone"
)

// Config captures the provider settings.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// IPAPIClient implements ports.Geolocator.
type IPAPIClient struct {
	client *resty.Client
}

func NewIPAPIClient(cfg Config) *IPAPIClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}

	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/json")

	return &IPAPIClient{client: client}
}

type ipAPIResponse struct {
	Status      string  `json:"status"`
	Message     string  `json:"message"`
	Query       string  `json:"query"`
	Country     string  `json:"country"`
	CountryCode string  `json:"countryCode"`
	RegionName  string  `json:"regionName"`
	City        string  `json:"city"`
	Zip         string  `json:"zip"`
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
	Timezone    string  `json:"timezone"`
}

// Lookup queries the provider for ip. A "fail" answer from the provider
// (reserved range, invalid query) maps to domain.ErrLocationNotFound.
func (c *IPAPIClient) Lookup(ctx context.Context, ip string) (*domain.Location, error) {
	var out ipAPIResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetPathParam("ip", ip).
		SetQueryParam("fields", lookupFields).
		SetResult(&out).
		Get("/json/{ip}")
	if err != nil {
		return nil, fmt.Errorf("geo lookup %s: %w", ip, err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("geo lookup %s: unexpected status %d", ip, resp.StatusCode())
	}
	if out.Status != "success" {
		return nil, fmt.Errorf("%w: %s", domain.ErrLocationNotFound, out.Message)
	}

	return &domain.Location{
		IP:          out.Query,
		CountryName: out.Country,
		CountryCode: out.CountryCode,
		RegionName:  out.RegionName,
		CityName:    out.City,
		ZipCode:     out.Zip,
		Latitude:    out.Lat,
		Longitude:   out.Lon,
		Timezone:    out.Timezone,
	}, nil
}
