package service

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/rs/zerolog"

	"github.com/99minutos/auth-profile-api/internal/core/domain"
	"github.com/99minutos/auth-profile-api/internal/core/ports"
	"github.com/99minutos/auth-profile-api/internal/pkg/metrics"
)

type LocationService struct {
	geo ports.Geolocator
	log zerolog.Logger
}

func NewLocationService(geo ports.Geolocator, log zerolog.Logger) *LocationService {
	return &LocationService{geo: geo, log: log}
}

// Locate resolves ip. Addresses that cannot be routed on the public
// internet are answered locally with domain.ErrLocationNotFound.
func (s *LocationService) Locate(ctx context.Context, ip string) (*domain.Location, error) {
	parsed := net.ParseIP(ip)
	if parsed == nil || !isPublic(parsed) {
		metrics.GeoLookupsTotal.WithLabelValues("not_found").Inc()
		return nil, fmt.Errorf("%w: %q is not a public address", domain.ErrLocationNotFound, ip)
	}

	loc, err := s.geo.Lookup(ctx, parsed.String())
	if err != nil {
		if errors.Is(err, domain.ErrLocationNotFound) {
			metrics.GeoLookupsTotal.WithLabelValues("not_found").Inc()
			return nil, err
		}
		metrics.GeoLookupsTotal.WithLabelValues("error").Inc()
		s.log.Warn().Err(err).Str("ip", ip).Msg("geolocation provider failed")
		return nil, fmt.Errorf("locate: %w", err)
	}

	metrics.GeoLookupsTotal.WithLabelValues("found").Inc()
	return loc, nil
}

func isPublic(ip net.IP) bool {
	return !(ip.IsLoopback() ||
		ip.IsPrivate() ||
		ip.IsUnspecified() ||
		ip.IsLinkLocalUnicast() ||
		ip.IsLinkLocalMulticast() ||
		ip.IsMulticast())
}
