package ports

import (
	"context"

	"github.com/99minutos/auth-profile-api/internal/core/domain"
)

// Geolocator resolves a public IP address through an external provider.
type Geolocator interface {
	Lookup(ctx context.Context, ip string) (*domain.Location, error)
}

// LocationService geolocates request addresses.
type LocationService interface {
	Locate(ctx context.Context, ip string) (*domain.Location, error)
}
