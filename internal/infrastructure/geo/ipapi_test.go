package geo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/99minutos/auth-profile-api/internal/core/domain"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) *IPAPIClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewIPAPIClient(Config{BaseURL: srv.URL, Timeout: time.Second})
}

func TestIPAPIClient_Lookup_Success(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/json/8.8.8.8", r.URL.Path)
		assert.Contains(t, r.URL.Query().Get("fields"), "countryCode")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"success","query":"8.8.8.8","country":"United States","countryCode":"US","regionName":"Virginia","city":"Ashburn","zip":"20149","lat":39.03,"lon":-77.5,"timezone":"America/New_York"}`))
	})

	loc, err := client.Lookup(context.Background(), "8.8.8.8")
	require.NoError(t, err)
	assert.Equal(t, "8.8.8.8", loc.IP)
	assert.Equal(t, "US", loc.CountryCode)
	assert.Equal(t, "Ashburn", loc.CityName)
	assert.InDelta(t, 39.03, loc.Latitude, 0.0001)
	assert.Equal(t, "America/New_York", loc.Timezone)
}

func TestIPAPIClient_Lookup_ProviderFail(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"fail","message":"reserved range","query":"10.0.0.1"}`))
	})

	_, err := client.Lookup(context.Background(), "10.0.0.1")
	assert.ErrorIs(t, err, domain.ErrLocationNotFound)
}

func TestIPAPIClient_Lookup_HTTPError(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := client.Lookup(context.Background(), "8.8.8.8")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrLocationNotFound)
}
