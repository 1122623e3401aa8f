package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_OptionsDefaults(t *testing.T) {
	opts := Config{Addr: "localhost:6379"}.options()

	assert.Equal(t, defaultTimeout, opts.DialTimeout)
	assert.Equal(t, defaultTimeout, opts.ReadTimeout)
	assert.Empty(t, opts.ClientName)
}

func TestConnect(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := Connect(context.Background(), Config{Addr: mr.Addr(), Timeout: time.Second})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	require.NoError(t, client.Set(context.Background(), "k", "v", 0).Err())
	mr.CheckGet(t, "k", "v")
}

func TestConnect_WithPassword(t *testing.T) {
	mr := miniredis.RunT(t)
	mr.RequireAuth("s3cret")

	_, err := Connect(context.Background(), Config{Addr: mr.Addr(), Timeout: time.Second})
	assert.Error(t, err, "missing password must fail")

	client, err := Connect(context.Background(), Config{Addr: mr.Addr(), Password: "s3cret", Timeout: time.Second})
	require.NoError(t, err)
	_ = client.Close()
}

func TestConnect_Errors(t *testing.T) {
	_, err := Connect(context.Background(), Config{})
	assert.Error(t, err, "empty address")

	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	_, err = Connect(context.Background(), Config{Addr: addr, Timeout: 200 * time.Millisecond})
	assert.Error(t, err, "server down")
}
