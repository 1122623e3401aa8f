package mongo

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestConfig_ClientOptionsDefaults(t *testing.T) {
	opts := Config{URI: "mongodb://localhost:27017"}.clientOptions()

	require.NotNil(t, opts.Timeout)
	assert.Equal(t, defaultTimeout, *opts.Timeout)
	assert.Equal(t, defaultTimeout, *opts.ServerSelectionTimeout)
	assert.Equal(t, uint64(defaultMaxPoolSize), *opts.MaxPoolSize)
	assert.Nil(t, opts.AppName)
}

func TestConfig_ClientOptionsOverrides(t *testing.T) {
	opts := Config{
		URI:         "mongodb://localhost:27017",
		AppName:     "auth-profile-api",
		MaxPoolSize: 5,
		Timeout:     2 * time.Second,
	}.clientOptions()

	assert.Equal(t, 2*time.Second, *opts.Timeout)
	assert.Equal(t, uint64(5), *opts.MaxPoolSize)
	require.NotNil(t, opts.AppName)
	assert.Equal(t, "auth-profile-api", *opts.AppName)
}

func TestConnect_RejectsBadInput(t *testing.T) {
	_, _, err := Connect(context.Background(), Config{URI: "mongodb://localhost:27017"})
	assert.Error(t, err, "missing database name")

	_, _, err = Connect(context.Background(), Config{URI: "not-a-mongo-uri", Database: "auth"})
	assert.Error(t, err, "malformed uri")
}

func TestPing(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("ok", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		assert.NoError(mt, Ping(context.Background(), mt.DB))
	})

	mt.Run("command error", func(mt *mtest.T) {
		mt.AddMockResponses(bson.D{{Key: "ok", Value: 0}, {Key: "errmsg", Value: "not primary"}})
		assert.Error(mt, Ping(context.Background(), mt.DB))
	})
}
