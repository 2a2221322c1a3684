package awsinfra

import (
	"context"
	"testing"

	"github.com/go-social-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_StaticCredentials(t *testing.T) {
	cfg := &config.Config{AWSAccessKeyID: "AKID", AWSSecretKey: "secret"}

	awsCfg, err := LoadConfig(context.Background(), cfg, "eu-west-1")
	require.NoError(t, err)

	assert.Equal(t, "eu-west-1", awsCfg.Region)
	creds, err := awsCfg.Credentials.Retrieve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "AKID", creds.AccessKeyID)
}

func TestEndpoint(t *testing.T) {
	assert.Nil(t, Endpoint(&config.Config{}))
	assert.Equal(t, "http://localhost:4566", *Endpoint(&config.Config{AWSEndpointURL: "http://localhost:4566"}))
}
