package aws

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmlabs-hris/jornada-backend-go/internal/config"
)

func TestNewAWSConfig_StaticCredentials(t *testing.T) {
	awsCfg, err := NewAWSConfig(context.Background(), config.AWSConfig{
		Region:          "us-east-1",
		AccessKeyID:     "key",
		SecretAccessKey: "secret",
	})
	require.NoError(t, err)
	assert.Equal(t, "us-east-1", awsCfg.Region)

	creds, err := awsCfg.Credentials.Retrieve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "key", creds.AccessKeyID)
}

func TestNewAWSConfig_LocalEndpointUsesTestCredentials(t *testing.T) {
	awsCfg, err := NewAWSConfig(context.Background(), config.AWSConfig{
		Region:   "us-east-1",
		Endpoint: "http://localhost:4566",
	})
	require.NoError(t, err)

	creds, err := awsCfg.Credentials.Retrieve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "test", creds.AccessKeyID)
}

func TestNewSQSClient_CustomEndpoint(t *testing.T) {
	awsCfg, err := NewAWSConfig(context.Background(), config.AWSConfig{Region: "us-east-1", Endpoint: "http://localhost:4566"})
	require.NoError(t, err)

	client := NewSQSClient(awsCfg, "http://localhost:4566")
	require.NotNil(t, client)
	require.NotNil(t, client.Options().BaseEndpoint)
	assert.Equal(t, "http://localhost:4566", *client.Options().BaseEndpoint)
}
