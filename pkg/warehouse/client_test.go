package warehouse

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storhub/bqsync/pkg/config"
	"github.com/storhub/bqsync/pkg/syncerrors"
)

func TestNewClientRequiresCredentials(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.WarehouseConfig
	}{
		{"missing project id", config.WarehouseConfig{CredentialsFile: "/tmp/creds.json"}},
		{"missing credentials file", config.WarehouseConfig{ProjectID: "proj"}},
		{"both missing", config.WarehouseConfig{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewClient(context.Background(), tt.cfg)
			require.Error(t, err)
			assert.Nil(t, client)
			assert.True(t, syncerrors.IsType(err, syncerrors.ErrorTypeConfig))
		})
	}
}

func TestQueryParameters(t *testing.T) {
	assert.Nil(t, queryParameters(nil))

	got := queryParameters([]Param{
		{Name: "org", Value: "O1"},
		{Name: "limit", Value: int64(10)},
	})
	require.Len(t, got, 2)
	assert.Equal(t, "org", got[0].Name)
	assert.Equal(t, "O1", got[0].Value)
	assert.Equal(t, "limit", got[1].Name)
	assert.Equal(t, int64(10), got[1].Value)
}
