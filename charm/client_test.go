// ABOUTME: Tests for the charm KV client wrapper
// ABOUTME: Exercises kv operations, config exposure, connectivity, and sync on the test client
package charm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientRoundTrip(t *testing.T) {
	client := NewTestClient(t)

	key := []byte("wizard:session:research")
	require.NoError(t, client.Set(key, []byte(`{"current_step":"brand"}`)))

	data, err := client.Get(key)
	require.NoError(t, err)
	assert.Equal(t, `{"current_step":"brand"}`, string(data))

	require.NoError(t, client.Delete(key))
	_, err = client.Get(key)
	assert.Error(t, err, "deleted key reads as missing")
}

func TestClientSetOverwrites(t *testing.T) {
	client := NewTestClient(t)

	key := []byte("wizard:session:import")
	require.NoError(t, client.Set(key, []byte("first")))
	require.NoError(t, client.Set(key, []byte("second")))

	data, err := client.Get(key)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))
}

func TestClientConfigAndConnectivity(t *testing.T) {
	client := NewTestClient(t)

	cfg := client.Config()
	require.NotNil(t, cfg)
	assert.Equal(t, "localhost", cfg.Host)
	assert.False(t, cfg.AutoSync)

	assert.True(t, client.IsConnected())
	assert.NoError(t, client.Sync())
}
