package app

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewApplicationRequiresSourceURL(t *testing.T) {
	t.Setenv("YS_CONFIG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))

	_, err := NewApplication()
	assert.ErrorContains(t, err, "source url")
}

func TestNewApplicationWiresServer(t *testing.T) {
	t.Setenv("YS_CONFIG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("YS_SOURCE_URL", "https://example.com/pub?output=csv")
	t.Setenv("YS_SERVER_PORT", "18080")

	application, err := NewApplication()
	require.NoError(t, err)

	assert.Equal(t, ":18080", application.Server.Addr)
	assert.NotNil(t, application.Server.Handler)
	assert.NotNil(t, application.Logger)
}
