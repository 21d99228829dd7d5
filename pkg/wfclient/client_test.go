package wfclient_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wavefront-tools/wavefront-go/pkg/wavefront"
	"github.com/wavefront-tools/wavefront-go/pkg/wfclient"
)

// clearEnvironment isolates a test from ambient credentials.
func clearEnvironment(t *testing.T) {
	t.Helper()
	t.Setenv(wfclient.EnvEndpoint, "")
	t.Setenv(wfclient.EnvToken, "")
	t.Setenv(wfclient.EnvProfile, "")
	t.Setenv("HOME", t.TempDir())
}

// writeCredentials writes a credentials file under the test home.
func writeCredentials(t *testing.T, content string) {
	t.Helper()

	dir := filepath.Join(os.Getenv("HOME"), ".wavefront")
	require.NoError(t, os.MkdirAll(dir, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "credentials.yaml"), []byte(content), 0o600))
}

func TestNew_RequiresConfig(t *testing.T) {
	t.Parallel()

	_, err := wfclient.New(nil)
	require.ErrorIs(t, err, wavefront.ErrConfigRequired)
}

func TestNewWithToken(t *testing.T) {
	t.Parallel()

	client, err := wfclient.NewWithToken("https://example.wavefront.com", "api-token")
	require.NoError(t, err)
	assert.NotNil(t, client.Alerts())
}

func TestNew_NoCredentialsAnywhere(t *testing.T) {
	clearEnvironment(t)

	_, err := wfclient.NewFromEnvironment()
	require.ErrorIs(t, err, wavefront.ErrCredentialsNotFound)
}

func TestNew_FromEnvironment(t *testing.T) {
	clearEnvironment(t)
	t.Setenv(wfclient.EnvEndpoint, "https://example.wavefront.com")
	t.Setenv(wfclient.EnvToken, "env-token")

	client, err := wfclient.NewFromEnvironment()
	require.NoError(t, err)
	assert.NotNil(t, client)
}

func TestNew_FromDefaultProfile(t *testing.T) {
	clearEnvironment(t)
	writeCredentials(t, `
default:
  endpoint: https://example.wavefront.com
  token: profile-token
`)

	client, err := wfclient.NewFromEnvironment()
	require.NoError(t, err)
	assert.NotNil(t, client)
}

func TestNew_FromNamedProfile(t *testing.T) {
	clearEnvironment(t)
	t.Setenv(wfclient.EnvProfile, "staging")
	writeCredentials(t, `
default:
  endpoint: https://prod.wavefront.com
  token: prod-token
staging:
  endpoint: https://staging.wavefront.com
  token: staging-token
`)

	client, err := wfclient.NewFromEnvironment()
	require.NoError(t, err)
	assert.NotNil(t, client)
}

func TestNew_UnknownProfile(t *testing.T) {
	clearEnvironment(t)
	t.Setenv(wfclient.EnvProfile, "missing")
	writeCredentials(t, `
default:
  endpoint: https://example.wavefront.com
  token: profile-token
`)

	_, err := wfclient.NewFromEnvironment()
	require.ErrorIs(t, err, wavefront.ErrCredentialsNotFound)
	assert.Contains(t, err.Error(), "missing")
}

func TestNew_ProfileMissingToken(t *testing.T) {
	clearEnvironment(t)
	writeCredentials(t, `
default:
  endpoint: https://example.wavefront.com
`)

	_, err := wfclient.NewFromEnvironment()
	require.ErrorIs(t, err, wavefront.ErrTokenRequired)
}

func TestNew_ProfileMissingEndpoint(t *testing.T) {
	clearEnvironment(t)
	writeCredentials(t, `
default:
  token: profile-token
`)

	_, err := wfclient.NewFromEnvironment()
	require.ErrorIs(t, err, wavefront.ErrEndpointRequired)
}

// Environment variables fill only the fields the config leaves empty.
func TestNew_ConfigOverridesEnvironment(t *testing.T) {
	clearEnvironment(t)
	t.Setenv(wfclient.EnvEndpoint, "https://env.wavefront.com")

	client, err := wfclient.New(&wavefront.Config{
		Endpoint: "https://config.wavefront.com",
		Token:    "config-token",
	})
	require.NoError(t, err)
	assert.NotNil(t, client)
}

func TestCredentialsPath(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path, err := wfclient.CredentialsPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(os.Getenv("HOME"), ".wavefront", "credentials.yaml"), path)
}
