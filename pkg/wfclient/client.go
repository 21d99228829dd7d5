package wfclient

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/wavefront-tools/wavefront-go/internal/client"
	"github.com/wavefront-tools/wavefront-go/pkg/wavefront"
	"gopkg.in/yaml.v3"
)

// Environment variables consulted during credential discovery.
const (
	EnvEndpoint = "WAVEFRONT_ENDPOINT"
	EnvToken    = "WAVEFRONT_TOKEN"
	EnvProfile  = "WAVEFRONT_PROFILE"
)

// DefaultProfile is the credentials file profile used when
// WAVEFRONT_PROFILE is unset.
const DefaultProfile = "default"

// credentialsFile mirrors ~/.wavefront/credentials.yaml: a mapping of
// profile name to endpoint/token pairs.
type credentialsFile map[string]credentialsProfile

type credentialsProfile struct {
	Endpoint string `yaml:"endpoint"`
	Token    string `yaml:"token"`
}

// New creates a Wavefront API client. Endpoint and token are resolved with
// the following precedence: values set on the config, then the
// WAVEFRONT_ENDPOINT/WAVEFRONT_TOKEN environment variables, then the
// profile named by WAVEFRONT_PROFILE in ~/.wavefront/credentials.yaml.
func New(config *wavefront.Config) (wavefront.Client, error) {
	if config == nil {
		return nil, wavefront.ErrConfigRequired
	}

	err := resolveCredentials(config)
	if err != nil {
		return nil, err
	}

	config.Endpoint = normalizeEndpoint(config.Endpoint)

	apiClient, err := client.New(config)
	if err != nil {
		return nil, fmt.Errorf("creating client: %w", err)
	}

	return apiClient, nil
}

// NewWithToken creates a client from an endpoint and API token.
func NewWithToken(endpoint, token string) (wavefront.Client, error) {
	return New(&wavefront.Config{
		Endpoint: endpoint,
		Token:    token,
	})
}

// NewFromEnvironment creates a client purely from the environment and the
// credentials file.
func NewFromEnvironment() (wavefront.Client, error) {
	return New(&wavefront.Config{})
}

// resolveCredentials fills missing Endpoint/Token fields from the
// environment and the credentials file.
func resolveCredentials(config *wavefront.Config) error {
	if config.Endpoint == "" {
		config.Endpoint = os.Getenv(EnvEndpoint)
	}

	if config.Token == "" {
		config.Token = os.Getenv(EnvToken)
	}

	if config.Endpoint != "" && config.Token != "" {
		return nil
	}

	profile, err := loadProfile(profileName())
	if err != nil {
		return err
	}

	if config.Endpoint == "" {
		config.Endpoint = profile.Endpoint
	}

	if config.Token == "" {
		config.Token = profile.Token
	}

	if config.Endpoint == "" {
		return wavefront.ErrEndpointRequired
	}

	if config.Token == "" {
		return wavefront.ErrTokenRequired
	}

	return nil
}

func profileName() string {
	if name := os.Getenv(EnvProfile); name != "" {
		return name
	}

	return DefaultProfile
}

// CredentialsPath returns the location of the credentials file.
func CredentialsPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}

	return filepath.Join(home, ".wavefront", "credentials.yaml"), nil
}

func loadProfile(name string) (*credentialsProfile, error) {
	path, err := CredentialsPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path) // #nosec G304 -- fixed path under the user's home
	if err != nil {
		if os.IsNotExist(err) {
			return nil, wavefront.ErrCredentialsNotFound
		}

		return nil, fmt.Errorf("reading credentials file: %w", err)
	}

	var file credentialsFile

	err = yaml.Unmarshal(data, &file)
	if err != nil {
		return nil, fmt.Errorf("parsing credentials file: %w", err)
	}

	profile, ok := file[name]
	if !ok {
		return nil, fmt.Errorf("%w: profile %q", wavefront.ErrCredentialsNotFound, name)
	}

	return &profile, nil
}

// normalizeEndpoint defaults the scheme to https and trims any trailing
// slash.
func normalizeEndpoint(endpoint string) string {
	endpoint = strings.TrimSuffix(endpoint, "/")
	if endpoint != "" && !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "https://" + endpoint
	}

	return endpoint
}
