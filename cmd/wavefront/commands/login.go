package commands

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/wavefront-tools/wavefront-go/internal/constants"
	"github.com/wavefront-tools/wavefront-go/pkg/wavefront"
	"github.com/wavefront-tools/wavefront-go/pkg/wfclient"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

type credentialsProfile struct {
	Endpoint string `yaml:"endpoint"`
	Token    string `yaml:"token"`
}

// NewLoginCommand creates the login command. It verifies the credentials
// against the API before persisting them to the credentials file.
func NewLoginCommand() *cobra.Command {
	var (
		endpoint string
		token    string
		profile  string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store Wavefront credentials",
		Long:  "Verify an endpoint and API token against the Wavefront API and store them in the credentials file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if endpoint == "" {
				reader := bufio.NewReader(os.Stdin)
				fmt.Print("Endpoint: ")
				endpoint, _ = reader.ReadString('\n')
				endpoint = strings.TrimSpace(endpoint)
			}

			if endpoint == "" {
				return ErrEndpointRequired
			}

			if token == "" {
				fmt.Print("API token: ")

				byteToken, err := term.ReadPassword(int(syscall.Stdin))
				if err != nil {
					return fmt.Errorf("failed to read token: %w", err)
				}

				token = strings.TrimSpace(string(byteToken))

				fmt.Println()
			}

			client, err := wfclient.NewWithToken(endpoint, token)
			if err != nil {
				return err
			}

			// A cheap authenticated call proves the token works.
			_, err = client.Users().List(cmd.Context())
			if err != nil {
				return fmt.Errorf("verifying credentials: %w", err)
			}

			err = saveProfile(profile, endpoint, token)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(os.Stdout, "Logged in, credentials saved to profile '%s'\n", profile)

			return nil
		},
	}

	cmd.Flags().StringVarP(&endpoint, "endpoint", "e", "", "Wavefront endpoint URL")
	cmd.Flags().StringVarP(&token, "token", "t", "", "API token")
	cmd.Flags().StringVarP(&profile, "profile", "p", wfclient.DefaultProfile, "credentials profile name")

	return cmd
}

// NewLogoutCommand creates the logout command, removing a stored profile.
func NewLogoutCommand() *cobra.Command {
	var profile string

	cmd := &cobra.Command{
		Use:   "logout",
		Short: "Remove stored Wavefront credentials",
		RunE: func(cmd *cobra.Command, args []string) error {
			err := deleteProfile(profile)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(os.Stdout, "Removed profile '%s'\n", profile)

			return nil
		},
	}

	cmd.Flags().StringVarP(&profile, "profile", "p", wfclient.DefaultProfile, "credentials profile name")

	return cmd
}

func loadCredentialsFile() (map[string]credentialsProfile, string, error) {
	path, err := wfclient.CredentialsPath()
	if err != nil {
		return nil, "", err
	}

	profiles := map[string]credentialsProfile{}

	data, err := os.ReadFile(path) // #nosec G304 -- fixed path under the user's home
	if err == nil {
		err = yaml.Unmarshal(data, &profiles)
		if err != nil {
			return nil, "", fmt.Errorf("parsing credentials file: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, "", fmt.Errorf("reading credentials file: %w", err)
	}

	return profiles, path, nil
}

func writeCredentialsFile(path string, profiles map[string]credentialsProfile) error {
	err := os.MkdirAll(filepath.Dir(path), constants.ConfigDirPerm)
	if err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(profiles)
	if err != nil {
		return fmt.Errorf("encoding credentials: %w", err)
	}

	err = os.WriteFile(path, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("writing credentials file: %w", err)
	}

	return nil
}

func saveProfile(name, endpoint, token string) error {
	profiles, path, err := loadCredentialsFile()
	if err != nil {
		return err
	}

	profiles[name] = credentialsProfile{Endpoint: endpoint, Token: token}

	return writeCredentialsFile(path, profiles)
}

func deleteProfile(name string) error {
	profiles, path, err := loadCredentialsFile()
	if err != nil {
		return err
	}

	if _, ok := profiles[name]; !ok {
		return fmt.Errorf("%w: profile %q", wavefront.ErrCredentialsNotFound, name)
	}

	delete(profiles, name)

	return writeCredentialsFile(path, profiles)
}
