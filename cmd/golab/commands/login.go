package commands

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/forgekit-io/golab/internal/constants"
	"github.com/forgekit-io/golab/pkg/gitlab"
	"github.com/forgekit-io/golab/pkg/golab"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// NewLoginCommand creates the login command
func NewLoginCommand() *cobra.Command {
	var (
		host  string
		token string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Login to GitLab",
		Long:  "Authenticate against a GitLab host with a personal access token and save the credentials",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Get host
			if host == "" {
				host = viper.GetString("host")
			}

			if host == "" {
				reader := bufio.NewReader(os.Stdin)
				fmt.Print("GitLab host: ")
				host, _ = reader.ReadString('\n')
				host = strings.TrimSpace(host)
			}

			if host == "" {
				return ErrHostNotConfigured
			}

			// Get token without echoing it
			if token == "" {
				fmt.Print("Personal access token: ")
				byteToken, err := term.ReadPassword(int(syscall.Stdin))
				if err != nil {
					return fmt.Errorf("failed to read token: %w", err)
				}
				token = strings.TrimSpace(string(byteToken))
				fmt.Println()
			}

			if token == "" {
				return ErrTokenNotConfigured
			}

			// Verify the credentials against the API before saving
			client, err := gitlab.New(&golab.Config{
				Host:  host,
				Token: token,
			})
			if err != nil {
				return fmt.Errorf("failed to create client: %w", err)
			}

			user, err := client.Users().Current(context.Background())
			if err != nil {
				return fmt.Errorf("failed to authenticate with %s: %w", host, err)
			}

			err = saveCredentials(host, token)
			if err != nil {
				return err
			}

			fmt.Fprintf(os.Stdout, "Logged in to %s as %s\n", client.BaseURL(), user.Username)

			return nil
		},
	}

	cmd.Flags().StringVar(&host, "host", "", "GitLab host URL")
	cmd.Flags().StringVarP(&token, "token", "t", "", "personal access token")

	return cmd
}

// saveCredentials persists the host and token to the config file.
func saveCredentials(host, token string) error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to find home directory: %w", err)
	}

	configDir := filepath.Join(home, ".golab")

	err = os.MkdirAll(configDir, constants.ConfigDirPerm)
	if err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(map[string]string{
		"host":  host,
		"token": token,
	})
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	configPath := filepath.Join(configDir, "config.yml")

	err = os.WriteFile(configPath, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
