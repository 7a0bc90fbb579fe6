package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/forgekit-io/golab/internal/constants"
	"github.com/forgekit-io/golab/pkg/gitlab"
	"github.com/forgekit-io/golab/pkg/golab"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"
)

// Common static errors used throughout the commands package.
var (
	ErrHostNotConfigured  = errors.New("no GitLab host configured, use 'golab login' or --host")
	ErrTokenNotConfigured = errors.New("no access token configured, use 'golab login' or --token")
)

// CreateClient builds a GitLab client from the effective configuration,
// merging flags, environment, and the config file via viper.
func CreateClient() (golab.Client, error) {
	host := viper.GetString("host")
	if host == "" {
		return nil, ErrHostNotConfigured
	}

	token := viper.GetString("token")
	if token == "" {
		return nil, ErrTokenNotConfigured
	}

	config := &golab.Config{
		Host:  host,
		Token: token,
	}

	if viper.GetBool("verbose") {
		logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
		config.Logger = golab.NewZerologLogger(logger)
		config.Debug = true
	}

	client, err := gitlab.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return client, nil
}

// listParams builds query parameters for list commands.
func listParams(perPage int) *golab.QueryParams {
	params := golab.NewQueryParams()
	if perPage > 0 {
		params.WithPerPage(perPage)
	} else {
		params.WithPerPage(constants.StandardPageSize)
	}

	return params
}

// renderJSON writes data to stdout as indented JSON.
func renderJSON(data interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("failed to encode as JSON: %w", err)
	}

	return nil
}

// renderYAML writes data to stdout as YAML.
func renderYAML(data interface{}) error {
	encoder := yaml.NewEncoder(os.Stdout)

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("failed to encode as YAML: %w", err)
	}

	return nil
}
