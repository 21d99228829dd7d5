// Package commands implements the wavefront CLI subcommands.
package commands

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"github.com/wavefront-tools/wavefront-go/pkg/wavefront"
	"github.com/wavefront-tools/wavefront-go/pkg/wfclient"
)

// Output formats.
const (
	OutputFormatJSON  = "json"
	OutputFormatYAML  = "yaml"
	OutputFormatTable = "table"

	NotAvailable = "N/A"
)

// Static errors for err113 compliance.
var (
	ErrEventNameRequired   = errors.New("event name is required")
	ErrQueryRequired       = errors.New("query expression is required")
	ErrInvalidTimeRange    = errors.New("invalid time range")
	ErrUnknownConfigKey    = errors.New("unknown configuration key")
	ErrInvalidOutputFormat = errors.New("invalid output format")
	ErrTokenCannotBeShown  = errors.New("token is write-only, it cannot be shown")
	ErrEndpointRequired    = errors.New("API endpoint is required (use --endpoint, login, or WAVEFRONT_ENDPOINT)")
)

// cliLogger adapts zerolog to the wavefront.Logger interface.
type cliLogger struct {
	logger zerolog.Logger
}

func newCLILogger(verbose bool) *cliLogger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()

	return &cliLogger{logger: logger}
}

func (l *cliLogger) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug().Fields(fields).Msg(msg)
}

func (l *cliLogger) Info(msg string, fields map[string]interface{}) {
	l.logger.Info().Fields(fields).Msg(msg)
}

func (l *cliLogger) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn().Fields(fields).Msg(msg)
}

func (l *cliLogger) Error(msg string, fields map[string]interface{}) {
	l.logger.Error().Fields(fields).Msg(msg)
}

// CreateClient builds a client from flags, the config file and the
// environment, in that order.
func CreateClient() (wavefront.Client, error) {
	verbose := viper.GetBool("verbose")

	return wfclient.New(&wavefront.Config{
		Endpoint: viper.GetString("endpoint"),
		Token:    viper.GetString("token"),
		Debug:    verbose,
		Logger:   newCLILogger(verbose),
	})
}

// epochMillisString renders an epoch millisecond timestamp for tables.
func epochMillisString(millis int64) string {
	if millis == 0 {
		return NotAvailable
	}

	return time.UnixMilli(millis).UTC().Format(time.RFC3339)
}

// boolString renders a boolean for tables.
func boolString(value bool) string {
	return strconv.FormatBool(value)
}
