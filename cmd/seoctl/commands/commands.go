package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/alecthomas/kingpin/v2"

	"github.com/aragroup1/seoctl/internal/apiclient"
	"github.com/aragroup1/seoctl/internal/config"
	"github.com/aragroup1/seoctl/internal/log"
	"github.com/aragroup1/seoctl/internal/model"
	"github.com/aragroup1/seoctl/internal/printer"
	"github.com/aragroup1/seoctl/internal/storage/sqlite"
)

const (
	// LoggerTypeDefault is the logger default type.
	LoggerTypeDefault = "default"
	// LoggerTypeJSON is the logger json type.
	LoggerTypeJSON = "json"
)

// Command represents an application command, all commands that want to be executed
// should implement and setup on main.
type Command interface {
	Name() string
	Run(ctx context.Context) error
}

// RootCommand represents the root command configuration and global configuration
// for all the commands.
type RootCommand struct {
	// Global flags.
	Debug      bool
	NoLog      bool
	NoColor    bool
	LoggerType string
	APIURL     string
	APIKey     string
	DBPath     string
	ConfigPath string

	// Global instances.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger log.Logger
}

// NewRootCommand initializes the main root configuration.
func NewRootCommand(app *kingpin.Application) *RootCommand {
	c := &RootCommand{}

	app.Flag("debug", "Enable debug mode.").BoolVar(&c.Debug)
	app.Flag("no-log", "Disable logger.").BoolVar(&c.NoLog)
	app.Flag("no-color", "Disable logger color.").BoolVar(&c.NoColor)
	app.Flag("logger", "Selects the logger type.").Default(LoggerTypeDefault).EnumVar(&c.LoggerType, LoggerTypeDefault, LoggerTypeJSON)

	app.Flag("api-url", "SEO intelligence API base URL.").Envar("SEOCTL_API_URL").StringVar(&c.APIURL)
	app.Flag("api-key", "API key sent on every request.").Envar("SEOCTL_API_KEY").StringVar(&c.APIKey)
	app.Flag("db-path", "Path to the SQLite cache file.").Envar("SEOCTL_DB_PATH").StringVar(&c.DBPath)
	app.Flag("config", "Path to the config file.").Envar("SEOCTL_CONFIG").StringVar(&c.ConfigPath)

	return c
}

// LoadConfig loads the configuration file and layers the global flags on top.
func (c *RootCommand) LoadConfig() (*config.Config, error) {
	cfg, err := config.Load(c.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("could not load config: %w", err)
	}

	// Flags win over file and environment.
	if c.APIURL != "" {
		cfg.APIURL = c.APIURL
	}
	if c.APIKey != "" {
		cfg.APIKey = c.APIKey
	}
	if c.DBPath != "" {
		cfg.DBPath = c.DBPath
	}

	return cfg, nil
}

// newAPIClient creates the backend API client from the resolved configuration.
func newAPIClient(cfg *config.Config, logger log.Logger) (apiclient.Client, error) {
	cli, err := apiclient.NewClient(apiclient.ClientConfig{
		BaseURL: cfg.APIURL,
		APIKey:  cfg.APIKey,
		Logger:  logger,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create API client: %w", err)
	}
	return cli, nil
}

// newRepository creates the local SQLite cache repository.
func newRepository(ctx context.Context, cfg *config.Config, logger log.Logger) (*sqlite.Repository, error) {
	repo, err := sqlite.NewRepository(ctx, sqlite.RepositoryConfig{
		DBPath: cfg.DBPath,
		Logger: logger,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create repository: %w", err)
	}
	return repo, nil
}

// newPrinter selects the output printer for the given format.
func newPrinter(out io.Writer, format string) printer.Printer {
	switch format {
	case "json":
		return printer.NewJSONPrinter(out)
	default: // table
		return printer.NewTablePrinter(out)
	}
}

// pollPolicy returns the poll policy for tracked backend jobs.
func pollPolicy(cfg *config.Config) model.PollPolicy {
	return model.PollPolicy{
		Interval:    cfg.PollInterval,
		Timeout:     cfg.PollTimeout,
		MaxAttempts: cfg.PollMaxAttempts,
	}
}

// formatFlag registers the shared output format flag on a command.
func formatFlag(cmd *kingpin.CmdClause, target *string) {
	cmd.Flag("format", "Output format (table, json).").Default("table").EnumVar(target, "table", "json")
}
