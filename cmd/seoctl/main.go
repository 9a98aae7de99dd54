package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kingpin/v2"
	"github.com/joho/godotenv"
	"github.com/oklog/run"
	"github.com/sirupsen/logrus"

	"github.com/aragroup1/seoctl/cmd/seoctl/commands"
	"github.com/aragroup1/seoctl/internal/log"
	loglogrus "github.com/aragroup1/seoctl/internal/log/logrus"
)

const (
	// Version is the application version (set via ldflags).
	Version = "dev"
)

// Run runs the main application.
func Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) (err error) {
	// Local .env files are a dev convenience, missing ones are fine.
	_ = godotenv.Load()

	app := kingpin.New("seoctl", "SEO intelligence platform CLI.")
	app.DefaultEnvars()
	rootCmd := commands.NewRootCommand(app)

	// Website subcommands share a parent command.
	websiteCmd := app.Command("website", "Manage tracked websites.")
	websiteAddCmd := commands.NewWebsiteAddCommand(rootCmd, websiteCmd)
	websiteListCmd := commands.NewWebsiteListCommand(rootCmd, websiteCmd)

	// Audit subcommands share a parent command.
	auditCmd := app.Command("audit", "Run and inspect SEO audits.")
	auditRunCmd := commands.NewAuditRunCommand(rootCmd, auditCmd)
	auditStatusCmd := commands.NewAuditStatusCommand(rootCmd, auditCmd)
	auditHistoryCmd := commands.NewAuditHistoryCommand(rootCmd, auditCmd)
	auditIssuesCmd := commands.NewAuditIssuesCommand(rootCmd, auditCmd)

	// Competitor subcommands share a parent command.
	competitorCmd := app.Command("competitor", "Analyze competitors.")
	competitorAnalyzeCmd := commands.NewCompetitorAnalyzeCommand(rootCmd, competitorCmd)

	// Keyword subcommands share a parent command.
	keywordCmd := app.Command("keyword", "Research and track keywords.")
	keywordResearchCmd := commands.NewKeywordResearchCommand(rootCmd, keywordCmd)
	keywordListCmd := commands.NewKeywordListCommand(rootCmd, keywordCmd)

	// Strategy subcommands share a parent command.
	strategyCmd := app.Command("strategy", "Generate and inspect optimization strategies.")
	strategyGenerateCmd := commands.NewStrategyGenerateCommand(rootCmd, strategyCmd)
	strategyListCmd := commands.NewStrategyListCommand(rootCmd, strategyCmd)

	rankingsCmd := commands.NewRankingsCommand(rootCmd, app)
	dashboardCmd := commands.NewDashboardCommand(rootCmd, app)
	calendarCmd := commands.NewCalendarCommand(rootCmd, app)
	integrationsCmd := commands.NewIntegrationsCommand(rootCmd, app)
	doctorCmd := commands.NewDoctorCommand(rootCmd, app)

	cmds := map[string]commands.Command{
		websiteAddCmd.Name():        websiteAddCmd,
		websiteListCmd.Name():       websiteListCmd,
		auditRunCmd.Name():          auditRunCmd,
		auditStatusCmd.Name():       auditStatusCmd,
		auditHistoryCmd.Name():      auditHistoryCmd,
		auditIssuesCmd.Name():       auditIssuesCmd,
		competitorAnalyzeCmd.Name(): competitorAnalyzeCmd,
		keywordResearchCmd.Name():   keywordResearchCmd,
		keywordListCmd.Name():       keywordListCmd,
		strategyGenerateCmd.Name():  strategyGenerateCmd,
		strategyListCmd.Name():      strategyListCmd,
		rankingsCmd.Name():          rankingsCmd,
		dashboardCmd.Name():         dashboardCmd,
		calendarCmd.Name():          calendarCmd,
		integrationsCmd.Name():      integrationsCmd,
		doctorCmd.Name():            doctorCmd,
	}

	// Parse command.
	cmdName, err := app.Parse(args[1:])
	if err != nil {
		return fmt.Errorf("invalid command configuration: %w", err)
	}

	// Set standard input/output.
	rootCmd.Stdin = stdin
	rootCmd.Stdout = stdout
	rootCmd.Stderr = stderr

	// Auto-suppress logging for commands that produce structured output (table/JSON)
	// to prevent log noise from mixing with printer output in the terminal.
	// Users can still enable logging with --debug. Job commands (audit run,
	// competitor analyze, keyword research, strategy generate) keep their logs,
	// the poll progress is the point.
	printerCommands := map[string]bool{
		"website list":  true,
		"audit status":  true,
		"audit history": true,
		"audit issues":  true,
		"keyword list":  true,
		"strategy list": true,
		"rankings":      true,
		"dashboard":     true,
		"calendar":      true,
		"integrations":  true,
	}
	if printerCommands[cmdName] && !rootCmd.Debug {
		rootCmd.NoLog = true
	}

	// Set logger.
	rootCmd.Logger = getLogger(ctx, *rootCmd)

	var g run.Group

	// OS signals.
	{
		signalCtx, signalCancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
		defer signalCancel()

		g.Add(
			func() error {
				<-signalCtx.Done()
				rootCmd.Logger.Debugf("Termination signal received")
				return nil
			},
			func(_ error) {
				signalCancel()
			},
		)
	}

	// Execute command.
	{
		ctx, cancel := context.WithCancel(ctx)
		defer cancel()

		g.Add(
			func() error {
				err := cmds[cmdName].Run(ctx)
				if err != nil {
					return fmt.Errorf("%q command failed: %w", cmdName, err)
				}
				return nil
			},
			func(_ error) {
				cancel()
			},
		)
	}

	return g.Run()
}

// getLogger returns the application logger.
func getLogger(ctx context.Context, config commands.RootCommand) log.Logger {
	if config.NoLog {
		return log.Noop
	}

	// If logger not disabled use logrus logger.
	logrusLog := logrus.New()
	logrusLog.Out = config.Stderr // By default logger goes to stderr (so it can split stdout prints).
	logrusLogEntry := logrus.NewEntry(logrusLog)

	if config.Debug {
		logrusLogEntry.Logger.SetLevel(logrus.DebugLevel)
	}

	// Log format.
	switch config.LoggerType {
	case commands.LoggerTypeDefault:
		logrusLogEntry.Logger.SetFormatter(&logrus.TextFormatter{
			ForceColors:   !config.NoColor,
			DisableColors: config.NoColor,
		})
	case commands.LoggerTypeJSON:
		logrusLogEntry.Logger.SetFormatter(&logrus.JSONFormatter{})
	}

	logger := loglogrus.NewLogrus(logrusLogEntry).WithValues(log.Kv{
		"version": Version,
	})

	logger.Debugf("Debug level is enabled") // Will log only when debug enabled.

	return logger
}

func main() {
	ctx := context.Background()
	err := Run(ctx, os.Args, os.Stdin, os.Stdout, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
