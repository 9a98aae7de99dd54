package commands

import (
	"context"
	"fmt"

	"github.com/alecthomas/kingpin/v2"

	"github.com/aragroup1/seoctl/internal/app/competitoranalyze"
)

type CompetitorAnalyzeCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	websiteID string
	domains   []string
	format    string
}

// NewCompetitorAnalyzeCommand returns the competitor analyze command.
func NewCompetitorAnalyzeCommand(rootCmd *RootCommand, parent *kingpin.CmdClause) *CompetitorAnalyzeCommand {
	c := &CompetitorAnalyzeCommand{rootCmd: rootCmd}

	c.Cmd = parent.Command("analyze", "Analyze competitors and wait for the report.")
	c.Cmd.Arg("website-id", "Website ID.").Required().StringVar(&c.websiteID)
	c.Cmd.Flag("domain", "Competitor domain to analyze (repeatable). Defaults to the registered competitors.").StringsVar(&c.domains)
	formatFlag(c.Cmd, &c.format)

	return c
}

func (c CompetitorAnalyzeCommand) Name() string { return c.Cmd.FullCommand() }

func (c CompetitorAnalyzeCommand) Run(ctx context.Context) error {
	logger := c.rootCmd.Logger

	cfg, err := c.rootCmd.LoadConfig()
	if err != nil {
		return err
	}

	cli, err := newAPIClient(cfg, logger)
	if err != nil {
		return err
	}

	svc, err := competitoranalyze.NewService(competitoranalyze.ServiceConfig{
		APIClient: cli,
		Policy:    pollPolicy(cfg),
		Logger:    logger,
	})
	if err != nil {
		return fmt.Errorf("could not create service: %w", err)
	}

	report, err := svc.Run(ctx, competitoranalyze.Request{
		WebsiteID: c.websiteID,
		Domains:   c.domains,
	})
	if err != nil {
		return fmt.Errorf("could not analyze competitors: %w", err)
	}

	p := newPrinter(c.rootCmd.Stdout, c.format)
	if err := p.PrintCompetitorReport(*report); err != nil {
		return fmt.Errorf("could not print competitor report: %w", err)
	}

	return nil
}
