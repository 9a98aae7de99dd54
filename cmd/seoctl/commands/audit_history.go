package commands

import (
	"context"
	"fmt"

	"github.com/alecthomas/kingpin/v2"

	"github.com/aragroup1/seoctl/internal/app/audithistory"
)

type AuditHistoryCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	websiteID string
	limit     int
	format    string
}

// NewAuditHistoryCommand returns the audit history command.
func NewAuditHistoryCommand(rootCmd *RootCommand, parent *kingpin.CmdClause) *AuditHistoryCommand {
	c := &AuditHistoryCommand{rootCmd: rootCmd}

	c.Cmd = parent.Command("history", "List past audits for a website, newest first.")
	c.Cmd.Arg("website-id", "Website ID.").Required().StringVar(&c.websiteID)
	c.Cmd.Flag("limit", "Maximum number of audits to show.").Default("10").IntVar(&c.limit)
	formatFlag(c.Cmd, &c.format)

	return c
}

func (c AuditHistoryCommand) Name() string { return c.Cmd.FullCommand() }

func (c AuditHistoryCommand) Run(ctx context.Context) error {
	logger := c.rootCmd.Logger

	cfg, err := c.rootCmd.LoadConfig()
	if err != nil {
		return err
	}

	cli, err := newAPIClient(cfg, logger)
	if err != nil {
		return err
	}

	repo, err := newRepository(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer repo.Close()

	svc, err := audithistory.NewService(audithistory.ServiceConfig{
		APIClient:  cli,
		Repository: repo,
		Logger:     logger,
	})
	if err != nil {
		return fmt.Errorf("could not create service: %w", err)
	}

	summaries, err := svc.Run(ctx, audithistory.Request{
		WebsiteID: c.websiteID,
		Limit:     c.limit,
	})
	if err != nil {
		return fmt.Errorf("could not get audit history: %w", err)
	}

	p := newPrinter(c.rootCmd.Stdout, c.format)
	if err := p.PrintAuditHistory(summaries); err != nil {
		return fmt.Errorf("could not print audit history: %w", err)
	}

	return nil
}
