package commands

import (
	"context"
	"fmt"

	"github.com/alecthomas/kingpin/v2"

	"github.com/aragroup1/seoctl/internal/app/auditstatus"
)

type AuditStatusCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	websiteID string
	refresh   bool
	format    string
}

// NewAuditStatusCommand returns the audit status command.
func NewAuditStatusCommand(rootCmd *RootCommand, parent *kingpin.CmdClause) *AuditStatusCommand {
	c := &AuditStatusCommand{rootCmd: rootCmd}

	c.Cmd = parent.Command("status", "Show the latest audit report for a website.")
	c.Cmd.Arg("website-id", "Website ID.").Required().StringVar(&c.websiteID)
	c.Cmd.Flag("refresh", "Skip the local cache and ask the API.").BoolVar(&c.refresh)
	formatFlag(c.Cmd, &c.format)

	return c
}

func (c AuditStatusCommand) Name() string { return c.Cmd.FullCommand() }

func (c AuditStatusCommand) Run(ctx context.Context) error {
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

	svc, err := auditstatus.NewService(auditstatus.ServiceConfig{
		APIClient:  cli,
		Repository: repo,
		Logger:     logger,
	})
	if err != nil {
		return fmt.Errorf("could not create service: %w", err)
	}

	resp, err := svc.Run(ctx, auditstatus.Request{
		WebsiteID: c.websiteID,
		Refresh:   c.refresh,
	})
	if err != nil {
		return fmt.Errorf("could not get audit status: %w", err)
	}

	p := newPrinter(c.rootCmd.Stdout, c.format)
	if err := p.PrintAuditReport(resp.Report); err != nil {
		return fmt.Errorf("could not print audit report: %w", err)
	}

	return nil
}
