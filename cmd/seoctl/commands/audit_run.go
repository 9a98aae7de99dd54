package commands

import (
	"context"
	"fmt"

	"github.com/alecthomas/kingpin/v2"

	"github.com/aragroup1/seoctl/internal/app/auditrun"
)

type AuditRunCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	websiteID string
	format    string
}

// NewAuditRunCommand returns the audit run command.
func NewAuditRunCommand(rootCmd *RootCommand, parent *kingpin.CmdClause) *AuditRunCommand {
	c := &AuditRunCommand{rootCmd: rootCmd}

	c.Cmd = parent.Command("run", "Run a full audit and wait for the report.")
	c.Cmd.Arg("website-id", "Website ID.").Required().StringVar(&c.websiteID)
	formatFlag(c.Cmd, &c.format)

	return c
}

func (c AuditRunCommand) Name() string { return c.Cmd.FullCommand() }

func (c AuditRunCommand) Run(ctx context.Context) error {
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

	svc, err := auditrun.NewService(auditrun.ServiceConfig{
		APIClient:  cli,
		Repository: repo,
		Policy:     pollPolicy(cfg),
		Logger:     logger,
	})
	if err != nil {
		return fmt.Errorf("could not create service: %w", err)
	}

	report, err := svc.Run(ctx, auditrun.Request{WebsiteID: c.websiteID})
	if err != nil {
		return fmt.Errorf("could not run audit: %w", err)
	}

	p := newPrinter(c.rootCmd.Stdout, c.format)
	if err := p.PrintAuditReport(*report); err != nil {
		return fmt.Errorf("could not print audit report: %w", err)
	}

	return nil
}
