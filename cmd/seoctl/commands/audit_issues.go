package commands

import (
	"context"
	"fmt"

	"github.com/alecthomas/kingpin/v2"

	"github.com/aragroup1/seoctl/internal/app/auditstatus"
	"github.com/aragroup1/seoctl/internal/model"
)

type AuditIssuesCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	websiteID      string
	severity       string
	category       string
	implementation string
	refresh        bool
	format         string
}

// NewAuditIssuesCommand returns the audit issues command.
func NewAuditIssuesCommand(rootCmd *RootCommand, parent *kingpin.CmdClause) *AuditIssuesCommand {
	c := &AuditIssuesCommand{rootCmd: rootCmd}

	c.Cmd = parent.Command("issues", "List the issues found by the latest audit.")
	c.Cmd.Arg("website-id", "Website ID.").Required().StringVar(&c.websiteID)
	c.Cmd.Flag("severity", "Filter by severity (low, medium, high, critical).").EnumVar(&c.severity,
		string(model.IssueSeverityLow), string(model.IssueSeverityMedium), string(model.IssueSeverityHigh), string(model.IssueSeverityCritical))
	c.Cmd.Flag("category", "Filter by category (technical, content, performance, mobile, security, backlink).").EnumVar(&c.category,
		string(model.IssueCategoryTechnical), string(model.IssueCategoryContent), string(model.IssueCategoryPerformance),
		string(model.IssueCategoryMobile), string(model.IssueCategorySecurity), string(model.IssueCategoryBacklink))
	c.Cmd.Flag("implementation", "Filter by fix status (not_started, in_progress, verified, failed).").EnumVar(&c.implementation,
		string(model.ImplementationStatusNotStarted), string(model.ImplementationStatusInProgress),
		string(model.ImplementationStatusVerified), string(model.ImplementationStatusFailed))
	c.Cmd.Flag("refresh", "Skip the local cache and ask the API.").BoolVar(&c.refresh)
	formatFlag(c.Cmd, &c.format)

	return c
}

func (c AuditIssuesCommand) Name() string { return c.Cmd.FullCommand() }

func (c AuditIssuesCommand) Run(ctx context.Context) error {
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
		Filter: model.IssueFilter{
			Severity:       model.IssueSeverity(c.severity),
			Category:       model.IssueCategory(c.category),
			Implementation: model.ImplementationStatus(c.implementation),
		},
	})
	if err != nil {
		return fmt.Errorf("could not get audit issues: %w", err)
	}

	p := newPrinter(c.rootCmd.Stdout, c.format)
	if err := p.PrintIssueList(resp.Issues); err != nil {
		return fmt.Errorf("could not print issues: %w", err)
	}

	return nil
}
