package commands

import (
	"context"
	"fmt"

	"github.com/alecthomas/kingpin/v2"

	"github.com/aragroup1/seoctl/internal/app/dashboard"
)

type DashboardCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	websiteID string
	format    string
}

// NewDashboardCommand returns the dashboard command.
func NewDashboardCommand(rootCmd *RootCommand, app *kingpin.Application) *DashboardCommand {
	c := &DashboardCommand{rootCmd: rootCmd}

	c.Cmd = app.Command("dashboard", "Show the SEO dashboard for a website.")
	c.Cmd.Arg("website-id", "Website ID.").Required().StringVar(&c.websiteID)
	formatFlag(c.Cmd, &c.format)

	return c
}

func (c DashboardCommand) Name() string { return c.Cmd.FullCommand() }

func (c DashboardCommand) Run(ctx context.Context) error {
	logger := c.rootCmd.Logger

	cfg, err := c.rootCmd.LoadConfig()
	if err != nil {
		return err
	}

	cli, err := newAPIClient(cfg, logger)
	if err != nil {
		return err
	}

	svc, err := dashboard.NewService(dashboard.ServiceConfig{
		APIClient: cli,
		Logger:    logger,
	})
	if err != nil {
		return fmt.Errorf("could not create service: %w", err)
	}

	dash, err := svc.Run(ctx, dashboard.Request{WebsiteID: c.websiteID})
	if err != nil {
		return fmt.Errorf("could not get dashboard: %w", err)
	}

	p := newPrinter(c.rootCmd.Stdout, c.format)
	if err := p.PrintDashboard(*dash); err != nil {
		return fmt.Errorf("could not print dashboard: %w", err)
	}

	return nil
}
