package commands

import (
	"context"
	"fmt"

	"github.com/alecthomas/kingpin/v2"

	"github.com/aragroup1/seoctl/internal/app/integrationlist"
)

type IntegrationsCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	format string
}

// NewIntegrationsCommand returns the integrations command.
func NewIntegrationsCommand(rootCmd *RootCommand, app *kingpin.Application) *IntegrationsCommand {
	c := &IntegrationsCommand{rootCmd: rootCmd}

	c.Cmd = app.Command("integrations", "List the configured external integrations.")
	formatFlag(c.Cmd, &c.format)

	return c
}

func (c IntegrationsCommand) Name() string { return c.Cmd.FullCommand() }

func (c IntegrationsCommand) Run(ctx context.Context) error {
	logger := c.rootCmd.Logger

	cfg, err := c.rootCmd.LoadConfig()
	if err != nil {
		return err
	}

	cli, err := newAPIClient(cfg, logger)
	if err != nil {
		return err
	}

	svc, err := integrationlist.NewService(integrationlist.ServiceConfig{
		APIClient: cli,
		Logger:    logger,
	})
	if err != nil {
		return fmt.Errorf("could not create service: %w", err)
	}

	integrations, err := svc.Run(ctx)
	if err != nil {
		return fmt.Errorf("could not list integrations: %w", err)
	}

	p := newPrinter(c.rootCmd.Stdout, c.format)
	if err := p.PrintIntegrationList(integrations); err != nil {
		return fmt.Errorf("could not print integrations: %w", err)
	}

	return nil
}
