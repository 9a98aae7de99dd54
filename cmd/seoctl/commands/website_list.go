package commands

import (
	"context"
	"fmt"

	"github.com/alecthomas/kingpin/v2"

	"github.com/aragroup1/seoctl/internal/app/websitelist"
)

type WebsiteListCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	format string
}

// NewWebsiteListCommand returns the website list command.
func NewWebsiteListCommand(rootCmd *RootCommand, parent *kingpin.CmdClause) *WebsiteListCommand {
	c := &WebsiteListCommand{rootCmd: rootCmd}

	c.Cmd = parent.Command("list", "List the registered websites.")
	formatFlag(c.Cmd, &c.format)

	return c
}

func (c WebsiteListCommand) Name() string { return c.Cmd.FullCommand() }

func (c WebsiteListCommand) Run(ctx context.Context) error {
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

	svc, err := websitelist.NewService(websitelist.ServiceConfig{
		APIClient:  cli,
		Repository: repo,
		Logger:     logger,
	})
	if err != nil {
		return fmt.Errorf("could not create service: %w", err)
	}

	websites, err := svc.Run(ctx)
	if err != nil {
		return fmt.Errorf("could not list websites: %w", err)
	}

	p := newPrinter(c.rootCmd.Stdout, c.format)
	if err := p.PrintWebsiteList(websites); err != nil {
		return fmt.Errorf("could not print websites: %w", err)
	}

	return nil
}
