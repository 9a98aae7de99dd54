package commands

import (
	"context"
	"fmt"

	"github.com/alecthomas/kingpin/v2"

	"github.com/aragroup1/seoctl/internal/app/strategylist"
	"github.com/aragroup1/seoctl/internal/model"
)

type StrategyListCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	websiteID string
	status    string
	format    string
}

// NewStrategyListCommand returns the strategy list command.
func NewStrategyListCommand(rootCmd *RootCommand, parent *kingpin.CmdClause) *StrategyListCommand {
	c := &StrategyListCommand{rootCmd: rootCmd}

	c.Cmd = parent.Command("list", "List the generated strategies for a website.")
	c.Cmd.Arg("website-id", "Website ID.").Required().StringVar(&c.websiteID)
	c.Cmd.Flag("status", "Filter by status (pending, in_progress, completed).").EnumVar(&c.status,
		string(model.StrategyStatusPending), string(model.StrategyStatusInProgress), string(model.StrategyStatusCompleted))
	formatFlag(c.Cmd, &c.format)

	return c
}

func (c StrategyListCommand) Name() string { return c.Cmd.FullCommand() }

func (c StrategyListCommand) Run(ctx context.Context) error {
	logger := c.rootCmd.Logger

	cfg, err := c.rootCmd.LoadConfig()
	if err != nil {
		return err
	}

	cli, err := newAPIClient(cfg, logger)
	if err != nil {
		return err
	}

	svc, err := strategylist.NewService(strategylist.ServiceConfig{
		APIClient: cli,
		Logger:    logger,
	})
	if err != nil {
		return fmt.Errorf("could not create service: %w", err)
	}

	strategies, err := svc.Run(ctx, strategylist.Request{
		WebsiteID: c.websiteID,
		Status:    model.StrategyStatus(c.status),
	})
	if err != nil {
		return fmt.Errorf("could not list strategies: %w", err)
	}

	p := newPrinter(c.rootCmd.Stdout, c.format)
	if err := p.PrintStrategyList(strategies); err != nil {
		return fmt.Errorf("could not print strategies: %w", err)
	}

	return nil
}
