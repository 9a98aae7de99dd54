package commands

import (
	"context"
	"fmt"

	"github.com/alecthomas/kingpin/v2"

	"github.com/aragroup1/seoctl/internal/app/strategygenerate"
)

type StrategyGenerateCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	websiteID string
	format    string
}

// NewStrategyGenerateCommand returns the strategy generate command.
func NewStrategyGenerateCommand(rootCmd *RootCommand, parent *kingpin.CmdClause) *StrategyGenerateCommand {
	c := &StrategyGenerateCommand{rootCmd: rootCmd}

	c.Cmd = parent.Command("generate", "Generate optimization strategies and wait for the results.")
	c.Cmd.Arg("website-id", "Website ID.").Required().StringVar(&c.websiteID)
	formatFlag(c.Cmd, &c.format)

	return c
}

func (c StrategyGenerateCommand) Name() string { return c.Cmd.FullCommand() }

func (c StrategyGenerateCommand) Run(ctx context.Context) error {
	logger := c.rootCmd.Logger

	cfg, err := c.rootCmd.LoadConfig()
	if err != nil {
		return err
	}

	cli, err := newAPIClient(cfg, logger)
	if err != nil {
		return err
	}

	svc, err := strategygenerate.NewService(strategygenerate.ServiceConfig{
		APIClient: cli,
		Policy:    pollPolicy(cfg),
		Logger:    logger,
	})
	if err != nil {
		return fmt.Errorf("could not create service: %w", err)
	}

	strategies, err := svc.Run(ctx, strategygenerate.Request{WebsiteID: c.websiteID})
	if err != nil {
		return fmt.Errorf("could not generate strategies: %w", err)
	}

	p := newPrinter(c.rootCmd.Stdout, c.format)
	if err := p.PrintStrategyList(strategies); err != nil {
		return fmt.Errorf("could not print strategies: %w", err)
	}

	return nil
}
