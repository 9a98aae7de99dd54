package commands

import (
	"context"
	"fmt"

	"github.com/alecthomas/kingpin/v2"

	"github.com/aragroup1/seoctl/internal/app/rankinglist"
)

type RankingsCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	websiteID string
	top       int
	format    string
}

// NewRankingsCommand returns the rankings command.
func NewRankingsCommand(rootCmd *RootCommand, app *kingpin.Application) *RankingsCommand {
	c := &RankingsCommand{rootCmd: rootCmd}

	c.Cmd = app.Command("rankings", "List keyword rankings for a website.")
	c.Cmd.Arg("website-id", "Website ID.").Required().StringVar(&c.websiteID)
	c.Cmd.Flag("top", "Only show rankings at or above this position.").IntVar(&c.top)
	formatFlag(c.Cmd, &c.format)

	return c
}

func (c RankingsCommand) Name() string { return c.Cmd.FullCommand() }

func (c RankingsCommand) Run(ctx context.Context) error {
	logger := c.rootCmd.Logger

	cfg, err := c.rootCmd.LoadConfig()
	if err != nil {
		return err
	}

	cli, err := newAPIClient(cfg, logger)
	if err != nil {
		return err
	}

	svc, err := rankinglist.NewService(rankinglist.ServiceConfig{
		APIClient: cli,
		Logger:    logger,
	})
	if err != nil {
		return fmt.Errorf("could not create service: %w", err)
	}

	rankings, err := svc.Run(ctx, rankinglist.Request{
		WebsiteID: c.websiteID,
		Top:       c.top,
	})
	if err != nil {
		return fmt.Errorf("could not list rankings: %w", err)
	}

	p := newPrinter(c.rootCmd.Stdout, c.format)
	if err := p.PrintRankingList(rankings); err != nil {
		return fmt.Errorf("could not print rankings: %w", err)
	}

	return nil
}
