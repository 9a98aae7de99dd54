package commands

import (
	"context"
	"fmt"

	"github.com/alecthomas/kingpin/v2"

	"github.com/aragroup1/seoctl/internal/app/calendarlist"
)

type CalendarCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	websiteID string
	format    string
}

// NewCalendarCommand returns the calendar command.
func NewCalendarCommand(rootCmd *RootCommand, app *kingpin.Application) *CalendarCommand {
	c := &CalendarCommand{rootCmd: rootCmd}

	c.Cmd = app.Command("calendar", "Show the content calendar for a website.")
	c.Cmd.Arg("website-id", "Website ID.").Required().StringVar(&c.websiteID)
	formatFlag(c.Cmd, &c.format)

	return c
}

func (c CalendarCommand) Name() string { return c.Cmd.FullCommand() }

func (c CalendarCommand) Run(ctx context.Context) error {
	logger := c.rootCmd.Logger

	cfg, err := c.rootCmd.LoadConfig()
	if err != nil {
		return err
	}

	cli, err := newAPIClient(cfg, logger)
	if err != nil {
		return err
	}

	svc, err := calendarlist.NewService(calendarlist.ServiceConfig{
		APIClient: cli,
		Logger:    logger,
	})
	if err != nil {
		return fmt.Errorf("could not create service: %w", err)
	}

	items, err := svc.Run(ctx, calendarlist.Request{WebsiteID: c.websiteID})
	if err != nil {
		return fmt.Errorf("could not get content calendar: %w", err)
	}

	p := newPrinter(c.rootCmd.Stdout, c.format)
	if err := p.PrintCalendar(items); err != nil {
		return fmt.Errorf("could not print calendar: %w", err)
	}

	return nil
}
