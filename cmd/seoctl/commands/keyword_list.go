package commands

import (
	"context"
	"fmt"

	"github.com/alecthomas/kingpin/v2"

	"github.com/aragroup1/seoctl/internal/app/keywordlist"
	"github.com/aragroup1/seoctl/internal/model"
)

type KeywordListCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	websiteID string
	intent    string
	format    string
}

// NewKeywordListCommand returns the keyword list command.
func NewKeywordListCommand(rootCmd *RootCommand, parent *kingpin.CmdClause) *KeywordListCommand {
	c := &KeywordListCommand{rootCmd: rootCmd}

	c.Cmd = parent.Command("list", "List the tracked keywords for a website.")
	c.Cmd.Arg("website-id", "Website ID.").Required().StringVar(&c.websiteID)
	c.Cmd.Flag("intent", "Filter by search intent (navigational, informational, commercial, transactional).").EnumVar(&c.intent,
		string(model.KeywordIntentNavigational), string(model.KeywordIntentInformational),
		string(model.KeywordIntentCommercial), string(model.KeywordIntentTransactional))
	formatFlag(c.Cmd, &c.format)

	return c
}

func (c KeywordListCommand) Name() string { return c.Cmd.FullCommand() }

func (c KeywordListCommand) Run(ctx context.Context) error {
	logger := c.rootCmd.Logger

	cfg, err := c.rootCmd.LoadConfig()
	if err != nil {
		return err
	}

	cli, err := newAPIClient(cfg, logger)
	if err != nil {
		return err
	}

	svc, err := keywordlist.NewService(keywordlist.ServiceConfig{
		APIClient: cli,
		Logger:    logger,
	})
	if err != nil {
		return fmt.Errorf("could not create service: %w", err)
	}

	keywords, err := svc.Run(ctx, keywordlist.Request{
		WebsiteID: c.websiteID,
		Intent:    model.KeywordIntent(c.intent),
	})
	if err != nil {
		return fmt.Errorf("could not list keywords: %w", err)
	}

	p := newPrinter(c.rootCmd.Stdout, c.format)
	if err := p.PrintKeywordList(keywords); err != nil {
		return fmt.Errorf("could not print keywords: %w", err)
	}

	return nil
}
