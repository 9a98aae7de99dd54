package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/kingpin/v2"

	"github.com/aragroup1/seoctl/internal/app/keywordresearch"
	storageio "github.com/aragroup1/seoctl/internal/storage/io"
)

type KeywordResearchCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	websiteID string
	keywords  []string
	file      string
	format    string
}

// NewKeywordResearchCommand returns the keyword research command.
func NewKeywordResearchCommand(rootCmd *RootCommand, parent *kingpin.CmdClause) *KeywordResearchCommand {
	c := &KeywordResearchCommand{rootCmd: rootCmd}

	c.Cmd = parent.Command("research", "Research keywords and wait for volume and difficulty data.")
	c.Cmd.Arg("website-id", "Website ID.").Required().StringVar(&c.websiteID)
	c.Cmd.Arg("keywords", "Keywords to research.").StringsVar(&c.keywords)
	c.Cmd.Flag("file", "YAML file with a keyword list.").StringVar(&c.file)
	formatFlag(c.Cmd, &c.format)

	return c
}

func (c KeywordResearchCommand) Name() string { return c.Cmd.FullCommand() }

func (c KeywordResearchCommand) Run(ctx context.Context) error {
	logger := c.rootCmd.Logger

	keywords := c.keywords
	if c.file != "" {
		loader := storageio.NewKeywordsYAMLRepository(os.DirFS(filepath.Dir(c.file)))
		fileKeywords, err := loader.GetKeywords(ctx, filepath.Base(c.file))
		if err != nil {
			return fmt.Errorf("could not load keywords from %s: %w", c.file, err)
		}
		keywords = append(keywords, fileKeywords...)
	}

	cfg, err := c.rootCmd.LoadConfig()
	if err != nil {
		return err
	}

	cli, err := newAPIClient(cfg, logger)
	if err != nil {
		return err
	}

	svc, err := keywordresearch.NewService(keywordresearch.ServiceConfig{
		APIClient: cli,
		Policy:    pollPolicy(cfg),
		Logger:    logger,
	})
	if err != nil {
		return fmt.Errorf("could not create service: %w", err)
	}

	researched, err := svc.Run(ctx, keywordresearch.Request{
		WebsiteID: c.websiteID,
		Keywords:  keywords,
	})
	if err != nil {
		return fmt.Errorf("could not research keywords: %w", err)
	}

	p := newPrinter(c.rootCmd.Stdout, c.format)
	if err := p.PrintKeywordList(researched); err != nil {
		return fmt.Errorf("could not print keywords: %w", err)
	}

	return nil
}
