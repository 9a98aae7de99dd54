package commands

import (
	"context"
	"fmt"

	"github.com/alecthomas/kingpin/v2"

	"github.com/aragroup1/seoctl/internal/app/websiteadd"
	"github.com/aragroup1/seoctl/internal/model"
)

type WebsiteAddCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	domain      string
	siteType    string
	industry    string
	competitors []string
	format      string
}

// NewWebsiteAddCommand returns the website add command.
func NewWebsiteAddCommand(rootCmd *RootCommand, parent *kingpin.CmdClause) *WebsiteAddCommand {
	c := &WebsiteAddCommand{rootCmd: rootCmd}

	c.Cmd = parent.Command("add", "Register a website for SEO tracking.")
	c.Cmd.Arg("domain", "Website domain (e.g. example.com).").Required().StringVar(&c.domain)
	c.Cmd.Flag("type", "Site platform (custom, shopify, wordpress).").Default(string(model.SiteTypeCustom)).EnumVar(&c.siteType, string(model.SiteTypeCustom), string(model.SiteTypeShopify), string(model.SiteTypeWordpress))
	c.Cmd.Flag("industry", "Industry the website operates in.").StringVar(&c.industry)
	c.Cmd.Flag("competitor", "Competitor domain (repeatable).").StringsVar(&c.competitors)
	formatFlag(c.Cmd, &c.format)

	return c
}

func (c WebsiteAddCommand) Name() string { return c.Cmd.FullCommand() }

func (c WebsiteAddCommand) Run(ctx context.Context) error {
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

	svc, err := websiteadd.NewService(websiteadd.ServiceConfig{
		APIClient:  cli,
		Repository: repo,
		Logger:     logger,
	})
	if err != nil {
		return fmt.Errorf("could not create service: %w", err)
	}

	website, err := svc.Run(ctx, websiteadd.Request{
		Website: model.NewWebsite{
			Domain:      c.domain,
			SiteType:    model.SiteType(c.siteType),
			Industry:    c.industry,
			Competitors: c.competitors,
		},
	})
	if err != nil {
		return fmt.Errorf("could not register website: %w", err)
	}

	p := newPrinter(c.rootCmd.Stdout, c.format)
	if err := p.PrintWebsite(*website); err != nil {
		return fmt.Errorf("could not print website: %w", err)
	}

	return nil
}
