package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/alecthomas/kingpin/v2"

	"github.com/aragroup1/seoctl/internal/config"
	"github.com/aragroup1/seoctl/internal/model"
)

type DoctorCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand
}

// NewDoctorCommand returns the doctor command.
func NewDoctorCommand(rootCmd *RootCommand, app *kingpin.Application) *DoctorCommand {
	c := &DoctorCommand{rootCmd: rootCmd}

	c.Cmd = app.Command("doctor", "Run preflight checks for the API connection and local cache.")

	return c
}

func (c DoctorCommand) Name() string { return c.Cmd.FullCommand() }

func (c DoctorCommand) Run(ctx context.Context) error {
	logger := c.rootCmd.Logger
	out := c.rootCmd.Stdout

	var results []model.CheckResult

	cfg, err := c.rootCmd.LoadConfig()
	if err != nil {
		results = append(results, model.CheckResult{
			ID:      "config",
			Status:  model.CheckStatusError,
			Message: err.Error(),
		})
	} else {
		results = append(results, model.CheckResult{
			ID:      "config",
			Status:  model.CheckStatusOK,
			Message: fmt.Sprintf("API URL is %s", cfg.APIURL),
		})

		if cfg.APIKey == "" {
			results = append(results, model.CheckResult{
				ID:      "api_key",
				Status:  model.CheckStatusWarning,
				Message: "no API key configured, requests may be rejected",
			})
		} else {
			results = append(results, model.CheckResult{
				ID:      "api_key",
				Status:  model.CheckStatusOK,
				Message: "API key configured",
			})
		}

		results = append(results, c.checkAPI(ctx, cfg))
		results = append(results, c.checkCache(ctx, cfg))
	}

	fmt.Fprintln(out, "Checking seoctl setup...")
	for _, r := range results {
		fmt.Fprintf(out, "  %s %-12s %s\n", statusIcon(r.Status), r.ID, r.Message)
	}

	_, warnings, errors := model.CountByStatus(results)

	fmt.Fprintln(out)
	if errors == 0 && warnings == 0 {
		fmt.Fprintln(out, "All checks passed!")
	} else {
		var summary []string
		if errors > 0 {
			summary = append(summary, fmt.Sprintf("%d error(s)", errors))
		}
		if warnings > 0 {
			summary = append(summary, fmt.Sprintf("%d warning(s)", warnings))
		}
		fmt.Fprintf(out, "%s\n", strings.Join(summary, ", "))
	}

	if errors > 0 {
		return fmt.Errorf("preflight checks failed with %d error(s)", errors)
	}

	logger.Debugf("Preflight checks finished")
	return nil
}

func (c DoctorCommand) checkAPI(ctx context.Context, cfg *config.Config) model.CheckResult {
	cli, err := newAPIClient(cfg, c.rootCmd.Logger)
	if err != nil {
		return model.CheckResult{ID: "api", Status: model.CheckStatusError, Message: err.Error()}
	}

	if err := cli.Health(ctx); err != nil {
		return model.CheckResult{ID: "api", Status: model.CheckStatusError, Message: fmt.Sprintf("API not reachable: %s", err)}
	}

	return model.CheckResult{ID: "api", Status: model.CheckStatusOK, Message: "API reachable"}
}

func (c DoctorCommand) checkCache(ctx context.Context, cfg *config.Config) model.CheckResult {
	repo, err := newRepository(ctx, cfg, c.rootCmd.Logger)
	if err != nil {
		return model.CheckResult{ID: "cache", Status: model.CheckStatusError, Message: fmt.Sprintf("could not open local cache: %s", err)}
	}
	defer repo.Close()

	if _, err := repo.ListWebsites(ctx); err != nil {
		return model.CheckResult{ID: "cache", Status: model.CheckStatusError, Message: fmt.Sprintf("local cache not usable: %s", err)}
	}

	return model.CheckResult{ID: "cache", Status: model.CheckStatusOK, Message: fmt.Sprintf("local cache at %s", cfg.DBPath)}
}

func statusIcon(status model.CheckStatus) string {
	switch status {
	case model.CheckStatusOK:
		return "OK"
	case model.CheckStatusWarning:
		return "!!"
	case model.CheckStatusError:
		return "XX"
	default:
		return "??"
	}
}
