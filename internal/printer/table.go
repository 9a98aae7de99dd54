package printer

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/aragroup1/seoctl/internal/model"
)

// TablePrinter prints SEO platform information in a table format.
type TablePrinter struct {
	writer io.Writer
}

// NewTablePrinter creates a new table printer.
func NewTablePrinter(w io.Writer) *TablePrinter {
	return &TablePrinter{writer: w}
}

func (t *TablePrinter) table() *tabwriter.Writer {
	return tabwriter.NewWriter(t.writer, 0, 0, 2, ' ', 0)
}

// PrintWebsite prints detailed website information.
func (t *TablePrinter) PrintWebsite(website model.Website) error {
	fmt.Fprintf(t.writer, "ID:           %s\n", website.ID)
	fmt.Fprintf(t.writer, "Domain:       %s\n", website.Domain)
	fmt.Fprintf(t.writer, "Type:         %s\n", website.SiteType)
	if website.Industry != "" {
		fmt.Fprintf(t.writer, "Industry:     %s\n", website.Industry)
	}
	if len(website.Competitors) > 0 {
		fmt.Fprintf(t.writer, "Competitors:  %s\n", strings.Join(website.Competitors, ", "))
	}
	fmt.Fprintf(t.writer, "Created:      %s\n", FormatTimestamp(website.CreatedAt))

	return nil
}

// PrintWebsiteList prints websites in a table format.
func (t *TablePrinter) PrintWebsiteList(websites []model.Website) error {
	if len(websites) == 0 {
		return nil
	}

	tw := t.table()
	defer tw.Flush()

	fmt.Fprintln(tw, "DOMAIN\tTYPE\tINDUSTRY\tCREATED")
	for _, w := range websites {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", w.Domain, w.SiteType, w.Industry, TimeAgo(w.CreatedAt))
	}

	return nil
}

// PrintAuditReport prints the audit report header plus its issues.
func (t *TablePrinter) PrintAuditReport(report model.AuditReport) error {
	fmt.Fprintf(t.writer, "Audit:           %s\n", report.ID)
	fmt.Fprintf(t.writer, "Health score:    %.1f\n", report.HealthScore)
	fmt.Fprintf(t.writer, "Pages crawled:   %d\n", report.PagesCrawled)
	fmt.Fprintf(t.writer, "Issues:          %d new, %d fixed, %d recurring\n",
		report.NewIssues, report.FixedIssues, report.RecurringIssues)
	fmt.Fprintf(t.writer, "Completed:       %s\n", FormatTimestamp(report.CompletedAt))

	if len(report.CategoryScores) > 0 {
		fmt.Fprintf(t.writer, "\nCategory scores:\n")
		tw := t.table()
		for _, category := range orderedCategories(report.CategoryScores) {
			fmt.Fprintf(tw, "  %s\t%.1f\n", category, report.CategoryScores[category])
		}
		tw.Flush()
	}

	if len(report.Issues) > 0 {
		fmt.Fprintf(t.writer, "\n")
		return t.PrintIssueList(report.Issues)
	}

	return nil
}

// PrintIssueList prints audit issues in a table format.
func (t *TablePrinter) PrintIssueList(issues []model.AuditIssue) error {
	if len(issues) == 0 {
		return nil
	}

	tw := t.table()
	defer tw.Flush()

	fmt.Fprintln(tw, "SEVERITY\tCATEGORY\tTITLE\tFIX")
	for _, issue := range issues {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", issue.Severity, issue.Category, issue.Title, issue.Implementation)
	}

	return nil
}

// PrintAuditHistory prints audit summaries in a table format.
func (t *TablePrinter) PrintAuditHistory(summaries []model.AuditSummary) error {
	if len(summaries) == 0 {
		return nil
	}

	tw := t.table()
	defer tw.Flush()

	fmt.Fprintln(tw, "AUDIT\tSCORE\tISSUES\tCOMPLETED")
	for _, s := range summaries {
		fmt.Fprintf(tw, "%s\t%.1f\t%d\t%s\n", s.ID, s.HealthScore, s.IssueCount, TimeAgo(s.CompletedAt))
	}

	return nil
}

// PrintKeywordList prints keywords in a table format.
func (t *TablePrinter) PrintKeywordList(keywords []model.Keyword) error {
	if len(keywords) == 0 {
		return nil
	}

	tw := t.table()
	defer tw.Flush()

	fmt.Fprintln(tw, "KEYWORD\tVOLUME\tDIFFICULTY\tCPC\tINTENT\tAI FEATURES")
	for _, k := range keywords {
		fmt.Fprintf(tw, "%s\t%d\t%.0f\t%.2f\t%s\t%s\n",
			k.Keyword, k.SearchVolume, k.Difficulty, k.CPC, k.Intent, formatAIFeatures(k.AIFeatures))
	}

	return nil
}

// PrintRankingList prints rankings in a table format.
func (t *TablePrinter) PrintRankingList(rankings []model.Ranking) error {
	if len(rankings) == 0 {
		return nil
	}

	tw := t.table()
	defer tw.Flush()

	fmt.Fprintln(tw, "KEYWORD\tPOSITION\tCLICKS\tIMPRESSIONS\tCTR\tDATE")
	for _, r := range rankings {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%.1f%%\t%s\n",
			r.Keyword, r.Position, r.Clicks, r.Impressions, r.CTR*100, TimeAgo(r.Date))
	}

	return nil
}

// PrintCompetitorReport prints one section per analyzed competitor.
func (t *TablePrinter) PrintCompetitorReport(report model.CompetitorReport) error {
	fmt.Fprintf(t.writer, "Analyzed:  %s\n", FormatTimestamp(report.AnalyzedAt))

	for _, c := range report.Competitors {
		fmt.Fprintf(t.writer, "\nCompetitor:        %s\n", c.Domain)
		fmt.Fprintf(t.writer, "Traffic estimate:  %d\n", c.TrafficEstimate)
		fmt.Fprintf(t.writer, "Keyword overlap:   %d\n", len(c.KeywordOverlap))
		if len(c.WinningKeywords) > 0 {
			fmt.Fprintf(t.writer, "Winning:           %s\n", strings.Join(c.WinningKeywords, ", "))
		}
		if len(c.LosingKeywords) > 0 {
			fmt.Fprintf(t.writer, "Losing:            %s\n", strings.Join(c.LosingKeywords, ", "))
		}
		if len(c.ContentGaps) > 0 {
			fmt.Fprintf(t.writer, "Content gaps:      %s\n", strings.Join(c.ContentGaps, ", "))
		}
	}

	return nil
}

// PrintStrategyList prints strategies in a table format.
func (t *TablePrinter) PrintStrategyList(strategies []model.Strategy) error {
	if len(strategies) == 0 {
		return nil
	}

	tw := t.table()
	defer tw.Flush()

	fmt.Fprintln(tw, "PRIORITY\tTYPE\tTITLE\tIMPACT\tTRAFFIC GAIN\tSTATUS")
	for _, s := range strategies {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%.1f\t+%d\t%s\n",
			s.Priority, s.Type, s.Title, s.ImpactScore, s.EstimatedTrafficGain, s.Status)
	}

	return nil
}

// PrintDashboard prints the aggregated website overview.
func (t *TablePrinter) PrintDashboard(dashboard model.Dashboard) error {
	fmt.Fprintf(t.writer, "Website:        %s\n", dashboard.Domain)
	fmt.Fprintf(t.writer, "Keywords:       %d (%d in top 10)\n",
		dashboard.Metrics.TotalKeywords, dashboard.Metrics.Top10Rankings)
	fmt.Fprintf(t.writer, "Avg position:   %.1f\n", dashboard.Metrics.AveragePosition)
	fmt.Fprintf(t.writer, "AI visibility:  %.1f\n", dashboard.Metrics.AIVisibilityScore)

	if len(dashboard.ActiveStrategies) > 0 {
		fmt.Fprintf(t.writer, "\nActive strategies:\n")
		if err := t.PrintStrategyList(dashboard.ActiveStrategies); err != nil {
			return err
		}
	}

	if len(dashboard.RecentRankings) > 0 {
		fmt.Fprintf(t.writer, "\nRecent rankings:\n")
		if err := t.PrintRankingList(dashboard.RecentRankings); err != nil {
			return err
		}
	}

	return nil
}

// PrintCalendar prints planned content in a table format.
func (t *TablePrinter) PrintCalendar(items []model.ContentPlanItem) error {
	if len(items) == 0 {
		return nil
	}

	tw := t.table()
	defer tw.Flush()

	fmt.Fprintln(tw, "PUBLISH\tTITLE\tTYPE\tKEYWORDS\tSTATUS")
	for _, item := range items {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			item.PublishDate.UTC().Format("2006-01-02"),
			item.Title,
			item.ContentType,
			strings.Join(item.TargetKeywords, ", "),
			item.Status,
		)
	}

	return nil
}

// PrintIntegrationList prints integrations in a table format.
func (t *TablePrinter) PrintIntegrationList(integrations []model.Integration) error {
	if len(integrations) == 0 {
		return nil
	}

	tw := t.table()
	defer tw.Flush()

	fmt.Fprintln(tw, "NAME\tTYPE\tSTATUS\tEXPIRES")
	for _, i := range integrations {
		expires := "never"
		if i.ExpiresAt != nil {
			expires = FormatTimestamp(*i.ExpiresAt)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", i.Name, i.Type, i.Status, expires)
	}

	return nil
}

// PrintMessage prints a simple text message.
func (t *TablePrinter) PrintMessage(msg string) error {
	fmt.Fprintln(t.writer, msg)
	return nil
}

// Map iteration order is random, sort for stable output.
func orderedCategories(scores map[model.IssueCategory]float64) []model.IssueCategory {
	categories := make([]model.IssueCategory, 0, len(scores))
	for c := range scores {
		categories = append(categories, c)
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i] < categories[j] })
	return categories
}

func orderedKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func formatAIFeatures(features map[string]bool) string {
	var present []string
	for _, f := range orderedKeys(features) {
		if features[f] {
			present = append(present, f)
		}
	}
	if len(present) == 0 {
		return "-"
	}
	return strings.Join(present, ", ")
}
