// Package articulation renders journeys, campaigns and analytics as Markdown
// for terminal surfaces (glamour in the TUI, plain output from the CLI).
package articulation

import (
	"fmt"
	"math"
	"strings"

	"donorjourney/internal/dashboard"
	"donorjourney/internal/types"

	"github.com/dustin/go-humanize"
)

// PlaceholderImage stands in for campaigns that have no catalog record.
const PlaceholderImage = "https://placehold.co/600x400?text=Campaign"

// Money formats an SGD amount: "S$1,250" or "S$12.50".
func Money(v float64) string {
	if v == math.Trunc(v) {
		if v < 0 {
			return "-S$" + humanize.Comma(int64(-v))
		}
		return "S$" + humanize.Comma(int64(v))
	}
	cents := int64(math.Round(math.Abs(v) * 100))
	sign := ""
	if v < 0 {
		sign = "-"
	}
	return fmt.Sprintf("%sS$%s.%02d", sign, humanize.Comma(cents/100), cents%100)
}

// ImageFor returns the campaign image, or PlaceholderImage when it is unknown.
func ImageFor(c types.Campaign) string {
	if c.ImageURL == "" {
		return PlaceholderImage
	}
	return c.ImageURL
}

// ProgressBar draws a fixed-width bar for a ratio in [0, 1].
func ProgressBar(ratio float64, width int) string {
	if width <= 0 {
		return ""
	}
	ratio = math.Max(0, math.Min(1, ratio))
	filled := int(math.Round(ratio * float64(width)))
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// =============================================================================
// JOURNEY
// =============================================================================

// Journey renders a personalized journey. name is used in the heading when
// non-empty.
func Journey(j *types.PersonalizedJourney, name string) string {
	if j == nil {
		return ""
	}
	var sb strings.Builder

	if name != "" {
		fmt.Fprintf(&sb, "# Your Giving Journey, %s\n\n", name)
	} else {
		sb.WriteString("# Your Giving Journey\n\n")
	}
	if j.WelcomeMessage != "" {
		fmt.Fprintf(&sb, "> %s\n\n", j.WelcomeMessage)
	}

	sb.WriteString("## Recommended Campaigns\n\n")
	for i, rc := range j.RecommendedCampaigns {
		writeRecommendation(&sb, i+1, rc)
	}

	sb.WriteString("## Suggested Donation Tiers\n\n")
	sb.WriteString("| Tier | Amount | Impact |\n|---|---|---|\n")
	for _, t := range j.SuggestedDonationTiers {
		fmt.Fprintf(&sb, "| **%s** | %s | %s |\n", t.Level, Money(t.Amount), cell(t.Impact))
	}
	sb.WriteString("\n")

	sb.WriteString("## Your 4-Week Engagement Plan\n\n")
	for _, s := range j.EngagementPlan {
		fmt.Fprintf(&sb, "- **Week %d** via %s: *%s*\n  %s\n", s.Week, s.Channel, s.Topic, s.ContentSnippet)
	}
	return sb.String()
}

func writeRecommendation(sb *strings.Builder, n int, rc types.RecommendedCampaign) {
	title := rc.Name
	if title == "" {
		title = rc.ID
	}
	fmt.Fprintf(sb, "### %d. %s\n\n", n, title)

	if rc.NGO != "" {
		fmt.Fprintf(sb, "*%s*", rc.NGO)
		if rc.CauseArea != "" {
			fmt.Fprintf(sb, " · %s", rc.CauseArea)
		}
		sb.WriteString("\n\n")
	}
	if rc.MatchRationale != "" {
		fmt.Fprintf(sb, "**Why it fits you:** %s\n\n", rc.MatchRationale)
	}
	if rc.Description != "" {
		fmt.Fprintf(sb, "%s\n\n", rc.Description)
	}
	if rc.Matched && rc.FundingStatus.Goal > 0 {
		fmt.Fprintf(sb, "`%s` %s raised of %s\n\n",
			ProgressBar(rc.FundingStatus.Progress(), 20), Money(rc.FundingStatus.Current), Money(rc.FundingStatus.Goal))
	}
	if !rc.Matched {
		sb.WriteString("_Campaign details are not available in our catalog._\n\n")
	}
}

// cell keeps table rows on one line.
func cell(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "\n", " "), "|", "/")
}

// =============================================================================
// CATALOG
// =============================================================================

// Catalog renders campaigns as a table.
func Catalog(campaigns []types.Campaign) string {
	var sb strings.Builder
	sb.WriteString("| ID | Campaign | NGO | Cause | Location | Funding |\n|---|---|---|---|---|---|\n")
	for _, c := range campaigns {
		fmt.Fprintf(&sb, "| %s | %s | %s | %s | %s | %s / %s (%.0f%%) |\n",
			c.ID, cell(c.Name), cell(c.NGO), c.CauseArea, cell(c.Location),
			Money(c.FundingStatus.Current), Money(c.FundingStatus.Goal), c.FundingStatus.Progress()*100)
	}
	return sb.String()
}

// =============================================================================
// DASHBOARD
// =============================================================================

// Dashboard renders the NGO analytics view.
func Dashboard(d dashboard.Dashboard) string {
	var sb strings.Builder

	sb.WriteString("# NGO Analytics Dashboard\n\n")
	fmt.Fprintf(&sb, "- **Total Donors:** %s\n", humanize.Comma(int64(d.KPIs.TotalDonors)))
	fmt.Fprintf(&sb, "- **Total Donations (This Month):** %s\n", Money(d.KPIs.MonthlyDonations))
	fmt.Fprintf(&sb, "- **Engagement Rate:** %d%%\n\n", d.KPIs.EngagementRatePct)

	sb.WriteString("## Donor Segments by Interest\n\n| Segment | Donors | Share |\n|---|---|---|\n")
	total := d.SegmentTotal()
	for _, s := range d.Segments {
		share := 0.0
		if total > 0 {
			share = float64(s.Value) / float64(total) * 100
		}
		fmt.Fprintf(&sb, "| %s | %d | %.1f%% |\n", s.Name, s.Value, share)
	}

	sb.WriteString("\n## Campaign Performance\n\n| Campaign | Raised | Goal | Progress |\n|---|---|---|---|\n")
	for _, p := range d.Performance {
		fmt.Fprintf(&sb, "| %s | %s | %s | `%s` |\n", p.Name, Money(p.Donations), Money(p.Goal), ProgressBar(p.Ratio(), 10))
	}
	return sb.String()
}
