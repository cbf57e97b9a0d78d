package articulation

import (
	"strings"
	"testing"

	"donorjourney/internal/dashboard"
	"donorjourney/internal/types"
)

func TestMoney(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "S$0"},
		{50, "S$50"},
		{192000, "S$192,000"},
		{12.5, "S$12.50"},
	}
	for _, tt := range tests {
		if got := Money(tt.in); got != tt.want {
			t.Errorf("Money(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestProgressBar(t *testing.T) {
	if got := ProgressBar(0.5, 10); got != "█████░░░░░" {
		t.Errorf("ProgressBar(0.5) = %q", got)
	}
	if got := ProgressBar(2, 4); got != "████" {
		t.Errorf("ProgressBar clamps above 1, got %q", got)
	}
	if got := ProgressBar(0.5, 0); got != "" {
		t.Errorf("zero width should be empty, got %q", got)
	}
}

func TestJourney(t *testing.T) {
	j := &types.PersonalizedJourney{
		WelcomeMessage: "Welcome, Alex!",
		RecommendedCampaigns: []types.RecommendedCampaign{
			{
				Campaign: types.Campaign{
					ID: "campaign-1", Name: "Bright Start", NGO: "Children's Society",
					CauseArea:     types.CauseChildren,
					FundingStatus: types.FundingStatus{Current: 35000, Goal: 100000},
				},
				MatchRationale: "You care about children.",
				Matched:        true,
			},
			{
				Campaign:       types.Campaign{ID: "campaign-99", Name: "Mystery"},
				MatchRationale: "Invented.",
			},
		},
		SuggestedDonationTiers: []types.DonationTier{
			{Level: types.TierMedium, Amount: 30, Impact: "Feeds | clothes"},
		},
		EngagementPlan: []types.JourneyStep{
			{Week: 1, Channel: types.ChannelEmail, Topic: "Impact Story", ContentSnippet: "Hello"},
		},
	}

	out := Journey(j, "Alex")
	for _, want := range []string{
		"# Your Giving Journey, Alex",
		"> Welcome, Alex!",
		"### 1. Bright Start",
		"**Why it fits you:** You care about children.",
		"S$35,000 raised of S$100,000",
		"### 2. Mystery",
		"not available in our catalog",
		"| **Medium** | S$30 | Feeds / clothes |",
		"- **Week 1** via Email: *Impact Story*",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Journey() missing %q\n%s", want, out)
		}
	}

	if Journey(nil, "x") != "" {
		t.Error("nil journey should render empty")
	}
}

func TestImageFor(t *testing.T) {
	if got := ImageFor(types.Campaign{}); got != PlaceholderImage {
		t.Errorf("ImageFor(empty) = %q", got)
	}
	if got := ImageFor(types.Campaign{ImageURL: "x.png"}); got != "x.png" {
		t.Errorf("ImageFor = %q", got)
	}
}

func TestCatalogAndDashboard(t *testing.T) {
	out := Catalog([]types.Campaign{{
		ID: "campaign-1", Name: "Bright Start", NGO: "Children's Society", CauseArea: types.CauseChildren,
		Location: "Islandwide", FundingStatus: types.FundingStatus{Current: 35000, Goal: 100000},
	}})
	if !strings.Contains(out, "| campaign-1 | Bright Start | Children's Society |") || !strings.Contains(out, "(35%)") {
		t.Errorf("Catalog() = %s", out)
	}

	dash := Dashboard(dashboard.Sample())
	for _, want := range []string{"**Total Donors:** 1,478", "S$192,000", "62%", "| Other | 278 |", "| Green SG | S$40,000 | S$120,000 |"} {
		if !strings.Contains(dash, want) {
			t.Errorf("Dashboard() missing %q", want)
		}
	}
}
