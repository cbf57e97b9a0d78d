package journey

import (
	"fmt"
	"math"

	"donorjourney/internal/types"
)

// Finding is a non-fatal quality issue in a generated journey. Findings are
// logged, never enforced.
type Finding struct {
	Path    string
	Message string
}

func (f Finding) String() string {
	return f.Path + ": " + f.Message
}

// midpointTolerance is how far (as a fraction of the capacity range) the
// Medium tier may drift from the midpoint before it is reported.
const midpointTolerance = 0.25

// Inspect checks a reconciled journey against the expectations the prompt
// states: counts, enum membership, tier amounts within capacity, ordering,
// and preferred channels.
func Inspect(j *types.PersonalizedJourney, profile types.DonorProfile) []Finding {
	if j == nil {
		return nil
	}
	var out []Finding
	add := func(path, format string, args ...interface{}) {
		out = append(out, Finding{Path: path, Message: fmt.Sprintf(format, args...)})
	}

	if n := len(j.RecommendedCampaigns); n < MinRecommendations || n > MaxRecommendations {
		add("recommendedCampaigns", "got %d recommendations, want %d-%d", n, MinRecommendations, MaxRecommendations)
	}
	for i, rc := range j.RecommendedCampaigns {
		path := fmt.Sprintf("recommendedCampaigns[%d]", i)
		if !rc.Matched {
			add(path+".id", "%q is not in the catalog", rc.ID)
		}
		if !rc.CauseArea.Valid() {
			add(path+".causeArea", "unknown cause area %q", rc.CauseArea)
		}
	}

	if n := len(j.SuggestedDonationTiers); n != TierCount {
		add("suggestedDonationTiers", "got %d tiers, want %d", n, TierCount)
	}
	capacity := profile.DonationCapacity
	var prev types.DonationTier
	for i, t := range j.SuggestedDonationTiers {
		path := fmt.Sprintf("suggestedDonationTiers[%d]", i)
		if !t.Level.Valid() {
			add(path+".level", "unknown tier %q", t.Level)
			continue
		}
		if capacity.Max > 0 && !capacity.Contains(t.Amount) {
			add(path+".amount", "%v is outside capacity %v-%v", t.Amount, capacity.Min, capacity.Max)
		}
		if i > 0 && prev.Level.Valid() && prev.Level.Less(t.Level) && t.Amount < prev.Amount {
			add(path+".amount", "%s amount %v is below %s amount %v", t.Level, t.Amount, prev.Level, prev.Amount)
		}
		prev = t
	}
	if medium, ok := j.Tier(types.TierMedium); ok && capacity.Max > capacity.Min {
		drift := math.Abs(medium.Amount-capacity.Midpoint()) / (capacity.Max - capacity.Min)
		if drift > midpointTolerance {
			add("suggestedDonationTiers", "Medium tier %v is far from midpoint %v", medium.Amount, capacity.Midpoint())
		}
	}

	if n := len(j.EngagementPlan); n != PlanWeeks {
		add("engagementPlan", "got %d steps, want %d", n, PlanWeeks)
	}
	for i, s := range j.EngagementPlan {
		path := fmt.Sprintf("engagementPlan[%d]", i)
		if !s.Channel.Valid() {
			add(path+".channel", "unknown channel %q", s.Channel)
		} else if len(profile.PreferredChannels) > 0 && !profile.PrefersChannel(s.Channel) {
			add(path+".channel", "%s is not a preferred channel", s.Channel)
		}
		if s.Week != i+1 {
			add(path+".week", "week %d out of sequence", s.Week)
		}
	}
	return out
}
