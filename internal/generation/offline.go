package generation

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"donorjourney/internal/types"
)

// =============================================================================
// OFFLINE GENERATION SERVICE
// =============================================================================

// OfflineService produces a schema-conforming journey without any network
// call. Output depends only on Request.Profile and Request.Campaigns, so it
// suits demos and tests.
type OfflineService struct {
	// MaxRecommendations caps the number of campaigns returned (3 when zero).
	MaxRecommendations int
}

// NewOfflineService creates an OfflineService recommending three campaigns.
func NewOfflineService() *OfflineService {
	return &OfflineService{MaxRecommendations: 3}
}

type offlineCampaign struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	NGO            string          `json:"ngo"`
	CauseArea      types.CauseArea `json:"causeArea"`
	Description    string          `json:"description"`
	ImageURL       string          `json:"imageUrl"`
	MatchRationale string          `json:"matchRationale"`
}

type offlinePayload struct {
	WelcomeMessage         string               `json:"welcomeMessage"`
	RecommendedCampaigns   []offlineCampaign    `json:"recommendedCampaigns"`
	SuggestedDonationTiers []types.DonationTier `json:"suggestedDonationTiers"`
	EngagementPlan         []types.JourneyStep  `json:"engagementPlan"`
}

var offlineTopics = []string{"Welcome & Impact Story", "Volunteer Spotlight", "Progress Update", "Thank You & Next Steps"}

// Invoke implements Service.
func (s *OfflineService) Invoke(ctx context.Context, req Request) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", wrapServiceError(ProviderOffline, err)
	}
	if len(req.Campaigns) == 0 {
		return "", &ServiceError{Provider: ProviderOffline, Err: fmt.Errorf("no campaigns to recommend")}
	}

	p := req.Profile
	picks := s.pick(p, req.Campaigns)

	payload := offlinePayload{
		WelcomeMessage: fmt.Sprintf("Welcome, %s! Thank you for caring about %s.",
			p.Name, joinCauses(p.Interests)),
		SuggestedDonationTiers: offlineTiers(p.DonationCapacity, picks),
		EngagementPlan:         offlinePlan(p.PreferredChannels, picks),
	}
	for _, c := range picks {
		payload.RecommendedCampaigns = append(payload.RecommendedCampaigns, offlineCampaign{
			ID:             c.ID,
			Name:           c.Name,
			NGO:            c.NGO,
			CauseArea:      c.CauseArea,
			Description:    c.Description,
			ImageURL:       c.ImageURL,
			MatchRationale: rationale(p, c),
		})
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return "", &ServiceError{Provider: ProviderOffline, Err: err}
	}
	return string(data), nil
}

// pick selects campaigns matching the donor's interests first, preferring a
// location match, then fills up with the remaining catalog order.
func (s *OfflineService) pick(p types.DonorProfile, campaigns []types.Campaign) []types.Campaign {
	limit := s.MaxRecommendations
	if limit <= 0 {
		limit = 3
	}

	var local, interested, rest []types.Campaign
	for _, c := range campaigns {
		switch {
		case p.InterestedIn(c.CauseArea) && sameLocation(p.Location, c.Location):
			local = append(local, c)
		case p.InterestedIn(c.CauseArea):
			interested = append(interested, c)
		default:
			rest = append(rest, c)
		}
	}

	ordered := append(append(local, interested...), rest...)
	if len(ordered) > limit {
		ordered = ordered[:limit]
	}
	return ordered
}

func sameLocation(donor, campaign string) bool {
	if donor == "" || donor == types.DefaultLocation {
		return false
	}
	return strings.EqualFold(donor, campaign)
}

func rationale(p types.DonorProfile, c types.Campaign) string {
	switch {
	case p.InterestedIn(c.CauseArea) && sameLocation(p.Location, c.Location):
		return fmt.Sprintf("Matches your interest in %s and runs in %s, close to you.", c.CauseArea, c.Location)
	case p.InterestedIn(c.CauseArea):
		return fmt.Sprintf("Matches your interest in %s.", c.CauseArea)
	default:
		return fmt.Sprintf("A well-supported %s campaign to broaden your impact.", c.CauseArea)
	}
}

// offlineTiers scales Micro..Macro across the capacity range with Medium at the midpoint.
func offlineTiers(capacity types.DonationCapacity, picks []types.Campaign) []types.DonationTier {
	mid := capacity.Midpoint()
	amounts := []float64{
		capacity.Min,
		(capacity.Min + mid) / 2,
		mid,
		capacity.Max,
	}
	descriptions := []string{
		"A small gift that adds up.",
		"Steady support for ongoing programmes.",
		"Meaningful monthly commitment.",
		"Transformational support for a whole programme.",
	}

	tiers := make([]types.DonationTier, 0, len(types.TierLevels))
	for i, level := range types.TierLevels {
		target := "a recommended campaign"
		if len(picks) > 0 {
			target = picks[i%len(picks)].Name
		}
		tiers = append(tiers, types.DonationTier{
			Level:       level,
			Amount:      math.Round(amounts[i]),
			Description: descriptions[i],
			Impact:      fmt.Sprintf("Helps fund %s.", target),
		})
	}
	return tiers
}

func offlinePlan(channels []types.CommunicationChannel, picks []types.Campaign) []types.JourneyStep {
	if len(channels) == 0 {
		channels = []types.CommunicationChannel{types.ChannelEmail}
	}
	plan := make([]types.JourneyStep, 0, len(offlineTopics))
	for i, topic := range offlineTopics {
		snippet := "Thank you for joining our community of givers."
		if len(picks) > 0 {
			snippet = fmt.Sprintf("See what's new with %s this week.", picks[i%len(picks)].Name)
		}
		plan = append(plan, types.JourneyStep{
			Week:           i + 1,
			Channel:        channels[i%len(channels)],
			Topic:          topic,
			ContentSnippet: snippet,
		})
	}
	return plan
}

func joinCauses(areas []types.CauseArea) string {
	names := make([]string, len(areas))
	for i, a := range areas {
		names[i] = string(a)
	}
	return strings.Join(names, ", ")
}
