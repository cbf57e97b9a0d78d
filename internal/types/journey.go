package types

// DonationTier is one suggested giving level.
type DonationTier struct {
	Level       TierLevel `json:"level"`
	Amount      float64   `json:"amount"`
	Description string    `json:"description"`
	Impact      string    `json:"impact"`
}

// JourneyStep is one weekly outreach touch in the engagement plan.
type JourneyStep struct {
	Week           int                  `json:"week"`
	Channel        CommunicationChannel `json:"channel"`
	Topic          string               `json:"topic"`
	ContentSnippet string               `json:"contentSnippet"`
}

// PersonalizedJourney is the bundle produced for one donor on onboarding completion.
type PersonalizedJourney struct {
	WelcomeMessage         string                `json:"welcomeMessage"`
	RecommendedCampaigns   []RecommendedCampaign `json:"recommendedCampaigns"`
	SuggestedDonationTiers []DonationTier        `json:"suggestedDonationTiers"`
	EngagementPlan         []JourneyStep         `json:"engagementPlan"`
}

// Tier returns the tier at the given level, if present.
func (j *PersonalizedJourney) Tier(level TierLevel) (DonationTier, bool) {
	if j == nil {
		return DonationTier{}, false
	}
	for _, t := range j.SuggestedDonationTiers {
		if t.Level == level {
			return t, true
		}
	}
	return DonationTier{}, false
}
