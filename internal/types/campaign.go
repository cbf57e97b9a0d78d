package types

// FundingStatus is the amount raised against the goal, in SGD.
type FundingStatus struct {
	Current float64 `json:"current" yaml:"current"`
	Goal    float64 `json:"goal" yaml:"goal"`
}

// Progress returns current/goal clamped to [0, 1]. A zero goal reports 0.
func (f FundingStatus) Progress() float64 {
	if f.Goal <= 0 {
		return 0
	}
	p := f.Current / f.Goal
	switch {
	case p < 0:
		return 0
	case p > 1:
		return 1
	}
	return p
}

// Campaign is a fundraising initiative run by an NGO. Catalog records are
// loaded once at startup and never mutated.
type Campaign struct {
	ID             string        `json:"id" yaml:"id"`
	Name           string        `json:"name" yaml:"name"`
	NGO            string        `json:"ngo" yaml:"ngo"`
	CauseArea      CauseArea     `json:"causeArea" yaml:"causeArea"`
	Location       string        `json:"location" yaml:"location"`
	Description    string        `json:"description" yaml:"description"`
	FundingStatus  FundingStatus `json:"fundingStatus" yaml:"fundingStatus"`
	TargetAudience string        `json:"targetAudience" yaml:"targetAudience"`
	ImageURL       string        `json:"imageUrl" yaml:"imageUrl"`
}

// RecommendedCampaign is a campaign the generation service matched to a donor.
type RecommendedCampaign struct {
	Campaign
	MatchRationale string `json:"matchRationale"`

	// Matched is false when the recommended id has no catalog record, in which
	// case only the generated fields are populated.
	Matched bool `json:"matched"`
}
