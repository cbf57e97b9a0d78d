package types

// DonationCapacity is the monthly amount range a donor is comfortable giving, in SGD.
type DonationCapacity struct {
	Min float64 `json:"min" yaml:"min" validate:"gt=0"`
	Max float64 `json:"max" yaml:"max" validate:"gt=0,gtefield=Min"`
}

// Midpoint returns the centre of the range; the Medium tier is expected near it.
func (c DonationCapacity) Midpoint() float64 {
	return (c.Min + c.Max) / 2
}

// Contains reports whether amount falls inside the inclusive range.
func (c DonationCapacity) Contains(amount float64) bool {
	return amount >= c.Min && amount <= c.Max
}

// DonorProfile holds the answers a prospective donor gives during onboarding.
// A profile is immutable once submitted; the controller keeps its own copy.
type DonorProfile struct {
	Name              string                 `json:"name" yaml:"name" validate:"required"`
	Language          Language               `json:"language" yaml:"language" validate:"required,language"`
	Location          string                 `json:"location" yaml:"location"`
	Interests         []CauseArea            `json:"interests" yaml:"interests" validate:"required,min=1,unique,dive,causearea"`
	DonationCapacity  DonationCapacity       `json:"donationCapacity" yaml:"donationCapacity"`
	PreferredChannels []CommunicationChannel `json:"preferredChannels" yaml:"preferredChannels" validate:"required,min=1,unique,dive,channel"`
	Consent           bool                   `json:"consent" yaml:"consent" validate:"required"`
}

// WithDefaults fills the fields the onboarding flow pre-selects (language and
// location) when they were left blank. The receiver is not modified.
func (p DonorProfile) WithDefaults() DonorProfile {
	if p.Language == "" {
		p.Language = LanguageEnglish
	}
	if p.Location == "" {
		p.Location = DefaultLocation
	}
	return p
}

// Clone returns a deep copy so callers cannot mutate a submitted profile.
func (p DonorProfile) Clone() DonorProfile {
	out := p
	out.Interests = append([]CauseArea(nil), p.Interests...)
	out.PreferredChannels = append([]CommunicationChannel(nil), p.PreferredChannels...)
	return out
}

// PrefersChannel reports whether the donor opted into ch.
func (p DonorProfile) PrefersChannel(ch CommunicationChannel) bool {
	for _, c := range p.PreferredChannels {
		if c == ch {
			return true
		}
	}
	return false
}

// InterestedIn reports whether the donor selected the cause area.
func (p DonorProfile) InterestedIn(area CauseArea) bool {
	for _, a := range p.Interests {
		if a == area {
			return true
		}
	}
	return false
}
