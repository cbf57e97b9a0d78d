// Package types provides the shared donor-engagement vocabulary used across packages.
// Types in this package are plain data with JSON tags matching the generation wire format;
// the only behavior here is enum membership and profile validation.
package types

import "fmt"

// =============================================================================
// CLOSED ENUMERATIONS
// =============================================================================

// CauseArea is a category of social concern, used both as a donor interest and
// as a campaign classification.
type CauseArea string

const (
	CauseChildren    CauseArea = "Children & Youth Services"
	CauseSeniors     CauseArea = "Elderly Care"
	CauseDisability  CauseArea = "Disability Services"
	CauseFamilies    CauseArea = "Family Support"
	CauseHealth      CauseArea = "Healthcare"
	CauseCommunity   CauseArea = "Community Development"
	CauseArts        CauseArea = "Arts & Heritage"
	CauseEnvironment CauseArea = "Environment & Sustainability"
)

// CauseAreas lists every cause area in display order.
var CauseAreas = []CauseArea{
	CauseChildren,
	CauseSeniors,
	CauseDisability,
	CauseFamilies,
	CauseHealth,
	CauseCommunity,
	CauseArts,
	CauseEnvironment,
}

// Valid reports whether c is a member of the closed enumeration.
func (c CauseArea) Valid() bool {
	for _, known := range CauseAreas {
		if c == known {
			return true
		}
	}
	return false
}

// CommunicationChannel is a contact channel a donor may opt into.
type CommunicationChannel string

const (
	ChannelEmail CommunicationChannel = "Email"
	ChannelPush  CommunicationChannel = "Push Notification"
	ChannelSMS   CommunicationChannel = "SMS"
)

// Channels lists every communication channel in display order.
var Channels = []CommunicationChannel{ChannelEmail, ChannelPush, ChannelSMS}

// Valid reports whether ch is a member of the closed enumeration.
func (ch CommunicationChannel) Valid() bool {
	for _, known := range Channels {
		if ch == known {
			return true
		}
	}
	return false
}

// Language is a supported locale for donor communication.
type Language string

const (
	LanguageEnglish  Language = "English"
	LanguageMandarin Language = "Mandarin"
	LanguageMalay    Language = "Malay"
	LanguageTamil    Language = "Tamil"
)

// Languages lists every supported language.
var Languages = []Language{LanguageEnglish, LanguageMandarin, LanguageMalay, LanguageTamil}

// Valid reports whether l is a supported language.
func (l Language) Valid() bool {
	for _, known := range Languages {
		if l == known {
			return true
		}
	}
	return false
}

// Regions are the location labels offered by the onboarding flow.
// Location stays free text; these are suggestions, not an enumeration.
var Regions = []string{
	"Islandwide",
	"Central Singapore",
	"North East",
	"North West",
	"South East",
	"South West",
}

// DefaultLocation is used when a donor leaves the location blank.
const DefaultLocation = "Islandwide"

// =============================================================================
// DONATION TIERS
// =============================================================================

// TierLevel is the ordinal donation tier: Micro < Small < Medium < Macro.
type TierLevel string

const (
	TierMicro  TierLevel = "Micro"
	TierSmall  TierLevel = "Small"
	TierMedium TierLevel = "Medium"
	TierMacro  TierLevel = "Macro"
)

// TierLevels lists the tiers in ascending order.
var TierLevels = []TierLevel{TierMicro, TierSmall, TierMedium, TierMacro}

// Rank returns the zero-based ordinal of the tier, or -1 for an unknown level.
func (l TierLevel) Rank() int {
	for i, known := range TierLevels {
		if l == known {
			return i
		}
	}
	return -1
}

// Less reports whether l orders strictly before other.
func (l TierLevel) Less(other TierLevel) bool {
	return l.Rank() < other.Rank()
}

// Valid reports whether l is one of the four tiers.
func (l TierLevel) Valid() bool {
	return l.Rank() >= 0
}

func (l TierLevel) String() string {
	if !l.Valid() {
		return fmt.Sprintf("TierLevel(%q)", string(l))
	}
	return string(l)
}
