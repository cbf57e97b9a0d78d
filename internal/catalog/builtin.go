package catalog

import (
	"fmt"

	"donorjourney/internal/types"
)

// builtin returns the campaigns shipped with the service. Ids are assigned by
// position as campaign-1..campaign-N.
func builtin() []types.Campaign {
	campaigns := []types.Campaign{
		{
			Name:           "Bright Start for Every Child",
			NGO:            "Children's Society",
			CauseArea:      types.CauseChildren,
			Location:       "Islandwide",
			Description:    "Providing educational resources and safe spaces for underprivileged children across Singapore.",
			FundingStatus:  types.FundingStatus{Current: 35000, Goal: 100000},
			TargetAudience: "Children from low-income families",
			ImageURL:       "https://picsum.photos/seed/child1/600/400",
		},
		{
			Name:           "Golden Years, Active Minds",
			NGO:            "TOUCH Community Services",
			CauseArea:      types.CauseSeniors,
			Location:       "Toa Payoh",
			Description:    "Engaging seniors with activities that promote mental and physical well-being to combat loneliness.",
			FundingStatus:  types.FundingStatus{Current: 15000, Goal: 50000},
			TargetAudience: "Seniors living alone",
			ImageURL:       "https://picsum.photos/seed/seniors2/600/400",
		},
		{
			Name:           "Enable & Empower",
			NGO:            "AWWA",
			CauseArea:      types.CauseDisability,
			Location:       "Redhill",
			Description:    "Supporting persons with disabilities through therapy, skill development, and integration programs.",
			FundingStatus:  types.FundingStatus{Current: 80000, Goal: 150000},
			TargetAudience: "Persons with physical or intellectual disabilities",
			ImageURL:       "https://picsum.photos/seed/disability3/600/400",
		},
		{
			Name:           "Strengthening Family Ties",
			NGO:            "Fei Yue Community Services",
			CauseArea:      types.CauseFamilies,
			Location:       "Bukit Batok",
			Description:    "Offering counselling and support services to help families navigate challenges and build resilience.",
			FundingStatus:  types.FundingStatus{Current: 22000, Goal: 60000},
			TargetAudience: "Families in distress",
			ImageURL:       "https://picsum.photos/seed/family4/600/400",
		},
		{
			Name:           "Health for All",
			NGO:            "Singapore General Hospital",
			CauseArea:      types.CauseHealth,
			Location:       "Outram",
			Description:    "Funding medical research and providing financial assistance to patients in need of critical care.",
			FundingStatus:  types.FundingStatus{Current: 250000, Goal: 1000000},
			TargetAudience: "Patients with critical illnesses",
			ImageURL:       "https://picsum.photos/seed/health5/600/400",
		},
		{
			Name:           "Our Community Garden",
			NGO:            "Ground-Up Initiative (GUI)",
			CauseArea:      types.CauseCommunity,
			Location:       "Yishun",
			Description:    "Building community bonds by creating shared green spaces for residents to connect with nature and each other.",
			FundingStatus:  types.FundingStatus{Current: 5000, Goal: 20000},
			TargetAudience: "Residents of all ages",
			ImageURL:       "https://picsum.photos/seed/community6/600/400",
		},
		{
			Name:           "Heritage Keepers",
			NGO:            "National Heritage Board",
			CauseArea:      types.CauseArts,
			Location:       "Islandwide",
			Description:    "Preserving and promoting Singapore's rich cultural heritage through exhibitions and educational programs.",
			FundingStatus:  types.FundingStatus{Current: 18000, Goal: 75000},
			TargetAudience: "General public, students",
			ImageURL:       "https://picsum.photos/seed/arts7/600/400",
		},
		{
			Name:           "Green Singapore",
			NGO:            "Nature Society (Singapore)",
			CauseArea:      types.CauseEnvironment,
			Location:       "Islandwide",
			Description:    "Protecting Singapore's natural habitats and biodiversity through conservation efforts and public advocacy.",
			FundingStatus:  types.FundingStatus{Current: 40000, Goal: 120000},
			TargetAudience: "Nature lovers, environmental advocates",
			ImageURL:       "https://picsum.photos/seed/enviro8/600/400",
		},
	}

	for i := range campaigns {
		campaigns[i].ID = fmt.Sprintf("campaign-%d", i+1)
	}
	return campaigns
}
