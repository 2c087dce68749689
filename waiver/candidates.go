package waiver

import "github.com/mww/roast_reporter/model"

// CandidateSource produces the normalized expert recommendation list for
// a league/week. How the list is produced (live feed, scraper, fixture)
// is the caller's concern.
type CandidateSource func(leagueKey string, week int) ([]model.ExpertRecommendation, error)

// StaticCandidates returns a fixed expert list representative of a
// typical mid-season waiver column. It stands in until a real feed is
// wired up and is also used by the manual-trigger endpoints.
func StaticCandidates(leagueKey string, week int) ([]model.ExpertRecommendation, error) {
	return []model.ExpertRecommendation{
		{
			PlayerName:       "Jaylen Warren",
			Position:         model.POS_RB,
			Team:             "PIT",
			Source:           "FantasyPros",
			Reasoning:        "Najee Harris injury concern, Warren getting more touches and red zone looks",
			PrioritySeed:     8,
			TargetPercentage: 15,
			ProjectedPoints:  12.5,
		},
		{
			PlayerName:       "Tank Dell",
			Position:         model.POS_WR,
			Team:             "HOU",
			Source:           "ESPN",
			Reasoning:        "Emerging as Stroud's favorite target, great matchup next week",
			PrioritySeed:     7,
			TargetPercentage: 25,
			ProjectedPoints:  14.2,
		},
		{
			PlayerName:       "Tyler Boyd",
			Position:         model.POS_WR,
			Team:             "CIN",
			Source:           "Yahoo Sports",
			Reasoning:        "Tee Higgins injury opens up targets, reliable floor in PPR",
			PrioritySeed:     6,
			TargetPercentage: 35,
			ProjectedPoints:  11.8,
		},
		{
			PlayerName:       "Tua Tagovailoa",
			Position:         model.POS_QB,
			Team:             "MIA",
			Source:           "FantasyPros",
			Reasoning:        "Returning from injury, soft schedule ahead, desperate QB streamers",
			PrioritySeed:     5,
			TargetPercentage: 45,
			ProjectedPoints:  18.5,
		},
		{
			PlayerName:       "Chuba Hubbard",
			Position:         model.POS_RB,
			Team:             "CAR",
			Source:           "ESPN",
			Reasoning:        "Miles Sanders struggling, Hubbard showing burst and pass-catching ability",
			PrioritySeed:     7,
			TargetPercentage: 20,
			ProjectedPoints:  10.3,
		},
		{
			PlayerName:       "Darnell Mooney",
			Position:         model.POS_WR,
			Team:             "ATL",
			Source:           "Yahoo Sports",
			Reasoning:        "Drake London injury concern, Mooney getting deep targets from Ridder",
			PrioritySeed:     6,
			TargetPercentage: 30,
			ProjectedPoints:  9.7,
		},
		{
			PlayerName:       "Logan Thomas",
			Position:         model.POS_TE,
			Team:             "WAS",
			Source:           "FantasyPros",
			Reasoning:        "Hockenson struggling, Thomas healthy and getting red zone looks",
			PrioritySeed:     4,
			TargetPercentage: 40,
			ProjectedPoints:  8.2,
		},
		{
			PlayerName:       "Demarcus Robinson",
			Position:         model.POS_WR,
			Team:             "LAR",
			Source:           "ESPN",
			Reasoning:        "Cooper Kupp injury opens up slot work, Stafford connection building",
			PrioritySeed:     5,
			TargetPercentage: 25,
			ProjectedPoints:  8.9,
		},
	}, nil
}
