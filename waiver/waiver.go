// Package waiver ranks expert pickup recommendations against the players
// actually available in a league. The pipeline is pure: filter by
// availability, score, sort, take the top entries, and synthesize the
// notification text.
package waiver

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mww/roast_reporter/model"
)

// maxRecommendations bounds every returned list.
const maxRecommendations = 8

var positionBonus = map[model.Position]float64{
	model.POS_QB:  1,
	model.POS_RB:  4,
	model.POS_WR:  4,
	model.POS_TE:  2,
	model.POS_K:   0.5,
	model.POS_DEF: 1,
}

var baseOwnership = map[model.Position]float64{
	model.POS_QB:  60,
	model.POS_RB:  40,
	model.POS_WR:  35,
	model.POS_TE:  45,
	model.POS_K:   80,
	model.POS_DEF: 70,
}

// Analyze filters the candidate list down to players who are actually
// available, scores them, and returns at most 8 recommendations in
// descending composite-score order. Empty candidates or an empty
// available-player list yield an empty result, never an error.
func Analyze(candidates []model.ExpertRecommendation, availablePlayers []model.Player, week int) []model.WaiverWireRecommendation {
	available := matchAvailablePlayers(candidates, availablePlayers)
	scored := scoreRecommendations(available, week)
	return finalRecommendations(scored)
}

type scoredRecommendation struct {
	model.ExpertRecommendation
	score float64
}

// matchAvailablePlayers keeps only candidates whose normalized name
// matches an available player's normalized full name and whose position
// is in that player's eligible set. Both conditions must hold. Names are
// also compared with generational suffixes trimmed, so "Deebo Samuel Sr."
// matches an expert list's "Deebo Samuel".
func matchAvailablePlayers(candidates []model.ExpertRecommendation, availablePlayers []model.Player) []model.ExpertRecommendation {
	matched := make([]model.ExpertRecommendation, 0, len(candidates))
	for _, c := range candidates {
		name := model.NormalizeName(c.PlayerName)
		trimmed := model.NormalizeName(model.TrimNameSuffix(c.PlayerName))
		for _, p := range availablePlayers {
			if !p.Eligible(c.Position) {
				continue
			}
			if model.NormalizeName(p.FullName) == name ||
				model.NormalizeName(model.TrimNameSuffix(p.FullName)) == trimmed {
				matched = append(matched, c)
				break
			}
		}
	}
	return matched
}

// CompositeScore is the expert seed plus the position-scarcity,
// ownership, projection, and late-season bonuses. A zero ownership or
// projection means the value was not reported and earns no bonus.
func CompositeScore(rec model.ExpertRecommendation, week int) float64 {
	score := rec.PrioritySeed

	if bonus, ok := positionBonus[rec.Position]; ok {
		score += bonus
	} else {
		score += 1
	}

	if rec.TargetPercentage > 0 && rec.TargetPercentage < 20 {
		score += 2
	} else if rec.TargetPercentage > 0 && rec.TargetPercentage < 40 {
		score += 1
	}

	if rec.ProjectedPoints > 15 {
		score += 2
	} else if rec.ProjectedPoints > 10 {
		score += 1
	}

	if week > 10 {
		score += 0.5
	}

	return score
}

func scoreRecommendations(recs []model.ExpertRecommendation, week int) []scoredRecommendation {
	scored := make([]scoredRecommendation, 0, len(recs))
	for _, rec := range recs {
		scored = append(scored, scoredRecommendation{
			ExpertRecommendation: rec,
			score:                CompositeScore(rec, week),
		})
	}
	// Stable so that equal scores preserve candidate order.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})
	return scored
}

func finalRecommendations(scored []scoredRecommendation) []model.WaiverWireRecommendation {
	if len(scored) > maxRecommendations {
		scored = scored[:maxRecommendations]
	}

	result := make([]model.WaiverWireRecommendation, 0, len(scored))
	for _, rec := range scored {
		priority := priorityLevel(rec.score)
		ownership := rec.TargetPercentage
		if ownership == 0 {
			ownership = estimateOwnership(rec.Position, rec.score)
		}

		result = append(result, model.WaiverWireRecommendation{
			PlayerName:   rec.PlayerName,
			Position:     rec.Position,
			Team:         model.ParseNFLTeam(rec.Team).String(),
			Reason:       enhanceReasoning(rec.ExpertRecommendation, priority),
			Priority:     priority,
			PercentOwned: ownership,
		})
	}
	return result
}

func priorityLevel(score float64) model.Priority {
	if score >= 9 {
		return model.PriorityHigh
	}
	if score >= 6 {
		return model.PriorityMedium
	}
	return model.PriorityLow
}

var urgencyPrefix = map[model.Priority]string{
	model.PriorityHigh:   "MUST-ADD:",
	model.PriorityMedium: "Strong Add:",
	model.PriorityLow:    "Deep League:",
}

func enhanceReasoning(rec model.ExpertRecommendation, priority model.Priority) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s.", urgencyPrefix[priority], rec.Reasoning)

	if rec.ProjectedPoints > 0 {
		fmt.Fprintf(&b, " Projected for %g points this week.", rec.ProjectedPoints)
	}

	if rec.TargetPercentage > 0 {
		fmt.Fprintf(&b, " Currently owned in %g%% of leagues.", rec.TargetPercentage)
	} else {
		b.WriteString(" Low ownership makes him a sneaky pickup.")
	}

	b.WriteString(" Don't sleep on this one - your league mates are probably already eyeing him.")
	return b.String()
}

// estimateOwnership fills in a plausible ownership percentage when the
// expert source didn't report one: a per-position base, bumped up for
// weaker candidates, capped at 95.
func estimateOwnership(pos model.Position, score float64) float64 {
	base, ok := baseOwnership[pos]
	if !ok {
		base = 40
	}

	adjustment := (10 - score) * 5
	if adjustment < 0 {
		adjustment = 0
	}

	if est := base + adjustment; est < 95 {
		return est
	}
	return 95
}

// TeamNeeds reports the positions where a roster is below the fixed
// minimums (RB 3, WR 4, QB 2, TE 2), counting each player at their
// primary position.
func TeamNeeds(roster []model.Player) []model.Position {
	counts := make(map[model.Position]int)
	for _, p := range roster {
		counts[p.PrimaryPosition()]++
	}

	var needs []model.Position
	if counts[model.POS_RB] < 3 {
		needs = append(needs, model.POS_RB)
	}
	if counts[model.POS_WR] < 4 {
		needs = append(needs, model.POS_WR)
	}
	if counts[model.POS_QB] < 2 {
		needs = append(needs, model.POS_QB)
	}
	if counts[model.POS_TE] < 2 {
		needs = append(needs, model.POS_TE)
	}
	return needs
}

var priorityRank = map[model.Priority]int{
	model.PriorityHigh:   3,
	model.PriorityMedium: 2,
	model.PriorityLow:    1,
}

// Personalize boosts recommendations that fill a team need by one
// priority tier and re-sorts by tier. It is a post-processing pass over
// an already-ranked list; the input is not modified.
func Personalize(recs []model.WaiverWireRecommendation, needs []model.Position) []model.WaiverWireRecommendation {
	needSet := make(map[model.Position]bool, len(needs))
	for _, n := range needs {
		needSet[n] = true
	}

	result := make([]model.WaiverWireRecommendation, len(recs))
	copy(result, recs)

	for i, rec := range result {
		if !needSet[rec.Position] {
			continue
		}
		switch rec.Priority {
		case model.PriorityLow:
			result[i].Priority = model.PriorityMedium
		case model.PriorityMedium:
			result[i].Priority = model.PriorityHigh
		}
		result[i].Reason = "TEAM NEED: " + rec.Reason
	}

	sort.SliceStable(result, func(i, j int) bool {
		return priorityRank[result[i].Priority] > priorityRank[result[j].Priority]
	})
	return result
}
