package model

import (
	"regexp"
	"strings"
)

// Player is an available (unrostered) player as reported by the league
// data source. Only the fields the waiver engine needs are kept.
type Player struct {
	Key               string     `json:"key"`
	FullName          string     `json:"fullName"`
	EligiblePositions []Position `json:"eligiblePositions"`
}

func (p *Player) Eligible(pos Position) bool {
	for _, ep := range p.EligiblePositions {
		if ep == pos {
			return true
		}
	}
	return false
}

// PrimaryPosition is the first eligible position, used when counting
// roster slots. Returns POS_UNKNOWN for a player with no positions.
func (p *Player) PrimaryPosition() Position {
	if len(p.EligiblePositions) == 0 {
		return POS_UNKNOWN
	}
	return p.EligiblePositions[0]
}

var (
	nonLetterRegex  = regexp.MustCompile(`[^a-z\s]`)
	whitespaceRegex = regexp.MustCompile(`\s+`)
)

// NormalizeName lower-cases a player name, strips everything that isn't a
// letter or whitespace, and collapses runs of whitespace. "D'Andre  Swift"
// and "dandre swift" normalize to the same string.
func NormalizeName(name string) string {
	n := strings.ToLower(name)
	n = nonLetterRegex.ReplaceAllString(n, "")
	n = whitespaceRegex.ReplaceAllString(n, " ")
	return strings.TrimSpace(n)
}

// Take a full name, like "Deebo Samuel Sr." and return "Deebo Samuel".
func TrimNameSuffix(fullName string) string {
	suffixList := []string{
		"Jr.",
		"Sr.",
		"II",
		"IV",
	}

	for _, s := range suffixList {
		fullName = strings.TrimSuffix(fullName, s)
	}

	return strings.TrimSpace(fullName)
}
