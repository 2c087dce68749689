package model

import "testing"

func TestParseNFLTeam(t *testing.T) {
	tests := map[string]struct {
		input    string
		expected string
	}{
		"abbreviation":    {input: "PIT", expected: "PIT"},
		"lower case":      {input: "pit", expected: "PIT"},
		"full name":       {input: "Pittsburgh Steelers", expected: "PIT"},
		"mascot":          {input: "Steelers", expected: "PIT"},
		"alias":           {input: "Philly", expected: "PHI"},
		"alternate abbr":  {input: "JAX", expected: "JAC"},
		"whitespace":      {input: " KC ", expected: "KCC"},
		"two word mascot": {input: "49ers", expected: "SFO"},
		"free agent":      {input: "FA", expected: "FA"},
		"unknown":         {input: "puyallup", expected: "FA"},
		"empty":           {input: "", expected: "FA"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if got := ParseNFLTeam(tc.input); got.String() != tc.expected {
				t.Errorf("input: '%s', expected: '%s', got: '%s'", tc.input, tc.expected, got)
			}
		})
	}
}

func TestNFLTeamFriendly(t *testing.T) {
	if got := ParseNFLTeam("SEA").Friendly(); got != "Seattle Seahawks" {
		t.Errorf("expected 'Seattle Seahawks', got '%s'", got)
	}
	// TEAM_FA has no long name, so Friendly falls back to the abbreviation.
	if got := TEAM_FA.Friendly(); got != "FA" {
		t.Errorf("expected 'FA', got '%s'", got)
	}
}
