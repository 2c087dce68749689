package model

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// ExpertRecommendation is a pre-normalized candidate pickup from an
// expert source. PrioritySeed is on a 1-10 scale. TargetPercentage and
// ProjectedPoints are optional; zero means the source did not report one.
type ExpertRecommendation struct {
	PlayerName       string   `json:"playerName"`
	Position         Position `json:"position"`
	Team             string   `json:"team"`
	Source           string   `json:"source"`
	Reasoning        string   `json:"reasoning"`
	PrioritySeed     float64  `json:"priority"`
	TargetPercentage float64  `json:"targetPercentage,omitempty"`
	ProjectedPoints  float64  `json:"projectedPoints,omitempty"`
}

// WaiverWireRecommendation is a notification-ready pickup suggestion.
// List order is significant: entries are sorted descending by composite
// score and consumers must preserve it.
type WaiverWireRecommendation struct {
	PlayerName   string   `json:"playerName"`
	Position     Position `json:"position"`
	Team         string   `json:"team"`
	Reason       string   `json:"reason"`
	Priority     Priority `json:"priority"`
	PercentOwned float64  `json:"percentOwned"`
}
