package config

import "math"

// CreditsConfig contains credits scroll timing
type CreditsConfig struct {
	ScrollSpeed      float64 // units per second
	ScrollEnd        float64
	StartDelay       float64 // seconds before scrolling starts
	BackButtonDelay  float64 // seconds after scrolling ends
	DefaultTitle     string
	DefaultMainTitle string
}

var Credits CreditsConfig

func init() {
	Credits = CreditsConfig{
		ScrollSpeed:      5,
		ScrollEnd:        math.Inf(1),
		StartDelay:       2,
		BackButtonDelay:  1,
		DefaultTitle:     "Credits",
		DefaultMainTitle: "Main Menu",
	}
}
