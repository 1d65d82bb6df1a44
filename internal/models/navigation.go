package models

// NavigationState is the record shown on the navigation overlay.
// It mirrors the payload the phone app pushes to the display.
type NavigationState struct {
	Title        string `json:"title"`      // Distance to next turn
	ETA          string `json:"eta"`        // Estimated time of arrival
	Duration     string `json:"duration"`   // Remaining trip duration
	Distance     string `json:"distance"`   // Remaining trip distance
	Directions   string `json:"directions"` // Next maneuver
	Active       bool   `json:"active"`
	IsNavigation bool   `json:"isNavigation"`
}

// IsNavigating reports whether the navigation layout should be shown.
// Anything other than an active navigation session shows the placeholder.
func (s NavigationState) IsNavigating() bool {
	return s.Active && s.IsNavigation
}

// SampleState returns the record rendered by the previewer.
// Edit the values here to try different layouts.
func SampleState() NavigationState {
	return NavigationState{
		Title:        "250m",
		ETA:          "10:45 AM",
		Duration:     "5 min",
		Distance:     "2.3 km",
		Directions:   "Turn left onto Main Street",
		Active:       true,
		IsNavigation: true,
	}
}
