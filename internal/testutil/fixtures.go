package testutil

import "github.com/mobil-koeln/oledview/internal/models"

// LongDirections is longer than the directions line can show
const LongDirections = "Turn left onto Main Street"

// LongDirectionsShown is LongDirections as it appears on the display
const LongDirectionsShown = "Turn left onto Mai..."

// NavigatingState returns a fully populated navigation record
func NavigatingState() models.NavigationState {
	return models.NavigationState{
		Title:        "250m",
		ETA:          "10:45 AM",
		Duration:     "5 min",
		Distance:     "2.3 km",
		Directions:   LongDirections,
		Active:       true,
		IsNavigation: true,
	}
}

// EmptyState returns a navigating record with all text fields empty
func EmptyState() models.NavigationState {
	return models.NavigationState{
		Active:       true,
		IsNavigation: true,
	}
}

// OversizedState returns a navigating record where every field overflows
func OversizedState() models.NavigationState {
	return models.NavigationState{
		Title:        "1250 meters",
		ETA:          "10:45:30 AM",
		Duration:     "1 h 25 min",
		Distance:     "123.45 km",
		Directions:   "Continue straight onto the A3 towards Frankfurt",
		Active:       true,
		IsNavigation: true,
	}
}

// PlaceholderStates returns every gate combination that is not navigating,
// keyed by a short description
func PlaceholderStates() map[string]models.NavigationState {
	base := NavigatingState()

	inactive := base
	inactive.Active = false

	noNav := base
	noNav.IsNavigation = false

	idle := base
	idle.Active = false
	idle.IsNavigation = false

	return map[string]models.NavigationState{
		"inactive":       inactive,
		"not navigation": noNav,
		"idle":           idle,
	}
}
