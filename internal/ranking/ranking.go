// Package ranking orders and filters the locations offered to a customer.
package ranking

import (
	"sort"

	"github.com/cashforcars/CFC-AppointmentService/internal/domain"
)

// Rank returns the locations sorted for display: the home-visit unit pins
// first regardless of distance, the rest sort ascending by distance with
// undistanced locations last. The sort is stable so equal keys preserve
// backend order.
func Rank(locations []domain.Location) []domain.Location {
	ranked := make([]domain.Location, len(locations))
	copy(ranked, locations)

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := &ranked[i], &ranked[j]
		if a.IsHome() != b.IsHome() {
			return a.IsHome()
		}
		return a.DistanceOrSentinel() < b.DistanceOrSentinel()
	})

	return ranked
}

// FilterByKind keeps only locations of the given kind, preserving order
func FilterByKind(locations []domain.Location, kind domain.LocationKind) []domain.Location {
	filtered := make([]domain.Location, 0, len(locations))
	for _, loc := range locations {
		if loc.Kind == kind {
			filtered = append(filtered, loc)
		}
	}
	return filtered
}

// FindHome returns the home-visit unit, if the list carries one
func FindHome(locations []domain.Location) (*domain.Location, bool) {
	for i := range locations {
		if locations[i].IsHome() {
			return &locations[i], true
		}
	}
	return nil, false
}
