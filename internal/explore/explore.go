// Package explore computes the explorer's views. Each view is a filter
// followed by an aggregation over the immutable dataset; nothing here
// renders or keeps state between calls.
//
// Like the published charts, every view ignores songs without a known year.
package explore

import (
	"github.com/dbmrq/fightsongs/internal/errors"
)

const (
	// FirstDecade and LastDecade bound the minimum-decade selector.
	FirstDecade = 1890
	LastDecade  = 1960
	// DecadeStep is the selector's increment.
	DecadeStep = 10

	// TopConferences is how many conferences the profile view offers.
	TopConferences = 5
	// DefaultSelected is how many of them start selected.
	DefaultSelected = 2
	// MinDimensions is the fewest tropes a profile can be drawn with.
	MinDimensions = 3
)

// ErrTooFewDimensions is returned when a conference profile is requested
// with fewer than MinDimensions tropes.
var ErrTooFewDimensions = errors.WithSuggestion(errors.ErrQuery,
	"select at least 3 dimensions for a radar plot",
	"Select at least 3 dimensions for a radar plot.")

// ClampDecade snaps d onto the selector's range and step.
func ClampDecade(d int) int {
	if d < FirstDecade {
		return FirstDecade
	}
	if d > LastDecade {
		return LastDecade
	}
	return FirstDecade + (d-FirstDecade)/DecadeStep*DecadeStep
}
