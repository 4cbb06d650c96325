// Package health derives the red/amber/green scheduling indicator of an order
// from its expected ship date.
package health

import (
	"fmt"
	"math"
	"time"

	"salesflow/internal/pkg/errs"
)

// Color is the traffic-light health of an order.
type Color int

const (
	Unknown Color = iota
	Green
	Amber
	Red
)

// AmberWindowDays is the number of days before the ship date during which an
// order is considered at risk.
const AmberWindowDays = 3

const day = 24 * time.Hour

var colorStrings = map[Color]string{
	Green: "Green",
	Amber: "Amber",
	Red:   "Red",
}

// Of returns the colour of an order due on shipDate as seen at now.
// It is total: an unset ship date is Green.
func Of(shipDate *time.Time, now time.Time) Color {
	if shipDate == nil {
		return Green
	}

	days := DaysRemaining(*shipDate, now)
	switch {
	case days < 0:
		return Red
	case days <= AmberWindowDays:
		return Amber
	default:
		return Green
	}
}

// DaysRemaining is ceil((shipDate - now) / 1 day).
func DaysRemaining(shipDate, now time.Time) int {
	return int(math.Ceil(float64(shipDate.Sub(now)) / float64(day)))
}

func (c Color) String() string {
	if s, ok := colorStrings[c]; ok {
		return s
	}
	return "Unknown"
}

func (c Color) Validate() error {
	if _, ok := colorStrings[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("health color", fmt.Errorf("%d is not a valid color", c))
	}
	return nil
}

// ParseColor is the inverse of String.
func ParseColor(s string) (Color, error) {
	for c, name := range colorStrings {
		if name == s {
			return c, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("health color", fmt.Errorf("%q is not a valid color", s))
}
