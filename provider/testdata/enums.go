// Package testdata contains annotated declarations used by the
// provider tests.
package testdata

// CardinalDirection is a compass direction.
//
//variants:rename(uppercase) display from_str
type CardinalDirection int

const (
	North CardinalDirection = iota
	East
	South
	West
)

// Format is a document format with per-variant overrides.
//
//variants:from_str
type Format int

const (
	Xml Format = iota
	Csv
	//variants:rename("plain-text") rename_abbr = "txt"
	PlainText
)

// Weekday exercises skip and the serde directives.
//
//variants:serialize deserialize
type Weekday int

const (
	//variants:skip
	Monday Weekday = iota
	//variants:rename("DayAfterMonday")
	Tuesday
	Wednesday
	Thursday
)

// Suit is a string-backed enum.
//
//variants:rename(lowercase)
type Suit string

const (
	Hearts Suit = "h"
	Spades Suit = "s"
)

// Level already declares a Clone method.
//
//variants:
type Level int

const (
	LevelLow Level = iota
	LevelHigh
)

// Clone returns l.
func (l Level) Clone() Level { return l }

// Point is not an enum; the validator rejects it downstream.
//
//variants:display
type Point struct{ X, Y int }

// Reader is a union target.
//
//variants:display
type Reader interface {
	Read(p []byte) (int, error)
}

// Plain carries no directive and must be ignored.
type Plain int

const PlainZero Plain = 0
