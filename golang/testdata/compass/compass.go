// Package compass keeps the committed output of a prior generation run
// next to its annotated source. Tests execute the generated helpers
// against it, and the provider tests prove that a second run does not
// treat the generated declarations as pre-existing.
package compass

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
