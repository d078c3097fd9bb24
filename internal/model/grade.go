package model

// GradeUnavailable is the sentinel grade for students with no marks yet.
const GradeUnavailable = "Unavailable"

// GradeBand maps an inclusive marks range to a letter grade.
type GradeBand struct {
	Letter string
	Min    int
	Max    int
}

// GradeScale is an ordered list of grade bands; the first band containing
// the marks wins. It is an immutable configuration value owned by the
// process and passed into the components that need it.
type GradeScale []GradeBand

// DefaultGradeScale returns the standard A–F scale.
func DefaultGradeScale() GradeScale {
	return GradeScale{
		{Letter: "A", Min: 90, Max: 100},
		{Letter: "B", Min: 80, Max: 89},
		{Letter: "C", Min: 70, Max: 79},
		{Letter: "D", Min: 60, Max: 69},
		{Letter: "F", Min: 0, Max: 59},
	}
}

// Letter returns the letter grade for the given marks. Marks outside
// every band (including negatives) fall back to "F".
func (s GradeScale) Letter(marks int) string {
	for _, band := range s {
		if marks >= band.Min && marks <= band.Max {
			return band.Letter
		}
	}
	return "F"
}
