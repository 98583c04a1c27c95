package lookup

// Recognized transform segment names. A path segment matching one of these
// is rendered as a function wrapper around the remaining column expression;
// any other segment is a literal column or relation name.
const (
	TransformLower   = "lower"
	TransformUpper   = "upper"
	TransformTrim    = "trim"
	TransformLength  = "length"
	TransformYear    = "year"
	TransformMonth   = "month"
	TransformDay     = "day"
	TransformWeek    = "week"
	TransformWeekday = "weekday"
	TransformQuarter = "quarter"
	TransformHour    = "hour"
	TransformMinute  = "minute"
	TransformSecond  = "second"
	TransformDate    = "date"
	TransformAbs     = "abs"
	TransformCeil    = "ceil"
	TransformFloor   = "floor"
	TransformRound   = "round"
)

var transforms = map[string]bool{
	TransformLower:   true,
	TransformUpper:   true,
	TransformTrim:    true,
	TransformLength:  true,
	TransformYear:    true,
	TransformMonth:   true,
	TransformDay:     true,
	TransformWeek:    true,
	TransformWeekday: true,
	TransformQuarter: true,
	TransformHour:    true,
	TransformMinute:  true,
	TransformSecond:  true,
	TransformDate:    true,
	TransformAbs:     true,
	TransformCeil:    true,
	TransformFloor:   true,
	TransformRound:   true,
}

// IsTransform reports whether segment names a recognized transform.
func IsTransform(segment string) bool {
	return transforms[segment]
}
