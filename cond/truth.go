package cond

// Truth is a tri-state boolean.
type Truth int8

const (
	// Undefined means the value could not be determined, typically because
	// a referenced column is missing from the row.
	Undefined Truth = iota
	False
	True
)

// FromBool converts a plain bool into a Truth.
func FromBool(b bool) Truth {
	if b {
		return True
	}
	return False
}

// String returns the lower-case name of the value
func (t Truth) String() string {
	switch t {
	case True:
		return "true"
	case False:
		return "false"
	default:
		return "undefined"
	}
}

// and combines two values: False if either side is False, True only if both
// are True, otherwise Undefined.
func and(left, right Truth) Truth {
	if left == False || right == False {
		return False
	}
	if left == True && right == True {
		return True
	}
	return Undefined
}

// or is the dual of and.
func or(left, right Truth) Truth {
	if left == True || right == True {
		return True
	}
	if left == False && right == False {
		return False
	}
	return Undefined
}
