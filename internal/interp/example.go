package interp

// Example is a single (Input, Output) pair under a fixed program. Input
// entries and Output are never Null.
type Example struct {
	Input  []Value
	Output Value
}
