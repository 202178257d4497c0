// Package keys builds the store keys tracekv owns for an instrumented
// operation: the bare operation name for its counter and the ":inputs" /
// ":outputs" suffixed names for its history lists.
package keys

// Counter returns the key of op's invocation counter.
func Counter(op string) string { return op }

// Inputs returns the key of op's recorded-arguments list.
func Inputs(op string) string { return op + ":inputs" }

// Outputs returns the key of op's recorded-results list.
func Outputs(op string) string { return op + ":outputs" }
