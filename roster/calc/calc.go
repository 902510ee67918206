// Package calc provides small pure integer helpers.
//
// All functions are stateless and side-effect free: the same input always
// produces the same output. Arithmetic follows Go's two's-complement
// semantics, so results that exceed the int range wrap around rather than
// saturating or panicking. Callers needing overflow detection must check
// bounds before calling.
package calc

// Doubler returns twice the given value.
//
// Wraps on overflow: Doubler(math.MaxInt) is -2 and Doubler(math.MinInt)
// is 0.
//
// Example:
//
//	calc.Doubler(21) // 42
//	calc.Doubler(-3) // -6
//	calc.Doubler(0)  // 0
func Doubler(x int) int {
	return 2 * x
}

// Add returns the sum of two values.
//
// Wraps on overflow: Add(math.MaxInt, 1) is math.MinInt.
func Add(a, b int) int {
	return a + b
}

// Increment returns the value plus one.
//
// Wraps on overflow: Increment(math.MaxInt) is math.MinInt.
func Increment(x int) int {
	return x + 1
}
