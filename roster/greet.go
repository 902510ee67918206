package roster

import "fmt"

// Greet formats a greeting for a name.
//
// Returns "Hello, <name>". The name is used verbatim; Greet never touches
// registry contents and registries never apply it to stored names.
//
// Example:
//
//	roster.Greet("alice") // "Hello, alice"
//	roster.Greet("")      // "Hello, "
func Greet(name string) string {
	return fmt.Sprintf("Hello, %s", name)
}
