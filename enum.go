package rest

// Enumerable is a type restricted to a fixed set of named constants, such as Environment or Handling.
// Valid reports when a value falls outside that set.
type Enumerable interface {
	String() string
	Valid() error
}
