package example

import "time"

//go:generate go run github.com/ecordell/buildergen -output=builder_gen.go .

// Something is a record with one field excluded from generation.
//
//builder:generate
type Something struct {
	field1       uint32
	field2       string
	ignoredField uint32 `builder:"ignore"`
}

// DefaultSomething returns a Something with its default values set.
func DefaultSomething() Something {
	return Something{
		field2: "a default",
	}
}

// Server represents another record
//
//builder:generate
type Server struct {
	Host    string
	Port    int
	TLS     bool
	Cert    string `builder:"ignore" json:"-"`
	Workers int
	Timeout time.Duration
}
