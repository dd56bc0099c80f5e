package testdata

import (
	"context"
	"io"
)

// FieldTypes covers the type expressions a field can be declared with.
//
//builder:generate
type FieldTypes struct {
	Digest   [32]byte
	Matrix   [2][3]float64
	Events   chan<- string
	Done     <-chan struct{}
	Work     chan func(context.Context) error
	Handler  func(w io.Writer, args ...string) (int, error)
	Callback func()
	Any      interface{}
	Stringer interface{ String() string }
	Source   interface{ Read(io.Reader) error }
	Sink     interface {
		io.Writer
		Flush(ctx context.Context) error
	}
	Point    struct {
		X, Y int `json:"x"`
	}
	Lookup map[string][]*io.PipeReader
}
