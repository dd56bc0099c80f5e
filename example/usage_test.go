package example

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestChainedSetters(t *testing.T) {
	x := DefaultSomething()
	y := x.SetField1(1).SetField2("x")

	assert.Equal(t, Something{field1: 1, field2: "x"}, y)
	assert.Equal(t, DefaultSomething(), x, "the receiver is a copy")
}

func TestSetterReplacesOneField(t *testing.T) {
	base := Server{Host: "a", Port: 1, TLS: true, Cert: "pem", Workers: 2, Timeout: time.Second}

	got := base.SetPort(2)
	want := base
	want.Port = 2
	assert.Equal(t, want, got)
	assert.Equal(t, "pem", got.Cert)
}

func ExampleSomething_SetField1() {
	ExampleUsage()
	// Output:
	// {field1:0 field2:a default ignoredField:0}
	// {field1:1 field2:lalala ignoredField:0}
	// Server: localhost:8080 (workers=4, timeout=30s)
}
