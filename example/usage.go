package example

import (
	"fmt"
	"time"
)

// ExampleUsage demonstrates how to use the generated mutator methods
func ExampleUsage() {
	x := DefaultSomething()
	fmt.Printf("%+v\n", x)

	// Each call returns an updated copy, so calls chain left to right
	x = x.SetField1(1).SetField2("lalala")
	fmt.Printf("%+v\n", x)

	server := Server{}.
		SetHost("localhost").
		SetPort(8080).
		SetWorkers(4).
		SetTimeout(30 * time.Second)

	fmt.Printf("Server: %s:%d (workers=%d, timeout=%s)\n", server.Host, server.Port, server.Workers, server.Timeout)
}
