// Package main is the entry point of the contactbook CLI and server.
// Its responsibility is wiring dependencies together and dispatching to a
// subcommand. No business logic belongs here.
package main

import (
	"context"
	"fmt"
	"os"
)

func main() {
	if err := execute(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		// Command errors already carry the user-facing message.
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
