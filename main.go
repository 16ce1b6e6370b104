// drills - interactive console exercises built around a
// prompt-read-validate loop.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"drills/cmd"
	errs "drills/internal/errors"
)

// Exit codes returned by the drills binary.
const (
	exitSuccess    = 0
	exitFailure    = 1
	exitNoAttempts = 2 // attempt ceiling reached; already reported
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)

	code := exitSuccess
	if err := cmd.Execute(ctx, os.Args[1:]); err != nil {
		code = exitFailure
		if errs.Is(err, errs.ErrTooManyAttempts) {
			code = exitNoAttempts
		} else {
			fmt.Fprintf(os.Stderr, "drills: %v\n", err)
		}
	}
	cancel()
	os.Exit(code)
}
