// Command ultimath divides and multiplies arbitrary integers, prints
// reciprocal divider constants and runs the division cross-checks.
package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// On failure Cobra prints the error string, so we only need to exit
	// with a non-0 status.
	if newApp().run(ctx) != nil {
		stop()
		os.Exit(1)
	}
}
