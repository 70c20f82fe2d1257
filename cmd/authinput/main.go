// Command authinput validates a single authentication form value and prints
// a JSON report.
//
//	authinput --field password --value 'hunter2'
//	echo 'user@example.com' | authinput --field email --locale es
//
// The exit status is 0 for accepted values, 1 for rejected values and 2 for
// usage or configuration errors.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
