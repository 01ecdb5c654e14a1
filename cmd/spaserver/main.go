// Command spaserver serves a directory over HTTP and answers every path that
// is not an existing file with the application's index document.
//
//	spaserver [flags] [port]
//
// The port defaults to SERVER_PORT or 8001. See --help for flags.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := newCommand(os.Stdout, os.Stderr).Run(ctx, os.Args)
	stop()

	if err != nil {
		os.Exit(1)
	}
}
