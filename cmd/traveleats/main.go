// Command traveleats is a terminal client for the TravelEats API. It keeps
// the signed-in session in a local file between invocations.
//
// Usage:
//
//	traveleats register -email E -password P -username U -fullname F
//	traveleats login -email E -password P
//	traveleats logout
//	traveleats me
//	traveleats set-username NAME | set-fullname NAME
//	traveleats set-avatar URI | remove-avatar
//	traveleats meals KEYWORD | drinks KEYWORD
//	traveleats meal ID | drink ID
//	traveleats activity
//
// Configuration: TRAVELEATS_API_URL, TRAVELEATS_SESSION_FILE,
// TRAVELEATS_TIMEOUT, TRAVELEATS_LOG_LEVEL (or a YAML file at
// TRAVELEATS_CONFIG).
//
// Exit codes: 0 = success, 1 = request failed, 2 = usage error.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
