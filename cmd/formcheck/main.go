// Command formcheck checks a submitted web form and reports the fields that
// need correcting.
//
// Usage:
//
//	formcheck [flags] [-input path|-]
//
// The form is read from a file or stdin as YAML, JSON or URL-encoded
// name=value pairs. Browsers omit unticked checkboxes from URL-encoded
// bodies, so an unchecked box is only reported when the input names it, for
// example "terms=off". The exit status is 0 when every field passes, 1 when
// the form has findings and 2 on usage or input errors.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr, os.Environ())
	stop()
	os.Exit(code)
}
