// Package logging configures the go-logging backend shared by the
// engine packages and binaries.
package logging

import (
	"os"

	"github.com/op/go-logging"
)

var standardFormat = logging.MustStringFormatter(
	`%{time:15:04:05.000} %{level:-8s} %{message}`)

// GetLog returns the process-wide engine logger.  Log output goes to
// stderr so it never interleaves with the UCI protocol on stdout.
func GetLog() *logging.Logger {
	log := logging.MustGetLogger("tarrasch")

	backend := logging.NewLogBackend(os.Stderr, "", 0)
	formatted := logging.NewBackendFormatter(backend, standardFormat)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.INFO, "")
	log.SetBackend(leveled)

	return log
}
