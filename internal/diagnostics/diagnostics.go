// ==============================================================================================
// FILE: internal/diagnostics/diagnostics.go
// ==============================================================================================
// PACKAGE: diagnostics
// PURPOSE: A thin wrapper around zombiezen.com/go/log (§4.11), the structured logger grounded on
//          the 256lights-zb corpus entry's cmd/zb/main.go initLogging. Logging here is a side
//          channel for operators running Lunar scripts; it never changes control flow, which
//          stays entirely governed by the scope flags of §4.5.
// ==============================================================================================

package diagnostics

import (
	"context"
	"os"
	"sync"

	"zombiezen.com/go/log"
)

var initOnce sync.Once

// Init installs the process-wide logger, matching 256lights-zb's level-filtered stderr writer.
// Call once from cmd/lunar before running any Lunar code; safe to call more than once.
func Init(verbose bool) {
	initOnce.Do(func() {
		minLevel := log.Info
		if verbose {
			minLevel = log.Debug
		}
		log.SetDefault(&log.LevelFilter{
			Min:    minLevel,
			Output: log.New(os.Stderr, "lunar: ", log.StdFlags, nil),
		})
	})
}

// Recovered logs a *catch*-handled error at Debug level — it was not a program failure, just a
// condition the Lunar program itself chose to observe and continue past.
func Recovered(ctx context.Context, err error) {
	log.Debugf(ctx, "recovered: %v", err)
}

// Uncaught logs an error that reached the CLI boundary without a `catch`, at Error level, in
// addition to the *eval.Error Value the CLI prints to the user directly.
func Uncaught(ctx context.Context, err error) {
	log.Errorf(ctx, "%v", err)
}
