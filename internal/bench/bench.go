// Package bench provides lightweight timing output for the CLI demo and
// for benchmark-style tests. It is not part of the data structure's own
// correctness surface: sparsebitmap has no internal concurrency or
// background work for a logger to race with.
package bench

import (
	"fmt"
	"time"
)

// LoggingEnabled controls whether Logf produces output.
var LoggingEnabled = true

// Logf prints a formatted message if logging is enabled.
func Logf(format string, args ...interface{}) {
	if LoggingEnabled {
		fmt.Printf(format, args...)
	}
}

// formatDuration formats a duration in microseconds or milliseconds,
// with 2 decimal places. Set-algebra over an in-memory bitmap never
// runs long enough to need a dedicated seconds bucket, so unlike a
// disk-flush timer, this always reports in us/ms even for a slow call.
func formatDuration(d time.Duration) string {
	us := float64(d) / float64(time.Microsecond)
	if us < 10 {
		return fmt.Sprintf("%.2f us", us)
	}
	return fmt.Sprintf("%.2f ms", us/1000)
}

// LogOp reports the elapsed time of a set-algebra or aggregation call
// alongside the number of set bits it produced, so a call that's slow
// because it's large isn't confused with one that's slow for some
// other reason. bits is typically the result's Cardinality().
func LogOp(start time.Time, op string, bits int32) {
	elapsed := time.Since(start)
	durStr := fmt.Sprintf("(%s)", formatDuration(elapsed))
	msg := fmt.Sprintf("%s -> %d bits", op, bits)
	if elapsed > 0 {
		msg = fmt.Sprintf("%s, %.0f bits/s", msg, float64(bits)/elapsed.Seconds())
	}
	Logf("%-10s%s\n", durStr, msg)
}
