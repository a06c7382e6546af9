package internal

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/saylorsolutions/streamarmor/pkg/armor"
)

// Fatal will Echo the message and os.Exit with code 1.
func Fatal(msg string, args ...any) {
	Echo(msg, args...)
	os.Exit(1)
}

// Echo will emit the given message to stderr without any logging formatting.
func Echo(msg string, args ...any) {
	if !strings.HasSuffix(msg, "\n") {
		msg += "\n"
	}
	_, _ = fmt.Fprintf(os.Stderr, msg, args...)
}

// Report will Echo a summary of an invalid report, since the details are already emitted by the logger.
// If strict is true, then an invalid report is Fatal.
func Report(heading string, report armor.Report, strict bool) {
	if report.Valid() {
		return
	}
	Echo("%s: %d problem(s) found", heading, len(report.Problems))
	if strict {
		Fatal("Refusing to continue with an invalid result")
	}
}

// NewLogger creates a text logger on stderr.
// Only warnings and errors are emitted unless verbose is true.
func NewLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
