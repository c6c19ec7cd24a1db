package common

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Reporter writes command-line diagnostics. Prefixes are coloured only when
// the destination is a terminal.
type Reporter struct {
	Program string
	out     io.Writer
	errTag  func(string, ...any) string
	warnTag func(string, ...any) string
}

// NewReporter returns a Reporter for the named program writing to stderr.
func NewReporter(program string) *Reporter {
	return NewReporterTo(program, os.Stderr)
}

// NewReporterTo returns a Reporter writing to w.
func NewReporterTo(program string, w io.Writer) *Reporter {
	r := &Reporter{Program: program, out: w}
	if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		errColor := color.New(color.FgRed, color.Bold)
		errColor.EnableColor()
		warnColor := color.New(color.FgYellow)
		warnColor.EnableColor()
		r.errTag = errColor.SprintfFunc()
		r.warnTag = warnColor.SprintfFunc()
	} else {
		r.errTag = fmt.Sprintf
		r.warnTag = fmt.Sprintf
	}
	return r
}

func (r *Reporter) Errorf(format string, args ...any) {
	fmt.Fprintf(r.out, "%s %s\n", r.errTag("Error:"), fmt.Sprintf(format, args...))
}

func (r *Reporter) Warnf(format string, args ...any) {
	fmt.Fprintf(r.out, "%s %s\n", r.warnTag("Warning:"), fmt.Sprintf(format, args...))
}

func (r *Reporter) Infof(format string, args ...any) {
	fmt.Fprintf(r.out, format+"\n", args...)
}

// Fatalf reports an error and exits with status 1.
func (r *Reporter) Fatalf(format string, args ...any) {
	r.Errorf(format, args...)
	os.Exit(1)
}

// Version prints the program's version line to stdout.
func (r *Reporter) Version(version string) {
	fmt.Printf("%s version %s\n", r.Program, version)
}
