package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

type Options struct {
	JSON    bool
	Plain   bool
	Quiet   bool
	Verbose bool
	NoColor bool

	// Stdout/Stderr default to the process streams; tests inject buffers.
	Stdout io.Writer
	Stderr io.Writer
}

type Output struct {
	JSON    bool
	Plain   bool
	Quiet   bool
	Verbose bool

	stdout io.Writer
	stderr io.Writer

	green  *color.Color
	yellow *color.Color
	red    *color.Color
	gray   *color.Color
	bold   *color.Color
}

func New(opts Options) *Output {
	if opts.NoColor || opts.Plain {
		color.NoColor = true
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}
	return &Output{
		JSON:    opts.JSON,
		Plain:   opts.Plain,
		Quiet:   opts.Quiet,
		Verbose: opts.Verbose,
		stdout:  opts.Stdout,
		stderr:  opts.Stderr,
		green:   color.New(color.FgGreen),
		yellow:  color.New(color.FgYellow),
		red:     color.New(color.FgRed),
		gray:    color.New(color.FgHiBlack),
		bold:    color.New(color.Bold),
	}
}

func (o *Output) Green(s string) string  { return o.green.Sprint(s) }
func (o *Output) Yellow(s string) string { return o.yellow.Sprint(s) }
func (o *Output) Red(s string) string    { return o.red.Sprint(s) }
func (o *Output) Gray(s string) string   { return o.gray.Sprint(s) }
func (o *Output) Bold(s string) string   { return o.bold.Sprint(s) }

func (o *Output) Info(msg string) {
	if o.JSON || o.Quiet {
		return
	}
	fmt.Fprintln(o.stdout, msg)
}

func (o *Output) Success(msg string) {
	if o.JSON || o.Quiet {
		return
	}
	fmt.Fprintln(o.stdout, o.Green(msg))
}

func (o *Output) Warn(msg string) {
	if o.JSON || o.Quiet {
		return
	}
	fmt.Fprintln(o.stdout, o.Yellow(msg))
}

func (o *Output) Debug(msg string) {
	if o.JSON || !o.Verbose {
		return
	}
	fmt.Fprintln(o.stderr, o.Gray(msg))
}

func (o *Output) Error(msg string) {
	fmt.Fprintln(o.stderr, o.Red(msg))
}

func (o *Output) Print(msg string) {
	if o.JSON || o.Quiet {
		return
	}
	fmt.Fprintln(o.stdout, msg)
}

func (o *Output) Write(msg string) {
	if o.JSON || o.Quiet {
		return
	}
	fmt.Fprint(o.stdout, msg)
}

func (o *Output) EmitJSON(v any) error {
	enc := json.NewEncoder(o.stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
