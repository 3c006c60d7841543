package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
)

var (
	okColor   = color.New(color.FgGreen, color.Bold)
	failColor = color.New(color.FgRed, color.Bold)
)

func newLogger(w io.Writer, level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("log level %q: %w", level, err)
	}

	output := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: "15:04:05.000",
		NoColor:    color.NoColor,
	}
	return zerolog.New(output).Level(lvl).With().Timestamp().Logger(), nil
}

// status writes a one line outcome, labelled and coloured when the terminal allows it.
func status(w io.Writer, ok bool, format string, args ...any) {
	c, label := okColor, "OK"
	if !ok {
		c, label = failColor, "FAILED"
	}
	_, _ = c.Fprint(w, label)
	_, _ = fmt.Fprintf(w, " "+format+"\n", args...)
}
