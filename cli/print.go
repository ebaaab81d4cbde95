package cli

import (
	"fmt"
	"io"
	"log"

	"github.com/fatih/color"
)

// printf prints a message with no prefix.
func printf(w io.Writer, format string, a ...interface{}) {
	//nolint:errcheck
	fmt.Fprintf(w, format+"\n", a...)
}

// infof prints a message prefixed with a bold cyan "Info: ".
func infof(w io.Writer, format string, a ...interface{}) {
	if _, err := color.New(color.Bold, color.FgCyan).Fprint(w, "Info: "); err != nil {
		log.Fatal(err)
	}
	printf(w, format, a...)
}

// warningf prints a message prefixed with a bold yellow "Warning: ".
func warningf(w io.Writer, format string, a ...interface{}) {
	if _, err := color.New(color.Bold, color.FgYellow).Fprint(w, "Warning: "); err != nil {
		log.Fatal(err)
	}
	printf(w, format, a...)
}

// successf prints a message prefixed with a bold green "Done: ".
func successf(w io.Writer, format string, a ...interface{}) {
	if _, err := color.New(color.Bold, color.FgGreen).Fprint(w, "Done: "); err != nil {
		log.Fatal(err)
	}
	printf(w, format, a...)
}

// Errorf prints a message prefixed with a bold red "Error: ".
func Errorf(w io.Writer, format string, a ...interface{}) {
	if _, err := color.New(color.Bold, color.FgRed).Fprint(w, "Error: "); err != nil {
		log.Fatal(err)
	}
	printf(w, format, a...)
}
