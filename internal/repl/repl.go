// Package repl owns the command loop around the dispatcher: an interactive
// console and a headless script runner. Both split lines on whitespace,
// treat a case-insensitive "exit" as the end of the stream, and print
// failures without stopping the session (interactive) or by aborting the
// rest of the file (headless).
package repl

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/kalendu/kalendu/pkg/command"
	log "github.com/sirupsen/logrus"
)

const exitCommand = "exit"

// RunInteractive reads commands from in until "exit" or EOF, writing each
// result or "Error: <message>" to out.
func RunInteractive(session *command.Session, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.EqualFold(line, exitCommand) {
			fmt.Fprintln(out, "Exiting Calendar App.")
			return nil
		}
		output, err := command.Dispatch(strings.Fields(line), session)
		if err != nil {
			fmt.Fprintf(out, "Error: %s\n", err)
			continue
		}
		fmt.Fprintln(out, output)
	}
	return scanner.Err()
}

// RunScript executes the command file line by line. The first failing
// command is reported as "Error at line <n>: <message>" and aborts the
// remaining lines.
func RunScript(session *command.Session, path string, out io.Writer) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open command file: %w", err)
	}
	defer f.Close()

	log.Infof("Running command file: %s", path)
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.EqualFold(line, exitCommand) {
			fmt.Fprintln(out, "Exiting Calendar App.")
			return nil
		}
		output, err := command.Dispatch(strings.Fields(line), session)
		if err != nil {
			fmt.Fprintf(out, "Error at line %d: %s\n", lineNo, err)
			return nil
		}
		fmt.Fprintln(out, output)
	}
	return scanner.Err()
}
