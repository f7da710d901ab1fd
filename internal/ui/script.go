package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// RunScript executes one command per line. Blank lines and lines starting
// with '#' are skipped. Messages are echoed after their command and the
// final frame is printed once input ends or a quit command is read.
func RunScript(in io.Reader, out io.Writer, session *Session) error {
	scanner := bufio.NewScanner(in)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		res := session.Exec(line)
		if res.Quit {
			break
		}
		if res.Message != "" {
			if _, err := fmt.Fprintf(out, "%d: %s: %s\n", lineNo, line, res.Message); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read script: %w", err)
	}
	if _, err := io.WriteString(out, session.Frame()); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
