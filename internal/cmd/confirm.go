package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// confirmPrompt writes prompt to w and reports whether the line read from
// in is one of accepted, ignoring case. End of input on a non-terminal
// stdin asks for --yes.
func confirmPrompt(in io.Reader, w io.Writer, prompt string, accepted ...string) (bool, error) {
	fmt.Fprint(w, prompt)
	scanner := bufio.NewScanner(in)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return false, fmt.Errorf("failed to read confirmation: %w", err)
		}
		if !stdinIsTerminal() {
			return false, Suggest(fmt.Errorf("confirmation required in non-interactive mode"), "Re-run with --yes to skip confirmation")
		}
		return false, fmt.Errorf("cancelled")
	}
	response := strings.ToLower(strings.TrimSpace(scanner.Text()))
	for _, ok := range accepted {
		if response == ok {
			return true, nil
		}
	}
	return false, nil
}
