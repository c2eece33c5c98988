package tui

import (
	"bufio"
	"fmt"
	"io"

	"github.com/vvka-141/vshell/internal/shell"
)

// RunLines feeds every line of r to interp until input ends or a command exits.
func RunLines(r io.Reader, interp *shell.Interpreter) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if interp.Execute(scanner.Text()).Exit {
			return nil
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading input: %w", err)
	}
	return nil
}
