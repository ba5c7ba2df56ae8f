package output

import (
	"os"

	"golang.org/x/term"
)

// IsTTY reports whether stderr is attached to a terminal. Spinners and other
// interactive chrome are only shown when it is.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stderr.Fd()))
}
