package automaton

import (
	"fmt"
	"io"
	"os"
)

// Diagnostics receives the single non-fatal warning the core emits: a
// transition whose target is set to the null state ID (0). Tests may
// redirect this to a buffer to assert the warning fired.
var Diagnostics io.Writer = os.Stderr

func warnf(format string, args ...any) {
	if Diagnostics == nil {
		return
	}
	fmt.Fprintf(Diagnostics, "warning: "+format+"\n", args...)
}
