package config

import (
	"fmt"
	"os"
)

// Exitf reports a fatal startup error on stderr as "Error: ..." and exits 1.
func Exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
