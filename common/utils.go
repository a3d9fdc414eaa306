package common

import (
	"fmt"
	"os"
)

// Fatalf prints the message to stderr, and to stdout as well when the two
// are different files, then exits.
func Fatalf(format string, args ...interface{}) {
	msg := fmt.Sprintf("Fatal: "+format+"\n", args...)
	_, _ = fmt.Fprint(os.Stderr, msg)
	outf, _ := os.Stdout.Stat()
	errf, _ := os.Stderr.Stat()
	if outf != nil && errf != nil && !os.SameFile(outf, errf) {
		_, _ = fmt.Fprint(os.Stdout, msg)
	}
	os.Exit(1)
}
