// Command sipheader parses SIP header blocks, reports malformed fields
// and prints the normalized headers as text, JSON or YAML.
//
// Usage:
//
//	sipheader [--compact] [--format text|json|yaml] [--strict] [--config FILE] [FILE...]
//
// Standard input is read when no file is given or the file is "-".
package main

import (
	"context"
	"fmt"
	"os"
)

func main() {
	if err := newCommand().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
