// hue colours the terms of a text so that neighbouring colours score well.
// Single binary: tokenize against a lexicon, pick colours, print them.
package main

import (
	"fmt"
	"os"

	"github.com/corey/hue/cmd/hue/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", cmd.DescribeError(err))
		os.Exit(1)
	}
}
