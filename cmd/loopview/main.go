// Command loopview renders and previews the loop indicator widget.
package main

import (
	"fmt"
	"os"

	"github.com/cndemo/loopview/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
