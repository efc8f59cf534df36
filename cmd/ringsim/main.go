// ringsim drives a scripted host/chip ring-transport simulation.
package main

import (
	"os"

	"github.com/gobeyondidentity/ringlink/cmd/ringsim/cmd"
	"github.com/gobeyondidentity/ringlink/pkg/clierror"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(clierror.ExitCodeFor(err))
	}
}
