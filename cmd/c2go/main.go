// Command c2go lowers a serialized C AST dump into Go source.
package main

import (
	"github.com/mbsulliv/c2go/cmd/c2go/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		cmd.ExitWithError("%s", err)
	}
}
