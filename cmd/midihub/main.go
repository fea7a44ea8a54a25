// Command midihub is the binary entry point: it wires internal/config,
// internal/devicekind, the apps, internal/router, and internal/server
// together behind the thin internal/cli dispatch table, the same role the
// teacher's main.go plays for its fyne UI stack.
package main

import (
	"fmt"
	"os"

	"github.com/PixPMusic/gopher-midihub/internal/cli"
)

func main() {
	if err := cli.Run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
