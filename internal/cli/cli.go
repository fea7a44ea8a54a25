// Package cli dispatches the three subcommands the binary exposes,
// `configure`, `device` and `run`, the same minimal way original_source/main.rs
// dispatches `login`/`run` from os.Args — no framework, since no repo in
// the retrieval pack pulls one in for its own binary.
package cli

import (
	"errors"
	"fmt"
)

const usage = "usage: midihub configure <client-id> <client-secret> | midihub device <name> <default|launchpadpro> | midihub run"

// Run dispatches on args (typically os.Args[1:]).
func Run(args []string) error {
	if len(args) == 0 {
		return errors.New(usage)
	}
	switch args[0] {
	case "configure":
		if len(args) != 3 {
			return errors.New(usage)
		}
		return runConfigure(args[1], args[2])
	case "device":
		if len(args) != 3 {
			return errors.New(usage)
		}
		return addDevice(args[1], args[2])
	case "run":
		return runRun()
	default:
		return fmt.Errorf("%s: unknown subcommand %q", usage, args[0])
	}
}
