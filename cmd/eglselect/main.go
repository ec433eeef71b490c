// Command eglselect runs the eglconfig selector against a recorded table of
// EGL configurations.
//
// Usage:
//
//	eglselect select --configs device.yaml --profile warp-compositor
//	eglselect check --configs device.yaml --id 12
//	eglselect profiles
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/gogpu/eglconfig"
)

// Exit codes, one per selection outcome.
const (
	exitError     = 1
	exitNoMatch   = 2
	exitNoConfigs = 3
	exitProvider  = 4
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "eglselect:", err)
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	switch {
	case errors.Is(err, eglconfig.ErrNoMatch):
		return exitNoMatch
	case errors.Is(err, eglconfig.ErrNoConfigs):
		return exitNoConfigs
	case errors.Is(err, eglconfig.ErrProvider):
		return exitProvider
	default:
		return exitError
	}
}
