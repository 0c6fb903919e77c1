package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		var ee *exitErr
		if errors.As(err, &ee) {
			fmt.Fprintln(os.Stderr, ee.msg)
			os.Exit(ee.code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "cvsscalc",
		Short:         "Compute CVSS v3.1 base scores and vector strings",
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	root.AddCommand(newCalcCmd())
	root.AddCommand(newInteractiveCmd())
	root.AddCommand(newGuideCmd())
	root.AddCommand(newPresetsCmd())
	root.AddCommand(newVerifyCmd())
	return root
}

// Exit codes.
const (
	exitThreshold = 2
	exitInput     = 3
	exitVerify    = 4
	exitInternal  = 5
)

type exitErr struct {
	code int
	msg  string
}

func (e *exitErr) Error() string { return e.msg }

func exitError(code int, format string, args ...any) error {
	return &exitErr{code: code, msg: fmt.Sprintf(format, args...)}
}
