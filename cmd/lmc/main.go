// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/ezrec/lmc/internal/logger"
)

// options shared by every command.
type options struct {
	verbose bool
	noColor bool
	defines []string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "lmc",
		Short: "Little Man Computer assembler and emulator",
		Long: `Lmc assembles Little Man Computer programs, one instruction per
line in the form '[label] mnemonic [operand]', and runs them on a
100 cell single accumulator machine.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.InitWriter(cmd.ErrOrStderr(), opts.verbose, opts.noColor)
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Verbose mode")
	cmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "No color")
	cmd.PersistentFlags().StringArrayVarP(&opts.defines, "define", "D", nil, "Predefine NAME=EXPR for DAT operands")

	cmd.AddCommand(newAsmCmd(opts), newRunCmd(opts))

	return cmd
}

func main() {
	logger.Init(false, false)

	err := newRootCmd().Execute()
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
