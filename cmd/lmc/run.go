package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/k0kubun/pp/v3"
	"github.com/spf13/cobra"

	"github.com/ezrec/lmc/emulator"
	"github.com/ezrec/lmc/io"
)

// closeOutput closes an output tape. A close failure is reported unless
// an earlier error is already being returned.
func closeOutput(ouf interface{ Close() error }, err error) error {
	cerr := ouf.Close()
	if err == nil {
		err = cerr
	}
	return err
}

func newRunCmd(opts *options) *cobra.Command {
	var input string
	var output string
	var steps int
	var dump bool

	cmd := &cobra.Command{
		Use:   "run sourceFile",
		Short: "Assemble and run a program",
		Long: `Run assembles a program, loads it at address 0 and executes it until
HLT. INP reads whitespace separated integers from the input tape, OUT
writes one integer per line to the output tape.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			_, prog, err := assembleFile(opts, args[0])
			if err != nil {
				return
			}

			tape := &io.Tape{
				Input:  cmd.InOrStdin(),
				Output: cmd.OutOrStdout(),
			}

			if input != "-" {
				inf, err := os.Open(input)
				if err != nil {
					return err
				}
				defer inf.Close()
				tape.Input = inf
			}

			if output != "-" {
				var ouf *os.File
				ouf, err = os.Create(output)
				if err != nil {
					return
				}
				defer func() { err = closeOutput(ouf, err) }()
				tape.Output = ouf
			}

			emu := emulator.NewEmulator(tape)
			emu.Program = prog
			emu.Verbose = opts.verbose

			err = emu.Reset()
			if err != nil {
				return
			}

			err = emu.Run(steps)
			if err != nil && opts.verbose {
				log.Debug("state\n" + emu.Cpu.String())
			}

			if dump {
				pp.ColoringEnabled = !opts.noColor
				pp.Fprintln(cmd.ErrOrStderr(), emu.Cpu.State())
			}

			return
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "-", "Tape input")
	cmd.Flags().StringVarP(&output, "output", "o", "-", "Tape output")
	cmd.Flags().IntVarP(&steps, "steps", "n", 0, "Maximum instructions to execute, 0 for no limit")
	cmd.Flags().BoolVar(&dump, "dump", false, "Print the final machine state")

	return cmd
}
