package main

import (
	"cmp"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ezrec/lmc/cpu"
	"github.com/ezrec/lmc/internal"
)

// assembleFile assembles a source file with the predefines of opts.
func assembleFile(opts *options, path string) (asm *cpu.Assembler, prog *cpu.Program, err error) {
	asm = &cpu.Assembler{Verbose: opts.verbose}

	for _, def := range opts.defines {
		name, expr, ok := strings.Cut(def, "=")
		if !ok {
			err = fmt.Errorf("-D %v: %w", def, cpu.ErrPredefineSyntax)
			return
		}
		err = asm.Predefine(name, expr)
		if err != nil {
			err = fmt.Errorf("-D %v: %w", def, err)
			return
		}
	}

	inf, err := os.Open(path)
	if err != nil {
		return
	}
	defer inf.Close()

	prog, err = asm.Parse(inf)
	if err != nil {
		err = fmt.Errorf("%v: %w", path, err)
		return
	}

	return
}

func newAsmCmd(opts *options) *cobra.Command {
	var symbols bool

	cmd := &cobra.Command{
		Use:   "asm sourceFile",
		Short: "Assemble a program and print its memory image",
		Long: `Asm prints the assembled memory image of a program, one cell per
line in address order. With --symbols the labels and DAT variables
follow, sorted by address.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			asm, prog, err := assembleFile(opts, args[0])
			if err != nil {
				return
			}

			out := cmd.OutOrStdout()
			for _, op := range prog.Opcodes {
				fmt.Fprintf(out, "%02d %v\n", op.Address, op.Cell)
			}

			if symbols {
				byAddress := func(_ string, a int, _ string, b int) int { return cmp.Compare(a, b) }
				for name, address := range internal.IterSeq2Sorted(asm.Symbols.All(), byAddress) {
					fmt.Fprintf(out, "%02d %v\n", address, name)
				}
			}

			return
		},
	}

	cmd.Flags().BoolVarP(&symbols, "symbols", "s", false, "Print the symbol table")

	return cmd
}
