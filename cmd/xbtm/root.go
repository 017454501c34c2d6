package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ezrec/xbtm/program"
	"github.com/ezrec/xbtm/report"
	"github.com/ezrec/xbtm/table"
	"github.com/ezrec/xbtm/translate"
)

type options struct {
	verbose bool
	lang    string
	defines []string
	length  int
	start   string
	steps   int
	quiet   bool
	dump    string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "xbtm [program]",
		Short: "Run a fixed tape state machine",
		Long: `xbtm runs a transition table against a fixed length tape and prints
every step. Without a program file, the built-in two cell XB machine runs.

Program files ending in .yaml or .yml are YAML, anything else is assembler
text.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			err = run(cmd, opts, args)
			if err != nil {
				log.Printf("%v: %v", cmd.Name(), err)
			}
			return
		},
	}

	flags := cmd.Flags()
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Verbose mode")
	flags.StringVar(&opts.lang, "lang", "", "Message locale, such as en-US")
	flags.StringArrayVarP(&opts.defines, "define", "D", nil, "Predefine an assembler equate, NAME=VALUE")
	flags.IntVarP(&opts.length, "length", "n", 0, "Tape length, overrides the program")
	flags.StringVarP(&opts.start, "start", "s", "", "Initial state, overrides the program")
	flags.IntVar(&opts.steps, "steps", -1, "Step budget, overrides the program")
	flags.BoolVarP(&opts.quiet, "quiet", "q", false, "Only print the summary")
	flags.StringVar(&opts.dump, "dump", "", "Print the program instead of running it: table or yaml")

	return cmd
}

func run(cmd *cobra.Command, opts *options, args []string) (err error) {
	if len(opts.lang) != 0 {
		translate.SetLocales(opts.lang)
	}

	prog := program.Example()
	if len(args) == 1 {
		asm := &program.Assembler{Verbose: opts.verbose}
		for _, define := range opts.defines {
			name, value, ok := strings.Cut(define, "=")
			if !ok {
				err = fmt.Errorf("--define %v: %w", define, program.ErrEquateSyntax)
				return
			}
			asm.Predefine(name, value)
		}

		prog, err = program.Load(args[0], asm)
		if err != nil {
			return
		}
	}

	if opts.length != 0 {
		prog.Length = opts.length
	}
	if len(opts.start) != 0 {
		prog.Start, err = table.ParseState(opts.start)
		if err != nil {
			return
		}
	}
	if opts.steps >= 0 {
		prog.Steps = opts.steps
	}

	output := cmd.OutOrStdout()

	switch opts.dump {
	case "":
	case "yaml":
		return prog.WriteYAML(output)
	case "table":
		tbl, err := prog.Table()
		if err != nil {
			return err
		}
		return report.Table(output, tbl)
	default:
		return fmt.Errorf("--dump %v: unknown format", opts.dump)
	}

	m, err := prog.Machine()
	if err != nil {
		return
	}
	m.Verbose = opts.verbose

	trace := m.Trace(prog.Steps)

	if opts.quiet {
		_, err = fmt.Fprintln(output, report.Summary(trace))
		return
	}

	return report.Text(output, trace)
}
