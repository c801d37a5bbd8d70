// Bin2header - binary file to C++ header converter
// main.go - Main entry point and command line handling
// Dual-licensed under MIT and Apache 2.0

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Options holds the command line flag values
type Options struct {
	Input   string
	Output  string
	Name    string
	Verify  bool
	Level   int
	NoColor bool
}

// AddFlags registers the options on fs
func (o *Options) AddFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&o.Input, "input", "i", "", "Path to the input binary file")
	fs.StringVarP(&o.Output, "output", "o", "", "Path to the output header file")
	fs.StringVarP(&o.Name, "name", "n", "", "Name of the byte array in the header file")
	fs.BoolVar(&o.Verify, "verify", false, "Parse the generated header and compare it with the input")
	fs.IntVarP(&o.Level, "level", "l", LevelInfo, "Log level: 0 errors, 1 warnings, 2 info, 3 debug")
	fs.BoolVar(&o.NoColor, "no-color", false, "Disable coloured output")
}

// Validate checks flag values that are not part of a conversion request.
// Missing paths and names are left to Convert so that the input existence
// check is always reported first.
func (o *Options) Validate() error {
	if o.Level < LevelError || o.Level > LevelDebug {
		return errors.Errorf("invalid log level %d, must be between %d and %d", o.Level, LevelError, LevelDebug)
	}
	return nil
}

// Request builds the conversion request described by the options
func (o *Options) Request() Request {
	return Request{
		InputPath:  o.Input,
		OutputPath: o.Output,
		Name:       o.Name,
	}
}

// newRootCmd builds the command; the exit code of a conversion is stored in code
func newRootCmd(stdout, stderr io.Writer, code *int) *cobra.Command {
	opts := &Options{}
	cmd := &cobra.Command{
		Use:           "bin2header -i <input> -o <output.h> -n <name>",
		Short:         "Convert a binary file to a C++ header file with a byte array",
		Example:       "bin2header -i font.ttf -o font.h -n font_data",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := opts.Validate(); err != nil {
				return err
			}
			log := NewLogger(stdout, stderr, opts.Level)
			log.NoColor = opts.NoColor
			*code = execute(opts, log)
			return nil
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	opts.AddFlags(cmd.Flags())

	return cmd
}

// execute runs one conversion and returns the process exit code
func execute(opts *Options, log *Logger) int {
	req := opts.Request()
	log.Debug("converting %s to %s (array: %s)", req.InputPath, req.OutputPath, req.Name)

	res, err := Convert(req)
	if err != nil {
		log.Error("Error: %v", err)
		return ExitCode(err)
	}
	log.Debug("wrote %d rows, guard %s", res.Rows, res.Guard)
	if res.Size == 0 {
		log.Info("%s is empty, generated a zero-length array", req.InputPath)
	}

	if opts.Verify {
		header, err := Verify(req)
		if err != nil {
			log.Error("Error: %v", err)
			return ExitCode(err)
		}
		log.Info("verified %s against %s", req.OutputPath, req.InputPath)
		if log.Level >= LevelDebug {
			header.DumpInfo(log.out)
		}
	}

	log.Success("Success: Generated '%s' (%d bytes)", req.OutputPath, res.Size)
	return ExitOK
}

// run parses args, performs the conversion and returns the exit code
func run(args []string, stdout, stderr io.Writer) int {
	code := ExitOK
	cmd := newRootCmd(stdout, stderr, &code)
	cmd.SetArgs(args)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		fmt.Fprint(stderr, cmd.UsageString())
		return ExitUsage
	}

	return code
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
