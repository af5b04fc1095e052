package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// ErrUsage indicates the command was invoked with arguments. It takes none.
var ErrUsage = errors.New("usage error")

// parseFlags rejects every flag and positional argument. args[0] is the
// program name. No help text is printed, --help included.
func parseFlags(args []string) error {
	name := "resume"
	if len(args) > 0 {
		name = args[0]
		args = args[1:]
	}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v (this command takes no arguments)", ErrUsage, err)
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("%w: unexpected argument %q (this command takes no arguments)", ErrUsage, fs.Arg(0))
	}
	return nil
}
