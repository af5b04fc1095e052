package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/automaxprocs/maxprocs"
)

func main() {
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))

	os.Exit(runMain(context.Background(), os.Args, DefaultEnv()))
}

// runMain runs the command and reports the outcome on env's writers.
// Returns the process exit code.
func runMain(parent context.Context, args []string, env *Environment) int {
	ctx, stop := notifyContext(parent)
	defer stop()

	err := run(ctx, args, env)
	if err != nil {
		fmt.Fprintf(env.Stderr, "error: %v%s\n", err, hintFor(err))
	}
	return exitCodeFor(err)
}
