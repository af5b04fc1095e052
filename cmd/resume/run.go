package main

import (
	"context"
	"errors"
	"fmt"

	resume "github.com/erd2/yershhhat"
	"github.com/erd2/yershhhat/internal/fileutil"
	"github.com/erd2/yershhhat/internal/hints"
)

// outputFileName is written to the current working directory.
const outputFileName = "Toleubayev_Yershat_Resume.pdf"

// successFormat is the single line printed on success.
const successFormat = "PDF резюме успешно создано: %s\n"

// run builds the resume, stamps it with the current month, writes the PDF
// and prints its absolute path.
func run(ctx context.Context, args []string, env *Environment) error {
	if err := parseFlags(args); err != nil {
		return err
	}

	b, err := resume.NewBuilder()
	if err != nil {
		return err
	}
	doc, err := b.Build()
	if err != nil {
		return fmt.Errorf("building document: %w", err)
	}

	stamp, err := b.Timestamp(env.Now())
	if err != nil {
		return err
	}
	if err := doc.Append(stamp); err != nil {
		return err
	}

	dir, err := env.Getwd()
	if err != nil {
		return fmt.Errorf("%w: resolving working directory: %w", resume.ErrWritePDF, err)
	}
	path, err := fileutil.ResolveOutputPath(dir, outputFileName)
	if err != nil {
		return fmt.Errorf("%w: %w", resume.ErrWritePDF, err)
	}

	r, err := env.NewRenderer()
	if err != nil {
		return err
	}
	defer r.Close()

	if err := r.WriteFile(ctx, doc, path); err != nil {
		return err
	}

	fmt.Fprintf(env.Stdout, successFormat, path)
	return nil
}

// hintFor returns an actionable hint for err, or "".
func hintFor(err error) string {
	switch {
	case errors.Is(err, resume.ErrBrowserConnect):
		return hints.ForBrowserConnect()
	case errors.Is(err, resume.ErrPageLoad):
		return hints.ForTimeout()
	case errors.Is(err, resume.ErrWritePDF):
		return hints.ForOutputDirectory()
	}
	return ""
}
