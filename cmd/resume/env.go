package main

import (
	"context"
	"io"
	"os"
	"time"

	resume "github.com/erd2/yershhhat"
)

// documentRenderer is the part of *resume.Renderer the command uses.
type documentRenderer interface {
	WriteFile(ctx context.Context, doc *resume.Document, path string) error
	Close() error
}

// Environment holds injectable dependencies for testability.
type Environment struct {
	Now         func() time.Time
	Stdout      io.Writer
	Stderr      io.Writer
	Getwd       func() (string, error)
	NewRenderer func() (documentRenderer, error)
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Now:    time.Now,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Getwd:  os.Getwd,
		NewRenderer: func() (documentRenderer, error) {
			return resume.NewRenderer()
		},
	}
}
