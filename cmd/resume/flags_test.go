package main

import (
	"errors"
	"testing"
)

func TestParseFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		args    []string
		wantErr bool
	}{
		{"program name only", []string{"resume"}, false},
		{"empty args", nil, false},
		{"positional argument", []string{"resume", "out.pdf"}, true},
		{"unknown long flag", []string{"resume", "--output", "x.pdf"}, true},
		{"unknown short flag", []string{"resume", "-v"}, true},
		{"help is rejected", []string{"resume", "--help"}, true},
		{"short help is rejected", []string{"resume", "-h"}, true},
		{"argument after terminator", []string{"resume", "--", "x"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := parseFlags(tt.args)

			if tt.wantErr {
				if !errors.Is(err, ErrUsage) {
					t.Errorf("parseFlags(%q) error = %v, want %v", tt.args, err, ErrUsage)
				}
				return
			}
			if err != nil {
				t.Errorf("parseFlags(%q) unexpected error: %v", tt.args, err)
			}
		})
	}
}
