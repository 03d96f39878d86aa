package main

import (
	"io"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rogpeppe/go-internal/testscript"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/plugkit/internal/core/domain"
)

func TestMain(m *testing.M) {
	testscript.Main(m, map[string]func(){
		"gensrc": main,
	})
}

func TestScripts(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir: "testdata",
	})
}

func TestRootCmd_Args(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		wantDir    string
		wantInputs []string
		wantErr    bool
	}{
		{name: "flag first", args: []string{"-o", "out", "a.swift.in", "b.in"}, wantDir: "out", wantInputs: []string{"a.swift.in", "b.in"}},
		{name: "flag last", args: []string{"a.in", "-o", "out"}, wantDir: "out", wantInputs: []string{"a.in"}},
		{name: "flag between inputs", args: []string{"a.in", "-o", "out", "b.in"}, wantDir: "out", wantInputs: []string{"a.in", "b.in"}},
		{name: "long flag", args: []string{"--output=out", "a.in"}, wantDir: "out", wantInputs: []string{"a.in"}},
		{name: "no inputs", args: []string{"-o", "out"}, wantDir: "out"},
		{name: "missing flag", args: []string{"a.in"}, wantErr: true},
		{name: "dangling flag", args: []string{"a.in", "-o"}, wantErr: true},
		{name: "unknown flag", args: []string{"-x", "a.in"}, wantErr: true},
		{name: "nothing", args: []string{}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotDir string
			var gotInputs []string
			cmd := newRootCmd(func(outDir string, inputs []string) error {
				gotDir, gotInputs = outDir, inputs
				return nil
			})
			cmd.SetArgs(tt.args)
			cmd.SetOut(io.Discard)
			cmd.SetErr(io.Discard)

			err := cmd.Execute()
			if tt.wantErr {
				require.ErrorIs(t, err, domain.ErrInvalidArguments)
				assert.Contains(t, err.Error(), "usage: gensrc")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantDir, gotDir)
			if diff := cmp.Diff(tt.wantInputs, gotInputs, cmpEmpty); diff != "" {
				t.Errorf("inputs mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// cmpEmpty treats nil and empty input lists alike.
var cmpEmpty = cmp.FilterValues(func(x, y []string) bool {
	return len(x) == 0 && len(y) == 0
}, cmp.Ignore())
