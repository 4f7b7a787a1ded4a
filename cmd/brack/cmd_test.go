package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeProgram(t *testing.T, name, source string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.Nil(t, os.WriteFile(path, []byte(source), 0644))
	return path
}

func TestFmtCommand(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "flat run",
			input:    "++.",
			expected: "++.\n",
		},
		{
			name:     "loop body indented",
			input:    "++[->+<].",
			expected: "++\n[\n\t->+<\n]\n.\n",
		},
		{
			name:     "comments stripped",
			input:    "add two + then + stop",
			expected: "++\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeProgram(t, "prog.b", tt.input)
			cmd := newFmtCommand()
			var out bytes.Buffer
			cmd.SetOut(&out)
			cmd.SetArgs([]string{path})
			require.Nil(t, cmd.Execute())
			require.Equal(t, tt.expected, out.String())
		})
	}
}

func TestFmtCommandWrite(t *testing.T) {
	path := writeProgram(t, "prog.b", "++[->+<]")
	cmd := newFmtCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"-w", path})
	require.Nil(t, cmd.Execute())

	data, err := os.ReadFile(path)
	require.Nil(t, err)
	require.Equal(t, "++\n[\n\t->+<\n]\n", string(data))
}

func TestCheckCommand(t *testing.T) {
	good := writeProgram(t, "good.b", "++[->+<]")
	cmd := newCheckCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{good})
	require.Nil(t, cmd.Execute())
	require.Contains(t, out.String(), "ok")
}

func TestCheckCommandReportsErrors(t *testing.T) {
	good := writeProgram(t, "good.b", "++.")
	bad := writeProgram(t, "bad.b", "++[")
	cmd := newCheckCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	cmd.SetArgs([]string{good, bad})
	err := cmd.Execute()
	require.NotNil(t, err)
	require.Contains(t, err.Error(), "bad.b")
}

func TestDisCommand(t *testing.T) {
	path := writeProgram(t, "prog.b", "+[-]")
	cmd := newDisCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{path})
	require.Nil(t, cmd.Execute())
	require.Contains(t, out.String(), "ADD")
	require.Contains(t, out.String(), "SET_ZERO")
}

func TestAstCommand(t *testing.T) {
	path := writeProgram(t, "prog.b", "+[-].")
	cmd := newAstCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{path})
	require.Nil(t, cmd.Execute())
	require.Contains(t, out.String(), "program (3 nodes)")
	require.Contains(t, out.String(), "loop (1 nodes)")
}

func TestVersionCommandJSON(t *testing.T) {
	cmd := newVersionCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"-o", "json"})
	require.Nil(t, cmd.Execute())

	var info map[string]string
	require.Nil(t, json.Unmarshal(out.Bytes(), &info))
	require.Equal(t, "dev", info["version"])
}
