package commands

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findCommand(t *testing.T, root *cobra.Command, name string) *cobra.Command {
	t.Helper()
	for _, c := range root.Commands() {
		if c.Name() == name {
			return c
		}
	}
	t.Fatalf("command %s not registered", name)
	return nil
}

func TestRoot_Commands(t *testing.T) {
	root := Root()
	assert.Equal(t, "redstack", root.Use)
	for _, name := range []string{"synth", "plan", "publish", "init", "version", "completion"} {
		findCommand(t, root, name)
	}
}

func TestRoot_PersistentFlags(t *testing.T) {
	root := Root()
	for _, name := range []string{"config", "set", "verbose", "metrics-out"} {
		assert.NotNil(t, root.PersistentFlags().Lookup(name), name)
	}
	assert.Equal(t, "c", root.PersistentFlags().Lookup("config").Shorthand)
}

func TestCommandFlags(t *testing.T) {
	root := Root()
	tests := []struct {
		command string
		flags   []string
	}{
		{"synth", []string{"format", "out"}},
		{"plan", []string{"inventory", "json"}},
		{"publish", []string{"bucket", "endpoint", "region", "path-style", "format", "no-create-bucket"}},
		{"init", []string{"output"}},
	}

	for _, tt := range tests {
		t.Run(tt.command, func(t *testing.T) {
			cmd := findCommand(t, root, tt.command)
			for _, f := range tt.flags {
				assert.NotNil(t, cmd.Flags().Lookup(f), f)
			}
		})
	}

	initCmd := findCommand(t, root, "init")
	assert.Equal(t, "redstack.yaml", initCmd.Flags().Lookup("output").DefValue)
	publish := findCommand(t, root, "publish")
	assert.Equal(t, "[json]", publish.Flags().Lookup("format").DefValue)
}

func TestSynth_RejectsArgs(t *testing.T) {
	root := Root()
	root.SetArgs([]string{"synth", "extra"})
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	assert.Error(t, root.Execute())
}

func TestVersion_Output(t *testing.T) {
	origVersion, origCommit, origDate := version, commit, date
	defer func() { version, commit, date = origVersion, origCommit, origDate }()

	SetVersionInfo("1.2.3", "abc123", "2026-01-01")

	root := Root()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"version"})
	require.NoError(t, root.Execute())

	assert.Contains(t, out.String(), "redstack 1.2.3")
	assert.Contains(t, out.String(), "commit: abc123")
	assert.Contains(t, out.String(), "built:  2026-01-01")
}

func TestCompletion(t *testing.T) {
	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		t.Run(shell, func(t *testing.T) {
			root := Root()
			var out bytes.Buffer
			root.SetOut(&out)
			root.SetArgs([]string{"completion", shell})
			require.NoError(t, root.Execute())
			assert.NotEmpty(t, out.String())
		})
	}

	root := Root()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"completion", "tcsh"})
	assert.Error(t, root.Execute())
}
