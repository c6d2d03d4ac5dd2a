package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func promptTestCmd(out *bytes.Buffer) *cobra.Command {
	cmd := &cobra.Command{}
	cmd.SetOut(out)
	return cmd
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"y is yes", "y\n", true},
		{"yes is yes", "yes\n", true},
		{"uppercase accepted", "Y\n", true},
		{"n is no", "n\n", false},
		{"anything else is no", "sure\n", false},
		{"empty line is no", "\n", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			cmd := promptTestCmd(&out)
			reader := bufio.NewReader(strings.NewReader(tt.input))

			got, err := confirm(cmd, reader, "Continue?")
			require.NoError(t, err)

			assert.Equal(t, tt.want, got)
			assert.Equal(t, "Continue? (y/n): ", out.String())
		})
	}
}

func TestPromptLine(t *testing.T) {
	t.Run("trims whitespace", func(t *testing.T) {
		var out bytes.Buffer
		cmd := promptTestCmd(&out)
		reader := bufio.NewReader(strings.NewReader("  somestreamer  \n"))

		got, err := promptLine(cmd, reader, "Channel: ")
		require.NoError(t, err)

		assert.Equal(t, "somestreamer", got)
	})

	t.Run("sequential prompts share the reader", func(t *testing.T) {
		var out bytes.Buffer
		cmd := promptTestCmd(&out)
		reader := bufio.NewReader(strings.NewReader("first\nsecond\n"))

		a, err := promptLine(cmd, reader, "> ")
		require.NoError(t, err)
		b, err := promptLine(cmd, reader, "> ")
		require.NoError(t, err)

		assert.Equal(t, "first", a)
		assert.Equal(t, "second", b)
	})

	t.Run("eof with no input errors", func(t *testing.T) {
		var out bytes.Buffer
		cmd := promptTestCmd(&out)
		reader := bufio.NewReader(strings.NewReader(""))

		_, err := promptLine(cmd, reader, "> ")
		assert.Error(t, err)
	})
}
