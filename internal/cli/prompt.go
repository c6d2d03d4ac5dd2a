package cli

import (
	"bufio"
	"strings"

	"github.com/spf13/cobra"
)

// promptLine prints the prompt and reads one trimmed line of input.
func promptLine(cmd *cobra.Command, reader *bufio.Reader, prompt string) (string, error) {
	cmd.Print(prompt)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// confirm asks a yes/no question. Anything but "y" or "yes" is a no.
func confirm(cmd *cobra.Command, reader *bufio.Reader, prompt string) (bool, error) {
	answer, err := promptLine(cmd, reader, prompt+" (y/n): ")
	if err != nil {
		return false, err
	}
	answer = strings.ToLower(answer)
	return answer == "y" || answer == "yes", nil
}
