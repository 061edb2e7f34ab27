package wizard

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/imamik/redstack/internal/config"
)

// Function variable for dependency injection in tests.
var confirmOverwrite = defaultConfirmOverwrite

// WriteContext writes the context to a YAML file with a descriptive header.
func WriteContext(rc config.ResourceContext, outputPath string) error {
	yamlBytes, err := yaml.Marshal(rc)
	if err != nil {
		return fmt.Errorf("failed to marshal context: %w", err)
	}

	var sb strings.Builder
	sb.WriteString(generateHeader(outputPath, time.Now()))
	sb.WriteString("\n")
	sb.Write(yamlBytes)

	if err := os.WriteFile(outputPath, []byte(sb.String()), 0600); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	return nil
}

// generateHeader creates the YAML file header comment.
func generateHeader(outputPath string, now time.Time) string {
	return fmt.Sprintf(`# redstack composition context
# Generated by: redstack init
# Generated at: %s
#
# Any value can be overridden with REDSTACK_* environment variables
# or --set key=value.
#
# Usage:
#   redstack synth -c %s
`, now.Format(time.RFC3339), outputPath)
}

// FileExists checks if a file exists at the given path.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// ConfirmOverwrite prompts the user to confirm overwriting an existing file.
func ConfirmOverwrite(path string) (bool, error) {
	return confirmOverwrite(path)
}

func defaultConfirmOverwrite(path string) (bool, error) {
	fmt.Printf("\nFile already exists: %s\n", path)
	fmt.Print("Overwrite? (y/n): ")

	var response string
	if _, err := fmt.Scanln(&response); err != nil {
		return false, err
	}

	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes", nil
}
