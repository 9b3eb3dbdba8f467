package phoneme

import (
	"fmt"
	"os"
	"strings"
)

// LoadCorrectionsFile reads additional IPA corrections from a file.
// Supported format: one "from = to" pair per line, empty lines and
// lines starting with '#' are ignored. An empty right-hand side
// deletes the left-hand side from transcriptions.
func LoadCorrectionsFile(filename string) ([][2]string, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read corrections file: %w", err)
	}

	var pairs [][2]string
	for i, line := range strings.Split(string(content), "\n") {
		line = strings.TrimRight(line, "\r")
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("corrections file line %d: expected 'from = to', got %q", i+1, trimmed)
		}

		from := strings.TrimSpace(parts[0])
		to := strings.TrimSpace(parts[1])
		if from == "" {
			return nil, fmt.Errorf("corrections file line %d: empty left-hand side", i+1)
		}

		pairs = append(pairs, [2]string{from, to})
	}

	return pairs, nil
}
