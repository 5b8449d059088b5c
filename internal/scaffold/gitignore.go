package scaffold

import (
	"fmt"
	"os"
	"strings"
)

// mergeLines returns the existing file at path with every rule line of
// generated that it lacks appended. Comments and blank lines of generated
// are only used when there is no existing file.
func mergeLines(path string, generated []byte) ([]byte, error) {
	content, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return generated, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	present := make(map[string]bool)
	for _, l := range strings.Split(string(content), "\n") {
		present[strings.TrimSpace(l)] = true
	}

	var missing []string
	for _, l := range strings.Split(string(generated), "\n") {
		l = strings.TrimSpace(l)
		if l == "" || strings.HasPrefix(l, "#") || present[l] {
			continue
		}
		present[l] = true
		missing = append(missing, l)
	}
	if len(missing) == 0 {
		return content, nil
	}

	out := string(content)
	if len(out) > 0 && !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	return []byte(out + strings.Join(missing, "\n") + "\n"), nil
}
