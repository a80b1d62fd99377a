package corpus

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// splitFrontmatter separates a leading frontmatter block (a "---" line
// at position 0 closed by another "---" line) from the body and parses
// it as a flat string map. Scalar values are stringified; lists of
// scalars are joined with ", "; anything deeper stays an opaque string.
// If the block is not valid YAML it degrades to first-colon splitting.
// Without a complete block the whole content is body.
func splitFrontmatter(content string) (map[string]string, string) {
	const delim = "---\n"
	if !strings.HasPrefix(content, delim) {
		return nil, content
	}
	end := strings.Index(content[len(delim):], "\n---\n")
	if end < 0 {
		return nil, content
	}
	block := content[len(delim) : len(delim)+end]
	body := content[len(delim)+end+len("\n---\n"):]

	var raw map[string]any
	if err := yaml.Unmarshal([]byte(block), &raw); err != nil || raw == nil {
		return colonSplit(block), body
	}

	fm := make(map[string]string, len(raw))
	for k, v := range raw {
		fm[k] = flattenValue(v)
	}
	return fm, body
}

func flattenValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case []any:
		parts := make([]string, 0, len(t))
		for _, item := range t {
			parts = append(parts, flattenValue(item))
		}
		return strings.Join(parts, ", ")
	default:
		return fmt.Sprint(t)
	}
}

// colonSplit is the degraded parse for frontmatter that is not valid
// YAML: one "key: value" pair per line, quotes stripped from values.
func colonSplit(block string) map[string]string {
	fm := make(map[string]string)
	for _, line := range strings.Split(block, "\n") {
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		fm[key] = strings.Trim(strings.TrimSpace(value), `"'`)
	}
	return fm
}
