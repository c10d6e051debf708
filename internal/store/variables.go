package store

import "regexp"

var variablePattern = regexp.MustCompile(`\{\{(\w+)\}\}`)

// ExtractVariables returns the template variable names embedded in prompt
// content as {{name}} placeholders, in order of first appearance without
// duplicates.
func ExtractVariables(content string) []string {
	matches := variablePattern.FindAllStringSubmatch(content, -1)
	seen := make(map[string]struct{}, len(matches))
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		if _, ok := seen[m[1]]; ok {
			continue
		}
		seen[m[1]] = struct{}{}
		out = append(out, m[1])
	}
	return out
}
