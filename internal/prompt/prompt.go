// Package prompt formats user prompt templates by substituting named
// placeholders with form input values.
package prompt

import (
	"regexp"
	"strings"

	"bit-tools/internal/common/errors"
)

var placeholderPattern = regexp.MustCompile(`\{([a-zA-Z0-9_]+)\}`)

// Format substitutes every {placeholder} in the template with the matching
// input value. A placeholder with no corresponding input is a configuration
// bug and yields a TEMPLATE_ERROR.
func Format(template string, inputs map[string]string) (string, error) {
	var missing string

	formatted := placeholderPattern.ReplaceAllStringFunc(template, func(match string) string {
		key := match[1 : len(match)-1]
		value, ok := inputs[key]
		if !ok {
			if missing == "" {
				missing = key
			}
			return match
		}
		return value
	})

	if missing != "" {
		return "", errors.NewTemplateError(missing)
	}
	return strings.TrimSpace(formatted), nil
}

// Placeholders returns the distinct placeholder names of a template in
// first-appearance order.
func Placeholders(template string) []string {
	seen := map[string]bool{}
	var names []string
	for _, m := range placeholderPattern.FindAllStringSubmatch(template, -1) {
		if !seen[m[1]] {
			seen[m[1]] = true
			names = append(names, m[1])
		}
	}
	return names
}
