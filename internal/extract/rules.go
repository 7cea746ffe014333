// internal/extract/rules.go
package extract

import "regexp"

// rule pairs a compiled pattern with a handler. The handler receives the
// submatch slice (match[0] is the full matched text) and may reject the
// candidate, in which case evaluation continues with the next rule.
type rule[T any] struct {
	pattern *regexp.Regexp
	handle  func(match []string) (T, bool)
}

// firstMatch evaluates rules in priority order and returns the result of the
// first rule whose pattern matches and whose handler accepts the candidate.
// A matched-but-rejected candidate does not stop the cascade.
func firstMatch[T any](rules []rule[T], text string) (T, bool) {
	for _, r := range rules {
		m := r.pattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		if out, ok := r.handle(m); ok {
			return out, true
		}
	}
	var zero T
	return zero, false
}

// captured is the common handler for rules that simply want one capture
// group back, trimmed of surrounding whitespace by the caller if needed.
func captured(group int) func(match []string) (string, bool) {
	return func(match []string) (string, bool) {
		if group >= len(match) || match[group] == "" {
			return "", false
		}
		return match[group], true
	}
}
