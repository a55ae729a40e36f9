// secrets.go flags example values that look like committed credentials.
package envscan

import (
	"regexp"
	"sort"
	"strings"
)

// Finding describes one suspicious value in an example env file.
type Finding struct {
	File  string `json:"file" yaml:"file"`
	Key   string `json:"key" yaml:"key"`
	Rule  string `json:"rule" yaml:"rule"`
	Match string `json:"match" yaml:"match"`
}

var valueRules = []struct {
	id string
	re *regexp.Regexp
}{
	{"private_key", regexp.MustCompile(`-----BEGIN ([A-Z ]+ )?PRIVATE KEY-----`)},
	{"jwt", regexp.MustCompile(`\beyJ[a-zA-Z0-9_-]{10,}\.[a-zA-Z0-9_-]{10,}\.[a-zA-Z0-9_-]{10,}\b`)},
	{"github_token", regexp.MustCompile(`\b(ghp|gho|ghu|ghs|ghr)_[A-Za-z0-9]{20,}\b`)},
	{"aws_access_key", regexp.MustCompile(`\bAKIA[0-9A-Z]{16}\b`)},
}

// inspect returns findings for vars, ordered by key.
func inspect(file string, vars map[string]string) []Finding {
	keys := make([]string, 0, len(vars))
	for k := range vars {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var findings []Finding
	for _, k := range keys {
		if rule, ok := classify(vars[k]); ok {
			findings = append(findings, Finding{File: file, Key: k, Rule: rule, Match: Redact(vars[k])})
		}
	}
	return findings
}

// classify names the first rule v trips, if any.
func classify(v string) (string, bool) {
	v = strings.Trim(strings.TrimSpace(v), `"'`)
	if v == "" {
		return "", false
	}
	for _, r := range valueRules {
		if r.re.MatchString(v) {
			return r.id, true
		}
	}
	if looksRandom(v) {
		return "high_entropy", true
	}
	return "", false
}

// looksRandom matches long mixed alphanumeric strings such as API keys.
// Placeholders like "changeme" or "your-api-key-here" stay below the bar.
func looksRandom(v string) bool {
	if len(v) < 32 || strings.Contains(v, ".") || strings.Count(v, "-") >= 4 {
		return false
	}
	hasLetter, hasDigit := false, false
	for _, r := range v {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
			hasLetter = true
		case r >= '0' && r <= '9':
			hasDigit = true
		case r == '_' || r == '-' || r == '=' || r == '/' || r == '+':
		default:
			return false
		}
	}
	return hasLetter && hasDigit
}

// Redact keeps only the ends of v.
func Redact(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return ""
	}
	if len(v) <= 8 {
		return "REDACTED"
	}
	return v[:3] + "..." + v[len(v)-3:]
}
