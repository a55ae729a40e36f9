// Package envscan finds environment files that should not be committed and
// reads documented variables out of example env files.
package envscan

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/moby/patternmatcher"

	"github.com/stackscout/stackscout/internal/detect"
)

const exampleSuffix = ".example"

// Report is the result of scanning one repository.
type Report struct {
	Danger     []string                     `json:"danger" yaml:"danger"`
	Example    []string                     `json:"example" yaml:"example"`
	Variables  map[string]map[string]string `json:"variables" yaml:"variables"`
	Suspicious []Finding                    `json:"suspicious,omitempty" yaml:"suspicious,omitempty"`
}

type options struct {
	exclude     []string
	flagSecrets bool
}

// Option configures Scan.
type Option func(*options)

// WithExclude skips paths matching dockerignore-style patterns, relative to
// the repository root (e.g. "node_modules", "**/vendor").
func WithExclude(patterns ...string) Option {
	return func(o *options) {
		o.exclude = append(o.exclude, patterns...)
	}
}

// WithSecretFindings reports example variables whose value looks like a real credential.
func WithSecretFindings(enabled bool) Option {
	return func(o *options) {
		o.flagSecrets = enabled
	}
}

// Scan walks root and classifies env files. Root must be a directory.
func Scan(root string, opts ...Option) (Report, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if err := detect.CheckRoot(root); err != nil {
		return Report{}, err
	}

	var matcher *patternmatcher.PatternMatcher
	if len(o.exclude) > 0 {
		pm, err := patternmatcher.New(o.exclude)
		if err != nil {
			return Report{}, fmt.Errorf("compiling exclude patterns: %w", err)
		}
		matcher = pm
	}

	report := Report{
		Danger:    []string{},
		Example:   []string{},
		Variables: map[string]map[string]string{},
	}

	// Walk the resolved root; reported paths stay under root as given.
	walkRoot := detect.RealRoot(root)
	err := filepath.WalkDir(walkRoot, func(walked string, d fs.DirEntry, err error) error {
		if err != nil {
			if d != nil && d.IsDir() && walked != walkRoot {
				return fs.SkipDir
			}
			return nil
		}
		if walked == walkRoot {
			return nil
		}
		rel, err := filepath.Rel(walkRoot, walked)
		if err != nil {
			return nil
		}
		if matcher != nil {
			if skip, _ := matcher.MatchesOrParentMatches(filepath.ToSlash(rel)); skip {
				if d.IsDir() {
					return fs.SkipDir
				}
				return nil
			}
		}
		if !d.Type().IsRegular() {
			return nil
		}

		path := filepath.Join(root, rel)
		name := d.Name()
		switch {
		case IsExample(name):
			report.Example = append(report.Example, path)
			vars := ParseExample(path)
			report.Variables[name] = vars
			if o.flagSecrets {
				report.Suspicious = append(report.Suspicious, inspect(path, vars)...)
			}
		case IsDangerous(name):
			report.Danger = append(report.Danger, path)
		}
		return nil
	})
	if err != nil {
		return Report{}, fmt.Errorf("scanning %s: %w", root, err)
	}

	return report, nil
}

// IsDangerous reports whether a file name looks like a real env file:
// "*.env" or "*.env.<suffix>", excluding example files.
func IsDangerous(name string) bool {
	if strings.HasSuffix(name, exampleSuffix) {
		return false
	}
	if strings.HasSuffix(name, ".env") {
		return true
	}
	i := strings.Index(name, ".env.")
	return i >= 0 && len(name) > i+len(".env.")
}

// IsExample reports whether a file name is "*.env.example" or "*.env.<name>.example".
func IsExample(name string) bool {
	if !strings.HasSuffix(name, exampleSuffix) {
		return false
	}
	base := strings.TrimSuffix(name, exampleSuffix)
	return strings.HasSuffix(base, ".env") || strings.Contains(base, ".env.")
}
