// Package detect classifies a repository into exactly one build stack and
// synthesizes the CI commands for it.
// This file provides Resolve, the top-level operation, and Explain.
package detect

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// ErrInvalidInput is matched by errors returned for a root that does not
// exist or is not a directory.
var ErrInvalidInput = errors.New("invalid input")

// InvalidInputError carries the offending path.
type InvalidInputError struct {
	Path string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("%s does not exist or is not a directory", e.Path)
}

// Is makes errors.Is(err, ErrInvalidInput) hold.
func (e *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}

// Result is the outcome of resolving one repository.
type Result struct {
	Stack    string  `json:"stack" yaml:"stack"`
	Template string  `json:"template" yaml:"template"`
	Context  Context `json:"context" yaml:"context"`
}

// Evidence records whether one catalog predicate matched.
type Evidence struct {
	Stack   string `json:"stack" yaml:"stack"`
	Matched bool   `json:"matched" yaml:"matched"`
	Winner  bool   `json:"winner" yaml:"winner"`
}

// Resolver runs the priority table against repositories.
// The zero value is not usable; call NewResolver.
type Resolver struct {
	logger *zap.Logger
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithLogger traces predicate evaluation at debug level.
func WithLogger(l *zap.Logger) Option {
	return func(r *Resolver) {
		if l != nil {
			r.logger = l
		}
	}
}

// NewResolver returns a Resolver with the given options applied.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var defaultResolver = NewResolver()

// Resolve classifies the repository at root with the default resolver.
func Resolve(root string) (Result, error) {
	return defaultResolver.Resolve(root)
}

// Explain evaluates every predicate against root with the default resolver.
func Explain(root string) ([]Evidence, error) {
	return defaultResolver.Explain(root)
}

// Resolve evaluates the priority table in order and returns the first stack
// whose evidence is present, or the unknown stack if none is.
func (r *Resolver) Resolve(root string) (Result, error) {
	if err := CheckRoot(root); err != nil {
		return Result{}, err
	}

	for _, s := range priority {
		if !s.Detect(root) {
			r.logger.Debug("stack rejected", zap.String("stack", s.Name))
			continue
		}
		r.logger.Debug("stack matched", zap.String("stack", s.Name), zap.String("template", s.Template))
		return Result{
			Stack:    s.Name,
			Template: s.Template,
			Context:  buildContext(root, s.Name),
		}, nil
	}

	r.logger.Debug("no stack matched", zap.String("root", root))
	return Result{
		Stack:    StackUnknown,
		Template: UnknownTemplate,
		Context:  buildContext(root, StackUnknown),
	}, nil
}

// Explain evaluates every predicate without short-circuiting. The first
// matching entry is marked as the winner, which is the stack Resolve picks.
func (r *Resolver) Explain(root string) ([]Evidence, error) {
	if err := CheckRoot(root); err != nil {
		return nil, err
	}

	out := make([]Evidence, 0, len(priority))
	won := false
	for _, s := range priority {
		ev := Evidence{Stack: s.Name, Matched: s.Detect(root)}
		if ev.Matched && !won {
			ev.Winner = true
			won = true
		}
		out = append(out, ev)
	}
	return out, nil
}

// CheckRoot returns an *InvalidInputError unless root is an existing directory.
func CheckRoot(root string) error {
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return &InvalidInputError{Path: root}
	}
	return nil
}

// RealRoot resolves symlinks in root. filepath.WalkDir does not descend into
// a root that is itself a symlink, so walkers start from the resolved path.
// The path is returned unchanged when it cannot be resolved.
func RealRoot(root string) string {
	if resolved, err := filepath.EvalSymlinks(root); err == nil {
		return resolved
	}
	return root
}
