// context.go builds the template context for a resolved stack.
package detect

import (
	"path/filepath"
	"strings"

	"github.com/distribution/reference"
)

// Context is the data a pipeline template is rendered with.
// Nil command fields mean the phase does not apply to the stack.
type Context struct {
	ProjectName  string  `json:"project_name" yaml:"project_name"`
	HasDocker    bool    `json:"has_docker" yaml:"has_docker"`
	DockerTag    string  `json:"docker_tag" yaml:"docker_tag"`
	InstallCmd   *string `json:"install_cmd" yaml:"install_cmd"`
	BuildCmd     *string `json:"build_cmd" yaml:"build_cmd"`
	TestCmd      *string `json:"test_cmd" yaml:"test_cmd"`
	ArtifactPath *string `json:"artifact_path" yaml:"artifact_path"`
}

// Map returns the context keyed by template field name. Every field is
// present; absent commands map to nil.
func (c Context) Map() map[string]any {
	return map[string]any{
		"project_name":  c.ProjectName,
		"has_docker":    c.HasDocker,
		"docker_tag":    c.DockerTag,
		"install_cmd":   deref(c.InstallCmd),
		"build_cmd":     deref(c.BuildCmd),
		"test_cmd":      deref(c.TestCmd),
		"artifact_path": deref(c.ArtifactPath),
	}
}

func deref(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

// buildContext synthesizes the context for stack. Unknown stacks, including
// StackUnknown, get the generic fields only.
func buildContext(root, stack string) Context {
	name := repoName(root)
	ctx := Context{
		ProjectName: ProjectName(name),
		HasDocker:   detectDocker(root),
		DockerTag:   dockerTag(name),
	}
	if p, ok := profiles[stack]; ok {
		p.apply(root, &ctx)
	}
	return ctx
}

// repoName returns the directory name of root, resolving "." and friends.
func repoName(root string) string {
	if abs, err := filepath.Abs(root); err == nil {
		root = abs
	}
	return filepath.Base(root)
}

// ProjectName lowercases name and folds spaces and underscores to hyphens.
func ProjectName(name string) string {
	return strings.NewReplacer(" ", "-", "_", "-").Replace(strings.ToLower(name))
}

// dockerTag returns "<name>:latest" for the lowercased directory name. Names
// that are not valid image references fall back to the project name, as do
// names containing ':' or '@', which the reference parser would read as a
// tag or digest.
func dockerTag(name string) string {
	if strings.ContainsAny(name, ":@") {
		return ProjectName(name) + ":latest"
	}
	for _, candidate := range []string{strings.ToLower(name), ProjectName(name)} {
		named, err := reference.ParseNormalizedNamed(candidate)
		if err != nil {
			continue
		}
		tagged, err := reference.WithTag(named, "latest")
		if err != nil {
			continue
		}
		return reference.FamiliarString(tagged)
	}
	return ProjectName(name) + ":latest"
}
