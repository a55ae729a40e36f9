// stacks.go holds the stack catalog in priority order.
package detect

// Stack names. Unknown is returned when no predicate matches.
const (
	StackDocker       = "docker"
	StackNodeBun      = "node-bun"
	StackNodePNPM     = "node-pnpm"
	StackNodeYarn     = "node-yarn"
	StackNodeNPM      = "node-npm"
	StackDeno         = "deno"
	StackPythonUV     = "python-uv"
	StackPythonPDM    = "python-pdm"
	StackPythonPoetry = "python-poetry"
	StackPythonPipenv = "python-pipenv"
	StackPythonPip    = "python-pip"
	StackElixir       = "elixir"
	StackRuby         = "ruby"
	StackFlutter      = "flutter"
	StackJavaMaven    = "java-maven"
	StackJavaGradle   = "java-gradle"
	StackDotnet       = "dotnet"
	StackGo           = "go"
	StackRust         = "rust"
	StackPHPComposer  = "php-composer"
	StackUnknown      = "unknown"
)

// UnknownTemplate is the template key of the fallback result.
const UnknownTemplate = "unknown.yml.j2"

// Predicate examines a repository root and reports whether the stack's
// evidence is present. Predicates never fail; unreadable evidence is absent.
type Predicate func(root string) bool

// Stack is one catalog entry.
type Stack struct {
	Name     string
	Template string
	Detect   Predicate
}

// priority is evaluated in order; first match wins.
//
// Docker beats every language stack. Within Node, the lockfile-specific
// managers come before npm, whose predicate only holds when none of their
// lockfiles is present. The three pyproject tools are ordered for
// determinism only; pipenv and pip follow as the broader fallbacks.
var priority = []Stack{
	{StackDocker, "docker.yml.j2", detectDocker},

	{StackNodeBun, "node-bun.yml.j2", detectNodeBun},
	{StackNodePNPM, "node-pnpm.yml.j2", detectNodePNPM},
	{StackNodeYarn, "node-yarn.yml.j2", detectNodeYarn},
	{StackNodeNPM, "node-npm.yml.j2", detectNodeNPM},
	{StackDeno, "deno.yml.j2", detectDeno},

	{StackPythonUV, "python-uv.yml.j2", detectPythonUV},
	{StackPythonPDM, "python-pdm.yml.j2", detectPythonPDM},
	{StackPythonPoetry, "python-poetry.yml.j2", detectPythonPoetry},
	{StackPythonPipenv, "python-pipenv.yml.j2", detectPythonPipenv},
	{StackPythonPip, "python-pip.yml.j2", detectPythonPip},

	{StackElixir, "elixir.yml.j2", detectElixir},
	{StackRuby, "ruby.yml.j2", detectRuby},
	{StackFlutter, "flutter.yml.j2", detectFlutter},

	{StackJavaMaven, "java-maven.yml.j2", detectJavaMaven},
	{StackJavaGradle, "java-gradle.yml.j2", detectJavaGradle},
	{StackDotnet, "dotnet.yml.j2", detectDotnet},

	{StackGo, "go.yml.j2", detectGo},
	{StackRust, "rust.yml.j2", detectRust},
	{StackPHPComposer, "php-composer.yml.j2", detectPHPComposer},
}

// Stacks returns a copy of the catalog in priority order.
func Stacks() []Stack {
	out := make([]Stack, len(priority))
	copy(out, priority)
	return out
}

// Lookup returns the catalog entry for name.
func Lookup(name string) (Stack, bool) {
	for _, s := range priority {
		if s.Name == name {
			return s, true
		}
	}
	return Stack{}, false
}
