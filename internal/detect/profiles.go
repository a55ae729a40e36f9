// profiles.go maps each stack to the commands a CI pipeline runs for it.
package detect

import "strings"

// dockerBuildCmd leaves the image tag to the pipeline's metadata step.
const dockerBuildCmd = "docker build -t ${{ steps.meta.outputs.tags }} ."

// profile is the static command set of one stack. Empty strings are absent.
type profile struct {
	Install  string
	Build    string
	Test     string
	Artifact string

	// buildIf and testIf, when set, must hold for Build and Test to be emitted.
	buildIf Predicate
	testIf  Predicate
}

var profiles = map[string]profile{
	StackDocker: {Build: dockerBuildCmd},

	StackNodeNPM: {
		Install: "npm ci --prefer-offline",
		Build:   "npm run build",
		Test:    "npm test",
		buildIf: packageJSONMentions(`"build"`),
		testIf:  packageJSONMentions(`"test"`),
	},
	StackNodeYarn: {Install: "yarn install --frozen-lockfile"},
	StackNodePNPM: {Install: "pnpm i --frozen-lockfile"},
	StackNodeBun:  {Install: "bun install --frozen-lockfile"},
	StackDeno:     {Install: "deno cache main.ts", Test: "deno test"},

	StackPythonUV: {
		Install: "uv sync --frozen",
		Build:   "uv build",
		Test:    "uv run pytest",
		buildIf: detectPythonUV,
		testIf:  hasPythonTests,
	},
	StackPythonPDM: {Install: "pdm sync --no-editable", Test: "pdm run pytest"},
	StackPythonPoetry: {
		Install: "poetry install --no-interaction --no-root",
		Build:   "poetry build",
		Test:    "poetry run pytest",
	},
	StackPythonPipenv: {Install: "pipenv install --deploy --ignore-pipfile"},
	StackPythonPip:    {Install: "pip install -r requirements.txt"},

	StackGo:   {Install: "go mod download", Build: "go build -o app .", Test: "go test ./..."},
	StackRust: {Build: "cargo build --release", Test: "cargo test"},
	StackDotnet: {
		Install:  "dotnet restore",
		Build:    "dotnet publish -c Release -o out",
		Artifact: "out",
	},
	StackPHPComposer: {Install: "composer install --no-dev --optimize-autoloader"},
	StackElixir:      {Install: "mix deps.get", Test: "mix test"},
	StackRuby:        {Install: "bundle install --frozen"},
	StackFlutter:     {Install: "flutter pub get", Build: "flutter build apk --release"},
}

// packageJSONMentions is a raw substring check on package.json, not a JSON
// parse: a dependency named "test-utils" also counts as a "test" script.
func packageJSONMentions(marker string) Predicate {
	return func(root string) bool {
		return strings.Contains(readFile(root, "package.json"), marker)
	}
}

func hasPythonTests(root string) bool {
	return hasMatch(root, "*test*.py") || hasDirNamed(root, "tests")
}

// apply fills the command fields of ctx from p.
func (p profile) apply(root string, ctx *Context) {
	ctx.InstallCmd = optional(p.Install)
	if p.buildIf == nil || p.buildIf(root) {
		ctx.BuildCmd = optional(p.Build)
	}
	if p.testIf == nil || p.testIf(root) {
		ctx.TestCmd = optional(p.Test)
	}
	ctx.ArtifactPath = optional(p.Artifact)
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
