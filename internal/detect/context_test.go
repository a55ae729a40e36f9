package detect

import (
	"encoding/json"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/stackscout/stackscout/internal/testutil"
)

func strOrAbsent(s *string) string {
	if s == nil {
		return "<absent>"
	}
	return *s
}

func TestContext_StaticProfiles(t *testing.T) {
	const absent = "<absent>"
	tests := []struct {
		name                           string
		files                          map[string]string
		install, build, test, artifact string
	}{
		{"go", testutil.GoProject(), "go mod download", "go build -o app .", "go test ./...", absent},
		{"rust", testutil.RustProject(), absent, "cargo build --release", "cargo test", absent},
		{"dotnet", testutil.DotnetProject(), "dotnet restore", "dotnet publish -c Release -o out", absent, "out"},
		{"composer", testutil.PHPComposerProject(), "composer install --no-dev --optimize-autoloader", absent, absent, absent},
		{"ruby", testutil.RubyProject(), "bundle install --frozen", absent, absent, absent},
		{"pipenv", testutil.PythonPipenvProject(), "pipenv install --deploy --ignore-pipfile", absent, absent, absent},
		{"pip", testutil.PythonPipProject(), "pip install -r requirements.txt", absent, absent, absent},
		{"poetry", testutil.PythonPoetryProject(), "poetry install --no-interaction --no-root", "poetry build", "poetry run pytest", absent},
		{"pdm", testutil.PythonPDMProject(), "pdm sync --no-editable", absent, "pdm run pytest", absent},
		{"deno", testutil.DenoProject(), "deno cache main.ts", absent, "deno test", absent},
		{"bun", testutil.NodeBunProject(), "bun install --frozen-lockfile", absent, absent, absent},
		{"pnpm", testutil.NodePNPMProject(), "pnpm i --frozen-lockfile", absent, absent, absent},
		{"yarn", testutil.NodeYarnProject(), "yarn install --frozen-lockfile", absent, absent, absent},
		{"elixir", testutil.ElixirProject(), "mix deps.get", absent, "mix test", absent},
		{"flutter", testutil.FlutterProject(), "flutter pub get", "flutter build apk --release", absent, absent},
		{"maven", testutil.JavaMavenProject(), absent, absent, absent, absent},
		{"docker", testutil.GoProjectWithDockerfile(), absent, dockerBuildCmd, absent, absent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := testutil.TempProject(t, tt.files)
			res, err := Resolve(dir)
			if err != nil {
				t.Fatalf("Resolve() error: %v", err)
			}
			c := res.Context
			if got := strOrAbsent(c.InstallCmd); got != tt.install {
				t.Errorf("InstallCmd = %q, want %q", got, tt.install)
			}
			if got := strOrAbsent(c.BuildCmd); got != tt.build {
				t.Errorf("BuildCmd = %q, want %q", got, tt.build)
			}
			if got := strOrAbsent(c.TestCmd); got != tt.test {
				t.Errorf("TestCmd = %q, want %q", got, tt.test)
			}
			if got := strOrAbsent(c.ArtifactPath); got != tt.artifact {
				t.Errorf("ArtifactPath = %q, want %q", got, tt.artifact)
			}
		})
	}
}

func TestContext_NodeNPMScripts(t *testing.T) {
	dir := testutil.TempProject(t, testutil.NodeNPMProject())
	c := buildContext(dir, StackNodeNPM)
	if strOrAbsent(c.BuildCmd) != "npm run build" {
		t.Errorf("BuildCmd = %q, want %q", strOrAbsent(c.BuildCmd), "npm run build")
	}
	if strOrAbsent(c.TestCmd) != "npm test" {
		t.Errorf("TestCmd = %q, want %q", strOrAbsent(c.TestCmd), "npm test")
	}

	dir = testutil.TempProject(t, testutil.NodeNPMBuildOnlyProject())
	c = buildContext(dir, StackNodeNPM)
	if c.BuildCmd == nil {
		t.Error("BuildCmd absent, want present when package.json mentions \"build\"")
	}
	if c.TestCmd != nil {
		t.Errorf("TestCmd = %q, want absent", *c.TestCmd)
	}
	if strOrAbsent(c.InstallCmd) != "npm ci --prefer-offline" {
		t.Errorf("InstallCmd = %q", strOrAbsent(c.InstallCmd))
	}
}

func TestContext_NodeNPMSubstringHeuristic(t *testing.T) {
	// A dependency key is enough to trigger the script marker.
	dir := testutil.TempProject(t, map[string]string{
		"package.json": `{"devDependencies": {"test": "1.0.0"}}`,
	})
	c := buildContext(dir, StackNodeNPM)
	if c.TestCmd == nil {
		t.Error("TestCmd absent, want present for a quoted \"test\" anywhere in package.json")
	}
	if c.BuildCmd != nil {
		t.Errorf("BuildCmd = %q, want absent", *c.BuildCmd)
	}
}

func TestContext_PythonUVTests(t *testing.T) {
	tests := []struct {
		name     string
		files    map[string]string
		wantTest bool
	}{
		{"tests directory", testutil.PythonUVProject(), true},
		{"test module", map[string]string{
			"pyproject.toml":         "[tool.uv]\n",
			"src/pkg/test_models.py": "def test_x(): pass\n",
		}, true},
		{"no tests", map[string]string{
			"pyproject.toml": "[tool.uv]\n",
			"main.py":        "print('hi')\n",
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := testutil.TempProject(t, tt.files)
			c := buildContext(dir, StackPythonUV)
			if (c.TestCmd != nil) != tt.wantTest {
				t.Errorf("TestCmd = %q, want present=%v", strOrAbsent(c.TestCmd), tt.wantTest)
			}
			if strOrAbsent(c.BuildCmd) != "uv build" {
				t.Errorf("BuildCmd = %q, want %q", strOrAbsent(c.BuildCmd), "uv build")
			}
			if strOrAbsent(c.InstallCmd) != "uv sync --frozen" {
				t.Errorf("InstallCmd = %q, want %q", strOrAbsent(c.InstallCmd), "uv sync --frozen")
			}
		})
	}
}

func TestContext_HasDockerIndependentOfStack(t *testing.T) {
	files := testutil.PythonPoetryProject()
	files["Dockerfile"] = "FROM python:3.12\n"
	dir := testutil.TempProject(t, files)

	c := buildContext(dir, StackPythonPoetry)
	if !c.HasDocker {
		t.Error("HasDocker = false, want true")
	}
	if strOrAbsent(c.BuildCmd) != "poetry build" {
		t.Errorf("BuildCmd = %q, want %q", strOrAbsent(c.BuildCmd), "poetry build")
	}
}

func TestProjectName(t *testing.T) {
	tests := []struct {
		dir  string
		want string
		tag  string
	}{
		{"My Cool App", "my-cool-app", "my-cool-app:latest"},
		{"My_Cool_App", "my-cool-app", "my_cool_app:latest"},
		{"api", "api", "api:latest"},
	}

	for _, tt := range tests {
		t.Run(tt.dir, func(t *testing.T) {
			dir := testutil.TempProjectNamed(t, tt.dir, testutil.GoProject())
			res, err := Resolve(dir)
			if err != nil {
				t.Fatalf("Resolve() error: %v", err)
			}
			if res.Context.ProjectName != tt.want {
				t.Errorf("ProjectName = %q, want %q", res.Context.ProjectName, tt.want)
			}
			if res.Context.DockerTag != tt.tag {
				t.Errorf("DockerTag = %q, want %q", res.Context.DockerTag, tt.tag)
			}
		})
	}
}

func TestDockerTag(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"api", "api:latest"},
		{"My_Cool_App", "my_cool_app:latest"},
		{"My Cool App", "my-cool-app:latest"},
		{"foo:bar", "foo:bar:latest"},
		{"svc@v2", "svc@v2:latest"},
	}
	for _, tt := range tests {
		if got := dockerTag(tt.name); got != tt.want {
			t.Errorf("dockerTag(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestContext_MapKeepsAbsentFields(t *testing.T) {
	dir := testutil.TempProject(t, testutil.RustProject())
	m := buildContext(dir, StackRust).Map()

	for _, key := range []string{"project_name", "has_docker", "docker_tag", "install_cmd", "build_cmd", "test_cmd", "artifact_path"} {
		if _, ok := m[key]; !ok {
			t.Errorf("Map() missing key %q", key)
		}
	}
	if m["install_cmd"] != nil {
		t.Errorf("install_cmd = %v, want nil", m["install_cmd"])
	}
	if m["build_cmd"] != "cargo build --release" {
		t.Errorf("build_cmd = %v", m["build_cmd"])
	}
}

func TestResult_EncodesAbsentAsNull(t *testing.T) {
	dir := testutil.TempProject(t, testutil.RustProject())
	res, err := Resolve(dir)
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}

	data, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("json.Marshal: %v", err)
	}
	if !strings.Contains(string(data), `"install_cmd":null`) {
		t.Errorf("JSON missing null install_cmd: %s", data)
	}

	out, err := yaml.Marshal(res)
	if err != nil {
		t.Fatalf("yaml.Marshal: %v", err)
	}
	if !strings.Contains(string(out), "install_cmd: null") {
		t.Errorf("YAML missing null install_cmd:\n%s", out)
	}
}
