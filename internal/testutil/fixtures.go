// Package testutil provides test helper utilities for stackscout tests.
package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TempProject creates a temporary directory with the given files and returns its path.
// Files is a map of relative path -> content. A path ending in "/" creates an
// empty directory. The directory is automatically cleaned up when the test finishes.
func TempProject(t *testing.T, files map[string]string) string {
	t.Helper()
	return TempProjectNamed(t, "project", files)
}

// TempProjectNamed is TempProject with control over the repository directory name.
func TempProjectNamed(t *testing.T, name string, files map[string]string) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), name)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("creating %s: %v", name, err)
	}

	for relPath, content := range files {
		absPath := filepath.Join(dir, relPath)
		if strings.HasSuffix(relPath, "/") {
			if err := os.MkdirAll(absPath, 0755); err != nil {
				t.Fatalf("creating directory %s: %v", relPath, err)
			}
			continue
		}
		if err := os.MkdirAll(filepath.Dir(absPath), 0755); err != nil {
			t.Fatalf("creating directory for %s: %v", relPath, err)
		}
		if err := os.WriteFile(absPath, []byte(content), 0644); err != nil {
			t.Fatalf("writing %s: %v", relPath, err)
		}
	}

	return dir
}

// packageJSON renders a package.json with the given scripts.
func packageJSON(scripts map[string]string) string {
	pkg := map[string]interface{}{
		"name":    "test-project",
		"version": "1.0.0",
		"dependencies": map[string]string{
			"react": "^18.0.0",
		},
	}
	if len(scripts) > 0 {
		pkg["scripts"] = scripts
	}
	data, _ := json.MarshalIndent(pkg, "", "  ")
	return string(data)
}

// NodeNPMProject returns a package.json-only project with build and test scripts.
func NodeNPMProject() map[string]string {
	return map[string]string{
		"package.json": packageJSON(map[string]string{
			"build": "tsc",
			"test":  "jest",
		}),
		"src/index.ts": `export const main = () => console.log("hello");`,
	}
}

// NodeNPMBuildOnlyProject returns a package.json declaring a build script but no test script.
func NodeNPMBuildOnlyProject() map[string]string {
	return map[string]string{
		"package.json": packageJSON(map[string]string{"build": "tsc"}),
	}
}

// NodeBunProject returns a Bun project that also has a package.json.
func NodeBunProject() map[string]string {
	return map[string]string{
		"package.json": packageJSON(map[string]string{"test": "bun test"}),
		"bun.lockb":    "\x00\x01binary",
	}
}

// NodePNPMProject returns a pnpm workspace.
func NodePNPMProject() map[string]string {
	return map[string]string{
		"package.json":        packageJSON(nil),
		"pnpm-workspace.yaml": "packages:\n  - 'apps/*'\n",
	}
}

// NodeYarnProject returns a Yarn project.
func NodeYarnProject() map[string]string {
	return map[string]string{
		"package.json": packageJSON(map[string]string{"build": "next build"}),
		"yarn.lock":    "# yarn lockfile v1\n",
	}
}

// DenoProject returns a Deno project with its config in a subdirectory.
func DenoProject() map[string]string {
	return map[string]string{
		"app/deno.jsonc": `{"tasks": {"dev": "deno run main.ts"}}`,
		"app/main.ts":    `console.log("hi");`,
	}
}

// PythonUVProject returns a uv-managed project with a tests directory.
func PythonUVProject() map[string]string {
	return map[string]string{
		"pyproject.toml":      "[project]\nname = \"api\"\n\n[tool.uv]\ndev-dependencies = [\"pytest\"]\n",
		"src/api/__init__.py": "",
		"tests/":              "",
	}
}

// PythonPDMProject returns a PDM-managed project.
func PythonPDMProject() map[string]string {
	return map[string]string{
		"pyproject.toml": "[project]\nname = \"svc\"\n\n[tool.pdm]\ndistribution = true\n",
	}
}

// PythonPoetryProject returns a Poetry project whose section header is upper case.
func PythonPoetryProject() map[string]string {
	return map[string]string{
		"pyproject.toml": "[TOOL.POETRY]\nname = \"test\"\n\n[tool.ruff]\nline-length = 88\n",
		"app.py":         "from flask import Flask\napp = Flask(__name__)\n",
	}
}

// PythonPipenvProject returns a Pipenv project.
func PythonPipenvProject() map[string]string {
	return map[string]string{
		"Pipfile": "[packages]\nrequests = \"*\"\n",
	}
}

// PythonPipProject returns a requirements-based project with the file nested.
func PythonPipProject() map[string]string {
	return map[string]string{
		"deploy/requirements-dev.txt": "django>=4.0\n",
		"manage.py":                   "#!/usr/bin/env python\nimport django\n",
	}
}

// GoProject returns file contents for a minimal Go project.
func GoProject() map[string]string {
	return map[string]string{
		"go.mod":  "module example.com/test\n\ngo 1.23\n",
		"main.go": "package main\n\nfunc main() {}\n",
	}
}

// GoProjectWithDockerfile returns a Go project that is built through its Dockerfile.
func GoProjectWithDockerfile() map[string]string {
	files := GoProject()
	files["Dockerfile"] = "FROM golang:1.23\nCOPY . .\nRUN go build -o /app .\n"
	return files
}

// RustProject returns file contents for a minimal Rust project.
func RustProject() map[string]string {
	return map[string]string{
		"Cargo.toml":  "[package]\nname = \"test\"\nversion = \"0.1.0\"\n\n[dependencies]\naxum = \"0.7\"\n",
		"src/main.rs": "fn main() {}\n",
	}
}

// JavaMavenProject returns file contents for a Maven-based Java project.
func JavaMavenProject() map[string]string {
	return map[string]string{
		"pom.xml": `<project>
  <modelVersion>4.0.0</modelVersion>
  <groupId>com.test</groupId>
  <artifactId>test</artifactId>
</project>`,
		"src/main/java/App.java": "public class App {}\n",
	}
}

// JavaGradleKtsProject returns a Kotlin DSL Gradle project with a nested module.
func JavaGradleKtsProject() map[string]string {
	return map[string]string{
		"app/build.gradle.kts":    "plugins { kotlin(\"jvm\") version \"1.9.0\" }\n",
		"src/main/kotlin/Main.kt": "fun main() {}\n",
	}
}

// DotnetProject returns a .NET project with the project file in a subdirectory.
func DotnetProject() map[string]string {
	return map[string]string{
		"src/Api/Api.csproj": "<Project Sdk=\"Microsoft.NET.Sdk.Web\"></Project>\n",
		"src/Api/Program.cs": "var app = WebApplication.Create();\n",
	}
}

// ElixirProject returns a Mix project.
func ElixirProject() map[string]string {
	return map[string]string{"mix.exs": "defmodule App.MixProject do\nend\n"}
}

// RubyProject returns a Bundler project.
func RubyProject() map[string]string {
	return map[string]string{"Gemfile": "source \"https://rubygems.org\"\ngem \"rails\"\n"}
}

// FlutterProject returns a Flutter app.
func FlutterProject() map[string]string {
	return map[string]string{"pubspec.yaml": "name: app\ndependencies:\n  flutter:\n    sdk: flutter\n"}
}

// PHPComposerProject returns a Composer project.
func PHPComposerProject() map[string]string {
	return map[string]string{"composer.json": `{"require": {"php": ">=8.2"}}`}
}

// EmptyProject returns an empty file map (greenfield).
func EmptyProject() map[string]string {
	return map[string]string{}
}

// DocsOnlyProject returns a repository with nothing buildable in it.
func DocsOnlyProject() map[string]string {
	return map[string]string{
		"README.md":     "# notes\n",
		"docs/index.md": "hello\n",
		"sub/go.mod":    "module nested\n",
		"web/Gemfile":   "source \"https://rubygems.org\"\n",
	}
}
