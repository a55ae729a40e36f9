// predicates.go contains one evidence predicate per supported stack.
package detect

const pyproject = "pyproject.toml"

// detectDocker wins over every language stack, so it is also re-checked for
// has_docker on every context.
func detectDocker(root string) bool {
	return fileExists(root, "Dockerfile") || fileExists(root, "dockerfile") ||
		hasMatch(root, "{Dockerfile,dockerfile}")
}

// ---------------------------------------------------------------------------
// Node.js
// ---------------------------------------------------------------------------

// detectNodeNPM is the Node default: package.json without any other
// package manager's lockfile next to it.
func detectNodeNPM(root string) bool {
	return fileExists(root, "package.json") && !(fileExists(root, "yarn.lock") ||
		fileExists(root, "pnpm-lock.yaml") ||
		fileExists(root, "bun.lockb"))
}

func detectNodeYarn(root string) bool {
	return fileExists(root, "yarn.lock")
}

func detectNodePNPM(root string) bool {
	return fileExists(root, "pnpm-lock.yaml") || fileExists(root, "pnpm-workspace.yaml")
}

func detectNodeBun(root string) bool {
	return fileExists(root, "bun.lockb")
}

func detectDeno(root string) bool {
	return hasMatch(root, "deno.json*") || hasMatch(root, "import_map.json")
}

// ---------------------------------------------------------------------------
// Python
// ---------------------------------------------------------------------------

func detectPythonUV(root string) bool {
	return manifestDeclaresTool(root, pyproject, "uv")
}

func detectPythonPDM(root string) bool {
	return manifestDeclaresTool(root, pyproject, "pdm")
}

func detectPythonPoetry(root string) bool {
	return manifestDeclaresTool(root, pyproject, "poetry")
}

func detectPythonPipenv(root string) bool {
	return fileExists(root, "Pipfile") || fileExists(root, "Pipfile.lock")
}

func detectPythonPip(root string) bool {
	return hasMatch(root, "requirements*.txt") ||
		fileExists(root, "setup.py") ||
		fileExists(root, "setup.cfg")
}

// ---------------------------------------------------------------------------
// Everything else
// ---------------------------------------------------------------------------

func detectElixir(root string) bool { return fileExists(root, "mix.exs") }

func detectRuby(root string) bool { return fileExists(root, "Gemfile") }

func detectFlutter(root string) bool { return fileExists(root, "pubspec.yaml") }

func detectJavaMaven(root string) bool { return fileExists(root, "pom.xml") }

// detectJavaGradle covers both the Groovy and Kotlin DSLs.
func detectJavaGradle(root string) bool {
	return hasMatch(root, "*.gradle") ||
		hasMatch(root, "*.gradle.kts") ||
		fileExists(root, "gradlew") ||
		fileExists(root, "settings.gradle.kts")
}

func detectDotnet(root string) bool {
	return hasMatch(root, "*.{csproj,fsproj}")
}

func detectGo(root string) bool { return fileExists(root, "go.mod") }

func detectRust(root string) bool { return fileExists(root, "Cargo.toml") }

func detectPHPComposer(root string) bool { return fileExists(root, "composer.json") }
