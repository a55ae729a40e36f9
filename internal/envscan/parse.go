// parse.go reads KEY=value pairs out of example env files.
package envscan

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"
)

// ParseExample returns the variables documented in an example env file.
// Blank lines and # comments are skipped, lines without "=" are ignored, and
// each remaining line is split on its first "=". Lines may be any length. A
// file that cannot be read, fully or partly, yields an empty map.
func ParseExample(path string) map[string]string {
	f, err := os.Open(path)
	if err != nil {
		return map[string]string{}
	}
	defer f.Close()

	vars := map[string]string{}
	r := bufio.NewReader(f)
	for {
		line, err := r.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return map[string]string{}
		}
		parseLine(vars, line)
		if err != nil {
			return vars
		}
	}
}

func parseLine(vars map[string]string, line string) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return
	}
	key, value, ok := strings.Cut(line, "=")
	if !ok {
		return
	}
	vars[strings.TrimSpace(key)] = strings.TrimSpace(value)
}
