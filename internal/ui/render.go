// Package ui renders stackscout results for the terminal.
package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/stackscout/stackscout/internal/detect"
	"github.com/stackscout/stackscout/internal/envscan"
	"github.com/stackscout/stackscout/internal/log"
)

const absent = "-"

var (
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#7C3AED")).Bold(true)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#7C3AED")).Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280")).Padding(0, 1)
	goodStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981")).Padding(0, 1)
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444")).Bold(true)
)

// Printer writes human-readable output. Styled enables colors and rounded
// borders; otherwise plain ASCII tables are written.
type Printer struct {
	W      io.Writer
	Styled bool
}

// NewPrinter returns a Printer for f, styled when f is a terminal.
func NewPrinter(f *os.File) *Printer {
	return &Printer{W: f, Styled: term.IsTerminal(int(f.Fd()))}
}

func (p *Printer) newTable() *table.Table {
	t := table.New().Border(lipgloss.ASCIIBorder())
	if p.Styled {
		t = t.Border(lipgloss.RoundedBorder()).
			BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280")))
	}
	return t.StyleFunc(func(row, col int) lipgloss.Style {
		if !p.Styled {
			return cellStyle
		}
		if row == table.HeaderRow {
			return headerStyle
		}
		return cellStyle
	})
}

func (p *Printer) title(s string) string {
	if p.Styled {
		return titleStyle.Render(s)
	}
	return s
}

func (p *Printer) warn(s string) string {
	if p.Styled {
		return warnStyle.Render(s)
	}
	return s
}

// PrintResult writes the resolved stack and its context. Evidence, when
// non-nil, is appended as a second table.
func (p *Printer) PrintResult(res detect.Result, evidence []detect.Evidence) error {
	c := res.Context
	t := p.newTable().Headers("FIELD", "VALUE").
		Row("stack", res.Stack).
		Row("template", res.Template).
		Row("project_name", c.ProjectName).
		Row("has_docker", fmt.Sprintf("%t", c.HasDocker)).
		Row("docker_tag", c.DockerTag).
		Row("install_cmd", orAbsent(c.InstallCmd)).
		Row("build_cmd", orAbsent(c.BuildCmd)).
		Row("test_cmd", orAbsent(c.TestCmd)).
		Row("artifact_path", orAbsent(c.ArtifactPath))

	if _, err := fmt.Fprintf(p.W, "%s\n%s\n", p.title("Detected stack"), t.Render()); err != nil {
		return err
	}
	if evidence == nil {
		return nil
	}

	et := p.newTable().Headers("#", "STACK", "EVIDENCE")
	for i, ev := range evidence {
		mark := "no"
		switch {
		case ev.Winner:
			mark = "winner"
		case ev.Matched:
			mark = "yes (shadowed)"
		}
		et = et.Row(fmt.Sprintf("%d", i+1), ev.Stack, mark)
	}
	if p.Styled {
		et = et.StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case evidence[row].Winner:
				return goodStyle
			case !evidence[row].Matched:
				return dimStyle
			}
			return cellStyle
		})
	}
	_, err := fmt.Fprintf(p.W, "\n%s\n%s\n", p.title("Evidence (priority order)"), et.Render())
	return err
}

// PrintStacks writes the catalog in priority order.
func (p *Printer) PrintStacks(stacks []detect.Stack) error {
	t := p.newTable().Headers("#", "STACK", "TEMPLATE")
	for i, s := range stacks {
		t = t.Row(fmt.Sprintf("%d", i+1), s.Name, s.Template)
	}
	_, err := fmt.Fprintln(p.W, t.Render())
	return err
}

// PrintEnvReport writes an env scan report with paths relative to root.
func (p *Printer) PrintEnvReport(root string, rep envscan.Report) error {
	var b strings.Builder

	b.WriteString(p.title("Env files that should not be committed") + "\n")
	if len(rep.Danger) == 0 {
		b.WriteString("  none\n")
	}
	for _, path := range rep.Danger {
		b.WriteString("  " + p.warn(rel(root, path)) + "\n")
	}

	b.WriteString("\n" + p.title("Example env files") + "\n")
	if len(rep.Example) == 0 {
		b.WriteString("  none\n")
	}
	for _, path := range rep.Example {
		b.WriteString("  " + rel(root, path) + "\n")
	}

	if len(rep.Variables) > 0 {
		t := p.newTable().Headers("FILE", "KEY", "DEFAULT")
		files := make([]string, 0, len(rep.Variables))
		for f := range rep.Variables {
			files = append(files, f)
		}
		sort.Strings(files)
		for _, f := range files {
			vars := rep.Variables[f]
			keys := make([]string, 0, len(vars))
			for k := range vars {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				t = t.Row(f, k, vars[k])
			}
		}
		b.WriteString("\n" + p.title("Documented variables") + "\n" + t.Render() + "\n")
	}

	if len(rep.Suspicious) > 0 {
		t := p.newTable().Headers("FILE", "KEY", "RULE", "VALUE")
		for _, f := range rep.Suspicious {
			t = t.Row(rel(root, f.File), f.Key, f.Rule, f.Match)
		}
		b.WriteString("\n" + p.warn("Example values that look like real credentials") + "\n" + t.Render() + "\n")
	}

	_, err := io.WriteString(p.W, b.String())
	return err
}

// PrintEvents writes recorded run events, oldest first.
func (p *Printer) PrintEvents(events []log.LogEvent) error {
	if len(events) == 0 {
		_, err := fmt.Fprintln(p.W, "no events recorded")
		return err
	}
	t := p.newTable().Headers("TIME", "EVENT", "ROOT", "RESULT", "MS")
	for _, ev := range events {
		t = t.Row(ev.Time.Local().Format("2006-01-02 15:04:05"), ev.Event, ev.Root, eventResult(ev), fmt.Sprintf("%d", ev.DurationMs))
	}
	_, err := fmt.Fprintln(p.W, t.Render())
	return err
}

func eventResult(ev log.LogEvent) string {
	switch {
	case ev.Error != "":
		return "error: " + ev.Error
	case ev.Event == log.EventEnvScanComplete:
		return fmt.Sprintf("%d danger, %d examples, %d suspicious", ev.Danger, ev.Examples, ev.Suspicious)
	case ev.Stack != "":
		return ev.Stack
	}
	return absent
}

// Encode writes v as JSON or YAML.
func Encode(w io.Writer, format string, v any) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported encoding %q", format)
	}
}

func orAbsent(s *string) string {
	if s == nil {
		return absent
	}
	return *s
}

func rel(root, path string) string {
	if r, err := filepath.Rel(root, path); err == nil {
		return r
	}
	return path
}
