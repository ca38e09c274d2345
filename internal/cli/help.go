package cli

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/yaklabco/gomdview/internal/ui/pretty"
	"github.com/yaklabco/gomdview/pkg/config"
)

// HelpStyles contains the styles used for command help.
type HelpStyles struct {
	Command    lipgloss.Style
	Heading    lipgloss.Style
	Subcommand lipgloss.Style
	Flag       lipgloss.Style
	Dim        lipgloss.Style
}

// NewHelpStyles derives help styles from the default document palette, so
// help text and rendered Markdown share colors.
func NewHelpStyles(colorEnabled bool) *HelpStyles {
	doc := pretty.NewStyles(config.NewConfig(), colorEnabled)
	return &HelpStyles{
		Command:    doc.Heading(1),
		Heading:    doc.Heading(2),
		Subcommand: doc.ListMarker,
		Flag:       doc.Link.UnsetUnderline(),
		Dim:        doc.Dim,
	}
}

// HelpFormatter provides styled help output for Cobra commands.
type HelpFormatter struct {
	styles *HelpStyles
}

// NewHelpFormatter creates a help formatter for the given color mode.
func NewHelpFormatter(colorMode string, writer io.Writer) *HelpFormatter {
	return &HelpFormatter{styles: NewHelpStyles(pretty.IsColorEnabled(colorMode, writer))}
}

const usageTemplate = `{{ heading "Usage:" }}
  {{if .Runnable}}{{ command .UseLine }}{{end}}
  {{if .HasAvailableSubCommands}}{{ command .CommandPath }} [command]{{end}}

{{- if .HasExample}}

{{ heading "Examples:" }}
{{ dim .Example }}
{{- end}}

{{- if .HasAvailableSubCommands}}

{{ heading "Available Commands:" }}{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{ subcommand (rpad .Name .NamePadding) }} {{ .Short }}{{end}}{{end}}
{{- end}}

{{- if .HasAvailableLocalFlags}}

{{ heading "Flags:" }}
{{ flags .LocalFlags }}
{{- end}}

{{- if .HasAvailableInheritedFlags}}

{{ heading "Global Flags:" }}
{{ flags .InheritedFlags }}
{{- end}}

{{- if .HasAvailableSubCommands}}

Use "{{ command (print .CommandPath " [command] --help") }}" for more information about a command.
{{- end}}
`

const helpTemplate = `{{if or .Runnable .HasSubCommands}}{{ command .CommandPath }}{{if .Version}} {{ dim .Version }}{{end}}

{{end}}{{with (or .Long .Short)}}{{ . | trimTrailingWhitespaces }}

{{end}}` + usageTemplate

func (h *HelpFormatter) funcs() template.FuncMap {
	return template.FuncMap{
		"command":                 h.styles.Command.Render,
		"heading":                 h.styles.Heading.Render,
		"subcommand":              h.styles.Subcommand.Render,
		"dim":                     h.styles.Dim.Render,
		"flags":                   h.flagsUsage,
		"rpad":                    pretty.PadRight,
		"trimTrailingWhitespaces": trimTrailingWhitespaces,
	}
}

// flagsUsage styles pflag's usage block line by line.
func (h *HelpFormatter) flagsUsage(flags interface{ FlagUsages() string }) string {
	usages := strings.TrimSuffix(flags.FlagUsages(), "\n")
	if usages == "" {
		return ""
	}
	lines := strings.Split(usages, "\n")
	for i, line := range lines {
		lines[i] = h.flagLine(line)
	}
	return strings.Join(lines, "\n")
}

// flagLine styles "  -w, --width int   description": flag names in the flag
// style and the value type dimmed.
func (h *HelpFormatter) flagLine(line string) string {
	trimmed := strings.TrimLeft(line, " ")
	indent := line[:len(line)-len(trimmed)]
	def, desc, ok := strings.Cut(trimmed, "  ")
	if !ok {
		return line
	}

	tokens := strings.Fields(def)
	for i, token := range tokens {
		name, comma := strings.CutSuffix(token, ",")
		if strings.HasPrefix(name, "-") {
			tokens[i] = h.styles.Flag.Render(name)
		} else {
			tokens[i] = h.styles.Dim.Render(name)
		}
		if comma {
			tokens[i] += ","
		}
	}
	return indent + strings.Join(tokens, " ") + "   " + strings.TrimLeft(desc, " ")
}

// ApplyToCommand installs the styled templates on cmd. Subcommands inherit
// them.
func (h *HelpFormatter) ApplyToCommand(cmd *cobra.Command) {
	funcs := h.funcs()
	usage := template.Must(template.New("usage").Funcs(funcs).Parse(usageTemplate))
	help := template.Must(template.New("help").Funcs(funcs).Parse(helpTemplate))

	cmd.SetUsageFunc(func(command *cobra.Command) error {
		if err := usage.Execute(command.OutOrStdout(), command); err != nil {
			return fmt.Errorf("render usage: %w", err)
		}
		return nil
	})
	cmd.SetHelpFunc(func(command *cobra.Command, _ []string) {
		if err := help.Execute(command.OutOrStdout(), command); err != nil {
			command.PrintErrln(err)
		}
	})
}

func trimTrailingWhitespaces(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.Join(lines, "\n")
}
