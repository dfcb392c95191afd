package app

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
)

// helpSection is a heading of the top-level help text and its template body.
type helpSection struct {
	heading string
	body    string
}

func helpText() string {
	sections := []helpSection{
		{"DESCRIPTION", "\t\t{{.Usage}}\n\n"},
		{"USAGE", "\t\t{{.HelpName}} {{if .UsageText}}{{ .UsageText }}{{end}}\n\n"},
		{"AUTHOR", "{{if len .Authors}}\t\t{{range .Authors}}{{ . }}{{end}}{{end}}\n\n"},
		{"VERSION", "{{if .Version}}\t\t{{.Version}}{{end}}\n\n"},
		{
			"COMMANDS",
			fmt.Sprintf(
				"{{range .Commands}}{{if not .HideHelp}}   %s{{ `\t`}}{{.Usage}}{{ `\n` }}{{end}}{{end}}\n\n",
				pterm.Green("{{join .Names `, `}}"),
			),
		},
		{
			"OPTIONS",
			fmt.Sprintf(
				"{{range .VisibleFlags}}\t\t{{if .Aliases}}{{range $element := .Aliases}}%s,{{end}}{{end}} %s\n\t\t\t\t{{.Usage}}\n\n{{end}}",
				pterm.Green("-{{$element}}"),
				pterm.Green("--{{.Name}} {{.DefaultText}}"),
			),
		},
		{"EXAMPLES", examplesHelp() + "\n\n"},
		{"ENVIRONMENTAL VARIABLES", "\t\t" + envHelp() + "\n\n"},
		{"DOCUMENTATION", "\t\thttps://github.com/ayoisaiah/bookmark/wiki\n\n"},
		{"WEBSITE", "\t\thttps://github.com/ayoisaiah/bookmark\n"},
	}

	var s strings.Builder

	for _, sec := range sections {
		s.WriteString(pterm.Yellow(sec.heading))
		s.WriteString("\n")
		s.WriteString(sec.body)
	}

	return s.String()
}

func examplesHelp() string {
	examples := [][2]string{
		{"bookmark library import ~/Downloads/dune", "add an unpacked book to the library"},
		{"bookmark read dune", "open a book and time the session"},
		{"bookmark highlight add dune --chapter 3 --text '...' --tag quote", "save a passage"},
		{"bookmark notes --tag quote --group book", "list tagged highlights by book"},
		{"bookmark add --book Dune --since '45 mins ago'", "record a session read elsewhere"},
	}

	lines := make([]string, len(examples))
	for i, ex := range examples {
		lines[i] = fmt.Sprintf("\t\t%s\n\t\t\t\t%s", pterm.Green(ex[0]), ex[1])
	}

	return strings.Join(lines, "\n")
}

func envHelp() string {
	return `
BOOKMARK_NO_COLOR, NO_COLOR: set to any value to avoid printing ANSI escape sequences for color output.

BOOKMARK_ENV: set to a name such as 'dev' to use a separate config file and database.

BOOKMARK_UPDATE_NOTIFIER: set to any value to enable update notifications when using the -v or --version flag.`
}
