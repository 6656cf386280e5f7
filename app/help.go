package app

import (
	"fmt"

	"github.com/pterm/pterm"
)

func helpText() string {
	description := fmt.Sprintf(
		"%s\n\t\t{{.Usage}}\n\n",
		pterm.Yellow("DESCRIPTION"),
	)

	usage := fmt.Sprintf(
		"%s\n\t\t{{.HelpName}} {{if .UsageText}}{{ .UsageText }}{{end}}\n\n",
		pterm.Yellow("USAGE"),
	)

	version := fmt.Sprintf(
		"{{if .Version}}%s\n\t\t{{.Version}}{{end}}\n\n",
		pterm.Yellow("VERSION"),
	)

	commands := fmt.Sprintf(
		"%s\n{{range .Commands}}{{if not .HideHelp}}   %s{{ `\t`}}{{.Usage}}{{ `\n` }}{{end}}{{end}}\n\n",
		pterm.Yellow("COMMANDS"),
		pterm.Green("{{join .Names `, `}}"),
	)

	options := fmt.Sprintf(
		"%s\n{{range .VisibleFlags}}\t\t{{if .Aliases}}{{range $element := .Aliases}}%s,{{end}}{{end}} %s\n\t\t\t\t{{.Usage}}\n\n{{end}}",
		pterm.Yellow("OPTIONS"),
		pterm.Green("-{{$element}}"),
		pterm.Green("--{{.Name}} {{.DefaultText}}"),
	)

	env := fmt.Sprintf(
		"%s\n\t\t%s\n\n",
		pterm.Yellow("ENVIRONMENTAL VARIABLES"),
		envHelp(),
	)

	keys := fmt.Sprintf(
		"%s\n\t\t%s\n",
		pterm.Yellow("KEYS"),
		keysHelp(),
	)

	return description + usage + version + commands + options + env + keys
}

func envHelp() string {
	return `
LESSONS_NO_COLOR, NO_COLOR: set to any value to avoid printing ANSI escape sequences for color output.

LESSONS_ENV: use a separate config file, history and log (e.g. config_test.yml).

LESSONS_<SECTION>_<KEY>: override any config file setting (e.g. LESSONS_MEDIA_BACKEND=mpv).`
}

func keysHelp() string {
	return `
create: space play/pause, ←/→ seek, f/t full or trimmed video, s/e mark trim start/end,
		enter apply trim, a add question, ctrl+←/→ move it, d delete, x export, n new lesson.
		Drag the brackets on the lower track with the mouse to adjust the trim.

play: space play/pause, ←/→ seek, r show answer, enter continue.`
}
