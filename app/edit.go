package app

import (
	"errors"
	"io/fs"
	"os"
	"os/exec"
	"runtime"

	"github.com/kballard/go-shellquote"
	"github.com/urfave/cli/v2"

	"github.com/Tecplore-innovations/Tecplore-website-sub000/internal/config"
	"github.com/Tecplore-innovations/Tecplore-website-sub000/internal/osutil"
	"github.com/Tecplore-innovations/Tecplore-website-sub000/internal/pathutil"
)

// firstNonEmptyString returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

// editorCommand returns the command that opens path in the user's editor.
// VISUAL and EDITOR may carry arguments, such as "code --wait".
func editorCommand(path string) []string {
	defaultEditor := "nano"

	if runtime.GOOS == osutil.Windows {
		defaultEditor = "C:\\Windows\\system32\\notepad.exe"
	}

	editor := firstNonEmptyString(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		defaultEditor,
	)

	args, err := shellquote.Split(editor)
	if err != nil || len(args) == 0 {
		args = []string{editor}
	}

	return append(args, path)
}

// editConfigAction handles the edit-config command which opens the lessons
// config file in the user's default text editor. The file is written with the
// default settings first if it does not exist yet.
func editConfigAction(_ *cli.Context) error {
	path := pathutil.ConfigFilePath()

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		_, err = config.New(config.WithViperConfig(path))
		if err != nil {
			return err
		}
	}

	args := editorCommand(path)

	cmd := exec.Command(args[0], args[1:]...)

	cmd.Stderr = config.Stderr
	cmd.Stdin = config.Stdin
	cmd.Stdout = config.Stdout

	return cmd.Run()
}
