package main

import (
	"os"

	"github.com/Tecplore-innovations/Tecplore-website-sub000/app"
	"github.com/Tecplore-innovations/Tecplore-website-sub000/report"
)

func run(args []string) error {
	return app.Get().Run(args)
}

func main() {
	err := run(os.Args)
	if err != nil {
		report.Quit(err)
	}
}
