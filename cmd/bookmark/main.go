package main

import (
	"os"

	"github.com/ayoisaiah/bookmark/app"
	"github.com/ayoisaiah/bookmark/internal/osutil"
	"github.com/ayoisaiah/bookmark/internal/pathutil"
	"github.com/ayoisaiah/bookmark/report"
)

func run(args []string) error {
	err := pathutil.Initialize()
	if err != nil {
		return err
	}

	return app.Get().Run(args)
}

func main() {
	err := run(os.Args)
	if err != nil {
		report.Quit(err)
	}

	os.Exit(int(osutil.ExitOK))
}
