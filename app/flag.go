package app

import "github.com/urfave/cli/v2"

var (
	libraryFlag = &cli.StringFlag{
		Name:    "library",
		Aliases: []string{"L"},
		Usage:   "Read books from this directory instead of the configured library",
	}

	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Print the output as JSON",
	}

	sinceFlag = &cli.StringFlag{
		Name:  "since",
		Usage: "Only include sessions started from this time (e.g. '2 weeks ago')",
	}

	untilFlag = &cli.StringFlag{
		Name:  "until",
		Usage: "Only include sessions started before this time (e.g. 'yesterday')",
	}

	bookFlag = &cli.StringFlag{
		Name:    "book",
		Aliases: []string{"b"},
		Usage:   "Only include sessions for these comma-delimited book titles",
	}

	sortFlag = &cli.StringFlag{
		Name:    "sort",
		Aliases: []string{"s"},
		Usage:   "Order the library by 'recent', 'title' or 'author'",
	}

	watchFlag = &cli.BoolFlag{
		Name:    "watch",
		Aliases: []string{"w"},
		Usage:   "Keep listing the library whenever its contents change",
	}

	disableNotificationFlag = &cli.BoolFlag{
		Name:    "disable-notification",
		Aliases: []string{"d"},
		Usage:   "Disable the system notification that appears when a badge is earned",
	}

	sessionCmdFlag = &cli.StringFlag{
		Name:    "session-cmd",
		Aliases: []string{"cmd"},
		Usage:   "Execute an arbitrary command after each reading session",
	}

	formatFlag = &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Usage:   "Export format: 'csv' or 'json'",
		Value:   "csv",
	}

	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Write the export to this file instead of standard output",
	}

	ratingFlag = &cli.IntFlag{
		Name:    "rating",
		Aliases: []string{"r"},
		Usage:   "Rate the book from 1 to 5",
	}

	dailyFlag = &cli.IntFlag{
		Name:  "daily",
		Usage: "Daily reading target in minutes",
	}

	weeklyFlag = &cli.IntFlag{
		Name:  "weekly",
		Usage: "Weekly reading target in minutes",
	}

	chapterFlag = &cli.IntFlag{
		Name:    "chapter",
		Aliases: []string{"c"},
		Usage:   "Chapter number, starting at 1. Defaults to the chapter you were last reading",
	}

	textFlag = &cli.StringFlag{
		Name:     "text",
		Usage:    "The passage to highlight",
		Required: true,
	}

	colorFlag = &cli.StringFlag{
		Name:  "color",
		Usage: "Highlight color: 'yellow', 'green' or 'pink'",
	}

	noteFlag = &cli.StringFlag{
		Name:    "note",
		Aliases: []string{"n"},
		Usage:   "A note to keep with the highlight",
	}

	tagFlag = &cli.StringFlag{
		Name:    "tag",
		Aliases: []string{"t"},
		Usage:   "Comma-delimited tags",
	}

	searchFlag = &cli.StringFlag{
		Name:    "search",
		Aliases: []string{"q"},
		Usage:   "Only include highlights whose text, note or book title contains this",
	}

	groupFlag = &cli.StringFlag{
		Name:    "group",
		Aliases: []string{"g"},
		Usage:   "Group highlights by 'none', 'book' or 'date'",
		Value:   "none",
	}
)
