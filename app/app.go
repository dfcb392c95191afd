package app

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/bookmark/internal/config"
)

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

var (
	filterFlags          = []cli.Flag{sinceFlag, untilFlag, bookFlag}
	highlightFilterFlags = []cli.Flag{bookFlag, tagFlag, searchFlag}
)

// Get retrieves the bookmark app instance.
func Get() *cli.App {
	bookmarkApp := &cli.App{
		Name: "bookmark",
		Authors: []*cli.Author{
			{
				Name:  "Ayooluwa Isaiah",
				Email: "ayo@freshman.tech",
			},
		},
		Usage: `
		BookMark is an e-book reader for the command-line. It reads unpacked
		EPUB books from a library directory and keeps your reading history:
		timed sessions, highlights with notes, streaks, goals and badges.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:      "read",
				Usage:     "Read a book and time the session",
				ArgsUsage: "<title or directory>",
				Flags: []cli.Flag{
					disableNotificationFlag,
					sessionCmdFlag,
				},
				Action: withEnv(readAction),
			},
			{
				Name:      "chapters",
				Usage:     "List the chapters of a book",
				ArgsUsage: "<title or directory>",
				Flags:     []cli.Flag{jsonFlag},
				Action:    withEnv(chaptersAction),
			},
			{
				Name:  "library",
				Usage: "List the books in the library",
				Flags: []cli.Flag{sortFlag, jsonFlag, watchFlag},
				Subcommands: []*cli.Command{
					{
						Name:      "import",
						Usage:     "Copy an unpacked book into the library",
						ArgsUsage: "<directory>",
						Action:    withEnv(importAction),
					},
					{
						Name:      "remove",
						Usage:     "Delete a book from the library. Reading history is kept",
						ArgsUsage: "<title or directory>",
						Action:    withEnv(removeAction),
					},
				},
				Action: withEnv(libraryAction),
			},
			{
				Name:   "stats",
				Usage:  "Show reading time, streaks and goal progress",
				Flags:  []cli.Flag{jsonFlag},
				Action: withEnv(statsAction),
			},
			{
				Name:   "badges",
				Usage:  "List earned and locked badges",
				Flags:  []cli.Flag{jsonFlag},
				Action: withEnv(badgesAction),
			},
			{
				Name:  "sessions",
				Usage: "List reading sessions",
				Flags: append([]cli.Flag{jsonFlag}, filterFlags...),
				Subcommands: []*cli.Command{
					{
						Name:   "delete",
						Usage:  "Delete the matching reading sessions",
						Flags:  filterFlags,
						Action: withEnv(deleteAction),
					},
				},
				Action: withEnv(sessionsAction),
			},
			{
				Name:   "export",
				Usage:  "Export reading sessions as CSV or JSON",
				Flags:  append([]cli.Flag{formatFlag, outputFlag}, filterFlags...),
				Action: withEnv(exportAction),
			},
			{
				Name:  "add",
				Usage: "Add a finished reading session in the past (e.g. --since '30 mins ago')",
				Flags: []cli.Flag{
					bookFlag,
					sinceFlag,
					untilFlag,
					disableNotificationFlag,
					sessionCmdFlag,
				},
				Action: withEnv(addAction),
			},
			{
				Name:      "finish",
				Usage:     "Mark a book as finished",
				ArgsUsage: "<title>",
				Flags:     []cli.Flag{ratingFlag},
				Action:    withEnv(finishAction),
			},
			{
				Name:  "highlight",
				Usage: "Save passages of a book with notes and tags",
				Subcommands: []*cli.Command{
					{
						Name:      "add",
						Usage:     "Highlight a passage",
						ArgsUsage: "<title or directory>",
						Flags: []cli.Flag{
							textFlag,
							chapterFlag,
							colorFlag,
							noteFlag,
							tagFlag,
						},
						Action: withEnv(highlightAddAction),
					},
					{
						Name:      "edit",
						Usage:     "Change the color, note or tags of a highlight",
						ArgsUsage: "<id>",
						Flags:     []cli.Flag{colorFlag, noteFlag, tagFlag},
						Action:    withEnv(highlightEditAction),
					},
				},
			},
			{
				Name:  "notes",
				Usage: "List highlights and their notes",
				Flags: append(
					[]cli.Flag{groupFlag, jsonFlag},
					highlightFilterFlags...,
				),
				Subcommands: []*cli.Command{
					{
						Name:   "delete",
						Usage:  "Delete the matching highlights and their notes",
						Flags:  highlightFilterFlags,
						Action: withEnv(notesDeleteAction),
					},
					{
						Name:   "tags",
						Usage:  "List the tags in use",
						Flags:  []cli.Flag{jsonFlag},
						Action: withEnv(notesTagsAction),
					},
				},
				Action: withEnv(notesAction),
			},
			{
				Name:   "goal",
				Usage:  "Set daily and weekly reading goals",
				Flags:  []cli.Flag{dailyFlag, weeklyFlag},
				Action: withEnv(goalAction),
			},
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
		},
		Flags: []cli.Flag{
			libraryFlag,
			noColorFlag,
		},
		Before: beforeAction,
		After:  afterAction,
	}

	return bookmarkApp
}
