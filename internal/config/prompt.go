package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
)

const asciiLogo = `
██████╗  ██████╗  ██████╗ ██╗  ██╗███╗   ███╗ █████╗ ██████╗ ██╗  ██╗
██╔══██╗██╔═══██╗██╔═══██╗██║ ██╔╝████╗ ████║██╔══██╗██╔══██╗██║ ██╔╝
██████╔╝██║   ██║██║   ██║█████╔╝ ██╔████╔██║███████║██████╔╝█████╔╝
██╔══██╗██║   ██║██║   ██║██╔═██╗ ██║╚██╔╝██║██╔══██║██╔══██╗██╔═██╗
██████╔╝╚██████╔╝╚██████╔╝██║  ██╗██║ ╚═╝ ██║██║  ██║██║  ██║██║  ██╗
╚═════╝  ╚═════╝  ╚═════╝ ╚═╝  ╚═╝╚═╝     ╚═╝╚═╝  ╚═╝╚═╝  ╚═╝╚═╝  ╚═╝`

// PromptOptions holds the user's responses to the configuration prompts.
type PromptOptions struct {
	LibraryDir string
	Sort       string
}

// WithPromptConfig returns an Option that configures settings via interactive
// prompts. It only prompts when the config file does not exist yet.
func WithPromptConfig(configPath, defaultLibraryDir string) Option {
	return func(c *Config) error {
		_, err := os.Stat(configPath)
		if err == nil || !errors.Is(err, os.ErrNotExist) {
			return err
		}

		opts, err := promptUser(defaultLibraryDir)
		if err != nil {
			return fmt.Errorf("user prompt failed: %w", err)
		}

		applyPromptOptions(c, opts)

		return nil
	}
}

// promptUser handles the interactive configuration process.
func promptUser(defaultLibraryDir string) (PromptOptions, error) {
	opts := PromptOptions{
		LibraryDir: defaultLibraryDir,
	}

	// Display welcome message
	pterm.Println(asciiLogo)

	_ = putils.BulletListFromString(`Follow the prompts below to configure BookMark for the first time.
Select your preferred value, or press ENTER to accept the defaults.
Edit the config file with 'bookmark edit-config' to change any settings.`, " ").
		Render()

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Library directory").
				Description("Unpacked books are read from sub-directories of this folder").
				Value(&opts.LibraryDir),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Sort the library by").
				Options(
					huh.NewOption("Recently read", SortRecent).Selected(true),
					huh.NewOption("Title", SortTitle),
					huh.NewOption("Author", SortAuthor),
				).
				Value(&opts.Sort),
		),
	)

	err := form.Run()
	if err != nil {
		return opts, fmt.Errorf("form interaction failed: %w", err)
	}

	return opts, nil
}

// applyPromptOptions applies the user's prompt responses to the configuration.
func applyPromptOptions(c *Config, opts PromptOptions) {
	c.Library.Dir = opts.LibraryDir
	c.Library.Sort = opts.Sort
}
