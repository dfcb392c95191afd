// Package pathutil manages application file paths and locations
package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/adrg/xdg"
)

// EnvVar selects an alternative set of files, e.g. BOOKMARK_ENV=dev uses
// config_dev.yml and bookmark_dev.db.
const EnvVar = "BOOKMARK_ENV"

// Paths holds all application path configurations.
type Paths struct {
	appDir         string
	configFileName string
	dbFileName     string
	logFileName    string
	libraryDirName string

	// Computed absolute paths
	configFilePath string
	dbFilePath     string
	logFilePath    string
	libraryDir     string
}

var (
	paths *Paths
	once  sync.Once
)

// Initialize must be called once at program startup.
func Initialize() error {
	var initErr error

	once.Do(func() {
		p := &Paths{
			appDir:         "bookmark",
			configFileName: "config.yml",
			dbFileName:     "bookmark.db",
			logFileName:    "bookmark.log",
			libraryDirName: "library",
		}

		p.applyEnvironmentOverrides()

		initErr = p.computePaths()
		if initErr == nil {
			paths = p
		}
	})

	return initErr
}

// Must panics if paths haven't been initialized.
func Must() *Paths {
	if paths == nil {
		panic("pathutil.Initialize() must be called before accessing paths")
	}

	return paths
}

func ConfigFilePath() string {
	return Must().configFilePath
}

func DBFilePath() string {
	return Must().dbFilePath
}

func LogFilePath() string {
	return Must().logFilePath
}

// LibraryDir is the default directory scanned for unpacked books.
func LibraryDir() string {
	return Must().libraryDir
}

func (p *Paths) applyEnvironmentOverrides() {
	env := strings.TrimSpace(os.Getenv(EnvVar))
	if env != "" {
		p.configFileName = fmt.Sprintf("config_%s.yml", env)
		p.dbFileName = fmt.Sprintf("bookmark_%s.db", env)
		p.logFileName = fmt.Sprintf("bookmark_%s.log", env)
		p.libraryDirName = fmt.Sprintf("library_%s", env)
	}
}

func (p *Paths) computePaths() error {
	var err error

	relPath := filepath.Join(p.appDir, p.configFileName)

	p.configFilePath, err = xdg.ConfigFile(relPath)
	if err != nil {
		return fmt.Errorf("resolving config file path: %w", err)
	}

	p.dbFilePath, err = xdg.DataFile(filepath.Join(p.appDir, p.dbFileName))
	if err != nil {
		return fmt.Errorf("resolving database path: %w", err)
	}

	dataDir := filepath.Dir(p.dbFilePath)

	p.logFilePath = filepath.Join(dataDir, "log", p.logFileName)

	p.libraryDir = filepath.Join(dataDir, p.libraryDirName)

	return nil
}
