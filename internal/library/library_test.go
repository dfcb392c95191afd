package library

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/ayoisaiah/bookmark/internal/config"
	"github.com/ayoisaiah/bookmark/internal/epub"
	"github.com/ayoisaiah/bookmark/internal/testutil"
)

func libraryTree() map[string]string {
	files := map[string]string{
		// not a book
		"Broken/META-INF/container.xml": `<container><rootfiles></rootfiles></container>`,
		"notes.txt":                     "not a directory",
	}

	add := func(dir string, book map[string]string) {
		for name, content := range book {
			files[dir+"/"+name] = content
		}
	}

	add("dune", testutil.Package("Dune", "Frank Herbert", "ch1.xhtml", "ch2.xhtml"))
	add("emma", testutil.Package("Emma", "Jane Austen", "ch1.xhtml"))
	add("book10", testutil.Package("Book 10", "Anon", "ch1.xhtml"))
	add("book9", testutil.Package("book 9", "anon", "ch1.xhtml"))

	return files
}

func titles(books []*epub.Package) []string {
	out := make([]string, 0, len(books))
	for _, b := range books {
		out = append(out, b.Title)
	}

	return out
}

func TestScanSkipsBrokenBooks(t *testing.T) {
	dir := testutil.WriteTree(t, libraryTree())

	books, err := New(dir, nil).Scan(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	Sort(books, config.SortTitle, nil)

	expected := []string{"book 9", "Book 10", "Dune", "Emma"}

	if diff := cmp.Diff(expected, titles(books)); diff != "" {
		t.Errorf("Scan() mismatch (-want +got):\n%s", diff)
	}
}

func TestScanCreatesMissingDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "library")

	books, err := New(dir, nil).Scan(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	if len(books) != 0 {
		t.Errorf("expected an empty library, got %v", titles(books))
	}

	if _, err := os.Stat(dir); err != nil {
		t.Errorf("expected library dir to be created: %v", err)
	}
}

func TestSort(t *testing.T) {
	books := []*epub.Package{
		{Title: "Emma", Author: "Jane Austen"},
		{Title: "Dune", Author: "Frank Herbert"},
		{Title: "Ulysses", Author: "James Joyce"},
	}

	lastRead := map[string]time.Time{
		"Dune": time.Date(2026, time.October, 10, 0, 0, 0, 0, time.UTC),
		"Emma": time.Date(2026, time.October, 15, 0, 0, 0, 0, time.UTC),
	}

	cases := []struct {
		by       string
		expected []string
	}{
		{config.SortRecent, []string{"Emma", "Dune", "Ulysses"}},
		{config.SortTitle, []string{"Dune", "Emma", "Ulysses"}},
		{config.SortAuthor, []string{"Dune", "Ulysses", "Emma"}},
	}

	for _, tc := range cases {
		t.Run(tc.by, func(t *testing.T) {
			sorted := append([]*epub.Package(nil), books...)
			Sort(sorted, tc.by, lastRead)

			if diff := cmp.Diff(tc.expected, titles(sorted)); diff != "" {
				t.Errorf("Sort() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFind(t *testing.T) {
	dir := testutil.WriteTree(t, libraryTree())
	lib := New(dir, nil)

	cases := []struct {
		arg      string
		expected string
	}{
		{"dune", "Dune"},
		{"EMMA", "Emma"},
		{"book10", "Book 10"},
		{filepath.Join(dir, "emma"), "Emma"},
	}

	for _, tc := range cases {
		pkg, err := lib.Find(context.Background(), tc.arg)
		if err != nil {
			t.Errorf("Find(%q): %v", tc.arg, err)
			continue
		}

		if pkg.Title != tc.expected {
			t.Errorf("Find(%q) = %s, expected %s", tc.arg, pkg.Title, tc.expected)
		}
	}

	_, err := lib.Find(context.Background(), "Ulysses")
	if !errors.Is(err, ErrBookNotFound) {
		t.Errorf("expected ErrBookNotFound, got %v", err)
	}
}

func TestImportAndRemove(t *testing.T) {
	src := filepath.Join(
		testutil.WriteTree(t, map[string]string{}),
		"moby",
	)

	for name, content := range testutil.Package("Moby Dick", "Herman Melville", "ch1.xhtml") {
		p := filepath.Join(src, filepath.FromSlash(name))

		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatal(err)
		}

		if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	lib := New(t.TempDir(), nil)

	pkg, err := lib.Import(context.Background(), src)
	if err != nil {
		t.Fatal(err)
	}

	if pkg.Title != "Moby Dick" || pkg.RootDirectory != filepath.Join(lib.Dir(), "moby") {
		t.Fatalf("unexpected imported package: %+v", pkg)
	}

	_, err = lib.Import(context.Background(), src)
	if !errors.Is(err, ErrBookExists) {
		t.Fatalf("expected ErrBookExists, got %v", err)
	}

	err = lib.Remove(context.Background(), &epub.Package{RootDirectory: src})
	if !errors.Is(err, errNotInLibrary) {
		t.Fatalf("expected books outside the library to be refused, got %v", err)
	}

	err = lib.Remove(context.Background(), pkg)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := os.Stat(pkg.RootDirectory); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected book directory to be removed")
	}
}

func TestEnsureSample(t *testing.T) {
	lib := New(t.TempDir(), nil)

	err := lib.EnsureSample(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	books, err := lib.Scan(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	if len(books) != 1 || books[0].Title != "The Awakening Crystal" {
		t.Fatalf("expected the sample book, got %v", titles(books))
	}

	if len(books[0].Chapters) != 3 || *books[0].Genre != "Fiction, Fantasy" {
		t.Errorf("unexpected sample book contents: %+v", books[0])
	}
}

func TestWatch(t *testing.T) {
	dir := t.TempDir()
	lib := New(dir, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	scans := make(chan []*epub.Package, 10)
	done := make(chan error, 1)

	go func() {
		done <- lib.Watch(ctx, 50*time.Millisecond, func(books []*epub.Package) {
			scans <- books
		})
	}()

	// give the watcher time to register
	time.Sleep(200 * time.Millisecond)

	err := lib.EnsureSample(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	timeout := time.After(5 * time.Second)

	for {
		select {
		case books := <-scans:
			if len(books) == 1 {
				cancel()

				if err := <-done; err != nil {
					t.Fatal(err)
				}

				return
			}
		case <-timeout:
			t.Fatal("timed out waiting for a rescan with the new book")
		}
	}
}
