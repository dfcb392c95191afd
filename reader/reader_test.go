package reader

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ayoisaiah/bookmark/internal/epub"
	"github.com/ayoisaiah/bookmark/internal/models"
	"github.com/ayoisaiah/bookmark/internal/session"
	"github.com/ayoisaiah/bookmark/internal/testutil"
	"github.com/ayoisaiah/bookmark/store"
)

func TestPlainText(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "paragraphs",
			in:   "<html><body><p>One  two</p><p>three\n four</p></body></html>",
			want: "One two\n\nthree four",
		},
		{
			name: "inline elements keep words together",
			in:   "<p>Hello <em>wor</em>ld</p>",
			want: "Hello world",
		},
		{
			name: "head and scripts are dropped",
			in: `<?xml version="1.0"?><html><head><title>T</title>` +
				`<style>p{}</style></head><body><h1>Title</h1>` +
				`<script>x()</script><p>Body</p></body></html>`,
			want: "Title\n\nBody",
		},
		{
			name: "line breaks",
			in:   "<p>a<br/>b</p>",
			want: "a\n\nb",
		},
		{
			name: "empty",
			in:   "",
			want: "",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := PlainText(strings.NewReader(tc.in))
			if err != nil {
				t.Fatal(err)
			}

			if got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

type fixture struct {
	db      *store.Client
	pkg     *epub.Package
	tracker *session.Tracker
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	root := testutil.WriteTree(
		t,
		testutil.Package("Dune", "Frank Herbert", "one.xhtml", "two.xhtml", "three.xhtml"),
	)

	pkg, err := epub.Parse(root)
	if err != nil {
		t.Fatal(err)
	}

	db, err := store.NewClient(filepath.Join(t.TempDir(), "bookmark.db"))
	if err != nil {
		t.Fatal(err)
	}

	t.Cleanup(func() { db.Close() })

	now := time.Date(2026, time.October, 14, 20, 0, 0, 0, time.Local)
	clock := func() time.Time { return now }

	return &fixture{
		db:      db,
		pkg:     pkg,
		tracker: session.NewTracker(db, session.WithClock(clock)),
	}
}

func press(m *Model, k tea.KeyMsg) tea.Cmd {
	_, cmd := m.Update(k)
	return cmd
}

var (
	keyRight = tea.KeyMsg{Type: tea.KeyRight}
	keyLeft  = tea.KeyMsg{Type: tea.KeyLeft}
)

func TestNewRestoresProgress(t *testing.T) {
	cases := []struct {
		name  string
		saved int
		want  int
	}{
		{name: "in range", saved: 2, want: 2},
		{name: "out of range", saved: 7, want: 0},
		{name: "negative", saved: -1, want: 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)

			err := f.db.SaveProgress(&models.Progress{
				BookID:         "Dune",
				CurrentChapter: tc.saved,
				TotalChapters:  3,
			})
			if err != nil {
				t.Fatal(err)
			}

			m := New(f.pkg, f.tracker, f.db)
			if m.Chapter() != tc.want {
				t.Fatalf("expected chapter %d, got %d", tc.want, m.Chapter())
			}
		})
	}
}

func TestNavigation(t *testing.T) {
	f := newFixture(t)

	_, err := f.tracker.Start(context.Background(), f.pkg.Title)
	if err != nil {
		t.Fatal(err)
	}

	m := New(f.pkg, f.tracker, f.db)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	cmd := press(m, keyRight)
	if m.Chapter() != 1 {
		t.Fatalf("expected chapter 1, got %d", m.Chapter())
	}

	if cmd == nil {
		t.Fatal("expected a command loading the next chapter")
	}

	msg, ok := cmd().(chapterMsg)
	if !ok || msg.err != nil {
		t.Fatalf("unexpected load result %+v", msg)
	}

	if msg.text != "Dune 2" {
		t.Fatalf("expected chapter text %q, got %q", "Dune 2", msg.text)
	}

	m.Update(msg)

	if !strings.Contains(m.View(), "Dune 2") {
		t.Fatal("expected the chapter text in the view")
	}

	p, err := f.db.GetProgress("Dune")
	if err != nil {
		t.Fatal(err)
	}

	if p == nil || p.CurrentChapter != 1 || p.TotalChapters != 3 {
		t.Fatalf("unexpected saved progress %+v", p)
	}

	press(m, keyRight)
	press(m, keyRight)

	if m.Chapter() != 2 {
		t.Fatalf("expected to stay on the last chapter, got %d", m.Chapter())
	}

	press(m, keyLeft)

	if m.Chapter() != 1 {
		t.Fatalf("expected chapter 1, got %d", m.Chapter())
	}

	if got := f.tracker.Current().PagesRead; got != 2 {
		t.Fatalf("expected 2 pages read, got %d", got)
	}
}

func TestStaleChapterIgnored(t *testing.T) {
	f := newFixture(t)

	m := New(f.pkg, f.tracker, f.db)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m.Update(chapterMsg{index: 0, text: "current"})
	m.Update(chapterMsg{index: 2, text: "stale"})

	if m.text != "current" {
		t.Fatalf("expected the text of the chapter on screen, got %q", m.text)
	}
}

func TestEmptyBook(t *testing.T) {
	f := newFixture(t)
	f.pkg.Chapters = nil

	m := New(f.pkg, f.tracker, f.db)

	if cmd := press(m, keyRight); cmd != nil {
		t.Fatal("expected no command for a book without chapters")
	}

	if !strings.Contains(m.View(), "no chapters") {
		t.Fatal("expected the empty book message")
	}
}
