package store

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"

	"github.com/ayoisaiah/bookmark/internal/models"
)

func highlight(
	t *testing.T,
	id, book, text string,
	day int,
	note string,
	tags ...string,
) *models.Highlight {
	t.Helper()

	h, err := models.NewHighlight(book, 0, text, models.Yellow, at(day, 9))
	if err != nil {
		t.Fatal(err)
	}

	h.ID = uuid.MustParse(id)
	h.SetNote(note, tags, at(day, 10))

	return h
}

func ids(hs []models.Highlight) []string {
	out := make([]string, len(hs))
	for i := range hs {
		out[i] = hs[i].ID.String()[:4]
	}

	return out
}

func TestHighlightsRoundTrip(t *testing.T) {
	c, _ := newTestClient(t)

	h := highlight(
		t,
		"aaaa0000-0000-0000-0000-000000000001",
		"Dune",
		"Fear is the mind-killer.",
		3,
		"litany",
		"quote", "fear",
	)

	err := c.SaveHighlight(h)
	if err != nil {
		t.Fatal(err)
	}

	got, err := c.GetHighlight("aaaa")
	if err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff(h, got); diff != "" {
		t.Fatalf("GetHighlight() mismatch (-want +got):\n%s", diff)
	}

	got.Color = models.Pink
	got.SetNote("the litany against fear", []string{"quote"}, at(4, 8))

	err = c.SaveHighlight(got)
	if err != nil {
		t.Fatal(err)
	}

	all, err := c.ListHighlights(models.HighlightFilter{})
	if err != nil {
		t.Fatal(err)
	}

	if len(all) != 1 {
		t.Fatalf("expected the edit to replace the record, got %d highlights", len(all))
	}

	if all[0].Color != models.Pink || all[0].Note.Content != "the litany against fear" {
		t.Errorf("edit not saved: %+v", all[0])
	}
}

func TestListHighlightsFilters(t *testing.T) {
	c, _ := newTestClient(t)

	saved := []*models.Highlight{
		highlight(t, "1111aaaa-0000-0000-0000-000000000000", "Dune", "spice must flow", 1, "economy", "Spice"),
		highlight(t, "2222aaaa-0000-0000-0000-000000000000", "Emma", "badly done", 2, ""),
		highlight(t, "3333aaaa-0000-0000-0000-000000000000", "Dune", "the sleeper must awaken", 3, "prophecy", "quote", "spice"),
		highlight(t, "4444aaaa-0000-0000-0000-000000000000", "Emma", "one half of the world", 4, "quote of the day", "quote"),
	}

	for _, h := range saved {
		if err := c.SaveHighlight(h); err != nil {
			t.Fatal(err)
		}
	}

	cases := []struct {
		name     string
		filter   models.HighlightFilter
		expected []string
	}{
		{
			name:     "everything newest first",
			expected: []string{"4444", "3333", "2222", "1111"},
		},
		{
			name:     "by book",
			filter:   models.HighlightFilter{Books: []string{"Dune"}},
			expected: []string{"3333", "1111"},
		},
		{
			name:     "any tag ignoring case",
			filter:   models.HighlightFilter{Tags: []string{"SPICE"}},
			expected: []string{"3333", "1111"},
		},
		{
			name:     "tags are alternatives",
			filter:   models.HighlightFilter{Tags: []string{"quote", "spice"}},
			expected: []string{"4444", "3333", "1111"},
		},
		{
			name:     "book and tag together",
			filter:   models.HighlightFilter{Books: []string{"Emma"}, Tags: []string{"quote"}},
			expected: []string{"4444"},
		},
		{
			name:     "query searches text, note and title",
			filter:   models.HighlightFilter{Query: "DUNE"},
			expected: []string{"3333", "1111"},
		},
		{
			name:     "query matches note content",
			filter:   models.HighlightFilter{Query: "of the day"},
			expected: []string{"4444"},
		},
		{
			name:     "no match",
			filter:   models.HighlightFilter{Tags: []string{"missing"}},
			expected: []string{},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := c.ListHighlights(tc.filter)
			if err != nil {
				t.Fatal(err)
			}

			if diff := cmp.Diff(tc.expected, ids(got)); diff != "" {
				t.Errorf("ListHighlights() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestGetHighlightByPrefix(t *testing.T) {
	c, _ := newTestClient(t)

	for _, id := range []string{
		"abcd1111-0000-0000-0000-000000000000",
		"abcd2222-0000-0000-0000-000000000000",
	} {
		if err := c.SaveHighlight(highlight(t, id, "Dune", "text", 1, "")); err != nil {
			t.Fatal(err)
		}
	}

	_, err := c.GetHighlight("abcd")
	if !errors.Is(err, ErrAmbiguousHighlight) {
		t.Errorf("expected ErrAmbiguousHighlight, got %v", err)
	}

	_, err = c.GetHighlight("ffff")
	if !errors.Is(err, ErrHighlightNotFound) {
		t.Errorf("expected ErrHighlightNotFound, got %v", err)
	}

	_, err = c.GetHighlight("")
	if !errors.Is(err, ErrHighlightNotFound) {
		t.Errorf("expected ErrHighlightNotFound for an empty id, got %v", err)
	}

	h, err := c.GetHighlight("ABCD2")
	if err != nil {
		t.Fatal(err)
	}

	if h.ID.String() != "abcd2222-0000-0000-0000-000000000000" {
		t.Errorf("wrong highlight %s", h.ID)
	}
}

func TestDeleteHighlights(t *testing.T) {
	c, _ := newTestClient(t)

	keep := highlight(t, "1111aaaa-0000-0000-0000-000000000000", "Dune", "keep", 1, "")
	drop := highlight(t, "2222aaaa-0000-0000-0000-000000000000", "Dune", "drop", 2, "")

	for _, h := range []*models.Highlight{keep, drop} {
		if err := c.SaveHighlight(h); err != nil {
			t.Fatal(err)
		}
	}

	err := c.DeleteHighlights([]models.Highlight{*drop})
	if err != nil {
		t.Fatal(err)
	}

	got, err := c.ListHighlights(models.HighlightFilter{})
	if err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff([]string{"1111"}, ids(got)); diff != "" {
		t.Errorf("remaining highlights mismatch (-want +got):\n%s", diff)
	}
}
