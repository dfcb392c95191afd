// Package store persists reading sessions, badges, books, progress and goals
// in a Bolt database
package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/fs"
	"slices"
	"strings"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/ayoisaiah/bookmark/internal/badge"
	"github.com/ayoisaiah/bookmark/internal/models"
	"github.com/ayoisaiah/bookmark/internal/session"
	"github.com/ayoisaiah/bookmark/internal/timeutil"
)

const (
	sessionBucket   = "sessions"
	badgeBucket     = "badges"
	bookBucket      = "books"
	progressBucket  = "progress"
	goalBucket      = "goals"
	highlightBucket = "highlights"
	metaBucket      = "meta"
)

var buckets = []string{
	sessionBucket,
	badgeBucket,
	bookBucket,
	progressBucket,
	goalBucket,
	highlightBucket,
	metaBucket,
}

// keySeparator sorts after every character of a timestamp key so that it can
// bound a range scan.
const keySeparator = "_"

var pathToDB string

// Client is a BoltDB database client.
type Client struct {
	*bolt.DB
}

// sessionKey orders sessions by start time. The id keeps sessions that start
// at the same instant apart.
func sessionKey(sess *session.ReadingSession) []byte {
	return append(
		timeutil.ToKey(sess.StartTime),
		[]byte(keySeparator+sess.ID.String())...,
	)
}

// highlightKey orders highlights by creation time.
func highlightKey(h *models.Highlight) []byte {
	return append(
		timeutil.ToKey(h.CreatedAt),
		[]byte(keySeparator+h.ID.String())...,
	)
}

func (c *Client) put(bucket string, key []byte, v any) error {
	value, err := json.Marshal(v)
	if err != nil {
		return err
	}

	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucket)).Put(key, value)
	})
}

// get decodes the value at key into v and reports whether it was found.
func (c *Client) get(bucket string, key []byte, v any) (bool, error) {
	var found bool

	err := c.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucket)).Get(key)
		if len(b) == 0 {
			return nil
		}

		found = true

		return json.Unmarshal(b, v)
	})

	return found, err
}

func list[T any](c *Client, bucket string) ([]T, error) {
	var out []T

	err := c.View(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucket)).ForEach(func(_, v []byte) error {
			var item T

			err := json.Unmarshal(v, &item)
			if err != nil {
				return err
			}

			out = append(out, item)

			return nil
		})
	})

	return out, err
}

func (c *Client) AppendSession(sess *session.ReadingSession) error {
	return c.put(sessionBucket, sessionKey(sess), sess)
}

func (c *Client) ListSessions() ([]session.ReadingSession, error) {
	return list[session.ReadingSession](c, sessionBucket)
}

func (c *Client) GetSessions(
	startTime, endTime time.Time,
	books []string,
) ([]session.ReadingSession, error) {
	var s []session.ReadingSession

	include := func(v []byte) error {
		var sess session.ReadingSession

		err := json.Unmarshal(v, &sess)
		if err != nil {
			return err
		}

		if sess.EndTime != nil && sess.EndTime.Before(startTime) {
			return nil
		}

		if len(books) != 0 && !slices.Contains(books, sess.BookID) {
			return nil
		}

		s = append(s, sess)

		return nil
	}

	err := c.View(func(tx *bolt.Tx) error {
		cur := tx.Bucket([]byte(sessionBucket)).Cursor()
		lower := timeutil.ToKey(startTime)
		upper := append(timeutil.ToKey(endTime), []byte(keySeparator+"~")...)

		// the session before the range may have ended inside it
		var pk, pv []byte

		if k, _ := cur.Seek(lower); k == nil {
			pk, pv = cur.Last()
		} else {
			pk, pv = cur.Prev()
		}

		if pk != nil {
			err := include(pv)
			if err != nil {
				return err
			}
		}

		for k, v := cur.Seek(lower); k != nil && bytes.Compare(k, upper) <= 0; k, v = cur.Next() {
			err := include(v)
			if err != nil {
				return err
			}
		}

		return nil
	})

	return s, err
}

func (c *Client) DeleteSessions(sessions []session.ReadingSession) error {
	return c.Update(func(tx *bolt.Tx) error {
		for i := range sessions {
			err := tx.Bucket([]byte(sessionBucket)).Delete(sessionKey(&sessions[i]))
			if err != nil {
				return err
			}
		}

		return nil
	})
}

// LoadEarnedBadges returns the saved badges. Records of unknown kinds are
// skipped.
func (c *Client) LoadEarnedBadges() ([]badge.Badge, error) {
	saved, err := list[badge.Badge](c, badgeBucket)
	if err != nil {
		return nil, err
	}

	earned := saved[:0]

	for i := range saved {
		if saved[i].Kind.Valid() {
			earned = append(earned, saved[i])
		}
	}

	return earned, nil
}

// SaveEarnedBadges stores badges keyed by kind, so saving a kind twice keeps
// only the latest value.
func (c *Client) SaveEarnedBadges(badges []badge.Badge) error {
	return c.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(badgeBucket))

		for i := range badges {
			value, err := json.Marshal(badges[i])
			if err != nil {
				return err
			}

			err = b.Put([]byte(badges[i].Kind), value)
			if err != nil {
				return err
			}
		}

		return nil
	})
}

func (c *Client) GetBook(bookID string) (*models.Book, error) {
	var book models.Book

	found, err := c.get(bookBucket, []byte(bookID), &book)
	if err != nil {
		return nil, err
	}

	if !found {
		return nil, ErrBookNotFound.Fmt(bookID)
	}

	return &book, nil
}

func (c *Client) UpdateBook(book *models.Book) error {
	return c.put(bookBucket, []byte(book.BookID), book)
}

func (c *Client) ListBooks() ([]models.Book, error) {
	return list[models.Book](c, bookBucket)
}

func (c *Client) GetProgress(bookID string) (*models.Progress, error) {
	var p models.Progress

	found, err := c.get(progressBucket, []byte(bookID), &p)
	if err != nil || !found {
		return nil, err
	}

	return &p, nil
}

func (c *Client) SaveProgress(p *models.Progress) error {
	return c.put(progressBucket, []byte(p.BookID), p)
}

func (c *Client) ListGoals() ([]models.Goal, error) {
	return list[models.Goal](c, goalBucket)
}

func (c *Client) SaveGoal(g *models.Goal) error {
	return c.put(goalBucket, []byte(g.Type), g)
}

func (c *Client) SaveHighlight(h *models.Highlight) error {
	return c.put(highlightBucket, highlightKey(h), h)
}

// ListHighlights returns the highlights that match filter, newest first.
func (c *Client) ListHighlights(
	filter models.HighlightFilter,
) ([]models.Highlight, error) {
	var out []models.Highlight

	err := c.View(func(tx *bolt.Tx) error {
		cur := tx.Bucket([]byte(highlightBucket)).Cursor()

		for k, v := cur.Last(); k != nil; k, v = cur.Prev() {
			var h models.Highlight

			err := json.Unmarshal(v, &h)
			if err != nil {
				return err
			}

			if filter.Match(&h) {
				out = append(out, h)
			}
		}

		return nil
	})

	return out, err
}

// GetHighlight returns the highlight whose id starts with prefix. The prefix
// must identify a single highlight.
func (c *Client) GetHighlight(prefix string) (*models.Highlight, error) {
	all, err := c.ListHighlights(models.HighlightFilter{})
	if err != nil {
		return nil, err
	}

	prefix = strings.ToLower(strings.TrimSpace(prefix))

	var found *models.Highlight

	for i := range all {
		if prefix == "" || !strings.HasPrefix(all[i].ID.String(), prefix) {
			continue
		}

		if found != nil {
			return nil, ErrAmbiguousHighlight.Fmt(prefix)
		}

		found = &all[i]
	}

	if found == nil {
		return nil, ErrHighlightNotFound.Fmt(prefix)
	}

	return found, nil
}

func (c *Client) DeleteHighlights(hs []models.Highlight) error {
	return c.Update(func(tx *bolt.Tx) error {
		for i := range hs {
			err := tx.Bucket([]byte(highlightBucket)).Delete(highlightKey(&hs[i]))
			if err != nil {
				return err
			}
		}

		return nil
	})
}

func (c *Client) Open() error {
	db, err := openDB(pathToDB)
	if err != nil {
		return err
	}

	*c = Client{
		db,
	}

	return nil
}

// open creates or opens a database and locks it.
func openDB(pathToDB string) (*bolt.DB, error) {
	var fileMode fs.FileMode = 0o600

	db, err := bolt.Open(
		pathToDB,
		fileMode,
		&bolt.Options{Timeout: 1 * time.Second},
	)
	if err != nil {
		if errors.Is(err, bolt.ErrDatabaseOpen) ||
			errors.Is(err, bolt.ErrTimeout) {
			return nil, errBookMarkRunning
		}

		return nil, err
	}

	return db, nil
}

// NewClient returns a wrapper to a BoltDB connection.
func NewClient(dbPath string) (*Client, error) {
	pathToDB = dbPath

	db, err := openDB(pathToDB)
	if err != nil {
		return nil, err
	}

	c := &Client{
		db,
	}

	// Create the necessary buckets for storing data if they do not exist already
	err = db.Update(func(tx *bolt.Tx) error {
		for _, name := range buckets {
			_, err = tx.CreateBucketIfNotExists([]byte(name))
			if err != nil {
				return err
			}
		}

		return c.migrate(tx)
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return c, nil
}
