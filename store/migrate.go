package store

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/google/uuid"
	bolt "go.etcd.io/bbolt"

	"github.com/ayoisaiah/bookmark/internal/session"
)

const schemaVersion = 1

var versionKey = []byte("schema_version")

// rekeySessions moves every session to the key derived from its start time
// and id. Records written without an id are given one.
func rekeySessions(tx *bolt.Tx) error {
	bucket := tx.Bucket([]byte(sessionBucket))

	type entry struct {
		key  []byte
		sess session.ReadingSession
	}

	var moved []entry

	err := bucket.ForEach(func(k, v []byte) error {
		var s session.ReadingSession

		err := json.Unmarshal(v, &s)
		if err != nil {
			return err
		}

		if s.ID == uuid.Nil {
			s.ID = uuid.New()
		}

		newKey := sessionKey(&s)
		if bytes.Equal(k, newKey) {
			return nil
		}

		moved = append(moved, entry{
			key:  append([]byte(nil), k...),
			sess: s,
		})

		return nil
	})
	if err != nil {
		return err
	}

	for i := range moved {
		value, err := json.Marshal(&moved[i].sess)
		if err != nil {
			return err
		}

		err = bucket.Delete(moved[i].key)
		if err != nil {
			return err
		}

		err = bucket.Put(sessionKey(&moved[i].sess), value)
		if err != nil {
			return err
		}
	}

	return nil
}

func (c *Client) migrate(tx *bolt.Tx) error {
	meta := tx.Bucket([]byte(metaBucket))

	version, _ := strconv.Atoi(string(meta.Get(versionKey)))
	if version >= schemaVersion {
		return nil
	}

	err := rekeySessions(tx)
	if err != nil {
		return err
	}

	return meta.Put(versionKey, []byte(strconv.Itoa(schemaVersion)))
}
