package database

import (
	"time"

	"github.com/asdine/storm/v3"
	"github.com/asdine/storm/v3/codec/msgpack"
	"github.com/gofrs/uuid"
	"github.com/mdouchement/bwimport/internal/model"
	"github.com/pkg/errors"
)

type strm struct {
	db *storm.DB
}

// StormCodec is the format used to store data in the database.
var StormCodec = storm.Codec(msgpack.Codec)

// StormInit initializes Storm database.
func StormInit(database string) error {
	db, err := storm.Open(database, StormCodec)
	if err != nil {
		return errors.Wrap(err, "could not get database connection")
	}
	defer db.Close()

	if err := db.Init(&model.Group{}); err != nil {
		return errors.Wrap(err, "could not init group index")
	}

	err = db.Init(&model.Entry{})
	return errors.Wrap(err, "could not init entry index")
}

// StormOpen returns a new Storm database connection.
func StormOpen(database string) (Client, error) {
	db, err := storm.Open(database, StormCodec)
	if err != nil {
		return nil, errors.Wrap(err, "could not get database connection")
	}

	return &strm{
		db: db,
	}, nil
}

// Save inserts or updates the record in database with the given model.
func (c *strm) Save(m model.Model) error {
	t := time.Now().UTC()
	m.SetUpdatedAt(t)

	if m.GetID() == "" {
		m.SetID(uuid.Must(uuid.NewV4()).String())
	}
	if m.GetCreatedAt() == nil {
		m.SetCreatedAt(t)
	}

	return errors.Wrap(c.db.Save(m), "could not save the model")
}

// Delete deletes the record in database with the given model.
func (c *strm) Delete(m model.Model) error {
	return errors.Wrap(c.db.DeleteStruct(m), "could not delete the model")
}

// Close the database.
func (c *strm) Close() error {
	return errors.Wrap(c.db.Close(), "could not close the database")
}

// IsNotFound returns true if err is a storm not found error.
func (c *strm) IsNotFound(err error) bool {
	return errors.Cause(err) == storm.ErrNotFound
}

// FindGroup returns the group for the given id (UUID).
func (c *strm) FindGroup(id string) (*model.Group, error) {
	var group model.Group
	if err := c.db.One("ID", id, &group); err != nil {
		return nil, errors.Wrap(err, "could not find group")
	}
	return &group, nil
}

// FindGroupsByParent returns all groups directly under the given parent id.
func (c *strm) FindGroupsByParent(parentID string) ([]*model.Group, error) {
	groups := []*model.Group{}

	err := c.db.Find("ParentID", parentID, &groups)
	if err == storm.ErrNotFound {
		return groups, nil
	}
	return groups, errors.Wrap(err, "could not find groups")
}

// FindEntry returns the entry for the given id (UUID).
func (c *strm) FindEntry(id string) (*model.Entry, error) {
	var entry model.Entry
	if err := c.db.One("ID", id, &entry); err != nil {
		return nil, errors.Wrap(err, "could not find entry")
	}
	return &entry, nil
}

// FindEntriesByGroup returns all entries attached to the given group id.
func (c *strm) FindEntriesByGroup(groupID string) ([]*model.Entry, error) {
	entries := []*model.Entry{}

	err := c.db.Find("GroupID", groupID, &entries)
	if err == storm.ErrNotFound {
		return entries, nil
	}
	return entries, errors.Wrap(err, "could not find entries")
}
