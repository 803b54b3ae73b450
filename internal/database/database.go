package database

import (
	"github.com/mdouchement/bwimport/internal/model"
)

// A Client can interact with the import database.
type Client interface {
	// Save inserts or updates the record in database with the given model.
	Save(m model.Model) error
	// Delete deletes the record in database with the given model.
	Delete(m model.Model) error
	// Close the database.
	Close() error
	// IsNotFound returns true if err is a not found error.
	IsNotFound(err error) bool

	// FindGroup returns the group for the given id (UUID).
	FindGroup(id string) (*model.Group, error)
	// FindGroupsByParent returns all groups directly under the given parent id.
	FindGroupsByParent(parentID string) ([]*model.Group, error)
	// FindEntry returns the entry for the given id (UUID).
	FindEntry(id string) (*model.Entry, error)
	// FindEntriesByGroup returns all entries attached to the given group id.
	FindEntriesByGroup(groupID string) ([]*model.Entry, error)
}
