package libbw

import (
	"fmt"

	"github.com/gofrs/uuid"
)

type (
	// A Database is the in-memory result of one import: a root group,
	// its direct subgroups and all the mapped entries.
	Database struct {
		Root    *Group
		Groups  []*Group
		Entries []*Entry
	}

	// A Group is a node of the credential tree.
	Group struct {
		ID     string
		Name   string
		Parent *Group
	}

	// An Entry is one imported credential record.
	Entry struct {
		ID       string
		Title    string
		Username string
		Password string
		URL      string
		Notes    string
		Tags     []string
		TOTP     *TOTP
		Group    *Group

		// Attributes keeps insertion order; names are unique.
		Attributes []Attribute
	}

	// An Attribute is a named entry value with a sensitive flag.
	Attribute struct {
		Name      string
		Value     string
		Sensitive bool
	}
)

// NewDatabase returns an empty Database with a named root group.
func NewDatabase(rootName string) *Database {
	return &Database{
		Root: &Group{ID: NewID(), Name: rootName},
	}
}

// NewGroup creates a group parented under the root.
func (db *Database) NewGroup(name string) *Group {
	g := &Group{ID: NewID(), Name: name, Parent: db.Root}
	db.Groups = append(db.Groups, g)
	return g
}

// AddEntry attaches the entry to the given group, or to the root when nil.
func (db *Database) AddEntry(e *Entry, g *Group) {
	if g == nil {
		g = db.Root
	}
	e.Group = g
	db.Entries = append(db.Entries, e)
}

// SetAttribute sets the named attribute, replacing any existing value.
func (e *Entry) SetAttribute(name, value string, sensitive bool) {
	for i := range e.Attributes {
		if e.Attributes[i].Name == name {
			e.Attributes[i].Value = value
			e.Attributes[i].Sensitive = sensitive
			return
		}
	}

	e.Attributes = append(e.Attributes, Attribute{Name: name, Value: value, Sensitive: sensitive})
}

// Attribute returns the named attribute.
func (e *Entry) Attribute(name string) (Attribute, bool) {
	for _, a := range e.Attributes {
		if a.Name == name {
			return a, true
		}
	}
	return Attribute{}, false
}

// HasAttribute returns true when the named attribute exists.
func (e *Entry) HasAttribute(name string) bool {
	_, ok := e.Attribute(name)
	return ok
}

// AddTag appends the tag unless already present.
func (e *Entry) AddTag(tag string) {
	for _, t := range e.Tags {
		if t == tag {
			return
		}
	}
	e.Tags = append(e.Tags, tag)
}

// NewID returns a globally-unique identifier.
func NewID() string {
	return uuid.Must(uuid.NewV4()).String()
}

// disambiguate suffixes a colliding attribute name with a short random token.
func disambiguate(name string) string {
	return fmt.Sprintf("%s_%.5s", name, uuid.Must(uuid.NewV4()).String())
}
