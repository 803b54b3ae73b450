package client

import (
	"os"

	"github.com/chzyer/readline"
	"github.com/mdouchement/bwimport/internal/database"
	"github.com/mdouchement/bwimport/internal/model"
	"github.com/mdouchement/bwimport/pkg/libbw"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// ImportOptions configures an import run.
type ImportOptions struct {
	// Database is the path of the local storm database.
	Database string
	// RootName overrides the name of the import's root group.
	RootName string
}

// Import converts a Bitwarden export file and persists it in the local database.
func Import(filename string, opts ImportOptions) error {
	vault, err := convert(filename)
	if err != nil {
		return err
	}

	if opts.RootName != "" {
		vault.Root.Name = opts.RootName
	}
	if len(vault.Groups) == 0 && len(vault.Entries) == 0 {
		log.Warn("nothing to import: empty or unrecognized vault")
	}

	client, err := database.StormOpen(opts.Database)
	if err != nil {
		return errors.Wrap(err, "could not open database")
	}
	defer client.Close()

	for _, group := range append([]*libbw.Group{vault.Root}, vault.Groups...) {
		if err = client.Save(record(group)); err != nil {
			return errors.Wrapf(err, "group %s", group.Name)
		}
	}

	for _, entry := range vault.Entries {
		if err = client.Save(entryRecord(entry)); err != nil {
			return errors.Wrapf(err, "entry %s", entry.Title)
		}
	}

	log.Infof("imported %d groups and %d entries into %s", len(vault.Groups)+1, len(vault.Entries), opts.Database)
	return nil
}

// convert reads an export file and runs it through the import pipeline,
// prompting for the password when the export is password-protected.
func convert(filename string) (*libbw.Database, error) {
	raw, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrap(err, "could not read export file")
	}

	doc, err := libbw.ParseDocument(raw)
	if err != nil {
		return nil, errors.Wrap(err, "could not parse export file")
	}

	var password string
	if doc.Bool("encrypted") {
		p, err := readline.Password("Password: ")
		if err != nil {
			return nil, errors.Wrap(err, "could not read password from stdin")
		}
		password = string(p)
	}

	vault, err := libbw.Convert(raw, password)
	return vault, errors.Wrap(err, "could not convert export")
}

func record(g *libbw.Group) *model.Group {
	group := &model.Group{Name: g.Name}
	group.ID = g.ID
	if g.Parent != nil {
		group.ParentID = g.Parent.ID
	}
	return group
}

func entryRecord(e *libbw.Entry) *model.Entry {
	entry := &model.Entry{
		GroupID:  e.Group.ID,
		Title:    e.Title,
		Username: e.Username,
		Password: e.Password,
		URL:      e.URL,
		Notes:    e.Notes,
		Tags:     e.Tags,
	}
	entry.ID = e.ID

	if e.TOTP != nil {
		entry.OTPAuth = e.TOTP.URI()
	}
	for _, a := range e.Attributes {
		entry.Attributes = append(entry.Attributes, model.Attribute{
			Name:      a.Name,
			Value:     a.Value,
			Sensitive: a.Sensitive,
		})
	}

	return entry
}
