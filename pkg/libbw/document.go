package libbw

import (
	"github.com/pkg/errors"
	"github.com/valyala/fastjson"
)

// A Document is a parsed export with tolerant accessors.
// Absent or mistyped keys read as zero values so that partially filled
// vault records never abort an import.
type Document struct {
	root *fastjson.Value
}

// ParseDocument parses raw JSON bytes into a Document.
func ParseDocument(raw []byte) (*Document, error) {
	v, err := fastjson.ParseBytes(raw)
	if err != nil {
		return nil, errors.Wrap(err, "could not parse document")
	}

	return &Document{root: v}, nil
}

// Exists returns true when the nested key path is present.
func (d *Document) Exists(keys ...string) bool {
	return d.root.Exists(keys...)
}

// String returns the string at the nested key path or "".
func (d *Document) String(keys ...string) string {
	return str(d.root, keys...)
}

// Int returns the integer at the nested key path or 0.
func (d *Document) Int(keys ...string) int {
	return d.root.GetInt(keys...)
}

// Bool returns the boolean at the nested key path or false.
func (d *Document) Bool(keys ...string) bool {
	return d.root.GetBool(keys...)
}

func (d *Document) array(keys ...string) []*fastjson.Value {
	return d.root.GetArray(keys...)
}

func str(v *fastjson.Value, keys ...string) string {
	if v == nil {
		return ""
	}
	return string(v.GetStringBytes(keys...))
}
