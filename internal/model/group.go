package model

// A Group is a node of the imported credential tree.
// The root group of an import has an empty ParentID.
type Group struct {
	Base `msgpack:",inline" storm:"inline"`

	Name     string `json:"name"      msgpack:"name"`
	ParentID string `json:"parent_id" msgpack:"parent_id" storm:"index"`
}
