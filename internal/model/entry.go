package model

type (
	// An Entry is one imported credential record.
	Entry struct {
		Base `msgpack:",inline" storm:"inline"`

		GroupID    string      `json:"group_uuid" msgpack:"group_id" storm:"index"`
		Title      string      `json:"title"      msgpack:"title"`
		Username   string      `json:"username"   msgpack:"username"`
		Password   string      `json:"password"   msgpack:"password"`
		URL        string      `json:"url"        msgpack:"url"`
		Notes      string      `json:"notes"      msgpack:"notes"`
		Tags       []string    `json:"tags"       msgpack:"tags"`
		Attributes []Attribute `json:"attributes" msgpack:"attributes"`
		OTPAuth    string      `json:"otpauth"    msgpack:"otpauth"` // otpauth:// URI
	}

	// An Attribute is a named entry value with a sensitive flag.
	Attribute struct {
		Name      string `json:"name"      msgpack:"name"`
		Value     string `json:"value"     msgpack:"value"`
		Sensitive bool   `json:"sensitive" msgpack:"sensitive"`
	}
)
