package libbw

import "github.com/valyala/fastjson"

type (
	// An Item is one vault record. The login, identity and card sub-sections
	// are optional and mutually non-exclusive.
	Item struct {
		ID       string
		FolderID string
		Name     string
		Notes    string
		Favorite bool

		Login    *Login
		Identity *Identity
		Card     *Card
		Fields   []Field
	}

	// A Login holds website credentials.
	Login struct {
		Username         string
		Password         string
		TOTP             string
		URIs             []string
		Fido2Credentials []Fido2Credential
	}

	// A Fido2Credential is a passkey attached to a login.
	Fido2Credential struct {
		CredentialID string
		KeyValue     string
		UserName     string
		RPID         string
		UserHandle   string
	}

	// An Identity holds personal information fields.
	Identity struct {
		Title          string
		FirstName      string
		MiddleName     string
		LastName       string
		Address1       string
		Address2       string
		Address3       string
		City           string
		State          string
		PostalCode     string
		Country        string
		Company        string
		Email          string
		Phone          string
		SSN            string
		PassportNumber string
		LicenseNumber  string
		Username       string
	}

	// A Card holds payment card fields.
	Card struct {
		CardholderName string
		Brand          string
		Number         string
		ExpMonth       string
		ExpYear        string
		Code           string
	}

	// A Field is a free-form custom field. Type 1 flags a hidden value.
	Field struct {
		Name  string
		Value string
		Type  int
	}
)

func decodeItem(v *fastjson.Value) Item {
	item := Item{
		ID:       str(v, "id"),
		FolderID: str(v, "folderId"),
		Name:     str(v, "name"),
		Notes:    str(v, "notes"),
		Favorite: v.GetBool("favorite"),
	}

	if item.FolderID == "" {
		// Organization vaults reference collections instead of folders.
		if ids := v.GetArray("collectionIds"); len(ids) > 0 {
			item.FolderID = str(ids[0])
		}
	}

	if login := v.Get("login"); login != nil {
		item.Login = decodeLogin(login)
	}
	if identity := v.Get("identity"); identity != nil {
		item.Identity = decodeIdentity(identity)
	}
	if card := v.Get("card"); card != nil {
		item.Card = decodeCard(card)
	}
	for _, field := range v.GetArray("fields") {
		item.Fields = append(item.Fields, Field{
			Name:  str(field, "name"),
			Value: str(field, "value"),
			Type:  field.GetInt("type"),
		})
	}

	return item
}

func decodeLogin(v *fastjson.Value) *Login {
	login := &Login{
		Username: str(v, "username"),
		Password: str(v, "password"),
		TOTP:     str(v, "totp"),
	}

	for _, uri := range v.GetArray("uris") {
		login.URIs = append(login.URIs, str(uri, "uri"))
	}
	for _, credential := range v.GetArray("fido2Credentials") {
		login.Fido2Credentials = append(login.Fido2Credentials, Fido2Credential{
			CredentialID: str(credential, "credentialId"),
			KeyValue:     str(credential, "keyValue"),
			UserName:     str(credential, "userName"),
			RPID:         str(credential, "rpId"),
			UserHandle:   str(credential, "userHandle"),
		})
	}

	return login
}

func decodeIdentity(v *fastjson.Value) *Identity {
	return &Identity{
		Title:          str(v, "title"),
		FirstName:      str(v, "firstName"),
		MiddleName:     str(v, "middleName"),
		LastName:       str(v, "lastName"),
		Address1:       str(v, "address1"),
		Address2:       str(v, "address2"),
		Address3:       str(v, "address3"),
		City:           str(v, "city"),
		State:          str(v, "state"),
		PostalCode:     str(v, "postalCode"),
		Country:        str(v, "country"),
		Company:        str(v, "company"),
		Email:          str(v, "email"),
		Phone:          str(v, "phone"),
		SSN:            str(v, "ssn"),
		PassportNumber: str(v, "passportNumber"),
		LicenseNumber:  str(v, "licenseNumber"),
		Username:       str(v, "username"),
	}
}

func decodeCard(v *fastjson.Value) *Card {
	return &Card{
		CardholderName: str(v, "cardholderName"),
		Brand:          str(v, "brand"),
		Number:         str(v, "number"),
		ExpMonth:       str(v, "expMonth"),
		ExpYear:        str(v, "expYear"),
		Code:           str(v, "code"),
	}
}
