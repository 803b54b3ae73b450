package libbw_test

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/d1str0/pkcs7"
	"github.com/mdouchement/bwimport/pkg/libbw"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	exportPassword   = "12345678"
	exportSalt       = "rQveTdfmVJUqcAKUZlrF8g=="
	exportIterations = 1200
)

// sealer encrypts envelope tokens the way the Bitwarden client does.
type sealer struct {
	t        *testing.T
	keychain *libbw.KeyChain
}

func newSealer(t *testing.T, password string) *sealer {
	master, err := libbw.DeriveMasterKey([]byte(password), []byte(exportSalt), libbw.KDFParams{
		Type:       libbw.KDFPBKDF2,
		Iterations: exportIterations,
	})
	require.NoError(t, err)

	return &sealer{t: t, keychain: libbw.NewKeyChain(master)}
}

func (s *sealer) seal(payload []byte) (iv, ciphertext, mac string) {
	div := make([]byte, aes.BlockSize)
	_, err := rand.Read(div)
	require.NoError(s.t, err)

	padded, err := pkcs7.Pad(payload, aes.BlockSize)
	require.NoError(s.t, err)

	block, err := aes.NewCipher(s.keychain.EncKey)
	require.NoError(s.t, err)

	ct := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, div).CryptBlocks(ct, padded)

	h := hmac.New(sha256.New, s.keychain.MacKey)
	h.Write(div)
	h.Write(ct)

	return base64.StdEncoding.EncodeToString(div),
		base64.StdEncoding.EncodeToString(ct),
		base64.StdEncoding.EncodeToString(h.Sum(nil))
}

func (s *sealer) validationToken() string {
	iv, ct, mac := s.seal([]byte("validation"))
	return fmt.Sprintf("2.%s|%s|%s", iv, ct, mac)
}

func (s *sealer) dataToken(payload []byte) string {
	iv, ct, _ := s.seal(payload)
	return fmt.Sprintf("2.%s|%s", iv, ct)
}

func (s *sealer) export(payload []byte) []byte {
	return s.exportWithTokens(s.validationToken(), s.dataToken(payload))
}

func (s *sealer) exportWithTokens(validation, data string) []byte {
	raw, err := json.Marshal(map[string]interface{}{
		"encrypted":                    true,
		"kdfType":                      0,
		"kdfIterations":                exportIterations,
		"salt":                         exportSalt,
		"encKeyValidation_DO_NOT_EDIT": validation,
		"data":                         data,
	})
	require.NoError(s.t, err)
	return raw
}

func TestOpenEncryptedRoundTrip(t *testing.T) {
	s := newSealer(t, exportPassword)
	raw := s.export([]byte(`{"folders":[],"items":[{"name":"n"}]}`))

	doc, err := libbw.Open(raw, exportPassword)
	require.NoError(t, err)
	assert.True(t, doc.Exists("folders"))
	assert.True(t, doc.Exists("items"))
	assert.False(t, doc.Bool("encrypted"))
}

func TestOpenWrongPassword(t *testing.T) {
	s := newSealer(t, exportPassword)

	// The data token is garbage on purpose: a wrong password must be reported
	// by the validation gate before any bulk decryption is attempted.
	raw := s.exportWithTokens(s.validationToken(), "2.AAAAAAAAAAAAAAAAAAAAAA==|AAAAAAAAAAAAAAAAAAAAAA==")

	_, err := libbw.Open(raw, "not-the-password")
	assert.ErrorIs(t, err, libbw.ErrWrongPassword)
}

func TestOpenMalformedValidationToken(t *testing.T) {
	s := newSealer(t, exportPassword)
	data := s.dataToken([]byte(`{}`))

	for _, token := range []string{
		"",
		"nodotseparator",
		"2.onlyone|segments",
		"2.a|b|not!base64*",
	} {
		_, err := libbw.Open(s.exportWithTokens(token, data), exportPassword)
		assert.ErrorIs(t, err, libbw.ErrMalformedValidation, "token %q", token)
	}
}

func TestOpenMalformedDataToken(t *testing.T) {
	s := newSealer(t, exportPassword)
	validation := s.validationToken()

	for _, token := range []string{
		"",
		"nodotseparator",
		"2.nopipe",
	} {
		_, err := libbw.Open(s.exportWithTokens(validation, token), exportPassword)
		assert.ErrorIs(t, err, libbw.ErrMalformedData, "token %q", token)
	}
}

func TestOpenDecryptionFailed(t *testing.T) {
	s := newSealer(t, exportPassword)

	// Well-shaped token whose ciphertext is not block aligned.
	iv := base64.StdEncoding.EncodeToString(make([]byte, aes.BlockSize))
	ct := base64.StdEncoding.EncodeToString([]byte("0123456789")) // 10 bytes
	raw := s.exportWithTokens(s.validationToken(), fmt.Sprintf("2.%s|%s", iv, ct))

	_, err := libbw.Open(raw, exportPassword)
	assert.ErrorIs(t, err, libbw.ErrDecryptionFailed)
}

func TestOpenMalformedPlaintext(t *testing.T) {
	s := newSealer(t, exportPassword)
	raw := s.export([]byte("decrypted but not a document"))

	_, err := libbw.Open(raw, exportPassword)
	assert.ErrorIs(t, err, libbw.ErrMalformedPlaintext)
}

func TestOpenMissingKDFParameters(t *testing.T) {
	raw := []byte(`{"encrypted":true,"data":"2.a|b"}`)

	_, err := libbw.Open(raw, exportPassword)
	assert.ErrorIs(t, err, libbw.ErrUnsupportedKDF)
}

func TestOpenPlaintextPassthrough(t *testing.T) {
	raw := []byte(`{"folders":[{"id":"1","name":"Work"}],"items":[]}`)

	doc, err := libbw.Open(raw, "")
	require.NoError(t, err)
	assert.Equal(t, "Work", doc.String("folders", "0", "name"))
}
