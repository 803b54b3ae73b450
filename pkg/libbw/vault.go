package libbw

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"strings"

	"github.com/d1str0/pkcs7"
	"github.com/pkg/errors"
)

// A vault holds one decoded `prefix.iv_b64|ciphertext_b64[|mac_b64]` token.
type vault struct {
	iv         []byte
	ciphertext []byte
	auth       string // base64 HMAC as stored in the export
}

// Open parses a Bitwarden export and decrypts it when it is password-protected.
// The returned Document is always plaintext.
func Open(raw []byte, password string) (*Document, error) {
	doc, err := ParseDocument(raw)
	if err != nil {
		return nil, err
	}

	if !doc.Bool("encrypted") {
		return doc, nil
	}

	return decrypt(doc, password)
}

func decrypt(doc *Document, password string) (*Document, error) {
	if !doc.Exists("kdfType") || !doc.Exists("salt") {
		return nil, errors.Wrap(ErrUnsupportedKDF, "missing kdf parameters, ensure the export is password-protected")
	}

	master, err := DeriveMasterKey([]byte(password), []byte(doc.String("salt")), KDFParams{
		Type:        doc.Int("kdfType"),
		Iterations:  doc.Int("kdfIterations"),
		Memory:      doc.Int("kdfMemory"),
		Parallelism: doc.Int("kdfParallelism"),
	})
	if err != nil {
		return nil, err
	}

	keychain := NewKeyChain(master)
	defer keychain.Wipe()

	// Validate the password before touching the bulk payload.
	v, err := parseVault(doc.String("encKeyValidation_DO_NOT_EDIT"), 3, ErrMalformedValidation)
	if err != nil {
		return nil, err
	}
	if err = v.validate(keychain); err != nil {
		return nil, err
	}

	v, err = parseVault(doc.String("data"), 2, ErrMalformedData)
	if err != nil {
		return nil, err
	}
	plaintext, err := v.unseal(keychain)
	if err != nil {
		return nil, err
	}

	plain, err := ParseDocument(plaintext)
	if err != nil {
		return nil, errors.Wrap(ErrMalformedPlaintext, err.Error())
	}

	return plain, nil
}

// parseVault decodes a token, requiring at least segments pipe-separated
// parts after the prefix. Shape mismatches are reported as kind.
func parseVault(token string, segments int, kind error) (*vault, error) {
	components := strings.Split(token, ".")
	if len(components) < 2 {
		return nil, errors.Wrap(kind, "missing cipher part")
	}

	cipherList := strings.Split(components[1], "|")
	if len(cipherList) < segments {
		return nil, errors.Wrap(kind, "invalid cipher list")
	}

	v := &vault{}
	var err error

	v.iv, err = base64.StdEncoding.DecodeString(cipherList[0])
	if err != nil {
		return nil, errors.Wrap(kind, "could not decode IV")
	}
	v.ciphertext, err = base64.StdEncoding.DecodeString(cipherList[1])
	if err != nil {
		return nil, errors.Wrap(kind, "could not decode ciphertext")
	}
	if len(cipherList) > 2 {
		v.auth = cipherList[2]
	}

	return v, nil
}

func (v *vault) validate(keychain *KeyChain) error {
	mac := hmac.New(sha256.New, keychain.MacKey)
	mac.Write(v.iv)
	mac.Write(v.ciphertext)

	if base64.StdEncoding.EncodeToString(mac.Sum(nil)) != v.auth {
		return ErrWrongPassword
	}
	return nil
}

func (v *vault) unseal(keychain *KeyChain) ([]byte, error) {
	block, err := aes.NewCipher(keychain.EncKey)
	if err != nil {
		return nil, errors.Wrap(err, "could not create cipher")
	}

	if len(v.iv) != block.BlockSize() {
		return nil, errors.Wrap(ErrDecryptionFailed, "invalid IV size")
	}
	if len(v.ciphertext) == 0 || len(v.ciphertext)%block.BlockSize() != 0 {
		return nil, errors.Wrap(ErrDecryptionFailed, "ciphertext is not block aligned")
	}

	plaintext := make([]byte, len(v.ciphertext))
	cipher.NewCBCDecrypter(block, v.iv).CryptBlocks(plaintext, v.ciphertext)

	plaintext, err = pkcs7.Unpad(plaintext)
	if err != nil {
		return nil, errors.Wrap(ErrDecryptionFailed, err.Error())
	}

	return plaintext, nil
}
