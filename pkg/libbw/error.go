package libbw

import "github.com/pkg/errors"

var (
	// ErrUnsupportedKDF is returned when the export uses an unknown key derivation function.
	ErrUnsupportedKDF = errors.New("only PBKDF2 and Argon2 are supported")
	// ErrInvalidKDFParameter is returned when a key derivation parameter is out of range.
	ErrInvalidKDFParameter = errors.New("invalid KDF parameter")
	// ErrMalformedValidation is returned when the encryption key validation token is misshaped.
	ErrMalformedValidation = errors.New("invalid encKeyValidation field")
	// ErrMalformedData is returned when the encrypted data token is misshaped.
	ErrMalformedData = errors.New("invalid encrypted data field")
	// ErrWrongPassword is returned when the MAC check rejects the derived keys.
	// It is the expected failure for a mistyped password.
	ErrWrongPassword = errors.New("wrong password")
	// ErrDecryptionFailed is returned when the bulk payload cannot be deciphered.
	ErrDecryptionFailed = errors.New("cannot decrypt data")
	// ErrMalformedPlaintext is returned when decryption succeeds but the
	// resulting bytes are not a usable document.
	ErrMalformedPlaintext = errors.New("decrypted data is not a valid document")
)
