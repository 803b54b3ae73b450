package libbw

import (
	"crypto/sha256"

	"github.com/pkg/errors"
	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/pbkdf2"
)

// Key derivation function identifiers used by Bitwarden exports.
const (
	KDFPBKDF2   = 0
	KDFArgon2id = 1
)

const masterKeySize = 32

// KDFParams holds the key derivation settings declared by an encrypted export.
type KDFParams struct {
	Type        int
	Iterations  int
	Memory      int // MiB, as stored in the export
	Parallelism int
}

// DeriveMasterKey derives the 32-byte master key from the user password.
func DeriveMasterKey(password, salt []byte, params KDFParams) ([]byte, error) {
	switch params.Type {
	case KDFPBKDF2:
		if params.Iterations <= 0 {
			return nil, errors.Wrap(ErrInvalidKDFParameter, "kdf iterations")
		}
		return pbkdf2.Key(password, salt, params.Iterations, masterKeySize, sha256.New), nil
	case KDFArgon2id:
		if params.Iterations <= 0 || params.Memory <= 0 || params.Parallelism <= 0 {
			return nil, errors.Wrap(ErrInvalidKDFParameter, "argon2 cost")
		}

		// Bitwarden hashes the salt before use.
		hashed := sha256.Sum256(salt)
		return argon2.IDKey(
			password,
			hashed[:],
			uint32(params.Iterations),
			uint32(params.Memory)*1024,
			uint8(params.Parallelism),
			masterKeySize,
		), nil
	}

	return nil, errors.Wrapf(ErrUnsupportedKDF, "kdf type %d", params.Type)
}
