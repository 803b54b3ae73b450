package libbw

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// TOTP defaults per the otpauth URI registry.
const (
	defaultTOTPAlgorithm = "SHA1"
	defaultTOTPDigits    = 6
	defaultTOTPPeriod    = 30
)

// A TOTP is a time-based one-time password configuration.
type TOTP struct {
	Secret      string
	Issuer      string
	AccountName string
	Algorithm   string
	Digits      int
	Period      int
}

// ParseTOTP parses an `otpauth://totp/...` URI.
func ParseTOTP(uri string) (*TOTP, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return nil, errors.Wrap(err, "could not parse otpauth URI")
	}
	if u.Scheme != "otpauth" || u.Host != "totp" {
		return nil, errors.New("not a totp URI")
	}

	query := u.Query()
	totp := &TOTP{
		Secret:    query.Get("secret"),
		Issuer:    query.Get("issuer"),
		Algorithm: defaultTOTPAlgorithm,
		Digits:    defaultTOTPDigits,
		Period:    defaultTOTPPeriod,
	}
	if totp.Secret == "" {
		return nil, errors.New("missing totp secret")
	}

	label := strings.TrimPrefix(u.Path, "/")
	if i := strings.Index(label, ":"); i >= 0 {
		if totp.Issuer == "" {
			totp.Issuer = label[:i]
		}
		totp.AccountName = label[i+1:]
	} else {
		totp.AccountName = label
	}

	if v := query.Get("algorithm"); v != "" {
		totp.Algorithm = strings.ToUpper(v)
	}
	if v, err := strconv.Atoi(query.Get("digits")); err == nil && v > 0 {
		totp.Digits = v
	}
	if v, err := strconv.Atoi(query.Get("period")); err == nil && v > 0 {
		totp.Period = v
	}

	return totp, nil
}

// URI serializes the configuration back to an otpauth URI.
func (t *TOTP) URI() string {
	label := url.PathEscape(t.AccountName)
	if t.Issuer != "" {
		label = url.PathEscape(t.Issuer) + ":" + label
	}

	query := url.Values{}
	query.Set("secret", t.Secret)
	if t.Issuer != "" {
		query.Set("issuer", t.Issuer)
	}
	if t.Algorithm != "" && t.Algorithm != defaultTOTPAlgorithm {
		query.Set("algorithm", t.Algorithm)
	}
	if t.Digits != 0 && t.Digits != defaultTOTPDigits {
		query.Set("digits", strconv.Itoa(t.Digits))
	}
	if t.Period != 0 && t.Period != defaultTOTPPeriod {
		query.Set("period", strconv.Itoa(t.Period))
	}

	return fmt.Sprintf("otpauth://totp/%s?%s", label, query.Encode())
}

// totpURI builds an otpauth URI from a bare seed, the way Bitwarden stores
// most of them, using the entry title and username as the label.
func totpURI(title, username, seed string) string {
	return fmt.Sprintf("otpauth://totp/%s:%s?secret=%s",
		url.PathEscape(title), url.PathEscape(username), url.QueryEscape(seed))
}
