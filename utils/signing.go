package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"strings"

	"bookflow/config"
)

var errBadSignature = errors.New("invalid cookie signature")

// SignValue returns "value.signature" where the signature is an HMAC-SHA256
// over the value with the cookie secret. The session id itself is opaque and
// minted by the booking API; the signature only proves the cookie left this
// gateway unmodified.
func SignValue(value string) string {
	return value + "." + signatureFor(value)
}

// VerifyValue splits a signed cookie value and checks its signature in
// constant time. A malformed or tampered value is treated by callers the
// same as an absent cookie.
func VerifyValue(signed string) (string, error) {
	i := strings.LastIndex(signed, ".")
	if i <= 0 {
		return "", errBadSignature
	}
	value, sig := signed[:i], signed[i+1:]
	if !hmac.Equal([]byte(sig), []byte(signatureFor(value))) {
		return "", errBadSignature
	}
	return value, nil
}

func signatureFor(value string) string {
	mac := hmac.New(sha256.New, []byte(config.AppConfig.CookieSecret))
	mac.Write([]byte(value))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}
