// Package signature computes the payment request digest: a SHA-1 over the
// ordered field values and the shared secret, each terminated by "&".
package signature

import (
	"crypto/sha1"
	"crypto/subtle"
	"encoding/hex"
	"strings"
)

// Delimiter terminates every value in the signing string, the secret included.
const Delimiter = "&"

// Pair is one named value fed into the digest.
type Pair struct {
	Name  string
	Value string
}

// Payload is the ordered sequence of pairs hashed for a payment request. The
// order is part of the gateway contract.
type Payload []Pair

// AppendOptional appends name with *value, or nothing when value is nil.
func (p Payload) AppendOptional(name string, value *string) Payload {
	if value == nil {
		return p
	}
	return append(p, Pair{Name: name, Value: *value})
}

// SigningString concatenates the values followed by the secret, each one
// terminated by [Delimiter].
func (p Payload) SigningString(secret string) string {
	var b strings.Builder
	for _, pair := range p {
		b.WriteString(pair.Value)
		b.WriteString(Delimiter)
	}
	b.WriteString(secret)
	b.WriteString(Delimiter)
	return b.String()
}

// Digest returns the lowercase hex SHA-1 of the signing string's UTF-8 bytes.
func Digest(p Payload, secret string) string {
	sum := sha1.Sum([]byte(p.SigningString(secret)))
	return hex.EncodeToString(sum[:])
}

// Equal compares two hex digests in constant time, ignoring case.
func Equal(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(strings.ToLower(a)), []byte(strings.ToLower(b))) == 1
}
