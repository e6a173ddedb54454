package organizer

import (
	"encoding/base64"
	"fmt"
)

// Obfuscate applies a reversible, passphrase-keyed XOR transform and
// base64-encodes the result. This is an obfuscation utility for casual
// privacy of exported files, NOT encryption: it provides no real protection
// against anyone who wants the data. An empty passphrase is the identity.
func Obfuscate(data []byte, passphrase string) []byte {
	if passphrase == "" {
		return data
	}
	out := xorKeystream(data, passphrase)
	encoded := make([]byte, base64.StdEncoding.EncodedLen(len(out)))
	base64.StdEncoding.Encode(encoded, out)
	return encoded
}

// Deobfuscate reverses Obfuscate. It fails only when the payload is not
// valid base64; a wrong passphrase yields garbage that downstream JSON
// parsing rejects.
func Deobfuscate(data []byte, passphrase string) ([]byte, error) {
	if passphrase == "" {
		return data, nil
	}
	decoded := make([]byte, base64.StdEncoding.DecodedLen(len(data)))
	n, err := base64.StdEncoding.Decode(decoded, data)
	if err != nil {
		return nil, fmt.Errorf("payload is not base64: %w", err)
	}
	return xorKeystream(decoded[:n], passphrase), nil
}

// xorKeystream is its own inverse. The key byte for position i derives from
// the passphrase byte sum plus a short position-dependent cycle.
func xorKeystream(data []byte, passphrase string) []byte {
	k := 0
	for _, c := range []byte(passphrase) {
		k += int(c)
	}
	if k == 0 {
		k = 1
	}
	out := make([]byte, len(data))
	for i, b := range data {
		out[i] = b ^ byte((k+i%251)&0xff)
	}
	return out
}
