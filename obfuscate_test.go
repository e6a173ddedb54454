package organizer

import (
	"bytes"
	"testing"
)

func TestObfuscateRoundTrip(t *testing.T) {
	payload := []byte(`{"profile":{"fullName":"Pat Doe"}}`)

	testCases := []struct {
		name       string
		passphrase string
	}{
		{"short", "pw"},
		{"long", "a much longer passphrase with spaces"},
		{"unicode", "clé-secrète"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ob := Obfuscate(payload, tc.passphrase)
			if bytes.Equal(ob, payload) {
				t.Error("obfuscated output should differ from the input")
			}
			if bytes.Contains(ob, []byte("Pat Doe")) {
				t.Error("obfuscated output should not contain the plaintext")
			}
			plain, err := Deobfuscate(ob, tc.passphrase)
			if err != nil {
				t.Fatalf("Deobfuscate: %v", err)
			}
			if !bytes.Equal(plain, payload) {
				t.Errorf("round trip = %q, want %q", plain, payload)
			}
		})
	}
}

func TestObfuscate_EmptyPassphraseIsIdentity(t *testing.T) {
	payload := []byte("plain text")
	if got := Obfuscate(payload, ""); !bytes.Equal(got, payload) {
		t.Errorf("Obfuscate with no passphrase = %q, want identity", got)
	}
	got, err := Deobfuscate(payload, "")
	if err != nil || !bytes.Equal(got, payload) {
		t.Errorf("Deobfuscate with no passphrase = %q (%v), want identity", got, err)
	}
}

func TestDeobfuscate_RejectsNonBase64(t *testing.T) {
	if _, err := Deobfuscate([]byte("not base64 at all!"), "pw"); err == nil {
		t.Error("expected an error for a non-base64 payload")
	}
}
