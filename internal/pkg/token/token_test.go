package token

import (
	"encoding/base64"
	"encoding/json"
	"testing"

	"github.com/golang-jwt/jwt/v5"
)

func signedJWT(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	raw, err := tok.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return raw
}

func TestSubjectExtractsClaim(t *testing.T) {
	raw := signedJWT(t, jwt.MapClaims{"sub": "user-42", "aud": "authenticated"})

	sub, err := Subject(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sub != "user-42" {
		t.Fatalf("expected user-42, got %s", sub)
	}
}

func TestSubjectRejectsGarbage(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{name: "empty", raw: ""},
		{name: "not a jwt", raw: "just-some-string"},
		{name: "missing subject", raw: signedJWT(t, jwt.MapClaims{"aud": "authenticated"})},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Subject(tc.raw); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestOpaqueRoundTrip(t *testing.T) {
	raw := Opaque("guest")

	userID, err := OpaqueUserID(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if userID != "guest" {
		t.Fatalf("expected guest, got %s", userID)
	}
}

func TestOpaquePayloadShape(t *testing.T) {
	raw := Opaque("u1")
	decoded, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		t.Fatalf("token is not base64: %v", err)
	}
	var payload map[string]any
	if err := json.Unmarshal(decoded, &payload); err != nil {
		t.Fatalf("token payload is not JSON: %v", err)
	}
	if payload["userId"] != "u1" {
		t.Fatalf("expected userId u1, got %v", payload["userId"])
	}
	if _, ok := payload["timestamp"]; !ok {
		t.Fatal("expected timestamp field")
	}
}

func TestOpaqueUserIDRejectsInvalid(t *testing.T) {
	if _, err := OpaqueUserID("%%%not-base64%%%"); err == nil {
		t.Fatal("expected error for invalid base64")
	}
	empty := base64.StdEncoding.EncodeToString([]byte(`{}`))
	if _, err := OpaqueUserID(empty); err == nil {
		t.Fatal("expected error for missing user id")
	}
}
