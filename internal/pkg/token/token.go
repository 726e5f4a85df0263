package token

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid auth token")

// Subject extracts the subject claim from a provider-issued JWT without
// verifying the signature. The managed provider signs its own tokens; this
// side only needs the user identifier embedded in them.
func Subject(raw string) (string, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return "", ErrInvalidToken
	}
	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return "", ErrInvalidToken
	}
	return sub, nil
}

type opaquePayload struct {
	UserID    string `json:"userId"`
	Timestamp int64  `json:"timestamp"`
}

// Opaque mints a local, unsigned token for sessions that never touch a
// remote auth service (guest mode). The payload is base64-encoded JSON so
// it round-trips through the same storage path as real bearer tokens.
func Opaque(userID string) string {
	payload, _ := json.Marshal(opaquePayload{UserID: userID, Timestamp: time.Now().UnixMilli()})
	return base64.StdEncoding.EncodeToString(payload)
}

// OpaqueUserID decodes a token minted by Opaque.
func OpaqueUserID(raw string) (string, error) {
	decoded, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return "", ErrInvalidToken
	}
	var payload opaquePayload
	if err := json.Unmarshal(decoded, &payload); err != nil || payload.UserID == "" {
		return "", ErrInvalidToken
	}
	return payload.UserID, nil
}
