package model

// Session is the ephemeral state created on a successful login.
// The bearer token is presented to the custom backend as-is; no expiry
// check happens locally, a stale token is simply rejected remotely.
type Session struct {
	Token  string `json:"token,omitempty"`
	UserID string `json:"userId"`
	User   *User  `json:"user,omitempty"`
}
