// Package signedstate issues stateless, tamper-evident state values for
// OAuth redirects and similar CSRF-protected round trips.
//
// A state is
//
//	base64url(JSON payload).base64url(HMAC-SHA256(key, first segment))
//
// with both segments unpadded. Every payload carries a random nonce and the
// signer's purpose, so two states for the same payload differ and a state
// minted for one purpose is rejected by a signer for another.
//
// Decoded payloads are checked against a JSON schema reflected from the
// payload type: unknown fields, missing required fields and wrong types are
// all rejected. The nonce and purpose are stripped before the payload is
// returned.
//
// # Usage
//
//	type OAuthState struct {
//		Client      string `json:"client" jsonschema:"enum=web,enum=mobile"`
//		RedirectURI string `json:"redirect_uri,omitempty"`
//	}
//
//	signer, err := signedstate.New[OAuthState]("oauth", key)
//	state, err := signer.Generate(OAuthState{Client: "web"})
//
//	// on callback
//	payload, err := signer.Validate(r.URL.Query().Get("state"))
//
// Validate returns [ErrInvalidSignedState] for malformed, tampered or
// schema-violating input and [ErrFailedToDecodeSignedState] when a correctly
// signed state cannot be decoded.
package signedstate
