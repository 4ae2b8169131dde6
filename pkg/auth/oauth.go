package auth

import (
	"github.com/dmitrymomot/authkit/pkg/signedstate"
	"golang.org/x/oauth2"
)

// OAuthStatePurpose binds signed OAuth states to the authorization redirect.
const OAuthStatePurpose = "oauth"

// OAuthState travels through the provider redirect inside the signed state
// parameter.
type OAuthState struct {
	Client      string `json:"client"`
	RedirectURI string `json:"redirect_uri,omitempty"`
}

// NewStateSigner returns a signer for OAuthState keyed with the OAuth state key.
func NewStateSigner(key string, opts ...signedstate.Option) (*signedstate.Signer[OAuthState], error) {
	return signedstate.New[OAuthState](OAuthStatePurpose, []byte(key), opts...)
}

// AuthURL signs state and returns the provider authorization URL carrying it.
func AuthURL(cfg *oauth2.Config, signer *signedstate.Signer[OAuthState], state OAuthState, opts ...oauth2.AuthCodeOption) (string, error) {
	raw, err := signer.Generate(state)
	if err != nil {
		return "", err
	}
	return cfg.AuthCodeURL(raw, opts...), nil
}

// ParseCallbackState verifies the state parameter of a provider callback.
func ParseCallbackState(signer *signedstate.Signer[OAuthState], raw string) (OAuthState, error) {
	return signer.Validate(raw)
}
