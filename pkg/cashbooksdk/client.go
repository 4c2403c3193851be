package cashbooksdk

import (
	"net/http"
	"strings"
	"time"
)

// SDKClient is a client for the Cashbook membership service. Public
// endpoints hang off the client; everything else needs a Session.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client

	// CheckScopes makes a Session refuse calls its token lacks the scope for
	// instead of letting the server reject them. Tests turn it off to
	// exercise the server-side checks.
	CheckScopes bool
}

// NewSDKClient creates a client with scope checking enabled.
func NewSDKClient(baseURL string) *SDKClient {
	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		CheckScopes: true,
	}
}

// NewSession wraps an access token issued by the auth service. scopes lists
// what the token was granted; pass nil to skip client-side checks.
func (c *SDKClient) NewSession(accessToken string, scopes []string) *Session {
	s := &Session{
		client:      c,
		accessToken: accessToken,
	}
	if scopes != nil {
		s.scopes = make(map[string]bool, len(scopes))
		for _, sc := range scopes {
			s.scopes[sc] = true
		}
	}
	return s
}
