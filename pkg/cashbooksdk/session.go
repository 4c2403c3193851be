package cashbooksdk

import (
	"fmt"
	"strings"
	"sync"
)

// Scopes the membership service enforces.
const (
	ScopeRead  = "cashbook:read"
	ScopeWrite = "cashbook:write"
)

// Session makes authenticated calls with a bearer token. It is safe for
// concurrent use.
type Session struct {
	client *SDKClient

	mu          sync.RWMutex
	accessToken string
	scopes      map[string]bool
}

// AccessToken returns the bearer token in use.
func (s *Session) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken
}

// SetAccessToken swaps in a refreshed token.
func (s *Session) SetAccessToken(token string, scopes []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accessToken = token
	if scopes == nil {
		s.scopes = nil
		return
	}
	s.scopes = make(map[string]bool, len(scopes))
	for _, sc := range scopes {
		s.scopes[sc] = true
	}
}

func (s *Session) checkScopes(required ...string) error {
	if !s.client.CheckScopes || len(required) == 0 {
		return nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.scopes == nil {
		return nil
	}

	var missing []string
	for _, r := range required {
		if !s.scopes[r] {
			missing = append(missing, r)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required scopes: %s", strings.Join(missing, ", "))
	}
	return nil
}
