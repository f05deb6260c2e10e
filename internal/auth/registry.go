package auth

import "sync"

// Registry is the process-wide set of currently valid refresh tokens, keyed
// by token id. Lifecycle is the process lifetime: state starts empty and is
// discarded on exit. Entries for already-expired tokens linger until revoked
// or consumed; there is deliberately no background sweep.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]Session
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{sessions: make(map[string]Session)}
}

// Insert records a session. Must happen before the signed token is handed to
// a caller: a refresh token without a registry entry is never honored.
func (r *Registry) Insert(s Session) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[s.TokenID] = s
}

// IsActive reports whether the token id has a live registry entry.
func (r *Registry) IsActive(tokenID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.sessions[tokenID]
	return ok
}

// Consume removes the entry for the token id and returns it. Called exactly
// once per successful redemption; the removal is what makes refresh tokens
// single-use.
func (r *Registry) Consume(tokenID string) (Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[tokenID]
	if ok {
		delete(r.sessions, tokenID)
	}
	return s, ok
}

// RevokeAllFor removes every session owned by the email and returns how many
// were dropped. A fresh login calls this first, so at most one refresh-token
// lineage per account survives a login.
func (r *Registry) RevokeAllFor(email string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int
	for id, s := range r.sessions {
		if s.OwnerEmail == email {
			delete(r.sessions, id)
			n++
		}
	}
	return n
}
