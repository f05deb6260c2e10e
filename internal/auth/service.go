package auth

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

const (
	minPasswordLength = 6
	defaultRole       = "user"
)

// Service orchestrates registration, login, refresh and token checks over the
// in-memory stores. It is the process-wide context object handlers are given;
// state starts empty at startup and is discarded on exit.
type Service struct {
	// mu serializes the multi-step sequences (register: check-then-insert,
	// login: revoke-then-issue, refresh: check-consume-issue) on top of the
	// per-store locks.
	mu sync.Mutex

	tokens      *Tokens
	directory   *Directory
	credentials *Credentials
	registry    *Registry
	now         func() time.Time
}

// Option configures Service behavior.
type Option func(*Service)

// WithClock overrides the time source, for both the service and its token
// issuer. Useful for tests.
func WithClock(fn func() time.Time) Option {
	return func(s *Service) {
		if fn != nil {
			s.now = fn
			s.tokens.now = fn
		}
	}
}

// NewService constructs a Service with empty stores.
func NewService(tokens *Tokens, opts ...Option) *Service {
	s := &Service{
		tokens:      tokens,
		directory:   NewDirectory(),
		credentials: NewCredentials(),
		registry:    NewRegistry(),
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Directory exposes the account directory shared with the user CRUD handlers.
func (s *Service) Directory() *Directory {
	return s.directory
}

// Register validates the payload, creates the account and stores the
// credential. The directory enforces email uniqueness before the credential
// is written, so a failed registration leaves no partial state.
func (s *Service) Register(name, email, password, role string) (Account, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" {
		return Account{}, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if email == "" {
		return Account{}, fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	if len(password) < minPasswordLength {
		return Account{}, fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, minPasswordLength)
	}
	role = strings.TrimSpace(role)
	if role == "" {
		role = defaultRole
	}

	hash, err := HashPassword(password)
	if err != nil {
		return Account{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	acc, err := s.directory.Create(name, email, role)
	if err != nil {
		return Account{}, err
	}
	s.credentials.Set(email, hash)
	return acc, nil
}

// DeleteAccount removes an account together with its credential. Registry
// entries for the account are left to die on their own: a later refresh
// attempt fails with ErrUserNotFound once the directory lookup misses.
func (s *Service) DeleteAccount(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	acc, ok := s.directory.Find(id)
	if !ok {
		return ErrUserNotFound
	}
	if err := s.directory.Delete(id); err != nil {
		return err
	}
	s.credentials.Delete(acc.Email)
	return nil
}

// Login authenticates the credentials, revokes every prior refresh token for
// the account and issues a fresh access/refresh pair. An unknown email and a
// wrong password surface as distinct errors; the request boundary maps them
// to different status codes.
func (s *Service) Login(email, password string) (TokenPair, Account, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return TokenPair{}, Account{}, fmt.Errorf("%w: email and password are required", ErrInvalidInput)
	}

	acc, ok := s.directory.FindByEmail(email)
	if !ok {
		return TokenPair{}, Account{}, ErrUserNotFound
	}
	hash, ok := s.credentials.Get(email)
	if !ok {
		return TokenPair{}, Account{}, ErrUserNotFound
	}
	if err := VerifyPassword(hash, password); err != nil {
		return TokenPair{}, Account{}, ErrWrongPassword
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.registry.RevokeAllFor(email)

	accessToken, accessExp, err := s.tokens.IssueAccess(acc.Email, acc.Role, acc.Name)
	if err != nil {
		return TokenPair{}, Account{}, err
	}
	refreshToken, session, err := s.tokens.IssueRefresh(acc.Email)
	if err != nil {
		return TokenPair{}, Account{}, err
	}
	// Registry entry goes in before the pair leaves this function; a refresh
	// token must never exist without one.
	s.registry.Insert(session)

	return TokenPair{
		AccessToken:      accessToken,
		RefreshToken:     refreshToken,
		AccessExpiresAt:  accessExp,
		RefreshExpiresAt: session.ExpiresAt,
	}, acc, nil
}

// Refresh redeems a refresh token for a new access token. The signed token
// and the registry entry are independent checks and both must hold. The entry
// is consumed before the replacement is issued, making redemption single-use.
// The refresh token itself is not rotated here; only a fresh login starts a
// new lineage.
func (s *Service) Refresh(refreshToken string) (string, time.Time, error) {
	claims, err := s.tokens.Verify(refreshToken)
	if err != nil {
		return "", time.Time{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.registry.IsActive(claims.ID) {
		return "", time.Time{}, ErrTokenRevoked
	}
	if strings.TrimSpace(claims.Subject) == "" {
		return "", time.Time{}, ErrInvalidToken
	}
	acc, ok := s.directory.FindByEmail(claims.Subject)
	if !ok {
		return "", time.Time{}, ErrUserNotFound
	}
	s.registry.Consume(claims.ID)

	return s.tokens.IssueAccess(acc.Email, acc.Role, acc.Name)
}

// Authenticate verifies an access token and confirms its subject still exists
// in the directory. A token outlives its account cryptographically; the
// directory check closes that window for protected routes.
func (s *Service) Authenticate(token string) (*Claims, error) {
	claims, err := s.tokens.Verify(token)
	if err != nil {
		return nil, err
	}
	if _, ok := s.directory.FindByEmail(claims.Subject); !ok {
		return nil, ErrUserNotFound
	}
	return claims, nil
}

// Authorize is the access-control gate: it rejects claims whose role is not
// exactly the required one. No hierarchy, no wildcards.
func Authorize(claims *Claims, requiredRole string) error {
	if claims == nil || claims.Role != requiredRole {
		return ErrForbidden
	}
	return nil
}
