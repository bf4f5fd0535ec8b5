package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/briksiq/core/internal/models"
)

// Provider-level errors
var (
	ErrEmailInUse         = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type memoryAccount struct {
	uid      string
	password string
}

// MemoryProvider is an in-memory Provider used by the console harness and
// tests. It keeps accounts keyed by email and notifies session-change
// listeners synchronously.
type MemoryProvider struct {
	mu        sync.Mutex
	accounts  map[string]memoryAccount
	profiles  map[string]models.UserProfile
	current   string
	listeners []func(uid string)
}

// NewMemoryProvider creates an empty in-memory identity provider.
func NewMemoryProvider() *MemoryProvider {
	return &MemoryProvider{
		accounts: make(map[string]memoryAccount),
		profiles: make(map[string]models.UserProfile),
	}
}

// CreateAccount registers a new account and starts a session for it.
func (p *MemoryProvider) CreateAccount(ctx context.Context, email, password string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	p.mu.Lock()
	if _, exists := p.accounts[email]; exists {
		p.mu.Unlock()
		return "", fmt.Errorf("%w: %s", ErrEmailInUse, email)
	}
	uid := uuid.New().String()
	p.accounts[email] = memoryAccount{uid: uid, password: password}
	p.current = uid
	p.mu.Unlock()

	p.notify(uid)
	return uid, nil
}

// Authenticate resolves a session for known credentials.
func (p *MemoryProvider) Authenticate(ctx context.Context, email, password string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	p.mu.Lock()
	acct, ok := p.accounts[email]
	if !ok || acct.password != password {
		p.mu.Unlock()
		return "", ErrInvalidCredentials
	}
	p.current = acct.uid
	p.mu.Unlock()

	p.notify(acct.uid)
	return acct.uid, nil
}

// EndSession signs the current user out.
func (p *MemoryProvider) EndSession(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	p.mu.Lock()
	p.current = ""
	p.mu.Unlock()

	p.notify("")
	return nil
}

// OnSessionChange registers a listener for session transitions. Listeners
// are not called until the next transition or an explicit Restore.
func (p *MemoryProvider) OnSessionChange(fn func(uid string)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.listeners = append(p.listeners, fn)
}

// Restore replays the current session to all listeners, simulating the
// provider's session-restore callback at startup.
func (p *MemoryProvider) Restore() {
	p.mu.Lock()
	uid := p.current
	p.mu.Unlock()
	p.notify(uid)
}

// GetProfile returns the stored profile, or (nil, nil) when none exists.
func (p *MemoryProvider) GetProfile(ctx context.Context, uid string) (*models.UserProfile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	profile, ok := p.profiles[uid]
	if !ok {
		return nil, nil
	}
	return &profile, nil
}

// PutProfile stores a profile document keyed by uid.
func (p *MemoryProvider) PutProfile(ctx context.Context, profile models.UserProfile) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.profiles[profile.UID] = profile
	return nil
}

// notify calls listeners outside the provider lock so a listener can call
// back into the provider.
func (p *MemoryProvider) notify(uid string) {
	p.mu.Lock()
	listeners := make([]func(string), len(p.listeners))
	copy(listeners, p.listeners)
	p.mu.Unlock()

	for _, fn := range listeners {
		fn(uid)
	}
}
