package session

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/briksiq/core/internal/apperrors"
	"github.com/briksiq/core/internal/config"
	"github.com/briksiq/core/internal/logger"
	"github.com/briksiq/core/internal/models"
)

// Provider is the external identity/store collaborator. Implementations wrap
// a real identity service; GetProfile returns (nil, nil) when no profile
// document exists, which is not an error.
type Provider interface {
	CreateAccount(ctx context.Context, email, password string) (string, error)
	Authenticate(ctx context.Context, email, password string) (string, error)
	EndSession(ctx context.Context) error
	OnSessionChange(fn func(uid string))
	GetProfile(ctx context.Context, uid string) (*models.UserProfile, error)
	PutProfile(ctx context.Context, profile models.UserProfile) error
}

// Gate wraps the identity provider and holds the process-wide session state:
// the current user, their profile and a loading flag. The gate never inspects
// credentials itself; it passes them through and maps failures to AuthError.
// State starts loading=true and settles when the provider's session-restore
// callback fires.
type Gate struct {
	provider Provider
	log      *logger.Logger
	timeout  time.Duration

	mu      sync.Mutex
	uid     string
	profile *models.UserProfile
	loading bool
}

// NewGate creates a session gate over the given provider and registers for
// session-restore notifications.
func NewGate(provider Provider, cfg config.AuthConfig, log *logger.Logger) *Gate {
	g := &Gate{
		provider: provider,
		log:      log,
		timeout:  cfg.Timeout,
		loading:  true,
	}
	provider.OnSessionChange(g.handleSessionChange)
	return g
}

// handleSessionChange reacts to the provider's session callback: an empty uid
// means signed out. A profile fetch failure is not fatal; the user is kept
// without a profile, matching the reference behavior.
func (g *Gate) handleSessionChange(uid string) {
	if uid == "" {
		g.setState("", nil)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), g.timeout)
	defer cancel()

	profile, err := g.provider.GetProfile(ctx, uid)
	if err != nil {
		g.log.Error("Failed to fetch user profile on session change", err, map[string]interface{}{
			"uid": uid,
		})
		profile = nil
	}
	g.setState(uid, profile)
}

// SignUp creates an account, writes the profile document and populates the
// session. Invalid input is rejected before the provider is called.
func (g *Gate) SignUp(ctx context.Context, email, password, name string, role models.Role) (*models.UserProfile, error) {
	fields := make(map[string]string)
	if strings.TrimSpace(email) == "" {
		fields["email"] = "This field is required"
	}
	if password == "" {
		fields["password"] = "This field is required"
	}
	if strings.TrimSpace(name) == "" {
		fields["name"] = "This field is required"
	}
	if !role.Valid() {
		fields["role"] = "Must be one of: buyer agent"
	}
	if len(fields) > 0 {
		return nil, apperrors.NewValidationError(fields)
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	uid, err := g.provider.CreateAccount(ctx, email, password)
	if err != nil {
		g.rollback("sign up", err)
		return nil, apperrors.NewAuthError("sign up", err)
	}

	profile := models.UserProfile{
		UID:         uid,
		Email:       email,
		DisplayName: strings.TrimSpace(name),
		Role:        role,
		CreatedAt:   time.Now().UTC(),
	}

	if err := g.provider.PutProfile(ctx, profile); err != nil {
		g.rollback("sign up", err)
		return nil, apperrors.NewAuthError("sign up", err)
	}

	g.setState(uid, &profile)
	g.log.Info("User signed up", map[string]interface{}{
		"uid":  uid,
		"role": string(role),
	})
	return &profile, nil
}

// SignIn resolves a session with the provider and fetches the profile. On
// failure the session state rolls back to logged out and the provider's error
// is surfaced inside an AuthError.
func (g *Gate) SignIn(ctx context.Context, email, password string) error {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	uid, err := g.provider.Authenticate(ctx, email, password)
	if err != nil {
		g.rollback("sign in", err)
		return apperrors.NewAuthError("sign in", err)
	}

	profile, err := g.provider.GetProfile(ctx, uid)
	if err != nil {
		g.log.Warn("Signed in without profile", map[string]interface{}{
			"uid": uid,
		})
		profile = nil
	}

	g.setState(uid, profile)
	g.log.Info("User signed in", map[string]interface{}{
		"uid": uid,
	})
	return nil
}

// Logout ends the provider session and clears local state.
func (g *Gate) Logout(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	if err := g.provider.EndSession(ctx); err != nil {
		return apperrors.NewAuthError("logout", err)
	}

	g.setState("", nil)
	g.log.Info("User logged out", nil)
	return nil
}

// CurrentUser returns the signed-in uid, if any.
func (g *Gate) CurrentUser() (string, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.uid, g.uid != ""
}

// Profile returns a copy of the current profile, or nil when no profile is
// loaded. Callers read the role from here, never from ambient state.
func (g *Gate) Profile() *models.UserProfile {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.profile == nil {
		return nil
	}
	p := *g.profile
	return &p
}

// Loading reports whether the initial session restore is still in flight.
func (g *Gate) Loading() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.loading
}

func (g *Gate) setState(uid string, profile *models.UserProfile) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.uid = uid
	g.profile = profile
	g.loading = false
}

// rollback resets to logged out after a failed provider call, so a failed
// attempt never leaves partial session state behind.
func (g *Gate) rollback(op string, err error) {
	g.log.Warn("Auth operation failed", map[string]interface{}{
		"op":    op,
		"error": err.Error(),
	})
	g.setState("", nil)
}
