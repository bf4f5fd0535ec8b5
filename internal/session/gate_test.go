package session

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/briksiq/core/internal/apperrors"
	"github.com/briksiq/core/internal/config"
	"github.com/briksiq/core/internal/logger"
	"github.com/briksiq/core/internal/models"
)

// MockProvider is a mock implementation of Provider for testing
type MockProvider struct {
	mock.Mock
}

func (m *MockProvider) CreateAccount(ctx context.Context, email, password string) (string, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.Error(1)
}

func (m *MockProvider) Authenticate(ctx context.Context, email, password string) (string, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.Error(1)
}

func (m *MockProvider) EndSession(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockProvider) OnSessionChange(fn func(uid string)) {
	m.Called(fn)
}

func (m *MockProvider) GetProfile(ctx context.Context, uid string) (*models.UserProfile, error) {
	args := m.Called(ctx, uid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	profile, ok := args.Get(0).(*models.UserProfile)
	if !ok {
		return nil, args.Error(1)
	}
	return profile, args.Error(1)
}

func (m *MockProvider) PutProfile(ctx context.Context, profile models.UserProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func testLogger() *logger.Logger {
	return logger.NewWriter(io.Discard)
}

func authConfig() config.AuthConfig {
	return config.AuthConfig{Timeout: 5 * time.Second}
}

func newMockGate(t *testing.T) (*Gate, *MockProvider) {
	t.Helper()
	provider := new(MockProvider)
	provider.On("OnSessionChange", mock.Anything).Return()
	return NewGate(provider, authConfig(), testLogger()), provider
}

func TestNewGate_StartsLoading(t *testing.T) {
	gate, _ := newMockGate(t)

	assert.True(t, gate.Loading())
	_, ok := gate.CurrentUser()
	assert.False(t, ok)
}

func TestSignUp_Success(t *testing.T) {
	gate, provider := newMockGate(t)
	provider.On("CreateAccount", mock.Anything, "ali@example.com", "secret12").Return("uid-1", nil)
	provider.On("PutProfile", mock.Anything, mock.AnythingOfType("models.UserProfile")).Return(nil)

	profile, err := gate.SignUp(context.Background(), "ali@example.com", "secret12", "Ali Hassan", models.RoleBuyer)

	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.Equal(t, "uid-1", profile.UID)
	assert.Equal(t, "Ali Hassan", profile.DisplayName)
	assert.Equal(t, models.RoleBuyer, profile.Role)

	uid, ok := gate.CurrentUser()
	assert.True(t, ok)
	assert.Equal(t, "uid-1", uid)
	assert.False(t, gate.Loading())
	provider.AssertExpectations(t)
}

func TestSignUp_InvalidInputNeverCallsProvider(t *testing.T) {
	testCases := []struct {
		name      string
		email     string
		password  string
		userName  string
		role      models.Role
		wantField string
	}{
		{name: "missing email", password: "secret12", userName: "Ali", role: models.RoleBuyer, wantField: "email"},
		{name: "missing password", email: "ali@example.com", userName: "Ali", role: models.RoleBuyer, wantField: "password"},
		{name: "missing name", email: "ali@example.com", password: "secret12", role: models.RoleBuyer, wantField: "name"},
		{name: "bad role", email: "ali@example.com", password: "secret12", userName: "Ali", role: models.Role("admin"), wantField: "role"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			gate, provider := newMockGate(t)

			_, err := gate.SignUp(context.Background(), tc.email, tc.password, tc.userName, tc.role)

			var verr *apperrors.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Contains(t, verr.Fields, tc.wantField)
			provider.AssertNotCalled(t, "CreateAccount")
		})
	}
}

func TestSignUp_ProviderFailureRollsBack(t *testing.T) {
	gate, provider := newMockGate(t)
	provider.On("CreateAccount", mock.Anything, "ali@example.com", "secret12").
		Return("", errors.New("email already in use"))

	_, err := gate.SignUp(context.Background(), "ali@example.com", "secret12", "Ali", models.RoleAgent)

	assert.Error(t, err)
	assert.True(t, apperrors.IsAuth(err))
	assert.Contains(t, err.Error(), "email already in use")

	_, ok := gate.CurrentUser()
	assert.False(t, ok)
	assert.False(t, gate.Loading())
	provider.AssertNotCalled(t, "PutProfile")
}

func TestSignUp_ProfileWriteFailureRollsBack(t *testing.T) {
	gate, provider := newMockGate(t)
	provider.On("CreateAccount", mock.Anything, "ali@example.com", "secret12").Return("uid-1", nil)
	provider.On("PutProfile", mock.Anything, mock.AnythingOfType("models.UserProfile")).
		Return(errors.New("store unavailable"))

	_, err := gate.SignUp(context.Background(), "ali@example.com", "secret12", "Ali", models.RoleAgent)

	assert.True(t, apperrors.IsAuth(err))
	_, ok := gate.CurrentUser()
	assert.False(t, ok)
}

func TestSignIn_Success(t *testing.T) {
	gate, provider := newMockGate(t)
	stored := &models.UserProfile{UID: "uid-1", Email: "ali@example.com", DisplayName: "Ali", Role: models.RoleBuyer}
	provider.On("Authenticate", mock.Anything, "ali@example.com", "secret12").Return("uid-1", nil)
	provider.On("GetProfile", mock.Anything, "uid-1").Return(stored, nil)

	err := gate.SignIn(context.Background(), "ali@example.com", "secret12")

	require.NoError(t, err)
	uid, ok := gate.CurrentUser()
	assert.True(t, ok)
	assert.Equal(t, "uid-1", uid)
	require.NotNil(t, gate.Profile())
	assert.Equal(t, models.RoleBuyer, gate.Profile().Role)
	provider.AssertExpectations(t)
}

func TestSignIn_BadCredentialsRollsBack(t *testing.T) {
	gate, provider := newMockGate(t)
	provider.On("Authenticate", mock.Anything, "ali@example.com", "wrong").
		Return("", ErrInvalidCredentials)

	err := gate.SignIn(context.Background(), "ali@example.com", "wrong")

	assert.Error(t, err)
	assert.True(t, apperrors.IsAuth(err))
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, ok := gate.CurrentUser()
	assert.False(t, ok)
	assert.False(t, gate.Loading())
	assert.Nil(t, gate.Profile())
}

func TestSignIn_MissingProfileIsNotFatal(t *testing.T) {
	gate, provider := newMockGate(t)
	provider.On("Authenticate", mock.Anything, "ali@example.com", "secret12").Return("uid-1", nil)
	provider.On("GetProfile", mock.Anything, "uid-1").Return(nil, nil)

	err := gate.SignIn(context.Background(), "ali@example.com", "secret12")

	require.NoError(t, err)
	uid, ok := gate.CurrentUser()
	assert.True(t, ok)
	assert.Equal(t, "uid-1", uid)
	assert.Nil(t, gate.Profile())
}

func TestLogout_ClearsState(t *testing.T) {
	gate, provider := newMockGate(t)
	provider.On("Authenticate", mock.Anything, "ali@example.com", "secret12").Return("uid-1", nil)
	provider.On("GetProfile", mock.Anything, "uid-1").Return(nil, nil)
	provider.On("EndSession", mock.Anything).Return(nil)
	require.NoError(t, gate.SignIn(context.Background(), "ali@example.com", "secret12"))

	err := gate.Logout(context.Background())

	require.NoError(t, err)
	_, ok := gate.CurrentUser()
	assert.False(t, ok)
	assert.Nil(t, gate.Profile())
}

func TestLogout_ProviderFailure(t *testing.T) {
	gate, provider := newMockGate(t)
	provider.On("EndSession", mock.Anything).Return(errors.New("network down"))

	err := gate.Logout(context.Background())

	assert.True(t, apperrors.IsAuth(err))
}

func TestGate_WithMemoryProvider_FullFlow(t *testing.T) {
	provider := NewMemoryProvider()
	gate := NewGate(provider, authConfig(), testLogger())

	// Session restore with no stored session settles to logged out.
	provider.Restore()
	assert.False(t, gate.Loading())
	_, ok := gate.CurrentUser()
	assert.False(t, ok)

	// Sign up, then out, then back in.
	profile, err := gate.SignUp(context.Background(), "sara@example.com", "hunter22", "Sara Malik", models.RoleAgent)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAgent, profile.Role)

	require.NoError(t, gate.Logout(context.Background()))
	_, ok = gate.CurrentUser()
	assert.False(t, ok)

	require.NoError(t, gate.SignIn(context.Background(), "sara@example.com", "hunter22"))
	require.NotNil(t, gate.Profile())
	assert.Equal(t, "Sara Malik", gate.Profile().DisplayName)
}

func TestGate_WithMemoryProvider_SessionRestore(t *testing.T) {
	provider := NewMemoryProvider()
	first := NewGate(provider, authConfig(), testLogger())
	_, err := first.SignUp(context.Background(), "sara@example.com", "hunter22", "Sara Malik", models.RoleAgent)
	require.NoError(t, err)

	// A fresh gate over the same provider restores the existing session.
	second := NewGate(provider, authConfig(), testLogger())
	assert.True(t, second.Loading())

	provider.Restore()

	assert.False(t, second.Loading())
	uid, ok := second.CurrentUser()
	assert.True(t, ok)
	assert.NotEmpty(t, uid)
	require.NotNil(t, second.Profile())
	assert.Equal(t, models.RoleAgent, second.Profile().Role)
}

func TestMemoryProvider_DuplicateEmail(t *testing.T) {
	provider := NewMemoryProvider()
	_, err := provider.CreateAccount(context.Background(), "sara@example.com", "hunter22")
	require.NoError(t, err)

	_, err = provider.CreateAccount(context.Background(), "sara@example.com", "other")

	assert.ErrorIs(t, err, ErrEmailInUse)
}

func TestMemoryProvider_InvalidCredentials(t *testing.T) {
	provider := NewMemoryProvider()
	_, err := provider.CreateAccount(context.Background(), "sara@example.com", "hunter22")
	require.NoError(t, err)

	_, err = provider.Authenticate(context.Background(), "sara@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = provider.Authenticate(context.Background(), "nobody@example.com", "hunter22")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestMemoryProvider_CancelledContext(t *testing.T) {
	provider := NewMemoryProvider()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := provider.CreateAccount(ctx, "sara@example.com", "hunter22")

	assert.ErrorIs(t, err, context.Canceled)
}
