// Package services holds the two managers the front end talks to:
// AuthManager for accounts and the login session, TaskManager for lists and
// tasks. Both keep their collections in memory and write the whole collection
// back to the store after every change. They are not safe for concurrent use.
package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/adatasks/internal/common"
	"github.com/dmitrijs2005/adatasks/internal/ids"
	"github.com/dmitrijs2005/adatasks/internal/logging"
	"github.com/dmitrijs2005/adatasks/internal/models"
	"github.com/dmitrijs2005/adatasks/internal/store"
)

// Verifier seals passwords for storage and checks login attempts against
// the sealed form. cryptox.Plaintext and cryptox.Argon2 implement it.
type Verifier interface {
	Seal(password string) (string, error)
	Match(stored, candidate string) bool
}

// TestAccount is a fixed account created by CreateTestUsers.
type TestAccount struct {
	Email    string
	Password string
}

// TestAccounts are the development accounts ensured by CreateTestUsers.
var TestAccounts = []TestAccount{
	{Email: "admin@teste.com", Password: "123456"},
	{Email: "user@teste.com", Password: "password"},
}

// AuthManager owns the user collection and the session record.
type AuthManager struct {
	store    *store.Store
	verifier Verifier
	ids      *ids.Generator
	logger   logging.Logger

	users []models.User
}

// NewAuthManager loads the user collection from st.
func NewAuthManager(ctx context.Context, st *store.Store, verifier Verifier, gen *ids.Generator, logger logging.Logger) (*AuthManager, error) {
	m := &AuthManager{
		store:    st,
		verifier: verifier,
		ids:      gen,
		logger:   logger.With("component", "auth"),
	}

	if _, err := st.GetJSON(ctx, store.KeyUsers, &m.users); err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}
	for _, u := range m.users {
		gen.Observe(u.ID)
	}
	return m, nil
}

// Register creates an account. Emails are compared case-insensitively.
func (m *AuthManager) Register(ctx context.Context, email, password, fullName string) (models.User, error) {
	if m.FindUserByEmail(email) != nil {
		return models.User{}, common.ErrDuplicateEmail
	}

	sealed, err := m.verifier.Seal(password)
	if err != nil {
		return models.User{}, fmt.Errorf("seal password: %w", err)
	}

	user := models.User{
		ID:        m.ids.Next(),
		Email:     strings.ToLower(email),
		Password:  sealed,
		FullName:  fullName,
		CreatedAt: m.ids.Now().UTC(),
	}

	next := append(m.users[:len(m.users):len(m.users)], user)
	if err := m.store.SetJSON(ctx, store.KeyUsers, next); err != nil {
		return models.User{}, fmt.Errorf("save users: %w", err)
	}
	m.users = next

	m.logger.Info(ctx, "user registered", "user_id", user.ID, "email", user.Email)
	return user, nil
}

// Login checks the credentials and, on success, replaces the session record.
func (m *AuthManager) Login(ctx context.Context, email, password string) (models.Session, error) {
	user := m.FindUserByEmail(email)
	if user == nil {
		return models.Session{}, common.ErrEmailNotFound
	}
	if !m.verifier.Match(user.Password, password) {
		m.logger.Warn(ctx, "login rejected", "email", user.Email)
		return models.Session{}, common.ErrInvalidPassword
	}

	session := models.Session{ID: user.ID, Email: user.Email, LoginAt: m.ids.Now().UTC()}
	if err := m.store.SetJSON(ctx, store.KeyCurrentUser, session); err != nil {
		return models.Session{}, fmt.Errorf("save session: %w", err)
	}

	m.logger.Info(ctx, "user logged in", "user_id", user.ID)
	return session, nil
}

// FindUserByEmail returns the user registered under the lowercased email, or nil.
func (m *AuthManager) FindUserByEmail(email string) *models.User {
	email = strings.ToLower(email)
	for i := range m.users {
		if m.users[i].Email == email {
			u := m.users[i]
			return &u
		}
	}
	return nil
}

// ForgotPassword only pretends to send a recovery email; nothing can be reset.
func (m *AuthManager) ForgotPassword(ctx context.Context, email string) error {
	if m.FindUserByEmail(email) == nil {
		return common.ErrEmailNotFound
	}
	m.logger.Info(ctx, "recovery email sent (simulated)", "email", email)
	return nil
}

// CurrentUser returns the active session, or nil when nobody is logged in.
func (m *AuthManager) CurrentUser(ctx context.Context) (*models.Session, error) {
	var s models.Session
	found, err := m.store.GetJSON(ctx, store.KeyCurrentUser, &s)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &s, nil
}

// Logout deletes the session record.
func (m *AuthManager) Logout(ctx context.Context) error {
	if err := m.store.Remove(ctx, store.KeyCurrentUser); err != nil {
		return fmt.Errorf("remove session: %w", err)
	}
	return nil
}

// CreateTestUsers registers TestAccounts, skipping emails already taken.
func (m *AuthManager) CreateTestUsers(ctx context.Context) error {
	for _, acc := range TestAccounts {
		if m.FindUserByEmail(acc.Email) != nil {
			continue
		}
		if _, err := m.Register(ctx, acc.Email, acc.Password, ""); err != nil {
			return err
		}
	}
	return nil
}

// Users returns a copy of the user collection.
func (m *AuthManager) Users() []models.User {
	return append([]models.User(nil), m.users...)
}
