// Package auth implements the login and signup flows: per-field input
// validation and the session lookup/synthesis that stands in for a real
// credential backend.
package auth

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"agrilink/internal/logging"
	"agrilink/internal/session"
)

// Form field names used as FieldErrors keys.
const (
	FieldName            = "name"
	FieldEmail           = "email"
	FieldPassword        = "password"
	FieldConfirmPassword = "confirmPassword"
)

// MinPasswordLength is enforced at signup only; login accepts any non-empty
// password because no credential check exists.
const MinPasswordLength = 6

var emailShape = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// FieldErrors maps a field name to its user-visible message. Empty means the
// submit is valid. Errors never escape the form boundary.
type FieldErrors map[string]string

// Valid reports whether no field is in error.
func (e FieldErrors) Valid() bool {
	return len(e) == 0
}

// ValidateLogin checks a login submit. All violated fields report
// independently: a submit with both fields empty yields two errors.
func ValidateLogin(email, password string) FieldErrors {
	errs := FieldErrors{}
	if strings.TrimSpace(email) == "" {
		errs[FieldEmail] = "Email is required"
	} else if !emailShape.MatchString(email) {
		errs[FieldEmail] = "Email is invalid"
	}
	if password == "" {
		errs[FieldPassword] = "Password is required"
	}
	return errs
}

// ValidateSignup checks the signup details phase.
func ValidateSignup(name, email, password, confirm string) FieldErrors {
	errs := FieldErrors{}
	if strings.TrimSpace(name) == "" {
		errs[FieldName] = "Name is required"
	}
	if strings.TrimSpace(email) == "" {
		errs[FieldEmail] = "Email is required"
	} else if !emailShape.MatchString(email) {
		errs[FieldEmail] = "Email is invalid"
	}
	if password == "" {
		errs[FieldPassword] = "Password is required"
	} else if len(password) < MinPasswordLength {
		errs[FieldPassword] = fmt.Sprintf("Password must be at least %d characters", MinPasswordLength)
	}
	if confirm == "" {
		errs[FieldConfirmPassword] = "Please confirm your password"
	} else if password != confirm {
		errs[FieldConfirmPassword] = "Passwords do not match"
	}
	return errs
}

// MatchPasswords is the live cross-field check, re-evaluated on every edit to
// either password field. Returns the confirm-password message, or "" when the
// fields agree (or confirm is still untouched).
func MatchPasswords(password, confirm string) string {
	if confirm != "" && password != confirm {
		return "Passwords do not match"
	}
	return ""
}

// DeriveName builds a display name from the local part of an email address:
// everything before the "@", first letter upper-cased.
func DeriveName(email string) string {
	local := email
	if at := strings.Index(email, "@"); at >= 0 {
		local = email[:at]
	}
	if local == "" {
		return local
	}
	runes := []rune(local)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// SessionStore is the slice of the persisted store the auth flow needs.
type SessionStore interface {
	LoadSession() (*session.Session, error)
	SaveSession(session.Session) error
}

// Authenticator produces sessions for the app shell. Every validated submit
// succeeds: there is no credential backend, so an unknown email gets a
// synthesized demo identity rather than a rejection.
type Authenticator struct {
	store SessionStore
}

// New returns an Authenticator backed by the given store.
func New(store SessionStore) *Authenticator {
	return &Authenticator{store: store}
}

// Login authenticates a validated email. If the stored session's email is an
// exact match the stored name and role are restored; otherwise a new session
// is synthesized with the derived name and the farmer role, and persisted.
// The submitted password is never inspected here.
// Even when the store misbehaves the returned session is usable; the error
// only reports that persistence did not happen.
func (a *Authenticator) Login(email string) (session.Session, error) {
	stored, err := a.store.LoadSession()
	if err != nil {
		logging.L().Sugar().Warnw("login: could not read stored session", "error", err)
	}
	if stored != nil && stored.Email == email {
		logging.L().Sugar().Infow("login restored session", "email", email, "role", stored.Role)
		return *stored, nil
	}

	sess := session.Session{
		Name:  DeriveName(email),
		Email: email,
		Role:  session.RoleFarmer,
	}
	if err := a.store.SaveSession(sess); err != nil {
		return sess, fmt.Errorf("login: %w", err)
	}
	logging.L().Sugar().Infow("login created session", "email", email)
	return sess, nil
}

// Signup finalizes the two-phase signup with the chosen role and persists
// the resulting session.
func (a *Authenticator) Signup(name, email string, role session.Role) (session.Session, error) {
	sess := session.Session{
		Name:  strings.TrimSpace(name),
		Email: strings.TrimSpace(email),
		Role:  role,
	}
	if err := a.store.SaveSession(sess); err != nil {
		return sess, fmt.Errorf("signup: %w", err)
	}
	logging.L().Sugar().Infow("signup created session", "email", sess.Email, "role", role)
	return sess, nil
}
