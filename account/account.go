// Package account signs users up and in against a CSV file of bcrypt password
// hashes. The username of a signed in user is the owner of its subscriptions.
package account

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUserExists         = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidUsername    = errors.New("invalid username")
	ErrWeakPassword       = errors.New("password must not be empty")
)

// Users holds the accounts of a users file.
type Users struct {
	path   string
	hashes map[string][]byte
	order  []string // usernames in file order
	cost   int
	logger *zap.Logger
}

// Option configures Users.
type Option func(*Users)

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option { return func(u *Users) { u.logger = l } }

// WithCost sets the bcrypt cost used to hash new passwords.
func WithCost(cost int) Option { return func(u *Users) { u.cost = cost } }

// Open loads the users file at path. A missing file has no users.
func Open(path string, opts ...Option) (*Users, error) {
	u := &Users{
		path:   path,
		hashes: make(map[string][]byte),
		cost:   bcrypt.DefaultCost,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(u)
	}

	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return u, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load error: cannot open users file %q: %w", path, err)
	}
	defer f.Close()

	if err := u.decode(f); err != nil {
		return nil, err
	}
	u.logger.Debug("users loaded", zap.String("path", path), zap.Int("count", len(u.order)))
	return u, nil
}

func (u *Users) decode(r io.Reader) error {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 2
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("parse error %q: %w", u.path, err)
		}
		if _, exists := u.hashes[row[0]]; exists {
			line, _ := cr.FieldPos(0)
			return fmt.Errorf("format error %s:%d: user %q is already defined", u.path, line, row[0])
		}
		u.hashes[row[0]] = []byte(row[1])
		u.order = append(u.order, row[0])
	}
}

// Exists reports whether username has an account.
func (u *Users) Exists(username string) bool {
	_, ok := u.hashes[username]
	return ok
}

// SignUp creates the account of username and appends it to the users file.
func (u *Users) SignUp(username, password string) error {
	if strings.TrimSpace(username) == "" || strings.TrimSpace(username) != username {
		return fmt.Errorf("%w: %q", ErrInvalidUsername, username)
	}
	if password == "" {
		return ErrWeakPassword
	}
	if u.Exists(username) {
		return fmt.Errorf("%w: %q", ErrUserExists, username)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), u.cost)
	if err != nil {
		return fmt.Errorf("cannot hash password: %w", err)
	}

	f, err := os.OpenFile(u.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("persist error: cannot open users file %q: %w", u.path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{username, string(hash)}); err != nil {
		return fmt.Errorf("persist error: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("persist error: cannot write users file %q: %w", u.path, err)
	}

	u.hashes[username] = hash
	u.order = append(u.order, username)
	u.logger.Info("user signed up", zap.String("user", username))
	return nil
}

// SignIn checks the password of username.
// Unknown users and wrong passwords both fail with ErrInvalidCredentials.
func (u *Users) SignIn(username, password string) error {
	hash, ok := u.hashes[username]
	if !ok {
		u.logger.Debug("sign in for unknown user", zap.String("user", username))
		return ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(hash, []byte(password)); err != nil {
		u.logger.Debug("sign in with wrong password", zap.String("user", username))
		return ErrInvalidCredentials
	}
	return nil
}

// Usernames returns the usernames in sign up order.
func (u *Users) Usernames() []string { return append([]string(nil), u.order...) }
