package usersearch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrNoDirectory is returned when the handler has no Directory to query.
var ErrNoDirectory = errors.New("usersearch: no directory configured")

// User is a single search result.
type User struct {
	ID          int    `json:"id" yaml:"id"`
	Login       string `json:"login" yaml:"login"`
	DisplayName string `json:"display_name" yaml:"display_name"`
	Email       string `json:"email,omitempty" yaml:"email"`
}

// Directory finds users matching query. Implementations must return at most
// limit users.
type Directory interface {
	SearchUsers(ctx context.Context, query string, limit int) ([]User, error)
}

// DirectoryFunc adapts a function into a Directory.
type DirectoryFunc func(ctx context.Context, query string, limit int) ([]User, error)

// SearchUsers implements Directory.
func (fn DirectoryFunc) SearchUsers(ctx context.Context, query string, limit int) ([]User, error) {
	return fn(ctx, query, limit)
}

// StaticDirectory is an in-memory Directory sorted by login.
type StaticDirectory struct {
	users []User
}

// NewStaticDirectory copies users, dropping duplicate IDs and entries without
// a login.
func NewStaticDirectory(users []User) *StaticDirectory {
	seen := make(map[int]struct{}, len(users))
	out := make([]User, 0, len(users))
	for _, user := range users {
		user.Login = strings.TrimSpace(user.Login)
		if user.Login == "" {
			continue
		}
		if _, ok := seen[user.ID]; ok {
			continue
		}
		seen[user.ID] = struct{}{}
		if strings.TrimSpace(user.DisplayName) == "" {
			user.DisplayName = user.Login
		}
		out = append(out, user)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Login < out[j].Login })
	return &StaticDirectory{users: out}
}

// LoadUsers reads a YAML list of users.
//
//	# users.yaml
//	- id: 1
//	  login: ada
//	  display_name: Ada Lovelace
//	  email: ada@example.com
func LoadUsers(r io.Reader) (*StaticDirectory, error) {
	if r == nil {
		return nil, fmt.Errorf("usersearch: missing reader")
	}
	var users []User
	if err := yaml.NewDecoder(r).Decode(&users); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("usersearch: decode users: %w", err)
	}
	return NewStaticDirectory(users), nil
}

// Users returns a copy of the directory contents.
func (d *StaticDirectory) Users() []User {
	if d == nil {
		return nil
	}
	return append([]User{}, d.users...)
}
