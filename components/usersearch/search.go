package usersearch

import (
	"context"
	"sort"
	"strings"
	"unicode/utf8"
)

// SearchUsers matches query case-insensitively against login, display name
// and email. Prefix matches rank first, then logins sort alphabetically.
func (d *StaticDirectory) SearchUsers(_ context.Context, query string, limit int) ([]User, error) {
	if d == nil || limit <= 0 {
		return nil, nil
	}
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil, nil
	}

	matches := make([]matchedUser, 0, 16)
	for _, user := range d.users {
		fields := []string{
			strings.ToLower(user.Login),
			strings.ToLower(user.DisplayName),
			strings.ToLower(user.Email),
		}
		var found, prefix bool
		for _, field := range fields {
			if field == "" || !strings.Contains(field, q) {
				continue
			}
			found = true
			if strings.HasPrefix(field, q) {
				prefix = true
			}
		}
		if found {
			matches = append(matches, matchedUser{user: user, isPrefix: prefix})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].isPrefix != matches[j].isPrefix {
			return matches[i].isPrefix
		}
		return matches[i].user.Login < matches[j].user.Login
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}
	out := make([]User, 0, len(matches))
	for _, match := range matches {
		out = append(out, match.user)
	}
	return out, nil
}

// Search applies the option limits around dir. Queries shorter than
// MinQueryLength and non-positive limits return nil without consulting dir.
func Search(ctx context.Context, dir Directory, query string, limit int, opts Options) ([]User, error) {
	if dir == nil {
		return nil, ErrNoDirectory
	}
	limit = clampLimit(limit, opts)
	if limit == 0 {
		return nil, nil
	}
	query = strings.TrimSpace(query)
	if query == "" || utf8.RuneCountInString(query) < opts.MinQueryLength {
		return nil, nil
	}

	users, err := dir.SearchUsers(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	if len(users) > limit {
		users = users[:limit]
	}
	return users, nil
}

type matchedUser struct {
	user     User
	isPrefix bool
}
