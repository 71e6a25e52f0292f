package table

import (
	"strconv"
	"strings"

	"go-gin-user-table/internal/domain"
)

// Matches reports whether term occurs, ignoring case, in the username, the
// email, or the "true"/"false" rendering of the admin flag.
func Matches(u domain.User, term string) bool {
	t := strings.ToLower(term)
	return strings.Contains(strings.ToLower(u.Username), t) ||
		strings.Contains(strings.ToLower(u.Email), t) ||
		strings.Contains(strconv.FormatBool(u.IsAdmin), t)
}

// Filter keeps the users matching term in their original order.
// An empty term keeps everyone.
func Filter(users []domain.User, term string) []domain.User {
	if term == "" {
		return users
	}
	out := make([]domain.User, 0, len(users))
	for _, u := range users {
		if Matches(u, term) {
			out = append(out, u)
		}
	}
	return out
}
