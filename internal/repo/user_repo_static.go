package repo

import (
	"context"
	"slices"

	"go-gin-user-table/internal/domain"
)

// StaticSource serves a fixed record set.
type StaticSource struct{ users []domain.User }

func NewStaticSource(users []domain.User) *StaticSource {
	return &StaticSource{users: slices.Clone(users)}
}

func (s *StaticSource) ListUsers(ctx context.Context) ([]domain.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return slices.Clone(s.users), nil
}

// SampleUsers is the demo account list used for seeding and local runs.
func SampleUsers() []domain.User {
	return []domain.User{
		{ID: 1, Username: "john_doe", Email: "john@example.com", IsAdmin: true},
		{ID: 2, Username: "jane_smith", Email: "jane@example.com", IsAdmin: false},
		{ID: 3, Username: "robert_johnson", Email: "robert@example.com", IsAdmin: true},
		{ID: 4, Username: "sarah_williams", Email: "sarah@example.com", IsAdmin: false},
		{ID: 5, Username: "michael_brown", Email: "michael@example.com", IsAdmin: true},
		{ID: 6, Username: "emily_davis", Email: "emily@example.com", IsAdmin: false},
		{ID: 7, Username: "david_miller", Email: "david@example.com", IsAdmin: true},
		{ID: 8, Username: "lisa_anderson", Email: "lisa@example.com", IsAdmin: false},
		{ID: 9, Username: "james_wilson", Email: "james@example.com", IsAdmin: true},
		{ID: 10, Username: "emma_taylor", Email: "emma@example.com", IsAdmin: false},
	}
}
