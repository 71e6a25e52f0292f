package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"go-gin-user-table/internal/domain"
	"go-gin-user-table/internal/feature/user"
)

type UserRepo struct{ db *gorm.DB }

func NewUserRepo(db *gorm.DB) *UserRepo { return &UserRepo{db: db} }

// ListUsers returns every row of the users table ordered by id.
func (r *UserRepo) ListUsers(ctx context.Context) ([]domain.User, error) {
	var ms []user.UserModel
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&ms).Error; err != nil {
		return nil, errors.Join(ErrFetchFailed, err)
	}
	out := make([]domain.User, 0, len(ms))
	for _, m := range ms {
		out = append(out, m.ToDomain())
	}
	return out, nil
}

// Seed inserts users, skipping ids that already exist. Returns rows written.
func (r *UserRepo) Seed(ctx context.Context, users []domain.User) (int64, error) {
	if len(users) == 0 {
		return 0, nil
	}
	ms := make([]user.UserModel, 0, len(users))
	for _, u := range users {
		ms = append(ms, user.FromDomain(u))
	}
	res := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&ms)
	return res.RowsAffected, res.Error
}
