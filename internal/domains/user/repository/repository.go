package repository

import (
	"context"
	"strings"

	"tourbook/config"
	"tourbook/infras/otel"
	"tourbook/internal/domains/user/model"
	"tourbook/shared/constant"
	gRepo "tourbook/shared/repository"
	"tourbook/shared/store"

	"github.com/rs/zerolog/log"
)

type User interface {
	Get(ctx context.Context, id string) (model.User, bool)
	GetByEmail(ctx context.Context, email string) (model.User, bool)
}

type repositoryImpl struct {
	gRepo.Repository[model.User]
}

// New builds the account store from the configured admin. Without an admin
// email or password hash nobody can log in.
func New(cfg *config.Config, otel otel.Otel) User {
	users := []model.User{}

	admin := cfg.App.Admin
	if admin.Email != constant.Empty && admin.PasswordHash != constant.Empty {
		users = append(users, model.User{
			ID:           model.AdminID,
			Email:        admin.Email,
			Name:         admin.Name,
			Role:         constant.RoleAdmin,
			PasswordHash: admin.PasswordHash,
		})
	} else {
		log.Warn().Msg("admin account is not configured, login is disabled")
	}

	return NewWithUsers(users, otel)
}

func NewWithUsers(users []model.User, otel otel.Otel) User {
	st := store.NewWithItems(model.StoreName, model.IDOf, users)

	return &repositoryImpl{
		Repository: gRepo.NewRepository(model.EntityName, st, otel),
	}
}

func (r *repositoryImpl) GetByEmail(ctx context.Context, email string) (model.User, bool) {
	matches := r.GetAll(ctx, func(u model.User) bool {
		return strings.EqualFold(strings.TrimSpace(email), u.Email)
	})
	if len(matches) == 0 {
		return model.User{}, false
	}

	return matches[0], true
}
