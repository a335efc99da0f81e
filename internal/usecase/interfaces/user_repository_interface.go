package interfaces

import (
	"context"
	"oficina_xpto/internal/domain/entities"
)

// IUserRepository resolves users for role checks and approval attribution.

type IUserRepository interface {
	GetByID(ctx context.Context, id string) (entities.User, error)
}
