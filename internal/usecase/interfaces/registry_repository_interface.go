package interfaces

import (
	"context"
	"oficina_xpto/internal/domain/entities"
)

// Registry lookups used when opening a work order.

type IClientRepository interface {
	GetByID(ctx context.Context, id string) (entities.Client, error)
}

type IEquipmentRepository interface {
	GetByID(ctx context.Context, id string) (entities.Equipment, error)
}
