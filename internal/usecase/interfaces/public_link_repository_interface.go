package interfaces

import (
	"context"
	"oficina_xpto/internal/domain/entities"
)

// IPublicLinkRepository abstracts DynamoDB persistence for PublicLink.
//
// Create uses a conditional put on the token, so a concurrent insert of the
// same token surfaces as an empty result (token taken) rather than an error;
// callers regenerate and retry.

type IPublicLinkRepository interface {
	Create(ctx context.Context, link entities.PublicLink) (entities.PublicLink, error)
	GetByToken(ctx context.Context, token string) (entities.PublicLink, error)
	ExistsByToken(ctx context.Context, token string) (bool, error)
}
