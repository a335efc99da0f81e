package usecase

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrPublicLinkNotFound       = errors.New("public link not found")
	ErrInvalidToken             = errors.New("invalid token")
	ErrBudgetLinkMismatch       = errors.New("budget does not belong to the linked work order")
	ErrApprovalPhaseClosed      = errors.New("work order is not awaiting approval")
	ErrTokenGenerationExhausted = errors.New("token generation attempts exhausted")
)

// maxTokenAttempts bounds the regenerate-on-collision loop. A collision of
// sha256 output is not expected in practice; the bound only guarantees the
// loop terminates if the entropy source degrades.
const maxTokenAttempts = 10

// PublicWorkOrderView is what the customer sees when opening a link: the
// work order and its budgets, nothing tenant-internal.
type PublicWorkOrderView struct {
	WorkOrder entities.WorkOrder
	Budgets   []entities.Budget
}

// IPublicLinkUseCase issues tokenized links and handles the unauthenticated
// budget decision channel.
//
// The public channel is only open while the work order is
// aguardando_aprovacao and the target budget is pendente; decisions then
// delegate to the budget workflow with method "link". When an authenticated
// operator acts on the customer's behalf the approval is attributed;
// otherwise it stays anonymous.

type IPublicLinkUseCase interface {
	Issue(ctx context.Context, companyID, workOrderID string) (entities.PublicLink, error)
	GetWorkOrderByToken(ctx context.Context, token string) (PublicWorkOrderView, error)
	ApproveByToken(ctx context.Context, token, budgetID, actingUserID string) (entities.Budget, error)
	RejectByToken(ctx context.Context, token, budgetID, reason string) (entities.Budget, error)
}

type PublicLinkUseCase struct {
	repo          interfaces.IPublicLinkRepository
	workOrderRepo interfaces.IWorkOrderRepository
	budgetRepo    interfaces.IBudgetRepository
	userRepo      interfaces.IUserRepository
	budgets       IBudgetUseCase
}

var _ IPublicLinkUseCase = (*PublicLinkUseCase)(nil)

func NewPublicLinkUseCase(
	repo interfaces.IPublicLinkRepository,
	workOrderRepo interfaces.IWorkOrderRepository,
	budgetRepo interfaces.IBudgetRepository,
	userRepo interfaces.IUserRepository,
	budgets IBudgetUseCase,
) *PublicLinkUseCase {
	return &PublicLinkUseCase{
		repo:          repo,
		workOrderRepo: workOrderRepo,
		budgetRepo:    budgetRepo,
		userRepo:      userRepo,
		budgets:       budgets,
	}
}

func (u *PublicLinkUseCase) Issue(ctx context.Context, companyID, workOrderID string) (entities.PublicLink, error) {
	companyID = strings.TrimSpace(companyID)
	if companyID == "" {
		return entities.PublicLink{}, ErrInvalidCompanyID
	}
	workOrderID = strings.TrimSpace(workOrderID)
	if workOrderID == "" {
		return entities.PublicLink{}, ErrInvalidWorkOrderID
	}

	wo, err := u.workOrderRepo.GetByID(ctx, workOrderID)
	if err != nil {
		return entities.PublicLink{}, err
	}
	if wo.ID == "" || wo.DeletedAt != nil {
		return entities.PublicLink{}, ErrWorkOrderNotFound
	}
	if wo.CompanyID != companyID {
		return entities.PublicLink{}, ErrCompanyMismatch
	}

	for attempt := 0; attempt < maxTokenAttempts; attempt++ {
		token, err := generateToken()
		if err != nil {
			return entities.PublicLink{}, err
		}

		exists, err := u.repo.ExistsByToken(ctx, token)
		if err != nil {
			return entities.PublicLink{}, err
		}
		if exists {
			continue
		}

		now := time.Now().UTC()
		link := entities.PublicLink{
			ID:          uuid.NewString(),
			WorkOrderID: wo.ID,
			CompanyID:   wo.CompanyID,
			Token:       token,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		created, err := u.repo.Create(ctx, link)
		if err != nil {
			return entities.PublicLink{}, err
		}
		// An empty result means a concurrent insert took the token between
		// the exists check and the conditional put; regenerate and retry.
		if created.ID == "" {
			continue
		}
		return created, nil
	}
	return entities.PublicLink{}, ErrTokenGenerationExhausted
}

func (u *PublicLinkUseCase) GetWorkOrderByToken(ctx context.Context, token string) (PublicWorkOrderView, error) {
	wo, err := u.resolveWorkOrder(ctx, token)
	if err != nil {
		return PublicWorkOrderView{}, err
	}
	budgets, err := u.budgetRepo.ListByWorkOrderID(ctx, wo.ID)
	if err != nil {
		return PublicWorkOrderView{}, err
	}
	return PublicWorkOrderView{WorkOrder: wo, Budgets: budgets}, nil
}

func (u *PublicLinkUseCase) ApproveByToken(ctx context.Context, token, budgetID, actingUserID string) (entities.Budget, error) {
	wo, budget, err := u.resolvePendingDecision(ctx, token, budgetID)
	if err != nil {
		return entities.Budget{}, err
	}

	// An unresolvable acting user keeps the approval anonymous: the token is
	// the customer's identity on this channel.
	approverID := ""
	if actingUserID = strings.TrimSpace(actingUserID); actingUserID != "" {
		user, err := u.userRepo.GetByID(ctx, actingUserID)
		if err == nil && user.ID != "" {
			approverID = user.ID
		}
	}
	return u.budgets.Approve(ctx, wo.CompanyID, budget.ID, entities.ApprovalMethodLink, approverID)
}

func (u *PublicLinkUseCase) RejectByToken(ctx context.Context, token, budgetID, reason string) (entities.Budget, error) {
	wo, budget, err := u.resolvePendingDecision(ctx, token, budgetID)
	if err != nil {
		return entities.Budget{}, err
	}
	return u.budgets.Reject(ctx, wo.CompanyID, budget.ID, reason)
}

func (u *PublicLinkUseCase) resolveWorkOrder(ctx context.Context, token string) (entities.WorkOrder, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return entities.WorkOrder{}, ErrInvalidToken
	}

	link, err := u.repo.GetByToken(ctx, token)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if link.ID == "" {
		return entities.WorkOrder{}, ErrPublicLinkNotFound
	}

	wo, err := u.workOrderRepo.GetByID(ctx, link.WorkOrderID)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if wo.ID == "" || wo.DeletedAt != nil {
		return entities.WorkOrder{}, ErrWorkOrderNotFound
	}
	return wo, nil
}

func (u *PublicLinkUseCase) resolvePendingDecision(ctx context.Context, token, budgetID string) (entities.WorkOrder, entities.Budget, error) {
	wo, err := u.resolveWorkOrder(ctx, token)
	if err != nil {
		return entities.WorkOrder{}, entities.Budget{}, err
	}

	budgetID = strings.TrimSpace(budgetID)
	if budgetID == "" {
		return entities.WorkOrder{}, entities.Budget{}, ErrInvalidBudgetID
	}
	budget, err := u.budgetRepo.GetByID(ctx, budgetID)
	if err != nil {
		return entities.WorkOrder{}, entities.Budget{}, err
	}
	if budget.ID == "" {
		return entities.WorkOrder{}, entities.Budget{}, ErrBudgetNotFound
	}
	if budget.WorkOrderID != wo.ID {
		return entities.WorkOrder{}, entities.Budget{}, ErrBudgetLinkMismatch
	}
	if wo.Status != entities.StatusAguardandoAprovacao {
		return entities.WorkOrder{}, entities.Budget{}, ErrApprovalPhaseClosed
	}
	if budget.Status != entities.BudgetStatusPendente {
		return entities.WorkOrder{}, entities.Budget{}, ErrBudgetAlreadyProcessed
	}
	return wo, budget, nil
}

// generateToken digests a UUID, the current time and 16 random bytes into a
// hex token.
func generateToken() (string, error) {
	salt := make([]byte, 16)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}
	sum := sha256.Sum256([]byte(fmt.Sprintf("%s:%d:%x", uuid.NewString(), time.Now().UTC().UnixNano(), salt)))
	return hex.EncodeToString(sum[:]), nil
}
