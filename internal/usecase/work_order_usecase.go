package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrWorkOrderNotFound       = errors.New("work order not found")
	ErrOriginWorkOrderNotFound = errors.New("origin work order not found")
	ErrClientNotFound          = errors.New("client not found")
	ErrEquipmentNotFound       = errors.New("equipment not found")
	ErrUserNotFound            = errors.New("user not found")
	ErrCompanyMismatch         = errors.New("entity belongs to another company")
	ErrInvalidWorkOrderID      = errors.New("invalid work order id")
	ErrInvalidCompanyID        = errors.New("invalid company id")
	ErrInvalidReportedDefect   = errors.New("invalid reported defect")
	ErrInvalidStatus           = errors.New("invalid status")
	ErrInvalidTransition       = errors.New("invalid status transition")
	ErrWorkOrderClosed         = errors.New("work order is delivered or cancelled")
	ErrEquipmentClientMismatch = errors.New("equipment does not belong to client")
	ErrNotATechnician          = errors.New("user is not a technician")
)

const cancelObservation = "work order cancelled"

// CreateWorkOrderParams carries the inputs for opening a work order. All
// related entities are referenced by id and validated against the acting
// company before anything is persisted.
type CreateWorkOrderParams struct {
	CompanyID         string
	ClientID          string
	EquipmentID       string
	TechnicianID      string
	ReportedDefect    string
	InternalNotes     string
	OriginWorkOrderID string
	ActingUserID      string
}

// WorkOrderDetails is the read aggregate returned by GetDetails.
type WorkOrderDetails struct {
	WorkOrder entities.WorkOrder
	Budgets   []entities.Budget
	History   []entities.WorkOrderHistory
}

// IWorkOrderUseCase exposes the work order lifecycle operations.
//
//   - Create opens a work order in recebido and writes the creation history
//     row (empty status-before).
//   - ChangeStatus applies a legal transition and, when the change is
//     attributed to a user, appends the audit row in the same write.
//   - Cancel is the cross-cutting cancellation: legal from any non-terminal
//     status, with a fixed observation.

type IWorkOrderUseCase interface {
	Create(ctx context.Context, params CreateWorkOrderParams) (entities.WorkOrder, error)
	ChangeStatus(ctx context.Context, companyID, workOrderID string, newStatus entities.WorkOrderStatus, observation, actingUserID string) (entities.WorkOrder, error)
	Cancel(ctx context.Context, companyID, workOrderID, actingUserID string) (entities.WorkOrder, error)
	GetByID(ctx context.Context, companyID, workOrderID string) (entities.WorkOrder, error)
	GetDetails(ctx context.Context, companyID, workOrderID string) (WorkOrderDetails, error)
	ListByStatus(ctx context.Context, companyID string, status entities.WorkOrderStatus) ([]entities.WorkOrder, error)
}

type WorkOrderUseCase struct {
	repo          interfaces.IWorkOrderRepository
	historyRepo   interfaces.IWorkOrderHistoryRepository
	budgetRepo    interfaces.IBudgetRepository
	userRepo      interfaces.IUserRepository
	clientRepo    interfaces.IClientRepository
	equipmentRepo interfaces.IEquipmentRepository
	warrantyDays  int
}

var _ IWorkOrderUseCase = (*WorkOrderUseCase)(nil)

func NewWorkOrderUseCase(
	repo interfaces.IWorkOrderRepository,
	historyRepo interfaces.IWorkOrderHistoryRepository,
	budgetRepo interfaces.IBudgetRepository,
	userRepo interfaces.IUserRepository,
	clientRepo interfaces.IClientRepository,
	equipmentRepo interfaces.IEquipmentRepository,
	warrantyDays int,
) *WorkOrderUseCase {
	if warrantyDays <= 0 {
		warrantyDays = DefaultWarrantyDays
	}
	return &WorkOrderUseCase{
		repo:          repo,
		historyRepo:   historyRepo,
		budgetRepo:    budgetRepo,
		userRepo:      userRepo,
		clientRepo:    clientRepo,
		equipmentRepo: equipmentRepo,
		warrantyDays:  warrantyDays,
	}
}

func (u *WorkOrderUseCase) Create(ctx context.Context, params CreateWorkOrderParams) (entities.WorkOrder, error) {
	companyID := strings.TrimSpace(params.CompanyID)
	if companyID == "" {
		return entities.WorkOrder{}, ErrInvalidCompanyID
	}
	reportedDefect := strings.TrimSpace(params.ReportedDefect)
	if reportedDefect == "" {
		return entities.WorkOrder{}, ErrInvalidReportedDefect
	}

	client, err := u.clientRepo.GetByID(ctx, strings.TrimSpace(params.ClientID))
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if client.ID == "" {
		return entities.WorkOrder{}, ErrClientNotFound
	}
	if client.CompanyID != companyID {
		return entities.WorkOrder{}, ErrCompanyMismatch
	}

	equipment, err := u.equipmentRepo.GetByID(ctx, strings.TrimSpace(params.EquipmentID))
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if equipment.ID == "" {
		return entities.WorkOrder{}, ErrEquipmentNotFound
	}
	if equipment.CompanyID != companyID {
		return entities.WorkOrder{}, ErrCompanyMismatch
	}
	if equipment.ClientID != client.ID {
		return entities.WorkOrder{}, ErrEquipmentClientMismatch
	}

	technician, err := u.userRepo.GetByID(ctx, strings.TrimSpace(params.TechnicianID))
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if technician.ID == "" {
		return entities.WorkOrder{}, ErrUserNotFound
	}
	if technician.CompanyID != companyID {
		return entities.WorkOrder{}, ErrCompanyMismatch
	}
	if !technician.IsTechnician() {
		return entities.WorkOrder{}, ErrNotATechnician
	}

	isReturnOrder := false
	originID := strings.TrimSpace(params.OriginWorkOrderID)
	if originID != "" {
		origin, err := u.repo.GetByID(ctx, originID)
		if err != nil {
			return entities.WorkOrder{}, err
		}
		if origin.ID == "" || origin.DeletedAt != nil {
			return entities.WorkOrder{}, ErrOriginWorkOrderNotFound
		}
		if origin.CompanyID != companyID {
			return entities.WorkOrder{}, ErrCompanyMismatch
		}
		if err := CheckReturnOrderEligibility(origin, u.warrantyDays, time.Now().UTC()); err != nil {
			return entities.WorkOrder{}, err
		}
		isReturnOrder = true
	}

	now := time.Now().UTC()
	wo := entities.WorkOrder{
		ID:                uuid.NewString(),
		CompanyID:         companyID,
		ClientID:          client.ID,
		EquipmentID:       equipment.ID,
		TechnicianID:      technician.ID,
		Status:            entities.StatusRecebido,
		ReportedDefect:    reportedDefect,
		InternalNotes:     strings.TrimSpace(params.InternalNotes),
		IsReturnOrder:     isReturnOrder,
		OriginWorkOrderID: originID,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	hist := entities.WorkOrderHistory{
		ID:          uuid.NewString(),
		WorkOrderID: wo.ID,
		UserID:      strings.TrimSpace(params.ActingUserID),
		StatusAfter: entities.StatusRecebido,
		Observation: "work order created",
		CreatedAt:   now,
	}
	return u.repo.Create(ctx, wo, hist)
}

func (u *WorkOrderUseCase) ChangeStatus(ctx context.Context, companyID, workOrderID string, newStatus entities.WorkOrderStatus, observation, actingUserID string) (entities.WorkOrder, error) {
	if !newStatus.IsValid() {
		return entities.WorkOrder{}, ErrInvalidStatus
	}

	wo, err := u.loadOwned(ctx, companyID, workOrderID)
	if err != nil {
		return entities.WorkOrder{}, err
	}

	if wo.Status.IsTerminal() {
		return entities.WorkOrder{}, ErrWorkOrderClosed
	}
	if !wo.Status.CanTransitionTo(newStatus) {
		return entities.WorkOrder{}, ErrInvalidTransition
	}

	statusBefore := wo.Status
	now := time.Now().UTC()
	wo.Status = newStatus
	wo.UpdatedAt = now
	if newStatus == entities.StatusEntregue {
		wo.DeliveredAt = &now
	}

	var hist *entities.WorkOrderHistory
	if actingUserID = strings.TrimSpace(actingUserID); actingUserID != "" {
		hist = &entities.WorkOrderHistory{
			ID:           uuid.NewString(),
			WorkOrderID:  wo.ID,
			UserID:       actingUserID,
			StatusBefore: statusBefore,
			StatusAfter:  newStatus,
			Observation:  strings.TrimSpace(observation),
			CreatedAt:    now,
		}
	}
	return u.repo.SaveStatusWithHistory(ctx, wo, hist)
}

// Cancel relies on the cancellation carve-out in the transition table, so
// delegating to ChangeStatus keeps a single write path.
func (u *WorkOrderUseCase) Cancel(ctx context.Context, companyID, workOrderID, actingUserID string) (entities.WorkOrder, error) {
	return u.ChangeStatus(ctx, companyID, workOrderID, entities.StatusCancelado, cancelObservation, actingUserID)
}

func (u *WorkOrderUseCase) GetByID(ctx context.Context, companyID, workOrderID string) (entities.WorkOrder, error) {
	return u.loadOwned(ctx, companyID, workOrderID)
}

func (u *WorkOrderUseCase) GetDetails(ctx context.Context, companyID, workOrderID string) (WorkOrderDetails, error) {
	wo, err := u.loadOwned(ctx, companyID, workOrderID)
	if err != nil {
		return WorkOrderDetails{}, err
	}

	budgets, err := u.budgetRepo.ListByWorkOrderID(ctx, wo.ID)
	if err != nil {
		return WorkOrderDetails{}, err
	}
	history, err := u.historyRepo.ListByWorkOrderID(ctx, wo.ID)
	if err != nil {
		return WorkOrderDetails{}, err
	}
	return WorkOrderDetails{WorkOrder: wo, Budgets: budgets, History: history}, nil
}

func (u *WorkOrderUseCase) ListByStatus(ctx context.Context, companyID string, status entities.WorkOrderStatus) ([]entities.WorkOrder, error) {
	companyID = strings.TrimSpace(companyID)
	if companyID == "" {
		return nil, ErrInvalidCompanyID
	}
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}
	return u.repo.ListByCompanyAndStatus(ctx, companyID, status)
}

func (u *WorkOrderUseCase) loadOwned(ctx context.Context, companyID, workOrderID string) (entities.WorkOrder, error) {
	companyID = strings.TrimSpace(companyID)
	if companyID == "" {
		return entities.WorkOrder{}, ErrInvalidCompanyID
	}
	workOrderID = strings.TrimSpace(workOrderID)
	if workOrderID == "" {
		return entities.WorkOrder{}, ErrInvalidWorkOrderID
	}

	wo, err := u.repo.GetByID(ctx, workOrderID)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if wo.ID == "" || wo.DeletedAt != nil {
		return entities.WorkOrder{}, ErrWorkOrderNotFound
	}
	if wo.CompanyID != companyID {
		return entities.WorkOrder{}, ErrCompanyMismatch
	}
	return wo, nil
}
