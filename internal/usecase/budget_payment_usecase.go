package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/usecase/interfaces"
)

var (
	ErrBudgetPaymentNotFound      = errors.New("budget payment not found")
	ErrInvalidPaymentBudgetID     = errors.New("invalid budget id for payment")
	ErrInvalidProviderPayload     = errors.New("invalid payment provider payload")
	ErrBudgetNotApproved          = errors.New("budget not approved")
	ErrPaymentGatewayBadRequest   = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized = errors.New("payment gateway unauthorized")
)

// IBudgetPaymentUseCase charges an approved budget through the payment
// gateway and records the provider response.

type IBudgetPaymentUseCase interface {
	CreateAndCharge(ctx context.Context, companyID, budgetID string, providerPayload json.RawMessage) (entities.BudgetPayment, error)
	GetByID(ctx context.Context, companyID, id string) (entities.BudgetPayment, error)
	ListByBudgetID(ctx context.Context, companyID, budgetID string) ([]entities.BudgetPayment, error)
}

type BudgetPaymentUseCase struct {
	repo       interfaces.IBudgetPaymentRepository
	budgetRepo interfaces.IBudgetRepository
	gateway    interfaces.IPaymentGateway
}

var _ IBudgetPaymentUseCase = (*BudgetPaymentUseCase)(nil)

func NewBudgetPaymentUseCase(repo interfaces.IBudgetPaymentRepository, budgetRepo interfaces.IBudgetRepository, gateway interfaces.IPaymentGateway) *BudgetPaymentUseCase {
	return &BudgetPaymentUseCase{repo: repo, budgetRepo: budgetRepo, gateway: gateway}
}

func (u *BudgetPaymentUseCase) CreateAndCharge(ctx context.Context, companyID, budgetID string, providerPayload json.RawMessage) (entities.BudgetPayment, error) {
	log.Printf("[payment][usecase] create-and-charge start budget_id=%q payload_len=%d", budgetID, len(providerPayload))
	companyID = strings.TrimSpace(companyID)
	if companyID == "" {
		return entities.BudgetPayment{}, ErrInvalidCompanyID
	}
	budgetID = strings.TrimSpace(budgetID)
	if budgetID == "" {
		return entities.BudgetPayment{}, ErrInvalidPaymentBudgetID
	}
	if len(providerPayload) == 0 {
		providerPayload = json.RawMessage("{}")
	}
	if !json.Valid(providerPayload) {
		log.Printf("[payment][usecase] invalid payload (not-json) budget_id=%s", budgetID)
		return entities.BudgetPayment{}, ErrInvalidProviderPayload
	}
	if u.gateway == nil {
		log.Printf("[payment][usecase] gateway not configured budget_id=%s", budgetID)
		return entities.BudgetPayment{}, errors.New("payment gateway not configured")
	}

	budget, err := u.budgetRepo.GetByID(ctx, budgetID)
	if err != nil {
		log.Printf("[payment][usecase] failed loading budget budget_id=%s err=%v", budgetID, err)
		return entities.BudgetPayment{}, err
	}
	if budget.ID == "" {
		return entities.BudgetPayment{}, ErrBudgetNotFound
	}
	if budget.CompanyID != companyID {
		return entities.BudgetPayment{}, ErrCompanyMismatch
	}
	if budget.Status != entities.BudgetStatusAprovado {
		log.Printf("[payment][usecase] budget not approved budget_id=%s status=%s", budgetID, budget.Status)
		return entities.BudgetPayment{}, ErrBudgetNotApproved
	}

	// The provider reconciles events through external_reference; the amount
	// source of truth is the approved budget in the store.
	var reqMap map[string]any
	if err := json.Unmarshal(providerPayload, &reqMap); err == nil {
		if _, ok := reqMap["external_reference"]; !ok {
			reqMap["external_reference"] = budget.ID
		}
		if _, ok := reqMap["description"]; !ok {
			reqMap["description"] = fmt.Sprintf("Budget %s", budget.ID)
		}
		reqMap["transaction_amount"] = budget.TotalValue
		if b, err := json.Marshal(reqMap); err == nil {
			providerPayload = b
		}
	}

	providerPaymentID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, providerPayload)
	if err != nil {
		log.Printf("[payment][usecase] payment gateway failed budget_id=%s err=%v", budgetID, err)
		if isGatewayUnauthorized(err) {
			return entities.BudgetPayment{}, ErrPaymentGatewayUnauthorized
		}
		if isGatewayBadRequest(err) {
			return entities.BudgetPayment{}, ErrPaymentGatewayBadRequest
		}
		return entities.BudgetPayment{}, err
	}
	log.Printf("[payment][usecase] payment gateway success budget_id=%s provider_payment_id=%s provider_status=%s", budgetID, providerPaymentID, providerStatus)

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Printf("[payment][usecase] provider response unmarshal failed budget_id=%s err=%v", budgetID, err)
	}

	p := entities.BudgetPayment{
		ID:                 providerPaymentID,
		BudgetID:           budget.ID,
		CompanyID:          budget.CompanyID,
		Date:               time.Now().UTC(),
		Status:             entities.PaymentStatusAprovado,
		ProviderPayloadRaw: providerResp,
		ProviderPayload:    parsed,
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Printf("[payment][usecase] payment repository create failed budget_id=%s payment_id=%s err=%v", budgetID, p.ID, err)
		return entities.BudgetPayment{}, err
	}
	log.Printf("[payment][usecase] create-and-charge success budget_id=%s payment_id=%s status=%s", budgetID, created.ID, created.Status)
	return created, nil
}

func (u *BudgetPaymentUseCase) GetByID(ctx context.Context, companyID, id string) (entities.BudgetPayment, error) {
	companyID = strings.TrimSpace(companyID)
	if companyID == "" {
		return entities.BudgetPayment{}, ErrInvalidCompanyID
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.BudgetPayment{}, errors.New("invalid payment id")
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.BudgetPayment{}, err
	}
	if p.ID == "" {
		return entities.BudgetPayment{}, ErrBudgetPaymentNotFound
	}
	if p.CompanyID != companyID {
		return entities.BudgetPayment{}, ErrCompanyMismatch
	}
	return p, nil
}

func (u *BudgetPaymentUseCase) ListByBudgetID(ctx context.Context, companyID, budgetID string) ([]entities.BudgetPayment, error) {
	companyID = strings.TrimSpace(companyID)
	if companyID == "" {
		return nil, ErrInvalidCompanyID
	}
	budgetID = strings.TrimSpace(budgetID)
	if budgetID == "" {
		return nil, ErrInvalidPaymentBudgetID
	}

	budget, err := u.budgetRepo.GetByID(ctx, budgetID)
	if err != nil {
		return nil, err
	}
	if budget.ID == "" {
		return nil, ErrBudgetNotFound
	}
	if budget.CompanyID != companyID {
		return nil, ErrCompanyMismatch
	}
	return u.repo.ListByBudgetID(ctx, budgetID)
}

func isGatewayBadRequest(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}
