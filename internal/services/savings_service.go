package services

import (
	"context"
	"errors"
	"fmt"

	"fintrack/internal/core"
	"fintrack/internal/savings"
	"fintrack/internal/storage"
)

// SavingsService manages savings plans and contributions and computes
// plan progress. Linked categories and plans are always checked against
// the caller's ownership before any write.
type SavingsService struct {
	savings      storage.SavingsStore
	categories   storage.CategoryStore
	transactions storage.TransactionStore
}

func NewSavingsService(sav storage.SavingsStore, categories storage.CategoryStore, transactions storage.TransactionStore) *SavingsService {
	return &SavingsService{
		savings:      sav,
		categories:   categories,
		transactions: transactions,
	}
}

func (s *SavingsService) ListPlans(ctx context.Context, ownerID string) ([]core.SavingsPlan, error) {
	return s.savings.ListPlans(ctx, ownerID)
}

func (s *SavingsService) GetPlan(ctx context.Context, ownerID, id string) (core.SavingsPlan, error) {
	return s.savings.GetPlan(ctx, ownerID, id)
}

func (s *SavingsService) CreatePlan(ctx context.Context, p core.SavingsPlan) (core.SavingsPlan, error) {
	if p.Status == "" {
		p.Status = core.PlanActive
	}
	if err := p.Validate(); err != nil {
		return core.SavingsPlan{}, err
	}
	if err := s.checkLinkedCategory(ctx, p.OwnerID, p.LinkedCategoryID); err != nil {
		return core.SavingsPlan{}, err
	}
	return s.savings.CreatePlan(ctx, p)
}

func (s *SavingsService) UpdatePlan(ctx context.Context, p core.SavingsPlan) (core.SavingsPlan, error) {
	existing, err := s.savings.GetPlan(ctx, p.OwnerID, p.ID)
	if err != nil {
		return core.SavingsPlan{}, err
	}
	// An update body without a status keeps the stored one, so updating
	// an archived plan does not silently re-activate it.
	if p.Status == "" {
		p.Status = existing.Status
	}
	if err := p.Validate(); err != nil {
		return core.SavingsPlan{}, err
	}
	if err := s.checkLinkedCategory(ctx, p.OwnerID, p.LinkedCategoryID); err != nil {
		return core.SavingsPlan{}, err
	}
	return s.savings.UpdatePlan(ctx, p)
}

func (s *SavingsService) DeletePlan(ctx context.Context, ownerID, id string) error {
	return s.savings.DeletePlan(ctx, ownerID, id)
}

// AddContribution records a manual contribution after verifying the
// target plan belongs to the caller. A plan outside the caller's scope is
// reported as forbidden, not as missing.
func (s *SavingsService) AddContribution(ctx context.Context, c core.SavingsContribution) (core.SavingsContribution, error) {
	if err := c.Validate(); err != nil {
		return core.SavingsContribution{}, err
	}
	if _, err := s.savings.GetPlan(ctx, c.OwnerID, c.PlanID); err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return core.SavingsContribution{}, core.ErrForbidden
		}
		return core.SavingsContribution{}, err
	}
	return s.savings.CreateContribution(ctx, c)
}

func (s *SavingsService) UpdateContribution(ctx context.Context, c core.SavingsContribution) (core.SavingsContribution, error) {
	existing, err := s.savings.GetContribution(ctx, c.OwnerID, c.ID)
	if err != nil {
		return core.SavingsContribution{}, err
	}
	c.PlanID = existing.PlanID
	if err := c.Validate(); err != nil {
		return core.SavingsContribution{}, err
	}
	return s.savings.UpdateContribution(ctx, c)
}

func (s *SavingsService) DeleteContribution(ctx context.Context, ownerID, id string) error {
	return s.savings.DeleteContribution(ctx, ownerID, id)
}

// PlanProgress gathers a plan's manual contributions and linked-category
// expenses inside the optional date range and computes its progress. The
// plan is returned alongside so callers don't need a second lookup.
func (s *SavingsService) PlanProgress(ctx context.Context, ownerID, planID string, rng savings.DateRange) (core.SavingsPlan, savings.Progress, error) {
	plan, err := s.savings.GetPlan(ctx, ownerID, planID)
	if err != nil {
		return core.SavingsPlan{}, savings.Progress{}, err
	}

	manual, err := s.savings.ListContributions(ctx, plan.ID, rng.From, rng.To)
	if err != nil {
		return core.SavingsPlan{}, savings.Progress{}, fmt.Errorf("list contributions: %w", err)
	}

	var autoTxs []core.Transaction
	if plan.LinkedCategoryID != "" {
		autoTxs, err = s.transactions.ListTransactions(ctx, ownerID, storage.TransactionFilter{
			Type:       core.TypeExpense,
			CategoryID: plan.LinkedCategoryID,
			From:       rng.From,
			To:         rng.To,
		})
		if err != nil {
			return core.SavingsPlan{}, savings.Progress{}, fmt.Errorf("list linked expenses: %w", err)
		}
	}

	return plan, savings.Calculate(plan, manual, autoTxs), nil
}

// checkLinkedCategory verifies the linked category exists under the same
// owner. Linking another owner's category is forbidden.
func (s *SavingsService) checkLinkedCategory(ctx context.Context, ownerID, categoryID string) error {
	if categoryID == "" {
		return nil
	}
	if _, err := s.categories.GetCategory(ctx, ownerID, categoryID); err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return core.ErrForbidden
		}
		return err
	}
	return nil
}
