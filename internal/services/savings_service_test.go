package services

import (
	"context"
	"errors"
	"testing"

	"fintrack/internal/core"
	"fintrack/internal/savings"
	"fintrack/internal/storage"
)

type fakeSavingsStore struct {
	storage.SavingsStore
	plans         map[string]core.SavingsPlan
	contributions []core.SavingsContribution
	created       []core.SavingsContribution
	createdPlans  []core.SavingsPlan
	updatedPlans  []core.SavingsPlan
	lastFrom      core.Date
	lastTo        core.Date
}

func newFakeSavingsStore(plans ...core.SavingsPlan) *fakeSavingsStore {
	s := &fakeSavingsStore{plans: map[string]core.SavingsPlan{}}
	for _, p := range plans {
		s.plans[p.ID] = p
	}
	return s
}

func (f *fakeSavingsStore) GetPlan(_ context.Context, ownerID, id string) (core.SavingsPlan, error) {
	p, ok := f.plans[id]
	if !ok || p.OwnerID != ownerID {
		return core.SavingsPlan{}, core.ErrNotFound
	}
	return p, nil
}

func (f *fakeSavingsStore) CreatePlan(_ context.Context, p core.SavingsPlan) (core.SavingsPlan, error) {
	f.createdPlans = append(f.createdPlans, p)
	return p, nil
}

func (f *fakeSavingsStore) UpdatePlan(_ context.Context, p core.SavingsPlan) (core.SavingsPlan, error) {
	f.updatedPlans = append(f.updatedPlans, p)
	return p, nil
}

func (f *fakeSavingsStore) ListContributions(_ context.Context, planID string, from, to core.Date) ([]core.SavingsContribution, error) {
	f.lastFrom, f.lastTo = from, to
	var out []core.SavingsContribution
	for _, c := range f.contributions {
		if c.PlanID == planID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeSavingsStore) CreateContribution(_ context.Context, c core.SavingsContribution) (core.SavingsContribution, error) {
	f.created = append(f.created, c)
	return c, nil
}

type fakeCategoryStore struct {
	storage.CategoryStore
	categories map[string]core.Category
}

func (f *fakeCategoryStore) GetCategory(_ context.Context, ownerID, id string) (core.Category, error) {
	c, ok := f.categories[id]
	if !ok || c.OwnerID != ownerID {
		return core.Category{}, core.ErrNotFound
	}
	return c, nil
}

func TestCreatePlanLinkedCategoryOwnership(t *testing.T) {
	categories := &fakeCategoryStore{categories: map[string]core.Category{
		"cat-mine":   {ID: "cat-mine", OwnerID: "owner-1", Name: "Savings"},
		"cat-theirs": {ID: "cat-theirs", OwnerID: "owner-2", Name: "Savings"},
	}}
	store := newFakeSavingsStore()
	svc := NewSavingsService(store, categories, &fakeTransactionStore{})

	tests := []struct {
		name       string
		categoryID string
		wantErr    error
	}{
		{"own category", "cat-mine", nil},
		{"no category", "", nil},
		{"foreign category", "cat-theirs", core.ErrForbidden},
		{"missing category", "cat-gone", core.ErrForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreatePlan(context.Background(), core.SavingsPlan{
				OwnerID:          "owner-1",
				Name:             "Vacation",
				TargetAmount:     dec("1000"),
				LinkedCategoryID: tt.categoryID,
			})
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("CreatePlan error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestCreatePlanDefaultsStatusActive(t *testing.T) {
	store := newFakeSavingsStore()
	svc := NewSavingsService(store, &fakeCategoryStore{}, &fakeTransactionStore{})

	p, err := svc.CreatePlan(context.Background(), core.SavingsPlan{
		OwnerID:      "owner-1",
		Name:         "Vacation",
		TargetAmount: dec("1000"),
	})
	if err != nil {
		t.Fatalf("CreatePlan: %v", err)
	}
	if p.Status != core.PlanActive {
		t.Errorf("status = %s, want active", p.Status)
	}
}

func TestCreatePlanInvalidTarget(t *testing.T) {
	svc := NewSavingsService(newFakeSavingsStore(), &fakeCategoryStore{}, &fakeTransactionStore{})

	for _, target := range []string{"0", "-5"} {
		_, err := svc.CreatePlan(context.Background(), core.SavingsPlan{
			OwnerID:      "owner-1",
			Name:         "Vacation",
			TargetAmount: dec(target),
		})
		if !errors.Is(err, core.ErrInvalidTarget) {
			t.Errorf("target %s: error = %v, want ErrInvalidTarget", target, err)
		}
	}
}

func TestAddContributionForeignPlanForbidden(t *testing.T) {
	store := newFakeSavingsStore(core.SavingsPlan{ID: "plan-1", OwnerID: "owner-2", Name: "Theirs", TargetAmount: dec("100")})
	svc := NewSavingsService(store, &fakeCategoryStore{}, &fakeTransactionStore{})

	_, err := svc.AddContribution(context.Background(), core.SavingsContribution{
		OwnerID: "owner-1",
		PlanID:  "plan-1",
		Amount:  dec("50"),
		Date:    core.NewDate(2024, 3, 1),
	})
	if !errors.Is(err, core.ErrForbidden) {
		t.Fatalf("error = %v, want ErrForbidden", err)
	}
	if len(store.created) != 0 {
		t.Fatalf("contribution must not be stored, got %v", store.created)
	}
}

func TestAddContributionValid(t *testing.T) {
	store := newFakeSavingsStore(core.SavingsPlan{ID: "plan-1", OwnerID: "owner-1", Name: "Mine", TargetAmount: dec("100")})
	svc := NewSavingsService(store, &fakeCategoryStore{}, &fakeTransactionStore{})

	c, err := svc.AddContribution(context.Background(), core.SavingsContribution{
		OwnerID: "owner-1",
		PlanID:  "plan-1",
		Amount:  dec("50"),
		Date:    core.NewDate(2024, 3, 1),
	})
	if err != nil {
		t.Fatalf("AddContribution: %v", err)
	}
	if !c.Amount.Equal(dec("50")) {
		t.Errorf("amount = %s", c.Amount)
	}
}

func TestPlanProgressMergesManualAndAuto(t *testing.T) {
	store := newFakeSavingsStore(core.SavingsPlan{
		ID:               "plan-1",
		OwnerID:          "owner-1",
		Name:             "Vacation",
		TargetAmount:     dec("1000"),
		LinkedCategoryID: "cat-1",
	})
	store.contributions = []core.SavingsContribution{
		{ID: "c1", PlanID: "plan-1", Amount: dec("300"), Date: core.NewDate(2024, 3, 1)},
	}
	txStore := &fakeTransactionStore{txs: []core.Transaction{
		{ID: "t1", Type: core.TypeExpense, Description: "Deposit", Amount: dec("800"), Date: core.NewDate(2024, 3, 5), PaymentMethod: core.PaymentCash, CategoryID: "cat-1"},
	}}
	svc := NewSavingsService(store, &fakeCategoryStore{}, txStore)

	plan, p, err := svc.PlanProgress(context.Background(), "owner-1", "plan-1", savings.DateRange{})
	if err != nil {
		t.Fatalf("PlanProgress: %v", err)
	}
	if plan.ID != "plan-1" || !plan.TargetAmount.Equal(dec("1000")) {
		t.Errorf("plan = %+v, want plan-1 with target 1000", plan)
	}
	if !p.TotalManual.Equal(dec("300")) || !p.TotalAuto.Equal(dec("800")) {
		t.Errorf("totals = %s/%s, want 300/800", p.TotalManual, p.TotalAuto)
	}
	if !p.ProgressPercent.Equal(dec("100")) {
		t.Errorf("progress = %s, want clamped 100", p.ProgressPercent)
	}
	if !p.Remaining.IsZero() {
		t.Errorf("remaining = %s, want 0", p.Remaining)
	}
	if txStore.lastFilter.CategoryID != "cat-1" || txStore.lastFilter.Type != core.TypeExpense {
		t.Errorf("auto contributions must filter linked-category expenses, got %+v", txStore.lastFilter)
	}
}

func TestPlanProgressNoLinkedCategory(t *testing.T) {
	store := newFakeSavingsStore(core.SavingsPlan{
		ID:           "plan-1",
		OwnerID:      "owner-1",
		Name:         "Vacation",
		TargetAmount: dec("1000"),
	})
	txStore := &fakeTransactionStore{err: errors.New("must not be queried")}
	svc := NewSavingsService(store, &fakeCategoryStore{}, txStore)

	_, p, err := svc.PlanProgress(context.Background(), "owner-1", "plan-1", savings.DateRange{})
	if err != nil {
		t.Fatalf("PlanProgress: %v", err)
	}
	if len(p.AutoTransactions) != 0 {
		t.Errorf("auto transactions = %v, want empty", p.AutoTransactions)
	}
}

func TestPlanProgressUnknownPlan(t *testing.T) {
	svc := NewSavingsService(newFakeSavingsStore(), &fakeCategoryStore{}, &fakeTransactionStore{})

	_, _, err := svc.PlanProgress(context.Background(), "owner-1", "plan-missing", savings.DateRange{})
	if !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}
}

func TestPlanProgressAppliesDateRange(t *testing.T) {
	store := newFakeSavingsStore(core.SavingsPlan{
		ID:               "plan-1",
		OwnerID:          "owner-1",
		Name:             "Vacation",
		TargetAmount:     dec("1000"),
		LinkedCategoryID: "cat-1",
	})
	txStore := &fakeTransactionStore{}
	svc := NewSavingsService(store, &fakeCategoryStore{}, txStore)

	rng := savings.DateRange{From: core.NewDate(2024, 1, 1), To: core.NewDate(2024, 6, 30)}
	if _, _, err := svc.PlanProgress(context.Background(), "owner-1", "plan-1", rng); err != nil {
		t.Fatalf("PlanProgress: %v", err)
	}

	if store.lastFrom.ISO() != "2024-01-01" || store.lastTo.ISO() != "2024-06-30" {
		t.Errorf("contribution bounds = %s..%s, want 2024-01-01..2024-06-30", store.lastFrom.ISO(), store.lastTo.ISO())
	}
	if txStore.lastFilter.From.ISO() != "2024-01-01" || txStore.lastFilter.To.ISO() != "2024-06-30" {
		t.Errorf("expense filter bounds = %s..%s, want 2024-01-01..2024-06-30", txStore.lastFilter.From.ISO(), txStore.lastFilter.To.ISO())
	}
}

func TestUpdatePlanPreservesStatusWhenOmitted(t *testing.T) {
	store := newFakeSavingsStore(core.SavingsPlan{
		ID:           "plan-1",
		OwnerID:      "owner-1",
		Name:         "Vacation",
		TargetAmount: dec("1000"),
		Status:       core.PlanArchived,
	})
	svc := NewSavingsService(store, &fakeCategoryStore{}, &fakeTransactionStore{})

	updated, err := svc.UpdatePlan(context.Background(), core.SavingsPlan{
		ID:           "plan-1",
		OwnerID:      "owner-1",
		Name:         "Vacation fund",
		TargetAmount: dec("1500"),
	})
	if err != nil {
		t.Fatalf("UpdatePlan: %v", err)
	}
	if updated.Status != core.PlanArchived {
		t.Errorf("status = %s, want archived preserved", updated.Status)
	}

	updated, err = svc.UpdatePlan(context.Background(), core.SavingsPlan{
		ID:           "plan-1",
		OwnerID:      "owner-1",
		Name:         "Vacation fund",
		TargetAmount: dec("1500"),
		Status:       core.PlanActive,
	})
	if err != nil {
		t.Fatalf("UpdatePlan: %v", err)
	}
	if updated.Status != core.PlanActive {
		t.Errorf("status = %s, want explicit active applied", updated.Status)
	}
}
