package storage

import (
	"context"

	"fintrack/internal/core"
)

// TransactionFilter narrows ListTransactions. Zero fields are ignored.
// From/To are inclusive calendar-date bounds.
type TransactionFilter struct {
	Type       core.TransactionType
	CategoryID string
	CardID     string
	From       core.Date
	To         core.Date
	Limit      int
	Offset     int
}

// Store ports for the HTTP layer and the services. The SQLite repository
// implements all of them; handler tests substitute fakes.
type (
	TransactionStore interface {
		ListTransactions(ctx context.Context, ownerID string, f TransactionFilter) ([]core.Transaction, error)
		CountTransactions(ctx context.Context, ownerID string, f TransactionFilter) (int, error)
		GetTransaction(ctx context.Context, ownerID, id string) (core.Transaction, error)
		CreateTransaction(ctx context.Context, t core.Transaction) (core.Transaction, error)
		UpdateTransaction(ctx context.Context, t core.Transaction) (core.Transaction, error)
		DeleteTransaction(ctx context.Context, ownerID, id string) error
	}

	CategoryStore interface {
		ListCategories(ctx context.Context, ownerID string) ([]core.Category, error)
		GetCategory(ctx context.Context, ownerID, id string) (core.Category, error)
		CreateCategory(ctx context.Context, c core.Category) (core.Category, error)
		UpdateCategory(ctx context.Context, c core.Category) (core.Category, error)
		DeleteCategory(ctx context.Context, ownerID, id string) error
	}

	CardStore interface {
		ListCards(ctx context.Context, ownerID string) ([]core.Card, error)
		GetCard(ctx context.Context, ownerID, id string) (core.Card, error)
		CreateCard(ctx context.Context, c core.Card) (core.Card, error)
		UpdateCard(ctx context.Context, c core.Card) (core.Card, error)
		DeleteCard(ctx context.Context, ownerID, id string) error
	}

	BudgetStore interface {
		ListBudgets(ctx context.Context, ownerID string) ([]core.Budget, error)
		// GetBudgetForMonth returns (nil, nil) when no budget is
		// configured for the month; absence is a normal outcome the
		// comparator must distinguish from zero.
		GetBudgetForMonth(ctx context.Context, ownerID string, month, year int) (*core.Budget, error)
		CreateBudget(ctx context.Context, b core.Budget) (core.Budget, error)
		UpdateBudget(ctx context.Context, b core.Budget) (core.Budget, error)
		DeleteBudget(ctx context.Context, ownerID, id string) error
	}

	SavingsStore interface {
		ListPlans(ctx context.Context, ownerID string) ([]core.SavingsPlan, error)
		GetPlan(ctx context.Context, ownerID, id string) (core.SavingsPlan, error)
		CreatePlan(ctx context.Context, p core.SavingsPlan) (core.SavingsPlan, error)
		UpdatePlan(ctx context.Context, p core.SavingsPlan) (core.SavingsPlan, error)
		DeletePlan(ctx context.Context, ownerID, id string) error

		// ListContributions is scoped by plan; From/To are inclusive
		// optional bounds.
		ListContributions(ctx context.Context, planID string, from, to core.Date) ([]core.SavingsContribution, error)
		GetContribution(ctx context.Context, ownerID, id string) (core.SavingsContribution, error)
		CreateContribution(ctx context.Context, c core.SavingsContribution) (core.SavingsContribution, error)
		UpdateContribution(ctx context.Context, c core.SavingsContribution) (core.SavingsContribution, error)
		DeleteContribution(ctx context.Context, ownerID, id string) error
	}
)
