package core

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"

	PaymentCash PaymentMethod = "cash"
	PaymentCard PaymentMethod = "card"

	PlanActive   PlanStatus = "active"
	PlanArchived PlanStatus = "archived"
)

// Display defaults for unresolved weak references.
const (
	UncategorizedName  = "Uncategorized"
	UncategorizedColor = "#3b82f6"
	UnknownCardName    = "Unknown"
)

type (
	TransactionType string
	PaymentMethod   string
	PlanStatus      string

	// Date is a calendar date without a time component. Transactions and
	// contributions are bucketed and compared by date only.
	Date struct {
		time.Time
	}

	Transaction struct {
		ID            string
		OwnerID       string
		Type          TransactionType
		Description   string
		Amount        decimal.Decimal
		Date          Date
		PaymentMethod PaymentMethod
		CategoryID    string // empty when uncategorized
		CardID        string // empty when not paid by a saved card

		// Resolved weak references, populated by the record source.
		Category *Category
		Card     *Card
	}

	Category struct {
		ID      string
		OwnerID string
		Name    string
		Color   string
		Type    TransactionType
	}

	Card struct {
		ID      string
		OwnerID string
		Name    string
	}

	// Budget is a monthly spending limit. At most one exists per
	// (owner, month, year).
	Budget struct {
		ID      string
		OwnerID string
		Month   int // 1-12
		Year    int
		Amount  decimal.Decimal
	}

	SavingsPlan struct {
		ID               string
		OwnerID          string
		Name             string
		TargetAmount     decimal.Decimal
		LinkedCategoryID string // empty when the plan tracks manual contributions only
		Status           PlanStatus

		LinkedCategory *Category
	}

	SavingsContribution struct {
		ID      string
		OwnerID string
		PlanID  string
		Amount  decimal.Decimal
		Date    Date
		Note    string
	}
)

var (
	ErrInvalidPeriod = errors.New("invalid period")
	ErrInvalidAmount = errors.New("invalid amount")
	ErrInvalidTarget = errors.New("invalid target amount")
	ErrInvalidDate   = errors.New("invalid date")
	ErrNotFound      = errors.New("not found")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("already exists")

	ErrEmptyDescription = errors.New("empty description")
	ErrEmptyName        = errors.New("empty name")
)

const dateLayout = "2006-01-02"

// ParseDate parses an ISO YYYY-MM-DD date string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return Date{Time: t}, nil
}

// NewDate creates a Date from year, month, day.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// ISO renders the date as YYYY-MM-DD. Fixed-width ISO strings sort
// lexicographically in date order, which the aggregator relies on.
func (d Date) ISO() string {
	return d.Format(dateLayout)
}

// MonthKey renders the date as YYYY-MM for monthly bucketing.
func (d Date) MonthKey() string {
	return d.Format("2006-01")
}

func (d Date) IsEmpty() bool {
	return d.IsZero()
}

func (t TransactionType) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

func (p PaymentMethod) Valid() bool {
	return p == PaymentCash || p == PaymentCard
}

func (t Transaction) Validate() error {
	if !t.Type.Valid() {
		return errors.New("invalid transaction type")
	}
	if len(strings.TrimSpace(t.Description)) == 0 {
		return ErrEmptyDescription
	}
	if t.Amount.IsNegative() {
		return ErrInvalidAmount
	}
	if t.Date.IsZero() {
		return ErrInvalidDate
	}
	if !t.PaymentMethod.Valid() {
		return errors.New("invalid payment method")
	}
	return nil
}

// CategoryName resolves the category display name, defaulting when the
// weak reference is absent.
func (t Transaction) CategoryName() string {
	if t.Category != nil && t.Category.Name != "" {
		return t.Category.Name
	}
	return UncategorizedName
}

// CategoryColor resolves the category display color with the same default
// rule as CategoryName.
func (t Transaction) CategoryColor() string {
	if t.Category != nil && t.Category.Color != "" {
		return t.Category.Color
	}
	return UncategorizedColor
}

// CardName resolves the card display name for per-card breakdowns.
func (t Transaction) CardName() string {
	if t.Card != nil && t.Card.Name != "" {
		return t.Card.Name
	}
	return UnknownCardName
}

func (c Category) Validate() error {
	if len(strings.TrimSpace(c.Name)) == 0 {
		return ErrEmptyName
	}
	if c.Type != "" && !c.Type.Valid() {
		return errors.New("invalid category type")
	}
	return nil
}

func (c Card) Validate() error {
	if len(strings.TrimSpace(c.Name)) == 0 {
		return ErrEmptyName
	}
	return nil
}

func (b Budget) Validate() error {
	if b.Month < 1 || b.Month > 12 {
		return errors.New("invalid month")
	}
	if b.Year < 1 {
		return errors.New("invalid year")
	}
	if b.Amount.IsNegative() {
		return ErrInvalidAmount
	}
	return nil
}

func (p SavingsPlan) Validate() error {
	if len(strings.TrimSpace(p.Name)) == 0 {
		return ErrEmptyName
	}
	if !p.TargetAmount.IsPositive() {
		return ErrInvalidTarget
	}
	switch p.Status {
	case "", PlanActive, PlanArchived:
	default:
		return errors.New("invalid plan status")
	}
	return nil
}

func (c SavingsContribution) Validate() error {
	if c.PlanID == "" {
		return errors.New("missing plan reference")
	}
	if !c.Amount.IsPositive() {
		return ErrInvalidAmount
	}
	if c.Date.IsZero() {
		return ErrInvalidDate
	}
	return nil
}
