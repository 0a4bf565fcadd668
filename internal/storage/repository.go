// Package storage persists all finance-tracker entities in SQLite and
// serves the analytics engine with owner-scoped, pre-filtered record sets.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"fintrack/internal/core"

	_ "modernc.org/sqlite"
)

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// Ping reports database reachability for readiness probes.
func (r *SQLiteRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// decodeAmount parses a stored decimal column. A record that fails here is
// malformed data: the caller aborts the whole computation rather than
// returning a partial result.
func decodeAmount(s, column string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("decode %s %q: %w", column, s, err)
	}
	return d, nil
}

func nullIfEmpty(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func mapConstraintErr(err error) error {
	if err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return fmt.Errorf("%w: %v", core.ErrConflict, err)
	}
	return err
}

// --- transactions ---

const transactionColumns = `
	t.id, t.owner_id, t.type, t.description, t.amount, t.date, t.payment_method,
	COALESCE(t.category_id, ''), COALESCE(t.card_id, ''),
	COALESCE(c.name, ''), COALESCE(c.color, ''), COALESCE(c.type, ''),
	COALESCE(k.name, '')`

const transactionFrom = `
	FROM transactions t
	LEFT JOIN categories c ON c.id = t.category_id
	LEFT JOIN cards k ON k.id = t.card_id`

func scanTransaction(row interface{ Scan(...any) error }) (core.Transaction, error) {
	var (
		t                         core.Transaction
		amount, date              string
		catName, catColor, catTyp string
		cardName                  string
	)
	err := row.Scan(&t.ID, &t.OwnerID, &t.Type, &t.Description, &amount, &date,
		&t.PaymentMethod, &t.CategoryID, &t.CardID, &catName, &catColor, &catTyp, &cardName)
	if err != nil {
		return core.Transaction{}, err
	}

	if t.Amount, err = decodeAmount(amount, "transactions.amount"); err != nil {
		return core.Transaction{}, err
	}
	if t.Date, err = core.ParseDate(date); err != nil {
		return core.Transaction{}, fmt.Errorf("decode transactions.date %q: %w", date, err)
	}
	if t.CategoryID != "" {
		t.Category = &core.Category{
			ID: t.CategoryID, OwnerID: t.OwnerID,
			Name: catName, Color: catColor, Type: core.TransactionType(catTyp),
		}
	}
	if t.CardID != "" {
		t.Card = &core.Card{ID: t.CardID, OwnerID: t.OwnerID, Name: cardName}
	}
	return t, nil
}

func transactionWhere(ownerID string, f TransactionFilter) (string, []any) {
	where := " WHERE t.owner_id = ?"
	args := []any{ownerID}
	if f.Type != "" {
		where += " AND t.type = ?"
		args = append(args, string(f.Type))
	}
	if f.CategoryID != "" {
		where += " AND t.category_id = ?"
		args = append(args, f.CategoryID)
	}
	if f.CardID != "" {
		where += " AND t.card_id = ?"
		args = append(args, f.CardID)
	}
	if !f.From.IsEmpty() {
		where += " AND t.date >= ?"
		args = append(args, f.From.ISO())
	}
	if !f.To.IsEmpty() {
		where += " AND t.date <= ?"
		args = append(args, f.To.ISO())
	}
	return where, args
}

func (r *SQLiteRepository) ListTransactions(ctx context.Context, ownerID string, f TransactionFilter) ([]core.Transaction, error) {
	where, args := transactionWhere(ownerID, f)
	query := "SELECT" + transactionColumns + transactionFrom + where +
		" ORDER BY t.date DESC, t.created_at DESC"
	if f.Limit > 0 {
		query += " LIMIT ? OFFSET ?"
		args = append(args, f.Limit, f.Offset)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	items := []core.Transaction{}
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("list transactions: %w", err)
		}
		items = append(items, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return items, nil
}

func (r *SQLiteRepository) CountTransactions(ctx context.Context, ownerID string, f TransactionFilter) (int, error) {
	f.Limit, f.Offset = 0, 0
	where, args := transactionWhere(ownerID, f)
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*)"+transactionFrom+where, args...).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count transactions: %w", err)
	}
	return count, nil
}

func (r *SQLiteRepository) GetTransaction(ctx context.Context, ownerID, id string) (core.Transaction, error) {
	query := "SELECT" + transactionColumns + transactionFrom + " WHERE t.id = ? AND t.owner_id = ?"
	t, err := scanTransaction(r.db.QueryRowContext(ctx, query, id, ownerID))
	if errors.Is(err, sql.ErrNoRows) {
		return core.Transaction{}, core.ErrNotFound
	}
	if err != nil {
		return core.Transaction{}, fmt.Errorf("get transaction: %w", err)
	}
	return t, nil
}

func (r *SQLiteRepository) CreateTransaction(ctx context.Context, t core.Transaction) (core.Transaction, error) {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO transactions (id, owner_id, type, description, amount, date, payment_method, category_id, card_id)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.OwnerID, string(t.Type), t.Description, t.Amount.String(), t.Date.ISO(),
		string(t.PaymentMethod), nullIfEmpty(t.CategoryID), nullIfEmpty(t.CardID))
	if err != nil {
		return core.Transaction{}, fmt.Errorf("create transaction: %w", err)
	}
	return r.GetTransaction(ctx, t.OwnerID, t.ID)
}

func (r *SQLiteRepository) UpdateTransaction(ctx context.Context, t core.Transaction) (core.Transaction, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE transactions
		SET type = ?, description = ?, amount = ?, date = ?, payment_method = ?,
		    category_id = ?, card_id = ?, updated_at = datetime('now')
		WHERE id = ? AND owner_id = ?`,
		string(t.Type), t.Description, t.Amount.String(), t.Date.ISO(), string(t.PaymentMethod),
		nullIfEmpty(t.CategoryID), nullIfEmpty(t.CardID), t.ID, t.OwnerID)
	if err != nil {
		return core.Transaction{}, fmt.Errorf("update transaction: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return core.Transaction{}, core.ErrNotFound
	}
	return r.GetTransaction(ctx, t.OwnerID, t.ID)
}

func (r *SQLiteRepository) DeleteTransaction(ctx context.Context, ownerID, id string) error {
	return r.deleteOwned(ctx, "transactions", ownerID, id)
}

func (r *SQLiteRepository) deleteOwned(ctx context.Context, table, ownerID, id string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM "+table+" WHERE id = ? AND owner_id = ?", id, ownerID)
	if err != nil {
		return fmt.Errorf("delete from %s: %w", table, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return core.ErrNotFound
	}
	return nil
}

// --- categories ---

func (r *SQLiteRepository) ListCategories(ctx context.Context, ownerID string) ([]core.Category, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, owner_id, name, color, type FROM categories WHERE owner_id = ? ORDER BY name", ownerID)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	items := []core.Category{}
	for rows.Next() {
		var c core.Category
		if err := rows.Scan(&c.ID, &c.OwnerID, &c.Name, &c.Color, &c.Type); err != nil {
			return nil, fmt.Errorf("list categories: %w", err)
		}
		items = append(items, c)
	}
	return items, rows.Err()
}

func (r *SQLiteRepository) GetCategory(ctx context.Context, ownerID, id string) (core.Category, error) {
	var c core.Category
	err := r.db.QueryRowContext(ctx,
		"SELECT id, owner_id, name, color, type FROM categories WHERE id = ? AND owner_id = ?", id, ownerID).
		Scan(&c.ID, &c.OwnerID, &c.Name, &c.Color, &c.Type)
	if errors.Is(err, sql.ErrNoRows) {
		return core.Category{}, core.ErrNotFound
	}
	if err != nil {
		return core.Category{}, fmt.Errorf("get category: %w", err)
	}
	return c, nil
}

func (r *SQLiteRepository) CreateCategory(ctx context.Context, c core.Category) (core.Category, error) {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO categories (id, owner_id, name, color, type) VALUES (?, ?, ?, ?, ?)",
		c.ID, c.OwnerID, c.Name, c.Color, string(c.Type))
	if err != nil {
		return core.Category{}, fmt.Errorf("create category: %w", err)
	}
	return c, nil
}

func (r *SQLiteRepository) UpdateCategory(ctx context.Context, c core.Category) (core.Category, error) {
	res, err := r.db.ExecContext(ctx,
		"UPDATE categories SET name = ?, color = ?, type = ? WHERE id = ? AND owner_id = ?",
		c.Name, c.Color, string(c.Type), c.ID, c.OwnerID)
	if err != nil {
		return core.Category{}, fmt.Errorf("update category: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return core.Category{}, core.ErrNotFound
	}
	return c, nil
}

func (r *SQLiteRepository) DeleteCategory(ctx context.Context, ownerID, id string) error {
	return r.deleteOwned(ctx, "categories", ownerID, id)
}

// --- cards ---

func (r *SQLiteRepository) ListCards(ctx context.Context, ownerID string) ([]core.Card, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, owner_id, name FROM cards WHERE owner_id = ? ORDER BY name", ownerID)
	if err != nil {
		return nil, fmt.Errorf("list cards: %w", err)
	}
	defer rows.Close()

	items := []core.Card{}
	for rows.Next() {
		var c core.Card
		if err := rows.Scan(&c.ID, &c.OwnerID, &c.Name); err != nil {
			return nil, fmt.Errorf("list cards: %w", err)
		}
		items = append(items, c)
	}
	return items, rows.Err()
}

func (r *SQLiteRepository) GetCard(ctx context.Context, ownerID, id string) (core.Card, error) {
	var c core.Card
	err := r.db.QueryRowContext(ctx,
		"SELECT id, owner_id, name FROM cards WHERE id = ? AND owner_id = ?", id, ownerID).
		Scan(&c.ID, &c.OwnerID, &c.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return core.Card{}, core.ErrNotFound
	}
	if err != nil {
		return core.Card{}, fmt.Errorf("get card: %w", err)
	}
	return c, nil
}

func (r *SQLiteRepository) CreateCard(ctx context.Context, c core.Card) (core.Card, error) {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO cards (id, owner_id, name) VALUES (?, ?, ?)", c.ID, c.OwnerID, c.Name)
	if err != nil {
		return core.Card{}, fmt.Errorf("create card: %w", err)
	}
	return c, nil
}

func (r *SQLiteRepository) UpdateCard(ctx context.Context, c core.Card) (core.Card, error) {
	res, err := r.db.ExecContext(ctx,
		"UPDATE cards SET name = ? WHERE id = ? AND owner_id = ?", c.Name, c.ID, c.OwnerID)
	if err != nil {
		return core.Card{}, fmt.Errorf("update card: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return core.Card{}, core.ErrNotFound
	}
	return c, nil
}

func (r *SQLiteRepository) DeleteCard(ctx context.Context, ownerID, id string) error {
	return r.deleteOwned(ctx, "cards", ownerID, id)
}

// --- budgets ---

func scanBudget(row interface{ Scan(...any) error }) (core.Budget, error) {
	var (
		b      core.Budget
		amount string
	)
	if err := row.Scan(&b.ID, &b.OwnerID, &b.Month, &b.Year, &amount); err != nil {
		return core.Budget{}, err
	}
	var err error
	if b.Amount, err = decodeAmount(amount, "budgets.amount"); err != nil {
		return core.Budget{}, err
	}
	return b, nil
}

func (r *SQLiteRepository) ListBudgets(ctx context.Context, ownerID string) ([]core.Budget, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, owner_id, month, year, amount FROM budgets WHERE owner_id = ? ORDER BY year, month", ownerID)
	if err != nil {
		return nil, fmt.Errorf("list budgets: %w", err)
	}
	defer rows.Close()

	items := []core.Budget{}
	for rows.Next() {
		b, err := scanBudget(rows)
		if err != nil {
			return nil, fmt.Errorf("list budgets: %w", err)
		}
		items = append(items, b)
	}
	return items, rows.Err()
}

func (r *SQLiteRepository) GetBudgetForMonth(ctx context.Context, ownerID string, month, year int) (*core.Budget, error) {
	b, err := scanBudget(r.db.QueryRowContext(ctx,
		"SELECT id, owner_id, month, year, amount FROM budgets WHERE owner_id = ? AND month = ? AND year = ?",
		ownerID, month, year))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get budget for month: %w", err)
	}
	return &b, nil
}

func (r *SQLiteRepository) CreateBudget(ctx context.Context, b core.Budget) (core.Budget, error) {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO budgets (id, owner_id, month, year, amount) VALUES (?, ?, ?, ?, ?)",
		b.ID, b.OwnerID, b.Month, b.Year, b.Amount.String())
	if err != nil {
		return core.Budget{}, fmt.Errorf("create budget: %w", mapConstraintErr(err))
	}
	return b, nil
}

func (r *SQLiteRepository) UpdateBudget(ctx context.Context, b core.Budget) (core.Budget, error) {
	res, err := r.db.ExecContext(ctx,
		"UPDATE budgets SET month = ?, year = ?, amount = ? WHERE id = ? AND owner_id = ?",
		b.Month, b.Year, b.Amount.String(), b.ID, b.OwnerID)
	if err != nil {
		return core.Budget{}, fmt.Errorf("update budget: %w", mapConstraintErr(err))
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return core.Budget{}, core.ErrNotFound
	}
	return b, nil
}

func (r *SQLiteRepository) DeleteBudget(ctx context.Context, ownerID, id string) error {
	return r.deleteOwned(ctx, "budgets", ownerID, id)
}

// --- savings plans ---

const planColumns = `
	p.id, p.owner_id, p.name, p.target_amount, COALESCE(p.linked_category_id, ''), p.status,
	COALESCE(c.name, ''), COALESCE(c.color, ''), COALESCE(c.type, '')`

const planFrom = `
	FROM savings_plans p
	LEFT JOIN categories c ON c.id = p.linked_category_id`

func scanPlan(row interface{ Scan(...any) error }) (core.SavingsPlan, error) {
	var (
		p                         core.SavingsPlan
		target                    string
		catName, catColor, catTyp string
	)
	err := row.Scan(&p.ID, &p.OwnerID, &p.Name, &target, &p.LinkedCategoryID, &p.Status,
		&catName, &catColor, &catTyp)
	if err != nil {
		return core.SavingsPlan{}, err
	}
	if p.TargetAmount, err = decodeAmount(target, "savings_plans.target_amount"); err != nil {
		return core.SavingsPlan{}, err
	}
	if p.LinkedCategoryID != "" {
		p.LinkedCategory = &core.Category{
			ID: p.LinkedCategoryID, OwnerID: p.OwnerID,
			Name: catName, Color: catColor, Type: core.TransactionType(catTyp),
		}
	}
	return p, nil
}

func (r *SQLiteRepository) ListPlans(ctx context.Context, ownerID string) ([]core.SavingsPlan, error) {
	query := "SELECT" + planColumns + planFrom + " WHERE p.owner_id = ? ORDER BY p.updated_at DESC"
	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}
	defer rows.Close()

	items := []core.SavingsPlan{}
	for rows.Next() {
		p, err := scanPlan(rows)
		if err != nil {
			return nil, fmt.Errorf("list plans: %w", err)
		}
		items = append(items, p)
	}
	return items, rows.Err()
}

func (r *SQLiteRepository) GetPlan(ctx context.Context, ownerID, id string) (core.SavingsPlan, error) {
	query := "SELECT" + planColumns + planFrom + " WHERE p.id = ? AND p.owner_id = ?"
	p, err := scanPlan(r.db.QueryRowContext(ctx, query, id, ownerID))
	if errors.Is(err, sql.ErrNoRows) {
		return core.SavingsPlan{}, core.ErrNotFound
	}
	if err != nil {
		return core.SavingsPlan{}, fmt.Errorf("get plan: %w", err)
	}
	return p, nil
}

func (r *SQLiteRepository) CreatePlan(ctx context.Context, p core.SavingsPlan) (core.SavingsPlan, error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.Status == "" {
		p.Status = core.PlanActive
	}
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO savings_plans (id, owner_id, name, target_amount, linked_category_id, status) VALUES (?, ?, ?, ?, ?, ?)",
		p.ID, p.OwnerID, p.Name, p.TargetAmount.String(), nullIfEmpty(p.LinkedCategoryID), string(p.Status))
	if err != nil {
		return core.SavingsPlan{}, fmt.Errorf("create plan: %w", err)
	}
	return r.GetPlan(ctx, p.OwnerID, p.ID)
}

func (r *SQLiteRepository) UpdatePlan(ctx context.Context, p core.SavingsPlan) (core.SavingsPlan, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE savings_plans
		SET name = ?, target_amount = ?, linked_category_id = ?, status = ?, updated_at = datetime('now')
		WHERE id = ? AND owner_id = ?`,
		p.Name, p.TargetAmount.String(), nullIfEmpty(p.LinkedCategoryID), string(p.Status), p.ID, p.OwnerID)
	if err != nil {
		return core.SavingsPlan{}, fmt.Errorf("update plan: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return core.SavingsPlan{}, core.ErrNotFound
	}
	return r.GetPlan(ctx, p.OwnerID, p.ID)
}

func (r *SQLiteRepository) DeletePlan(ctx context.Context, ownerID, id string) error {
	return r.deleteOwned(ctx, "savings_plans", ownerID, id)
}

// --- savings contributions ---

func scanContribution(row interface{ Scan(...any) error }) (core.SavingsContribution, error) {
	var (
		c            core.SavingsContribution
		amount, date string
	)
	if err := row.Scan(&c.ID, &c.OwnerID, &c.PlanID, &amount, &date, &c.Note); err != nil {
		return core.SavingsContribution{}, err
	}
	var err error
	if c.Amount, err = decodeAmount(amount, "savings_contributions.amount"); err != nil {
		return core.SavingsContribution{}, err
	}
	if c.Date, err = core.ParseDate(date); err != nil {
		return core.SavingsContribution{}, fmt.Errorf("decode savings_contributions.date %q: %w", date, err)
	}
	return c, nil
}

func (r *SQLiteRepository) ListContributions(ctx context.Context, planID string, from, to core.Date) ([]core.SavingsContribution, error) {
	query := "SELECT id, owner_id, plan_id, amount, date, note FROM savings_contributions WHERE plan_id = ?"
	args := []any{planID}
	if !from.IsEmpty() {
		query += " AND date >= ?"
		args = append(args, from.ISO())
	}
	if !to.IsEmpty() {
		query += " AND date <= ?"
		args = append(args, to.ISO())
	}
	query += " ORDER BY date DESC, created_at DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list contributions: %w", err)
	}
	defer rows.Close()

	items := []core.SavingsContribution{}
	for rows.Next() {
		c, err := scanContribution(rows)
		if err != nil {
			return nil, fmt.Errorf("list contributions: %w", err)
		}
		items = append(items, c)
	}
	return items, rows.Err()
}

func (r *SQLiteRepository) GetContribution(ctx context.Context, ownerID, id string) (core.SavingsContribution, error) {
	c, err := scanContribution(r.db.QueryRowContext(ctx,
		"SELECT id, owner_id, plan_id, amount, date, note FROM savings_contributions WHERE id = ? AND owner_id = ?",
		id, ownerID))
	if errors.Is(err, sql.ErrNoRows) {
		return core.SavingsContribution{}, core.ErrNotFound
	}
	if err != nil {
		return core.SavingsContribution{}, fmt.Errorf("get contribution: %w", err)
	}
	return c, nil
}

func (r *SQLiteRepository) CreateContribution(ctx context.Context, c core.SavingsContribution) (core.SavingsContribution, error) {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO savings_contributions (id, owner_id, plan_id, amount, date, note) VALUES (?, ?, ?, ?, ?, ?)",
		c.ID, c.OwnerID, c.PlanID, c.Amount.String(), c.Date.ISO(), c.Note)
	if err != nil {
		return core.SavingsContribution{}, fmt.Errorf("create contribution: %w", err)
	}
	return c, nil
}

func (r *SQLiteRepository) UpdateContribution(ctx context.Context, c core.SavingsContribution) (core.SavingsContribution, error) {
	res, err := r.db.ExecContext(ctx,
		"UPDATE savings_contributions SET amount = ?, date = ?, note = ? WHERE id = ? AND owner_id = ?",
		c.Amount.String(), c.Date.ISO(), c.Note, c.ID, c.OwnerID)
	if err != nil {
		return core.SavingsContribution{}, fmt.Errorf("update contribution: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return core.SavingsContribution{}, core.ErrNotFound
	}
	return r.GetContribution(ctx, c.OwnerID, c.ID)
}

func (r *SQLiteRepository) DeleteContribution(ctx context.Context, ownerID, id string) error {
	return r.deleteOwned(ctx, "savings_contributions", ownerID, id)
}

// Interface conformance
var (
	_ TransactionStore = (*SQLiteRepository)(nil)
	_ CategoryStore    = (*SQLiteRepository)(nil)
	_ CardStore        = (*SQLiteRepository)(nil)
	_ BudgetStore      = (*SQLiteRepository)(nil)
	_ SavingsStore     = (*SQLiteRepository)(nil)
)
