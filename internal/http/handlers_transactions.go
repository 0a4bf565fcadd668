package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"fintrack/internal/core"
	"fintrack/internal/storage"
)

const (
	defaultPageSize = 50
	maxPageSize     = 500
)

type transactionBody struct {
	Type          string      `json:"type"`
	Description   string      `json:"description"`
	Amount        json.Number `json:"amount"`
	Date          string      `json:"date"`
	PaymentMethod string      `json:"paymentMethod"`
	CategoryID    string      `json:"categoryId"`
	CardID        string      `json:"cardId"`
}

func (b transactionBody) toTransaction(ownerID string) (core.Transaction, error) {
	amount, err := core.ParseAmount(b.Amount.String())
	if err != nil {
		return core.Transaction{}, err
	}
	date, err := core.ParseDate(b.Date)
	if err != nil {
		return core.Transaction{}, err
	}
	t := core.Transaction{
		OwnerID:       ownerID,
		Type:          core.TransactionType(b.Type),
		Description:   b.Description,
		Amount:        amount,
		Date:          date,
		PaymentMethod: core.PaymentMethod(b.PaymentMethod),
		CategoryID:    b.CategoryID,
		CardID:        b.CardID,
	}
	if err := t.Validate(); err != nil {
		return core.Transaction{}, fmt.Errorf("%w: %v", errBadRequest, err)
	}
	return t, nil
}

type transactionDTO struct {
	ID            string       `json:"id"`
	Type          string       `json:"type"`
	Description   string       `json:"description"`
	Amount        float64      `json:"amount"`
	Date          string       `json:"date"`
	PaymentMethod string       `json:"paymentMethod"`
	CategoryID    string       `json:"categoryId,omitempty"`
	CardID        string       `json:"cardId,omitempty"`
	Category      *categoryDef `json:"category,omitempty"`
	Card          *cardDef     `json:"card,omitempty"`
}

type categoryDef struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
	Type  string `json:"type,omitempty"`
}

type cardDef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func transactionToDTO(t core.Transaction) transactionDTO {
	dto := transactionDTO{
		ID:            t.ID,
		Type:          string(t.Type),
		Description:   t.Description,
		Amount:        core.DisplayValue(t.Amount),
		Date:          t.Date.ISO(),
		PaymentMethod: string(t.PaymentMethod),
		CategoryID:    t.CategoryID,
		CardID:        t.CardID,
	}
	if t.Category != nil {
		dto.Category = &categoryDef{
			ID:    t.Category.ID,
			Name:  t.Category.Name,
			Color: t.Category.Color,
			Type:  string(t.Category.Type),
		}
	}
	if t.Card != nil {
		dto.Card = &cardDef{ID: t.Card.ID, Name: t.Card.Name}
	}
	return dto
}

// transactionPage is the list envelope. A limit of 0 means the response
// holds the full, unpaginated list.
type transactionPage struct {
	Items []transactionDTO `json:"items"`
	Page  int              `json:"page"`
	Limit int              `json:"limit"`
	Total int              `json:"total"`
}

func parseTransactionFilter(r *http.Request) (storage.TransactionFilter, int, error) {
	q := r.URL.Query()
	var f storage.TransactionFilter

	if v := q.Get("type"); v != "" {
		t := core.TransactionType(v)
		if !t.Valid() {
			return f, 0, fmt.Errorf("%w: invalid type %q", errBadRequest, v)
		}
		f.Type = t
	}
	f.CategoryID = q.Get("categoryId")
	f.CardID = q.Get("cardId")

	if v := q.Get("from"); v != "" {
		d, err := core.ParseDate(v)
		if err != nil {
			return f, 0, fmt.Errorf("%w: invalid from date %q", errBadRequest, v)
		}
		f.From = d
	}
	if v := q.Get("to"); v != "" {
		d, err := core.ParseDate(v)
		if err != nil {
			return f, 0, fmt.Errorf("%w: invalid to date %q", errBadRequest, v)
		}
		f.To = d
	}

	// Pagination is opt-in: without page/limit params the full list is
	// returned and f.Limit stays 0 (no LIMIT clause).
	page := 1
	paginated := false
	if v := q.Get("page"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil || p < 1 {
			return f, 0, fmt.Errorf("%w: invalid page %q", errBadRequest, v)
		}
		page = p
		paginated = true
	}
	if v := q.Get("limit"); v != "" {
		l, err := strconv.Atoi(v)
		if err != nil || l < 1 || l > maxPageSize {
			return f, 0, fmt.Errorf("%w: invalid limit %q", errBadRequest, v)
		}
		f.Limit = l
		paginated = true
	}
	if paginated {
		if f.Limit == 0 {
			f.Limit = defaultPageSize
		}
		f.Offset = (page - 1) * f.Limit
	}

	return f, page, nil
}

func (s *Server) handleListTransactions(w http.ResponseWriter, r *http.Request) {
	filter, page, err := parseTransactionFilter(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	owner := ownerID(r)
	txs, err := s.transactions.ListTransactions(r.Context(), owner, filter)
	if err != nil {
		writeError(w, r, err)
		return
	}
	total, err := s.transactions.CountTransactions(r.Context(), owner, filter)
	if err != nil {
		writeError(w, r, err)
		return
	}

	items := make([]transactionDTO, 0, len(txs))
	for _, t := range txs {
		items = append(items, transactionToDTO(t))
	}
	writeJSON(w, http.StatusOK, transactionPage{
		Items: items,
		Page:  page,
		Limit: filter.Limit,
		Total: total,
	})
}

func (s *Server) handleCreateTransaction(w http.ResponseWriter, r *http.Request) {
	var body transactionBody
	if err := decodeBody(r, &body); err != nil {
		writeError(w, r, err)
		return
	}
	t, err := body.toTransaction(ownerID(r))
	if err != nil {
		writeError(w, r, err)
		return
	}

	created, err := s.transactions.CreateTransaction(r.Context(), t)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, transactionToDTO(created))
}

func (s *Server) handleGetTransaction(w http.ResponseWriter, r *http.Request) {
	t, err := s.transactions.GetTransaction(r.Context(), ownerID(r), r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, transactionToDTO(t))
}

func (s *Server) handleUpdateTransaction(w http.ResponseWriter, r *http.Request) {
	var body transactionBody
	if err := decodeBody(r, &body); err != nil {
		writeError(w, r, err)
		return
	}
	t, err := body.toTransaction(ownerID(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	t.ID = r.PathValue("id")

	updated, err := s.transactions.UpdateTransaction(r.Context(), t)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, transactionToDTO(updated))
}

func (s *Server) handleDeleteTransaction(w http.ResponseWriter, r *http.Request) {
	if err := s.transactions.DeleteTransaction(r.Context(), ownerID(r), r.PathValue("id")); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
