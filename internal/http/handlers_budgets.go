package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"fintrack/internal/core"
)

type budgetBody struct {
	Month  int         `json:"month"`
	Year   int         `json:"year"`
	Amount json.Number `json:"amount"`
}

func (b budgetBody) toBudget(ownerID string) (core.Budget, error) {
	amount, err := core.ParseAmount(b.Amount.String())
	if err != nil {
		return core.Budget{}, err
	}
	budget := core.Budget{
		OwnerID: ownerID,
		Month:   b.Month,
		Year:    b.Year,
		Amount:  amount,
	}
	if err := budget.Validate(); err != nil {
		return core.Budget{}, fmt.Errorf("%w: %v", errBadRequest, err)
	}
	return budget, nil
}

type budgetDTO struct {
	ID     string  `json:"id"`
	Month  int     `json:"month"`
	Year   int     `json:"year"`
	Amount float64 `json:"amount"`
}

func budgetToDTO(b core.Budget) budgetDTO {
	return budgetDTO{
		ID:     b.ID,
		Month:  b.Month,
		Year:   b.Year,
		Amount: core.DisplayValue(b.Amount),
	}
}

func (s *Server) handleListBudgets(w http.ResponseWriter, r *http.Request) {
	budgets, err := s.budgets.ListBudgets(r.Context(), ownerID(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	items := make([]budgetDTO, 0, len(budgets))
	for _, b := range budgets {
		items = append(items, budgetToDTO(b))
	}
	writeJSON(w, http.StatusOK, items)
}

func (s *Server) handleCreateBudget(w http.ResponseWriter, r *http.Request) {
	var body budgetBody
	if err := decodeBody(r, &body); err != nil {
		writeError(w, r, err)
		return
	}
	b, err := body.toBudget(ownerID(r))
	if err != nil {
		writeError(w, r, err)
		return
	}

	created, err := s.budgets.CreateBudget(r.Context(), b)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, budgetToDTO(created))
}

func (s *Server) handleUpdateBudget(w http.ResponseWriter, r *http.Request) {
	var body budgetBody
	if err := decodeBody(r, &body); err != nil {
		writeError(w, r, err)
		return
	}
	b, err := body.toBudget(ownerID(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	b.ID = r.PathValue("id")

	updated, err := s.budgets.UpdateBudget(r.Context(), b)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, budgetToDTO(updated))
}

func (s *Server) handleDeleteBudget(w http.ResponseWriter, r *http.Request) {
	if err := s.budgets.DeleteBudget(r.Context(), ownerID(r), r.PathValue("id")); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
