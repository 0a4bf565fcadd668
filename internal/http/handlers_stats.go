package http

import (
	"fmt"
	"net/http"

	"fintrack/internal/core"
	"fintrack/internal/report"
)

type (
	totalsDTO struct {
		Income       float64 `json:"income"`
		Expense      float64 `json:"expense"`
		Balance      float64 `json:"balance"`
		Transactions int     `json:"transactions"`
	}

	categoryDTO struct {
		Name   string  `json:"name"`
		Amount float64 `json:"amount"`
		Color  string  `json:"color"`
	}

	dailyPointDTO struct {
		Date    string  `json:"date"`
		Income  float64 `json:"income"`
		Expense float64 `json:"expense"`
	}

	paymentMethodsDTO struct {
		Cash float64 `json:"cash"`
		Card float64 `json:"card"`
	}

	perCardDTO struct {
		Name   string  `json:"name"`
		Amount float64 `json:"amount"`
	}

	summaryDTO struct {
		Totals          totalsDTO         `json:"totals"`
		Categories      []categoryDTO     `json:"categories"`
		IncomeVsExpense []dailyPointDTO   `json:"incomeVsExpense"`
		PaymentMethods  paymentMethodsDTO `json:"paymentMethods"`
		PerCard         []perCardDTO      `json:"perCard"`
		// BudgetAmount is null when no budget is configured for the
		// period; zero means an explicit zero budget.
		BudgetAmount *float64 `json:"budgetAmount"`
	}
)

func summaryToDTO(sum report.Summary, budget *core.Budget) summaryDTO {
	dto := summaryDTO{
		Totals: totalsDTO{
			Income:       core.DisplayValue(sum.Totals.Income),
			Expense:      core.DisplayValue(sum.Totals.Expense),
			Balance:      core.DisplayValue(sum.Totals.Balance),
			Transactions: sum.Totals.Transactions,
		},
		Categories:      make([]categoryDTO, 0, len(sum.Categories)),
		IncomeVsExpense: make([]dailyPointDTO, 0, len(sum.IncomeVsExpense)),
		PaymentMethods: paymentMethodsDTO{
			Cash: core.DisplayValue(sum.PaymentMethods.Cash),
			Card: core.DisplayValue(sum.PaymentMethods.Card),
		},
		PerCard: make([]perCardDTO, 0, len(sum.PerCard)),
	}
	for _, c := range sum.Categories {
		dto.Categories = append(dto.Categories, categoryDTO{
			Name:   c.Name,
			Amount: core.DisplayValue(c.Amount),
			Color:  c.Color,
		})
	}
	for _, p := range sum.IncomeVsExpense {
		dto.IncomeVsExpense = append(dto.IncomeVsExpense, dailyPointDTO{
			Date:    p.Date,
			Income:  core.DisplayValue(p.Income),
			Expense: core.DisplayValue(p.Expense),
		})
	}
	for _, c := range sum.PerCard {
		dto.PerCard = append(dto.PerCard, perCardDTO{
			Name:   c.Name,
			Amount: core.DisplayValue(c.Amount),
		})
	}
	if budget != nil {
		amount := core.DisplayValue(budget.Amount)
		dto.BudgetAmount = &amount
	}
	return dto
}

func (s *Server) handleStatsSummary(w http.ResponseWriter, r *http.Request) {
	res, err := s.stats.Summary(r.Context(), ownerID(r), r.URL.Query().Get("period"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, summaryToDTO(res.Summary, res.Budget))
}

func (s *Server) handleStatsExport(w http.ResponseWriter, r *http.Request) {
	wb, err := s.stats.ExportWorkbook(r.Context(), ownerID(r), r.URL.Query().Get("period"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	data, err := s.encoder.Encode(wb)
	if err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", wb.Filename()))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (s *Server) handleStatsExportSheets(w http.ResponseWriter, r *http.Request) {
	if err := s.stats.QueueSheetsExport(r.Context(), ownerID(r), r.URL.Query().Get("period")); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusAccepted, map[string]string{"status": "queued"})
}
