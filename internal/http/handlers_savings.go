package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"fintrack/internal/core"
	"fintrack/internal/savings"
)

type planBody struct {
	Name             string      `json:"name"`
	TargetAmount     json.Number `json:"targetAmount"`
	LinkedCategoryID string      `json:"linkedCategoryId"`
	Status           string      `json:"status"`
}

func (b planBody) toPlan(ownerID string) (core.SavingsPlan, error) {
	target, err := core.ParsePositiveAmount(b.TargetAmount.String())
	if err != nil {
		return core.SavingsPlan{}, core.ErrInvalidTarget
	}
	return core.SavingsPlan{
		OwnerID:          ownerID,
		Name:             b.Name,
		TargetAmount:     target,
		LinkedCategoryID: b.LinkedCategoryID,
		Status:           core.PlanStatus(b.Status),
	}, nil
}

type planDTO struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	TargetAmount     float64 `json:"targetAmount"`
	LinkedCategoryID string  `json:"linkedCategoryId,omitempty"`
	Status           string  `json:"status"`
}

func planToDTO(p core.SavingsPlan) planDTO {
	return planDTO{
		ID:               p.ID,
		Name:             p.Name,
		TargetAmount:     core.DisplayValue(p.TargetAmount),
		LinkedCategoryID: p.LinkedCategoryID,
		Status:           string(p.Status),
	}
}

type contributionBody struct {
	PlanID string      `json:"planId"`
	Amount json.Number `json:"amount"`
	Date   string      `json:"date"`
	Note   string      `json:"note"`
}

func (b contributionBody) toContribution(ownerID string) (core.SavingsContribution, error) {
	amount, err := core.ParsePositiveAmount(b.Amount.String())
	if err != nil {
		return core.SavingsContribution{}, err
	}
	date, err := core.ParseDate(b.Date)
	if err != nil {
		return core.SavingsContribution{}, err
	}
	return core.SavingsContribution{
		OwnerID: ownerID,
		PlanID:  b.PlanID,
		Amount:  amount,
		Date:    date,
		Note:    b.Note,
	}, nil
}

type contributionDTO struct {
	ID     string  `json:"id"`
	PlanID string  `json:"planId"`
	Amount float64 `json:"amount"`
	Date   string  `json:"date"`
	Note   string  `json:"note,omitempty"`
	Source string  `json:"source"`
}

func contributionToDTO(c core.SavingsContribution) contributionDTO {
	return contributionDTO{
		ID:     c.ID,
		PlanID: c.PlanID,
		Amount: core.DisplayValue(c.Amount),
		Date:   c.Date.ISO(),
		Note:   c.Note,
		Source: "manual",
	}
}

type autoContributionDTO struct {
	ID          string  `json:"id"`
	Amount      float64 `json:"amount"`
	Date        string  `json:"date"`
	Description string  `json:"description"`
	Source      string  `json:"source"`
}

type progressDTO struct {
	TargetAmount     float64               `json:"targetAmount"`
	TotalManual      float64               `json:"totalManual"`
	TotalAuto        float64               `json:"totalAuto"`
	ProgressPercent  float64               `json:"progressPercent"`
	Remaining        float64               `json:"remaining"`
	Contributions    []contributionDTO     `json:"contributions"`
	AutoTransactions []autoContributionDTO `json:"autoTransactions"`
}

func progressToDTO(plan core.SavingsPlan, p savings.Progress) progressDTO {
	dto := progressDTO{
		TargetAmount:     core.DisplayValue(plan.TargetAmount),
		TotalManual:      core.DisplayValue(p.TotalManual),
		TotalAuto:        core.DisplayValue(p.TotalAuto),
		ProgressPercent:  core.DisplayValue(p.ProgressPercent),
		Remaining:        core.DisplayValue(p.Remaining),
		Contributions:    make([]contributionDTO, 0, len(p.Contributions)),
		AutoTransactions: make([]autoContributionDTO, 0, len(p.AutoTransactions)),
	}
	for _, c := range p.Contributions {
		dto.Contributions = append(dto.Contributions, contributionToDTO(c))
	}
	for _, a := range p.AutoTransactions {
		dto.AutoTransactions = append(dto.AutoTransactions, autoContributionDTO{
			ID:          a.ID,
			Amount:      core.DisplayValue(a.Amount),
			Date:        a.Date.ISO(),
			Description: a.Description,
			Source:      a.Source,
		})
	}
	return dto
}

func (s *Server) handleListPlans(w http.ResponseWriter, r *http.Request) {
	plans, err := s.savings.ListPlans(r.Context(), ownerID(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	items := make([]planDTO, 0, len(plans))
	for _, p := range plans {
		items = append(items, planToDTO(p))
	}
	writeJSON(w, http.StatusOK, items)
}

func (s *Server) handleCreatePlan(w http.ResponseWriter, r *http.Request) {
	var body planBody
	if err := decodeBody(r, &body); err != nil {
		writeError(w, r, err)
		return
	}
	p, err := body.toPlan(ownerID(r))
	if err != nil {
		writeError(w, r, err)
		return
	}

	created, err := s.savings.CreatePlan(r.Context(), p)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, planToDTO(created))
}

func (s *Server) handleGetPlan(w http.ResponseWriter, r *http.Request) {
	p, err := s.savings.GetPlan(r.Context(), ownerID(r), r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, planToDTO(p))
}

func (s *Server) handleUpdatePlan(w http.ResponseWriter, r *http.Request) {
	var body planBody
	if err := decodeBody(r, &body); err != nil {
		writeError(w, r, err)
		return
	}
	p, err := body.toPlan(ownerID(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	p.ID = r.PathValue("id")

	updated, err := s.savings.UpdatePlan(r.Context(), p)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, planToDTO(updated))
}

func (s *Server) handleDeletePlan(w http.ResponseWriter, r *http.Request) {
	if err := s.savings.DeletePlan(r.Context(), ownerID(r), r.PathValue("id")); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handlePlanProgress(w http.ResponseWriter, r *http.Request) {
	var rng savings.DateRange
	q := r.URL.Query()
	if v := q.Get("from"); v != "" {
		d, err := core.ParseDate(v)
		if err != nil {
			writeError(w, r, fmt.Errorf("%w: invalid from date %q", errBadRequest, v))
			return
		}
		rng.From = d
	}
	if v := q.Get("to"); v != "" {
		d, err := core.ParseDate(v)
		if err != nil {
			writeError(w, r, fmt.Errorf("%w: invalid to date %q", errBadRequest, v))
			return
		}
		rng.To = d
	}

	plan, progress, err := s.savings.PlanProgress(r.Context(), ownerID(r), r.PathValue("id"), rng)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, progressToDTO(plan, progress))
}

func (s *Server) handleAddContribution(w http.ResponseWriter, r *http.Request) {
	var body contributionBody
	if err := decodeBody(r, &body); err != nil {
		writeError(w, r, err)
		return
	}
	if body.PlanID == "" {
		writeError(w, r, fmt.Errorf("%w: missing planId", errBadRequest))
		return
	}
	c, err := body.toContribution(ownerID(r))
	if err != nil {
		writeError(w, r, err)
		return
	}

	created, err := s.savings.AddContribution(r.Context(), c)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, contributionToDTO(created))
}

// handleUpdateContribution ignores any planId in the body; contributions
// cannot move between plans, the stored plan always wins.
func (s *Server) handleUpdateContribution(w http.ResponseWriter, r *http.Request) {
	var body contributionBody
	if err := decodeBody(r, &body); err != nil {
		writeError(w, r, err)
		return
	}
	c, err := body.toContribution(ownerID(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	c.ID = r.PathValue("id")

	updated, err := s.savings.UpdateContribution(r.Context(), c)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, contributionToDTO(updated))
}

func (s *Server) handleDeleteContribution(w http.ResponseWriter, r *http.Request) {
	if err := s.savings.DeleteContribution(r.Context(), ownerID(r), r.PathValue("id")); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
