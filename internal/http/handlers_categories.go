package http

import (
	"fmt"
	"net/http"

	"fintrack/internal/core"
)

type categoryBody struct {
	Name  string `json:"name"`
	Color string `json:"color"`
	Type  string `json:"type"`
}

func (b categoryBody) toCategory(ownerID string) (core.Category, error) {
	c := core.Category{
		OwnerID: ownerID,
		Name:    b.Name,
		Color:   b.Color,
		Type:    core.TransactionType(b.Type),
	}
	if err := c.Validate(); err != nil {
		return core.Category{}, fmt.Errorf("%w: %v", errBadRequest, err)
	}
	return c, nil
}

func categoryToDTO(c core.Category) categoryDef {
	return categoryDef{ID: c.ID, Name: c.Name, Color: c.Color, Type: string(c.Type)}
}

func (s *Server) handleListCategories(w http.ResponseWriter, r *http.Request) {
	cats, err := s.categories.ListCategories(r.Context(), ownerID(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	items := make([]categoryDef, 0, len(cats))
	for _, c := range cats {
		items = append(items, categoryToDTO(c))
	}
	writeJSON(w, http.StatusOK, items)
}

func (s *Server) handleCreateCategory(w http.ResponseWriter, r *http.Request) {
	var body categoryBody
	if err := decodeBody(r, &body); err != nil {
		writeError(w, r, err)
		return
	}
	c, err := body.toCategory(ownerID(r))
	if err != nil {
		writeError(w, r, err)
		return
	}

	created, err := s.categories.CreateCategory(r.Context(), c)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, categoryToDTO(created))
}

func (s *Server) handleUpdateCategory(w http.ResponseWriter, r *http.Request) {
	var body categoryBody
	if err := decodeBody(r, &body); err != nil {
		writeError(w, r, err)
		return
	}
	c, err := body.toCategory(ownerID(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	c.ID = r.PathValue("id")

	updated, err := s.categories.UpdateCategory(r.Context(), c)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, categoryToDTO(updated))
}

func (s *Server) handleDeleteCategory(w http.ResponseWriter, r *http.Request) {
	if err := s.categories.DeleteCategory(r.Context(), ownerID(r), r.PathValue("id")); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
