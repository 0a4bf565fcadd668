package http

import (
	"fmt"
	"net/http"

	"fintrack/internal/core"
)

type cardBody struct {
	Name string `json:"name"`
}

func (b cardBody) toCard(ownerID string) (core.Card, error) {
	c := core.Card{OwnerID: ownerID, Name: b.Name}
	if err := c.Validate(); err != nil {
		return core.Card{}, fmt.Errorf("%w: %v", errBadRequest, err)
	}
	return c, nil
}

func (s *Server) handleListCards(w http.ResponseWriter, r *http.Request) {
	cards, err := s.cards.ListCards(r.Context(), ownerID(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	items := make([]cardDef, 0, len(cards))
	for _, c := range cards {
		items = append(items, cardDef{ID: c.ID, Name: c.Name})
	}
	writeJSON(w, http.StatusOK, items)
}

func (s *Server) handleCreateCard(w http.ResponseWriter, r *http.Request) {
	var body cardBody
	if err := decodeBody(r, &body); err != nil {
		writeError(w, r, err)
		return
	}
	c, err := body.toCard(ownerID(r))
	if err != nil {
		writeError(w, r, err)
		return
	}

	created, err := s.cards.CreateCard(r.Context(), c)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, cardDef{ID: created.ID, Name: created.Name})
}

func (s *Server) handleUpdateCard(w http.ResponseWriter, r *http.Request) {
	var body cardBody
	if err := decodeBody(r, &body); err != nil {
		writeError(w, r, err)
		return
	}
	c, err := body.toCard(ownerID(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	c.ID = r.PathValue("id")

	updated, err := s.cards.UpdateCard(r.Context(), c)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, cardDef{ID: updated.ID, Name: updated.Name})
}

func (s *Server) handleDeleteCard(w http.ResponseWriter, r *http.Request) {
	if err := s.cards.DeleteCard(r.Context(), ownerID(r), r.PathValue("id")); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
