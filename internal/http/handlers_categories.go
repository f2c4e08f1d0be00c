package http

import (
	"net/http"

	"budgetd/internal/core"
	"budgetd/internal/services"
)

type categoryDTO struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Budget   *int64 `json:"budget"`
	ParentID *int64 `json:"parent_id"`
}

func toCategoryDTO(c core.Category) categoryDTO {
	return categoryDTO{
		ID:       c.ID,
		Name:     c.Name,
		Budget:   c.Budget,
		ParentID: c.ParentID,
	}
}

type createCategoryRequest struct {
	Name     string `json:"name"`
	Budget   *int64 `json:"budget"`
	ParentID *int64 `json:"parent_id"`
}

type updateCategoryRequest struct {
	Name   string `json:"name"`
	Budget *int64 `json:"budget"`
}

func (s *Server) handleListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := s.svc.ListCategories(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	dtos := make([]categoryDTO, 0, len(categories))
	for _, c := range categories {
		dtos = append(dtos, toCategoryDTO(c))
	}
	writeJSON(w, http.StatusOK, dtos)
}

func (s *Server) handleCreateCategory(w http.ResponseWriter, r *http.Request) {
	var req createCategoryRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	category, err := s.svc.CreateCategory(r.Context(), services.CreateCategoryCmd{
		Name:     req.Name,
		Budget:   req.Budget,
		ParentID: req.ParentID,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toCategoryDTO(category))
}

func (s *Server) handleUpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	var req updateCategoryRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	category, err := s.svc.UpdateCategory(r.Context(), services.UpdateCategoryCmd{
		ID:     id,
		Name:   req.Name,
		Budget: req.Budget,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCategoryDTO(category))
}

func (s *Server) handleDeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	if err := s.svc.DeleteCategory(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}
