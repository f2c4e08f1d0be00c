package http

import (
	"net/http"
	"time"

	"budgetd/internal/core"
	"budgetd/internal/services"
)

type recordDTO struct {
	ID          int64     `json:"id"`
	AccountID   int64     `json:"account_id"`
	RecordType  string    `json:"record_type"`
	Amount      int64     `json:"amount"`
	Description *string   `json:"description"`
	CategoryID  *int64    `json:"category_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toRecordDTO(rec core.Record) recordDTO {
	dto := recordDTO{
		ID:          rec.ID,
		AccountID:   rec.AccountID,
		RecordType:  rec.Type.String(),
		Amount:      rec.Amount,
		Description: rec.Description,
		CreatedAt:   rec.CreatedAt,
		UpdatedAt:   rec.UpdatedAt,
	}
	if rec.Category != nil {
		dto.CategoryID = &rec.Category.ID
	}
	return dto
}

type createRecordRequest struct {
	AccountID       int64   `json:"account_id"`
	TransactionType string  `json:"transaction_type"`
	Amount          int64   `json:"amount"`
	Category        *int64  `json:"category"`
	Description     *string `json:"description"`
}

type updateRecordRequest struct {
	Amount      int64   `json:"amount"`
	Description *string `json:"description"`
	CategoryID  *int64  `json:"category_id"`
}

func (s *Server) handleListRecords(w http.ResponseWriter, r *http.Request) {
	var cmd services.ListRecordsCmd
	var err error
	if cmd.Limit, err = queryInt64(r, "limit"); err != nil {
		writeErrorJSON(w, http.StatusBadRequest, "InvalidQueryParameter", "limit must be an integer")
		return
	}
	if cmd.Offset, err = queryInt64(r, "offset"); err != nil {
		writeErrorJSON(w, http.StatusBadRequest, "InvalidQueryParameter", "offset must be an integer")
		return
	}
	if cmd.CategoryID, err = queryInt64(r, "category_id"); err != nil {
		writeErrorJSON(w, http.StatusBadRequest, "InvalidQueryParameter", "category_id must be an integer")
		return
	}

	records, err := s.svc.ListRecords(r.Context(), cmd)
	if err != nil {
		writeError(w, r, err)
		return
	}

	dtos := make([]recordDTO, 0, len(records))
	for _, rec := range records {
		dtos = append(dtos, toRecordDTO(rec))
	}
	writeJSON(w, http.StatusOK, dtos)
}

func (s *Server) handleCreateRecord(w http.ResponseWriter, r *http.Request) {
	var req createRecordRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	record, err := s.svc.CreateRecord(r.Context(), services.CreateRecordCmd{
		AccountID:       req.AccountID,
		TransactionType: req.TransactionType,
		Amount:          req.Amount,
		CategoryID:      req.Category,
		Description:     req.Description,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toRecordDTO(record))
}

func (s *Server) handleUpdateRecord(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	var req updateRecordRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	record, err := s.svc.UpdateRecord(r.Context(), services.UpdateRecordCmd{
		ID:          id,
		Amount:      req.Amount,
		Description: req.Description,
		CategoryID:  req.CategoryID,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toRecordDTO(record))
}

func (s *Server) handleDeleteRecord(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	if err := s.svc.DeleteRecord(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}
