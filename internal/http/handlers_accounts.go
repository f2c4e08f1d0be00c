package http

import (
	"net/http"

	"budgetd/internal/core"
	"budgetd/internal/services"
)

type accountDTO struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	AccountType string `json:"account_type"`
	Balance     int64  `json:"balance"`
}

func toAccountDTO(a core.Account) accountDTO {
	return accountDTO{
		ID:          a.ID,
		Name:        a.Name,
		AccountType: a.Type.String(),
		Balance:     a.Balance,
	}
}

type createAccountRequest struct {
	Name           string `json:"name"`
	AccountType    string `json:"account_type"`
	InitialBalance int64  `json:"initial_balance"`
}

type updateAccountRequest struct {
	Name string `json:"name"`
}

func (s *Server) handleListAccounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := s.svc.ListAccounts(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	dtos := make([]accountDTO, 0, len(accounts))
	for _, a := range accounts {
		dtos = append(dtos, toAccountDTO(a))
	}
	writeJSON(w, http.StatusOK, dtos)
}

func (s *Server) handleCreateAccount(w http.ResponseWriter, r *http.Request) {
	var req createAccountRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	account, err := s.svc.CreateAccount(r.Context(), services.CreateAccountCmd{
		Name:           req.Name,
		AccountType:    req.AccountType,
		InitialBalance: req.InitialBalance,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toAccountDTO(account))
}

func (s *Server) handleUpdateAccount(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	var req updateAccountRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	account, err := s.svc.UpdateAccount(r.Context(), services.UpdateAccountCmd{
		ID:   id,
		Name: req.Name,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toAccountDTO(account))
}

func (s *Server) handleDeleteAccount(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	if err := s.svc.DeleteAccount(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}
