package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/lavatech-dev/balance/internal/model"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func mapError(err error) int {
	switch {
	case errors.Is(err, model.ErrAccountNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrDuplicateAccount):
		return http.StatusConflict
	case errors.Is(err, model.ErrProtectedAccount),
		errors.Is(err, model.ErrInsufficientFunds):
		return http.StatusUnprocessableEntity
	case errors.Is(err, model.ErrEmptyLineItems),
		errors.Is(err, model.ErrInvalidAmount),
		errors.Is(err, model.ErrInvalidCategory):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

type accountView struct {
	Name  string          `json:"name"`
	Value decimal.Decimal `json:"value"`
}

type categoryView struct {
	Category model.Category  `json:"category"`
	Label    string          `json:"label"`
	Accounts []accountView   `json:"accounts"`
	Total    decimal.Decimal `json:"total"`
}

type balanceResponse struct {
	Categories []categoryView `json:"categories"`
	Totals     model.Totals   `json:"totals"`
}

func balanceView(st *model.State, totals model.Totals) balanceResponse {
	resp := balanceResponse{Totals: totals}
	for _, cat := range model.AllCategories {
		cv := categoryView{
			Category: cat,
			Label:    model.CategoryLabel(cat),
			Accounts: []accountView{},
			Total:    st.CategoryTotal(cat),
		}
		for _, name := range st.Names(cat) {
			cv.Accounts = append(cv.Accounts, accountView{Name: name, Value: st.Value(cat, name)})
		}
		resp.Categories = append(resp.Categories, cv)
	}
	return resp
}

type receiptResponse struct {
	Receipt     any          `json:"receipt"`
	Description string       `json:"description"`
	Totals      model.Totals `json:"totals"`
}

func (s *Server) writeReceipt(w http.ResponseWriter, r model.Receipt) {
	writeJSON(w, http.StatusCreated, receiptResponse{
		Receipt:     r,
		Description: r.Description(),
		Totals:      s.session.Totals(),
	})
}
