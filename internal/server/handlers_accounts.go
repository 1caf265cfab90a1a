package server

import (
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/lavatech-dev/balance/internal/model"
)

func (s *Server) getBalance(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	writeJSON(w, http.StatusOK, balanceView(s.session.Store().Current(), s.session.Totals()))
}

func (s *Server) reset(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session.Reset()
	s.logger.Info("state reset to catalog")
	writeJSON(w, http.StatusOK, balanceView(s.session.Store().Current(), s.session.Totals()))
}

func (s *Server) listAccounts(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	categories := model.AllCategories
	if q := r.URL.Query().Get("category"); q != "" {
		cat, err := model.ParseCategory(q)
		if err != nil {
			writeError(w, mapError(err), err.Error())
			return
		}
		categories = []model.Category{cat}
	}

	st := s.session.Store()
	out := []categoryView{}
	for _, cat := range categories {
		cv := categoryView{
			Category: cat,
			Label:    model.CategoryLabel(cat),
			Accounts: []accountView{},
		}
		for _, name := range st.List(cat) {
			cv.Accounts = append(cv.Accounts, accountView{Name: name, Value: st.CatalogValue(cat, name)})
			cv.Total = cv.Total.Add(st.CatalogValue(cat, name))
		}
		out = append(out, cv)
	}
	writeJSON(w, http.StatusOK, out)
}

type accountRequest struct {
	Category string          `json:"category"`
	Name     string          `json:"name"`
	Value    decimal.Decimal `json:"value"`
}

func (s *Server) addAccount(w http.ResponseWriter, r *http.Request) {
	var req accountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	cat, err := model.ParseCategory(req.Category)
	if err != nil {
		writeError(w, mapError(err), err.Error())
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.session.Store().Add(cat, req.Name, req.Value); err != nil {
		writeError(w, mapError(err), err.Error())
		return
	}
	s.logger.Info("account added", zap.String("category", string(cat)), zap.String("name", req.Name))
	writeJSON(w, http.StatusCreated, balanceView(s.session.Store().Current(), s.session.Totals()))
}

func (s *Server) modifyAccount(w http.ResponseWriter, r *http.Request) {
	cat, err := model.ParseCategory(chi.URLParam(r, "category"))
	if err != nil {
		writeError(w, mapError(err), err.Error())
		return
	}
	name, _ := url.PathUnescape(chi.URLParam(r, "name"))

	var req struct {
		Value decimal.Decimal `json:"value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.session.Store().Modify(cat, name, req.Value); err != nil {
		writeError(w, mapError(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, balanceView(s.session.Store().Current(), s.session.Totals()))
}

func (s *Server) deleteAccount(w http.ResponseWriter, r *http.Request) {
	cat, err := model.ParseCategory(chi.URLParam(r, "category"))
	if err != nil {
		writeError(w, mapError(err), err.Error())
		return
	}
	name, _ := url.PathUnescape(chi.URLParam(r, "name"))

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.session.Store().Delete(cat, name); err != nil {
		writeError(w, mapError(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, balanceView(s.session.Store().Current(), s.session.Totals()))
}
