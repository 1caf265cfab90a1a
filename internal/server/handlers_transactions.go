package server

import (
	"encoding/json"
	"net/http"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/lavatech-dev/balance/internal/engine"
	"github.com/lavatech-dev/balance/internal/model"
)

type cashPurchaseRequest struct {
	PayAccount   string          `json:"pay_account"`
	DestCategory string          `json:"dest_category"`
	DestAccount  string          `json:"dest_account"`
	Total        decimal.Decimal `json:"total"`
	Force        bool            `json:"force,omitempty"`
}

func (s *Server) cashPurchase(w http.ResponseWriter, r *http.Request) {
	var req cashPurchaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	cat, err := model.ParseCategory(req.DestCategory)
	if err != nil {
		writeError(w, mapError(err), err.Error())
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	receipt, err := s.session.CashPurchase(engine.CashPurchaseParams{
		PayAccount:   req.PayAccount,
		DestCategory: cat,
		DestAccount:  req.DestAccount,
		Total:        req.Total,
	}, req.Force)
	if err != nil {
		writeError(w, mapError(err), err.Error())
		return
	}
	s.logReceipt(receipt.Summary)
	s.writeReceipt(w, receipt)
}

type creditLineRequest struct {
	AssetCategory string          `json:"asset_category"`
	AssetAccount  string          `json:"asset_account"`
	Total         decimal.Decimal `json:"total"`
}

type creditPurchaseRequest struct {
	Lines             []creditLineRequest `json:"lines"`
	LiabilityCategory string              `json:"liability_category"`
	LiabilityAccount  string              `json:"liability_account"`
}

func (s *Server) creditPurchase(w http.ResponseWriter, r *http.Request) {
	var req creditPurchaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	liabCat, err := model.ParseCategory(req.LiabilityCategory)
	if err != nil {
		writeError(w, mapError(err), err.Error())
		return
	}
	lines := make([]engine.CreditLineItem, 0, len(req.Lines))
	for _, l := range req.Lines {
		cat, err := model.ParseCategory(l.AssetCategory)
		if err != nil {
			writeError(w, mapError(err), err.Error())
			return
		}
		lines = append(lines, engine.CreditLineItem{
			AssetCategory: cat,
			AssetAccount:  l.AssetAccount,
			Total:         l.Total,
		})
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	receipt, err := s.session.CreditPurchase(engine.CreditPurchaseParams{
		Lines:             lines,
		LiabilityCategory: liabCat,
		LiabilityAccount:  req.LiabilityAccount,
	})
	if err != nil {
		writeError(w, mapError(err), err.Error())
		return
	}
	s.logReceipt(receipt.Summary)
	s.writeReceipt(w, receipt)
}

type combinedPurchaseRequest struct {
	PayAccount        string          `json:"pay_account"`
	DestCategory      string          `json:"dest_category"`
	DestAccount       string          `json:"dest_account"`
	LiabilityCategory string          `json:"liability_category"`
	LiabilityAccount  string          `json:"liability_account"`
	Total             decimal.Decimal `json:"total"`
	AdvanceFraction   decimal.Decimal `json:"advance_fraction"`
	Force             bool            `json:"force,omitempty"`
}

func (s *Server) combinedPurchase(w http.ResponseWriter, r *http.Request) {
	var req combinedPurchaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	destCat, err := model.ParseCategory(req.DestCategory)
	if err != nil {
		writeError(w, mapError(err), err.Error())
		return
	}
	liabCat, err := model.ParseCategory(req.LiabilityCategory)
	if err != nil {
		writeError(w, mapError(err), err.Error())
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	receipt, err := s.session.CombinedPurchase(engine.CombinedPurchaseParams{
		PayAccount:        req.PayAccount,
		DestCategory:      destCat,
		DestAccount:       req.DestAccount,
		LiabilityCategory: liabCat,
		LiabilityAccount:  req.LiabilityAccount,
		Total:             req.Total,
		AdvanceFraction:   req.AdvanceFraction,
	}, req.Force)
	if err != nil {
		writeError(w, mapError(err), err.Error())
		return
	}
	s.logReceipt(receipt.Summary)
	s.writeReceipt(w, receipt)
}

type customerAdvanceRequest struct {
	ReceivingAccount string          `json:"receiving_account"`
	SaleTotal        decimal.Decimal `json:"sale_total"`
	AdvanceFraction  decimal.Decimal `json:"advance_fraction"`
}

func (s *Server) customerAdvance(w http.ResponseWriter, r *http.Request) {
	var req customerAdvanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	receipt, err := s.session.CustomerAdvance(engine.CustomerAdvanceParams{
		ReceivingAccount: req.ReceivingAccount,
		SaleTotal:        req.SaleTotal,
		AdvanceFraction:  req.AdvanceFraction,
	})
	if err != nil {
		writeError(w, mapError(err), err.Error())
		return
	}
	s.logReceipt(receipt.Summary)
	s.writeReceipt(w, receipt)
}

func (s *Server) logReceipt(sum model.Summary) {
	s.logger.Info("transaction posted",
		zap.String("id", sum.ID),
		zap.String("kind", string(sum.Kind)),
		zap.String("total", sum.Total.StringFixed(2)),
	)
}
