package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"cargo-cost/core/customs"
	"cargo-cost/core/tariff"
	cerrors "cargo-cost/internal/errors"
)

// handleCharges handles POST /api/v1/charges
func (s *Server) handleCharges(w http.ResponseWriter, r *http.Request) {
	var req ChargesRequest
	if err := s.decode(w, r, &req); err != nil {
		s.metrics.observeCalculation("charges", err)
		s.writeError(w, r, err)
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	res, err := s.catalog.Compute(req)
	s.metrics.observeCalculation("charges", err)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if len(res.Ignored) > 0 {
		s.logger.Debug("ignored unknown services",
			zap.String("request_id", RequestIDFromContext(r.Context())),
			zap.Strings("services", res.Ignored))
	}

	s.writeJSON(w, newChargesResponse(RequestIDFromContext(r.Context()), res), http.StatusOK)
}

// handleImportTax handles POST /api/v1/import-tax
func (s *Server) handleImportTax(w http.ResponseWriter, r *http.Request) {
	var req ImportTaxRequest
	if err := s.decode(w, r, &req); err != nil {
		s.metrics.observeCalculation("import_tax", err)
		s.writeError(w, r, err)
		return
	}

	in, hs, err := req.Input(s.importTax.Defaults())
	s.metrics.observeCalculation("import_tax", err)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, &ImportTaxResponse{
		RequestID:       RequestIDFromContext(r.Context()),
		HSCode:          hs,
		ForeignCurrency: s.importTax.ForeignCurrency,
		LocalCurrency:   s.importTax.LocalCurrency,
		Result:          customs.ComputeImportTax(in),
	}, http.StatusOK)
}

// handleTariffs handles GET /api/v1/tariffs
func (s *Server) handleTariffs(w http.ResponseWriter, r *http.Request) {
	out := make([]TariffResponse, 0, len(tariff.Services))
	for _, svc := range tariff.Services {
		out = append(out, s.tariffResponse(svc))
	}
	s.writeJSON(w, out, http.StatusOK)
}

// handleTariff handles GET /api/v1/tariffs/{service}
func (s *Server) handleTariff(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "service")
	svc, ok := tariff.ParseService(name)
	if !ok {
		s.writeError(w, r, cerrors.NotFound("service", name))
		return
	}
	s.writeJSON(w, s.tariffResponse(svc), http.StatusOK)
}

func (s *Server) tariffResponse(svc tariff.Service) TariffResponse {
	resp := TariffResponse{Service: svc, Currency: s.catalog.Currency(), Rates: []tariff.Rate{}}
	if t, ok := s.catalog.Table(svc); ok {
		if rates := t.Rates(); rates != nil {
			resp.Rates = rates
		}
	}
	return resp
}

// handleHSCodes handles GET /api/v1/hscodes
func (s *Server) handleHSCodes(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, customs.HSCodes(), http.StatusOK)
}

// handleHealth handles GET /health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]interface{}{
		"status":  "healthy",
		"version": s.version,
		"time":    time.Now().UTC().Format(time.RFC3339),
	}, http.StatusOK)
}

// handleVersion handles GET /version
func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{
		"version":     s.version,
		"engine":      "cargo-cost",
		"api_version": "v1",
	}, http.StatusOK)
}
