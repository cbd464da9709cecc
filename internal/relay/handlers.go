package relay

import (
	"encoding/json"
	"net/http"
	"strconv"
)

const defaultListLimit = 10

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleBalance(w http.ResponseWriter, r *http.Request) {
	accountID := r.PathValue("id")
	if accountID == "" {
		writeError(w, "account id is required")
		return
	}

	bal, err := s.client.Balance(accountID)
	if err != nil {
		writeError(w, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, bal)
}

func (s *Server) handleCreatePayout(w http.ResponseWriter, r *http.Request) {
	var req PayoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "invalid json body")
		return
	}
	if msg := validatePayout(req); msg != "" {
		writeError(w, msg)
		return
	}

	p, err := s.client.CreatePayout(req)
	if err != nil {
		writeError(w, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleListPayouts(w http.ResponseWriter, r *http.Request) {
	accountID := r.PathValue("id")
	if accountID == "" {
		writeError(w, "account id is required")
		return
	}

	payouts, err := s.client.ListPayouts(accountID, listLimit(r))
	if err != nil {
		writeError(w, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"payouts": payouts})
}

func (s *Server) handleListTransactions(w http.ResponseWriter, r *http.Request) {
	accountID := r.PathValue("id")
	if accountID == "" {
		writeError(w, "account id is required")
		return
	}

	txns, err := s.client.ListTransactions(accountID, listLimit(r))
	if err != nil {
		writeError(w, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"transactions": txns})
}

func validatePayout(req PayoutRequest) string {
	switch {
	case req.Account == "":
		return "account is required"
	case req.Amount <= 0:
		return "amount must be a positive number of minor currency units"
	case req.Currency == "":
		return "currency is required"
	case req.Destination == "":
		return "destination is required"
	case req.Method != "instant" && req.Method != "standard":
		return "method must be 'instant' or 'standard'"
	}
	return ""
}

func listLimit(r *http.Request) int64 {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return defaultListLimit
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n <= 0 {
		return defaultListLimit
	}
	return n
}
