package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	authdomain "powerhack/backend/internal/domain/auth"
	billingdomain "powerhack/backend/internal/domain/billing"
	billingusecase "powerhack/backend/internal/usecase/billing"

	"go.uber.org/zap"
)

func (s *Server) registerRoutes() {
	s.router.Handle("/", http.HandlerFunc(s.handleRoot))
	s.router.Handle("/api/registration", http.HandlerFunc(s.handleRegistration))
	s.router.Handle("/api/login", http.HandlerFunc(s.handleLogin))

	authenticated := s.authMiddleware
	s.router.Handle("/api/billing-list", authenticated(http.HandlerFunc(s.handleBillingList)))
	s.router.Handle("/billCount", authenticated(http.HandlerFunc(s.handleBillCount)))
	s.router.Handle("/api/add-billing", authenticated(http.HandlerFunc(s.handleAddBilling)))
	s.router.Handle("/api/update-billing/", authenticated(http.HandlerFunc(s.handleUpdateBilling)))
	s.router.Handle("/api/delete-billing/", authenticated(http.HandlerFunc(s.handleDeleteBilling)))
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		writeError(w, http.StatusNotFound, "resource not found")
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("Power is Distributing Power"))
}

func (s *Server) handleRegistration(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeMethodNotAllowed(w, http.MethodPost)
		return
	}

	var payload struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	if err := s.authService.Register(r.Context(), payload.Name, payload.Email, payload.Password); err != nil {
		if msg, ok := authFailureMessage(err); ok {
			writeStatusError(w, msg)
			return
		}
		s.logger.Error("registration failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeStatusOK(w, nil)
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeMethodNotAllowed(w, http.MethodPost)
		return
	}

	var payload struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	token, err := s.authService.Login(r.Context(), authdomain.Credentials{
		Email:    payload.Email,
		Password: payload.Password,
	})
	if err != nil {
		if msg, ok := authFailureMessage(err); ok {
			writeStatusError(w, msg)
			return
		}
		s.logger.Error("login failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeStatusOK(w, token)
}

func (s *Server) handleBillingList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w, http.MethodGet)
		return
	}

	page := intQueryParam(r, "existPage")
	size := intQueryParam(r, "pageSize")

	bills, err := s.billingService.List(r.Context(), page, size)
	if err != nil {
		s.logger.Error("billing list failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if bills == nil {
		bills = []*billingdomain.Bill{}
	}
	writeJSON(w, http.StatusOK, bills)
}

func (s *Server) handleBillCount(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w, http.MethodGet)
		return
	}

	count, err := s.billingService.Count(r.Context())
	if err != nil {
		s.logger.Error("bill count failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"count": count})
}

func (s *Server) handleAddBilling(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeMethodNotAllowed(w, http.MethodPost)
		return
	}

	var payload billingusecase.Input
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	bill, err := s.billingService.Add(r.Context(), payload)
	if err != nil {
		s.logger.Error("add billing failed", zap.Error(err))
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "result": bill})
}

func (s *Server) handleUpdateBilling(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		writeMethodNotAllowed(w, http.MethodPut)
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/api/update-billing/")
	if id == "" {
		writeError(w, http.StatusBadRequest, "bill id required")
		return
	}

	var payload billingusecase.Input
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	bill, err := s.billingService.Update(r.Context(), id, payload)
	if err != nil {
		if errors.Is(err, billingdomain.ErrInvalidID) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		s.logger.Error("update billing failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, bill)
}

func (s *Server) handleDeleteBilling(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		writeMethodNotAllowed(w, http.MethodDelete)
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/api/delete-billing/")
	if id == "" {
		writeError(w, http.StatusBadRequest, "bill id required")
		return
	}

	if err := s.billingService.Delete(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, billingdomain.ErrInvalidID):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, billingdomain.ErrNotFound):
			writeJSON(w, http.StatusOK, map[string]int{"deletedCount": 0})
		default:
			s.logger.Error("delete billing failed", zap.Error(err))
			writeError(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"deletedCount": 1})
}

// authFailureMessage maps expected auth failures to the client-facing message
// text. Unexpected errors (store or infrastructure failures) return false and
// take the 500 path instead; they must never be reinterpreted as one of these.
func authFailureMessage(err error) (string, bool) {
	switch {
	case errors.Is(err, authdomain.ErrInvalidUsername):
		return "Invalid username", true
	case errors.Is(err, authdomain.ErrInvalidPassword):
		return "Invalid password", true
	case errors.Is(err, authdomain.ErrPasswordTooShort):
		return "Password too small. Should be atleast 6 characters", true
	case errors.Is(err, authdomain.ErrEmailExists):
		return "Email already in use", true
	case errors.Is(err, authdomain.ErrInvalidCredentials):
		return "Invalid email/password", true
	}
	return "", false
}

// intQueryParam mirrors the original API's lenient parseInt handling: a
// missing or malformed value reads as zero.
func intQueryParam(r *http.Request, key string) int {
	v := r.URL.Query().Get(key)
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}
	return n
}
