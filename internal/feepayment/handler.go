package feepayment

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/campuscore/api-fees/internal/auth"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
)

type Handler struct {
	Repo     *Repository
	validate *validator.Validate
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{Repo: repo, validate: validator.New()}
}

// POST /fees/{id}/payments
func (h *Handler) Record(w http.ResponseWriter, r *http.Request) {
	feeID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid fee ID", http.StatusBadRequest)
		return
	}

	var in RecordPaymentDTO
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "Malformed JSON", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(in); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	// The cashier recording the payment comes from the session token.
	var receivedBy *uint
	if staffID, ok := auth.StaffID(r.Context()); ok {
		receivedBy = &staffID
	}

	payment, err := h.Repo.Record(uint(feeID), in, receivedBy)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidAmount), errors.Is(err, ErrInvalidPaymentMode):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, ErrFeeNotFound):
			http.Error(w, err.Error(), http.StatusNotFound)
		case errors.Is(err, ErrDuplicateReceipt):
			http.Error(w, err.Error(), http.StatusConflict)
		default:
			http.Error(w, "Failed to record payment", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(payment)
}

// GET /fees/{id}/payments
func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	feeID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid fee ID", http.StatusBadRequest)
		return
	}

	payments, err := h.Repo.History(uint(feeID))
	if err != nil {
		http.Error(w, "Failed to fetch payment history", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(payments)
}

// GET /payments?q=keyword
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	payments, err := h.Repo.Search(r.URL.Query().Get("q"))
	if err != nil {
		http.Error(w, "Failed to search payments", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(payments)
}
