package studentfee

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

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

// POST /students/{id}/fees
func (h *Handler) Assign(w http.ResponseWriter, r *http.Request) {
	studentID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid student ID", http.StatusBadRequest)
		return
	}

	var in AssignFeeDTO
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "Malformed JSON", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(in); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	fee, err := h.Repo.Assign(uint(studentID), in.CategoryID, in.AcademicYear, in.TotalAmount, in.DueDate)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidAmount):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, ErrStudentNotFound), errors.Is(err, ErrCategoryNotFound):
			http.Error(w, err.Error(), http.StatusNotFound)
		default:
			http.Error(w, "Failed to assign fee", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(fee)
}

// GET /students/{id}/fees
func (h *Handler) ListByStudent(w http.ResponseWriter, r *http.Request) {
	studentID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid student ID", http.StatusBadRequest)
		return
	}

	fees, err := h.Repo.ListByStudent(uint(studentID))
	if err != nil {
		http.Error(w, "Failed to fetch student fees", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(fees)
}

// GET /fees/pending
func (h *Handler) ListPending(w http.ResponseWriter, r *http.Request) {
	fees, err := h.Repo.ListPending()
	if err != nil {
		http.Error(w, "Failed to fetch pending fees", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(fees)
}

// GET /fees
func (h *Handler) ListAll(w http.ResponseWriter, r *http.Request) {
	fees, err := h.Repo.ListAll()
	if err != nil {
		http.Error(w, "Failed to fetch fees", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(fees)
}
