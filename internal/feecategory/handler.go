package feecategory

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type Handler struct {
	Repo     *Repository
	validate *validator.Validate
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{Repo: repo, validate: validator.New()}
}

// GET /fee-categories
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	categories, err := h.Repo.ListActive()
	if err != nil {
		http.Error(w, "Failed to list fee categories", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(categories)
}

// POST /fee-categories
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var in CategoryCreateDTO
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "Malformed JSON", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(in); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	category := &FeeCategory{
		CategoryName: in.CategoryName,
		BaseAmount:   in.BaseAmount,
		Description:  in.Description,
	}
	if err := h.Repo.Create(category); err != nil {
		switch {
		case errors.Is(err, ErrInvalidBaseAmount):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, gorm.ErrDuplicatedKey):
			http.Error(w, "A category with this name already exists", http.StatusConflict)
		default:
			http.Error(w, "Failed to create fee category", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(category)
}

// PUT /fee-categories/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid category ID", http.StatusBadRequest)
		return
	}

	var in CategoryUpdateDTO
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "Malformed JSON", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(in); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	category, err := h.Repo.Update(uint(id), &FeeCategory{
		CategoryName: in.CategoryName,
		BaseAmount:   in.BaseAmount,
		Description:  in.Description,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidBaseAmount):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, gorm.ErrRecordNotFound):
			http.Error(w, "Fee category not found", http.StatusNotFound)
		default:
			http.Error(w, "Failed to update fee category", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(category)
}

// PATCH /fee-categories/{id}/deactivate
func (h *Handler) Deactivate(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid category ID", http.StatusBadRequest)
		return
	}

	if err := h.Repo.Deactivate(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "Fee category not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to deactivate fee category", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"message":"Fee category deactivated"}`))
}
