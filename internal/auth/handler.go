package auth

import (
	"encoding/json"
	"net/http"

	"github.com/campuscore/api-fees/internal/staff"
	"github.com/campuscore/api-fees/internal/utils"
	"gorm.io/gorm"
)

// LoginHandler checks staff credentials and issues an access token.
func LoginHandler(db *gorm.DB) http.HandlerFunc {
	repo := staff.NewRepository(db)

	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Malformed JSON", http.StatusBadRequest)
			return
		}

		account, err := repo.FindByUsername(req.Username)
		if err != nil || !utils.CheckPassword(account.PasswordHash, req.Password) {
			http.Error(w, "Invalid credentials", http.StatusUnauthorized)
			return
		}

		token, err := GenerateAccessToken(account.ID, account.IsAdmin)
		if err != nil {
			http.Error(w, "Failed to issue token", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"token":   token,
			"staffId": account.ID,
			"isAdmin": account.IsAdmin,
			"name":    account.Name,
		})
	}
}
