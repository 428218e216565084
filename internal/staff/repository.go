package staff

import (
	"gorm.io/gorm"
)

// Repository encapsulates data access for staff accounts.
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) FindByUsername(username string) (*Staff, error) {
	var s Staff
	if err := r.DB.Where("username = ?", username).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *Repository) Create(s *Staff) error {
	return r.DB.Create(s).Error
}

func (r *Repository) Count() (int64, error) {
	var n int64
	err := r.DB.Model(&Staff{}).Count(&n).Error
	return n, err
}
