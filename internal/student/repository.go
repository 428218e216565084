package student

import (
	"gorm.io/gorm"
)

type Repository interface {
	Save(db *gorm.DB, s *Student) error
	FindByID(db *gorm.DB, id uint) (*Student, error)
	FindByUsername(db *gorm.DB, username string) (*Student, error)
	ListAll(db *gorm.DB) ([]Student, error)
	Update(db *gorm.DB, id uint, data *Student) (*Student, error)
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Save(db *gorm.DB, s *Student) error {
	return db.Save(s).Error
}

func (r *repositoryImpl) FindByID(db *gorm.DB, id uint) (*Student, error) {
	var s Student
	if err := db.First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *repositoryImpl) FindByUsername(db *gorm.DB, username string) (*Student, error) {
	var s Student
	if err := db.Where("username = ?", username).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *repositoryImpl) ListAll(db *gorm.DB) ([]Student, error) {
	var students []Student
	err := db.Order("name ASC").Find(&students).Error
	return students, err
}

func (r *repositoryImpl) Update(db *gorm.DB, id uint, data *Student) (*Student, error) {
	var existing Student
	if err := db.First(&existing, id).Error; err != nil {
		return nil, err
	}

	existing.Name = data.Name
	existing.Username = data.Username
	existing.Email = data.Email
	existing.Phone = data.Phone
	existing.EnrollmentNo = data.EnrollmentNo

	if err := db.Save(&existing).Error; err != nil {
		return nil, err
	}
	return &existing, nil
}
