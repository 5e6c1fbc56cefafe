package repository

import (
	"learnhub_backend/internal/model"

	"gorm.io/gorm"
)

type ContactRepository struct {
	DB *gorm.DB
}

func NewContactRepository(db *gorm.DB) *ContactRepository {
	return &ContactRepository{DB: db}
}

func (r *ContactRepository) Create(contact *model.Contact) error {
	return r.DB.Create(contact).Error
}

func (r *ContactRepository) FindAll() ([]model.Contact, error) {
	var contacts []model.Contact
	err := r.DB.Find(&contacts).Error
	return contacts, err
}
