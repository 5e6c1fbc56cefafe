package service

import (
	"learnhub_backend/internal/model"
	"learnhub_backend/internal/repository"
)

type ContactService struct {
	ContactRepo *repository.ContactRepository
}

func NewContactService(contactRepo *repository.ContactRepository) *ContactService {
	return &ContactService{ContactRepo: contactRepo}
}

func (s *ContactService) SendMessage(email, subject, message, username string) error {
	contact := &model.Contact{
		Email:    email,
		Subject:  subject,
		Message:  message,
		Username: username,
	}
	return s.ContactRepo.Create(contact)
}

func (s *ContactService) GetMessages() ([]model.Contact, error) {
	return s.ContactRepo.FindAll()
}
