package services

import (
	"errors"
	"net/http"

	"djurdata-ai/internal/apis/dtos"
	"djurdata-ai/internal/models"
	"djurdata-ai/internal/repositories"
)

type IAnimalService interface {
	List() ([]models.Animal, uint, error)
	Search(term string) ([]models.Animal, uint, error)
	GetDetails(animalID string) (*dtos.AnimalDetailsResponse, uint, error)
	GetChecklists(animalID string) ([]models.ChecklistTemplate, uint, error)
}

type AnimalService struct {
	animalRepo repositories.AnimalRepository
}

func NewAnimalService(animalRepo repositories.AnimalRepository) *AnimalService {
	return &AnimalService{animalRepo: animalRepo}
}

func (s *AnimalService) List() ([]models.Animal, uint, error) {
	animals, err := s.animalRepo.List()
	if err != nil {
		return nil, http.StatusInternalServerError, err
	}
	return animals, http.StatusOK, nil
}

func (s *AnimalService) Search(term string) ([]models.Animal, uint, error) {
	if term == "" {
		return s.List()
	}
	animals, err := s.animalRepo.Search(term)
	if err != nil {
		return nil, http.StatusInternalServerError, err
	}
	return animals, http.StatusOK, nil
}

func (s *AnimalService) GetDetails(animalID string) (*dtos.AnimalDetailsResponse, uint, error) {
	details, err := s.animalRepo.FindDetails(animalID)
	if err != nil {
		return nil, http.StatusInternalServerError, err
	}
	if details == nil {
		return nil, http.StatusNotFound, errors.New("animal not found")
	}
	return &dtos.AnimalDetailsResponse{
		Animal:      details.Animal,
		Requirement: details.Requirement,
		Food:        details.Food,
		Diseases:    details.Diseases,
		Warnings:    details.Warnings,
		Checklists:  details.Checklists,
	}, http.StatusOK, nil
}

func (s *AnimalService) GetChecklists(animalID string) ([]models.ChecklistTemplate, uint, error) {
	animal, err := s.animalRepo.FindByID(animalID)
	if err != nil {
		return nil, http.StatusInternalServerError, err
	}
	if animal == nil {
		return nil, http.StatusNotFound, errors.New("animal not found")
	}
	checklists, err := s.animalRepo.ListChecklists(animalID)
	if err != nil {
		return nil, http.StatusInternalServerError, err
	}
	return checklists, http.StatusOK, nil
}
