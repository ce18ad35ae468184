package repositories

import (
	"errors"

	"djurdata-ai/internal/models"

	"gorm.io/gorm"
)

// AnimalDetails bundles an animal with everything the app (and the prompt
// builder) needs to describe it.
type AnimalDetails struct {
	Animal      models.Animal
	Requirement *models.AnimalRequirement
	Food        []models.AnimalFood
	Diseases    []models.AnimalDisease
	Warnings    []models.AnimalWarning
	Checklists  []models.ChecklistTemplate
}

type AnimalRepository interface {
	List() ([]models.Animal, error)
	Search(term string) ([]models.Animal, error)
	FindByID(animalID string) (*models.Animal, error)
	FindDetails(animalID string) (*AnimalDetails, error)
	ListChecklists(animalID string) ([]models.ChecklistTemplate, error)
}

type animalRepository struct {
	db *gorm.DB
}

func NewAnimalRepository(db *gorm.DB) AnimalRepository {
	return &animalRepository{db: db}
}

func (r *animalRepository) List() ([]models.Animal, error) {
	var animals []models.Animal
	if err := r.db.Order("name asc").Find(&animals).Error; err != nil {
		return nil, err
	}
	return animals, nil
}

func (r *animalRepository) Search(term string) ([]models.Animal, error) {
	var animals []models.Animal
	pattern := "%" + term + "%"
	err := r.db.Where("name ILIKE ? OR category ILIKE ? OR scientific_name ILIKE ?", pattern, pattern, pattern).
		Order("name asc").
		Find(&animals).Error
	if err != nil {
		return nil, err
	}
	return animals, nil
}

func (r *animalRepository) FindByID(animalID string) (*models.Animal, error) {
	var animal models.Animal
	err := r.db.Where("id = ?", animalID).First(&animal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &animal, nil
}

func (r *animalRepository) FindDetails(animalID string) (*AnimalDetails, error) {
	animal, err := r.FindByID(animalID)
	if err != nil {
		return nil, err
	}
	if animal == nil {
		return nil, nil
	}

	details := &AnimalDetails{Animal: *animal}

	var requirement models.AnimalRequirement
	err = r.db.Where("animal_id = ?", animalID).First(&requirement).Error
	if err == nil {
		details.Requirement = &requirement
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if err := r.db.Where("animal_id = ?", animalID).Find(&details.Food).Error; err != nil {
		return nil, err
	}
	if err := r.db.Where("animal_id = ?", animalID).Find(&details.Diseases).Error; err != nil {
		return nil, err
	}
	if err := r.db.Where("animal_id = ?", animalID).Find(&details.Warnings).Error; err != nil {
		return nil, err
	}
	if err := r.db.Where("animal_id = ?", animalID).Order("sort_order asc").Find(&details.Checklists).Error; err != nil {
		return nil, err
	}

	return details, nil
}

func (r *animalRepository) ListChecklists(animalID string) ([]models.ChecklistTemplate, error) {
	var checklists []models.ChecklistTemplate
	err := r.db.Where("animal_id = ?", animalID).Order("sort_order asc").Find(&checklists).Error
	if err != nil {
		return nil, err
	}
	return checklists, nil
}
