package dtos

import "djurdata-ai/internal/models"

type SearchAnimalsRequest struct {
	Query string `form:"q"`
}

// AnimalDetailsResponse is the full record used by the app's animal pages.
type AnimalDetailsResponse struct {
	Animal      models.Animal              `json:"animal"`
	Requirement *models.AnimalRequirement  `json:"requirement,omitempty"`
	Food        []models.AnimalFood        `json:"food"`
	Diseases    []models.AnimalDisease     `json:"diseases"`
	Warnings    []models.AnimalWarning     `json:"warnings"`
	Checklists  []models.ChecklistTemplate `json:"checklists"`
}
