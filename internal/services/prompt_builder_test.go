package services_test

import (
	"testing"

	"djurdata-ai/internal/models"
	"djurdata-ai/internal/repositories"
	"djurdata-ai/internal/services"
	"djurdata-ai/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildAnimalPromptEmbedsDatabaseRecord(t *testing.T) {
	animalRepo := new(MockAnimalRepository)
	animalRepo.On("FindDetails", "animal-1").Return(&repositories.AnimalDetails{
		Animal: models.Animal{
			Name:           "Leopardgecko",
			ScientificName: utils.ToStringPtr("Eublepharis macularius"),
			Category:       "reptil",
			Difficulty:     utils.ToStringPtr("nybörjare"),
		},
		Requirement: &models.AnimalRequirement{
			AnimalID:    "animal-1",
			Temperature: utils.ToStringPtr("28-32°C"),
			Humidity:    utils.ToStringPtr("30-40%"),
		},
		Food: []models.AnimalFood{
			{AnimalID: "animal-1", Type: "syrsor", Amount: "3-5 st", Frequency: "varannan dag"},
		},
		Warnings: []models.AnimalWarning{
			{AnimalID: "animal-1", Warning: "Sand som substrat kan orsaka förstoppning"},
		},
	}, nil).Once()

	builder := services.NewPromptBuilder(animalRepo)

	prompt, err := builder.BuildAnimalPrompt("animal-1")
	require.NoError(t, err)

	assert.Contains(t, prompt, "Leopardgecko")
	assert.Contains(t, prompt, "Eublepharis macularius")
	assert.Contains(t, prompt, "28-32°C")
	assert.Contains(t, prompt, "syrsor")
	assert.Contains(t, prompt, "Sand som substrat")
	assert.Contains(t, prompt, "SVARA ENDAST")
}

// An unknown animal id falls back to the generic prompt instead of failing
// the chat request.
func TestBuildAnimalPromptUnknownAnimalFallsBack(t *testing.T) {
	animalRepo := new(MockAnimalRepository)
	animalRepo.On("FindDetails", "missing").Return(nil, nil).Once()

	builder := services.NewPromptBuilder(animalRepo)

	prompt, err := builder.BuildAnimalPrompt("missing")
	require.NoError(t, err)
	assert.Contains(t, prompt, "DjurData")
}

func TestBuildGlobalPromptListsAllAnimals(t *testing.T) {
	animalRepo := new(MockAnimalRepository)
	animalRepo.On("List").Return([]models.Animal{
		{Name: "Kanin", Category: "däggdjur", LifespanYears: utils.ToStringPtr("8-12")},
		{Name: "Skäggagam", Category: "reptil"},
	}, nil).Once()

	builder := services.NewPromptBuilder(animalRepo)

	prompt, err := builder.BuildGlobalPrompt()
	require.NoError(t, err)

	assert.Contains(t, prompt, "Kanin")
	assert.Contains(t, prompt, "Skäggagam")
	assert.Contains(t, prompt, "8-12")
	assert.Contains(t, prompt, "GLOBAL")
}
