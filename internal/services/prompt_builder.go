package services

import (
	"fmt"
	"strings"

	"djurdata-ai/internal/constants"
	"djurdata-ai/internal/repositories"
)

// PromptBuilder renders system prompts for the chat assistant. In animal mode
// the prompt embeds that animal's database record; in global mode it embeds a
// compact catalogue of every animal in the app.
type PromptBuilder struct {
	animalRepo repositories.AnimalRepository
}

func NewPromptBuilder(animalRepo repositories.AnimalRepository) *PromptBuilder {
	return &PromptBuilder{animalRepo: animalRepo}
}

// BuildAnimalPrompt returns the system prompt for a conversation scoped to
// one animal. An unknown animal id falls back to the generic prompt so chat
// still works.
func (b *PromptBuilder) BuildAnimalPrompt(animalID string) (string, error) {
	details, err := b.animalRepo.FindDetails(animalID)
	if err != nil {
		return "", err
	}
	if details == nil {
		return fmt.Sprintf(constants.FallbackSystemPrompt, ""), nil
	}
	return fmt.Sprintf(constants.AnimalSystemPrompt, renderAnimalContext(details)), nil
}

// BuildGlobalPrompt returns the system prompt for global mode with a summary
// line per animal in the database.
func (b *PromptBuilder) BuildGlobalPrompt() (string, error) {
	animals, err := b.animalRepo.List()
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString("DJUR I APPEN:\n")
	for _, animal := range animals {
		sb.WriteString("- ")
		sb.WriteString(animal.Name)
		if animal.ScientificName != nil {
			fmt.Fprintf(&sb, " (%s)", *animal.ScientificName)
		}
		fmt.Fprintf(&sb, " — kategori: %s", animal.Category)
		if animal.Difficulty != nil {
			fmt.Fprintf(&sb, ", svårighetsgrad: %s", *animal.Difficulty)
		}
		if animal.LifespanYears != nil {
			fmt.Fprintf(&sb, ", livslängd: %s år", *animal.LifespanYears)
		}
		sb.WriteString("\n")
	}
	return fmt.Sprintf(constants.GlobalSystemPrompt, sb.String()), nil
}

func renderAnimalContext(details *repositories.AnimalDetails) string {
	var sb strings.Builder
	animal := details.Animal

	fmt.Fprintf(&sb, "DJURDATA FÖR: %s\n", animal.Name)
	if animal.ScientificName != nil {
		fmt.Fprintf(&sb, "Vetenskapligt namn: %s\n", *animal.ScientificName)
	}
	fmt.Fprintf(&sb, "Kategori: %s\n", animal.Category)
	writeOptional(&sb, "Svårighetsgrad", animal.Difficulty)
	writeOptional(&sb, "Aktivitet", animal.Activity)
	writeOptional(&sb, "Livslängd (år)", animal.LifespanYears)
	writeOptional(&sb, "Beskrivning", animal.Description)

	if req := details.Requirement; req != nil {
		sb.WriteString("\nMILJÖKRAV:\n")
		writeOptional(&sb, "Temperatur", req.Temperature)
		writeOptional(&sb, "Luftfuktighet", req.Humidity)
		writeOptional(&sb, "Belysning", req.Lighting)
		writeOptional(&sb, "Substrat", req.Substrate)
		writeOptional(&sb, "Boende", req.Housing)
		writeOptional(&sb, "Vatten", req.Water)
		writeOptional(&sb, "Vaknar", req.WakesAt)
		writeOptional(&sb, "Sover", req.SleepsAt)
		writeOptional(&sb, "Aktiva timmar", req.ActiveHours)
		writeOptional(&sb, "Aktivitetsbeteende", req.BehaviorActivity)
		writeOptional(&sb, "Socialt beteende", req.BehaviorSocial)
		writeOptional(&sb, "Lekbeteende", req.BehaviorPlay)
	}

	if len(details.Food) > 0 {
		sb.WriteString("\nMAT:\n")
		for _, food := range details.Food {
			fmt.Fprintf(&sb, "- %s: %s, %s\n", food.Type, food.Amount, food.Frequency)
		}
	}

	if len(details.Diseases) > 0 {
		sb.WriteString("\nVANLIGA SJUKDOMAR:\n")
		for _, disease := range details.Diseases {
			fmt.Fprintf(&sb, "- %s", disease.Name)
			if disease.Symptoms != nil {
				fmt.Fprintf(&sb, " (symptom: %s)", *disease.Symptoms)
			}
			if disease.Treatment != nil {
				fmt.Fprintf(&sb, " — behandling: %s", *disease.Treatment)
			}
			sb.WriteString("\n")
		}
	}

	if len(details.Warnings) > 0 {
		sb.WriteString("\nVARNINGAR:\n")
		for _, warning := range details.Warnings {
			fmt.Fprintf(&sb, "- %s\n", warning.Warning)
		}
	}

	if len(details.Checklists) > 0 {
		sb.WriteString("\nCHECKLISTOR:\n")
		for _, item := range details.Checklists {
			fmt.Fprintf(&sb, "- [%s] %s\n", item.Type, item.Item)
		}
	}

	return sb.String()
}

func writeOptional(sb *strings.Builder, label string, value *string) {
	if value == nil || *value == "" {
		return
	}
	fmt.Fprintf(sb, "%s: %s\n", label, *value)
}
