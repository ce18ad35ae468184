package models

// Checklist template types, matching the values used by the app content.
const (
	ChecklistTypeShopping = "inköp"
	ChecklistTypeDaily    = "daglig"
	ChecklistTypeWeekly   = "veckovis"
)

type Animal struct {
	Name           string  `gorm:"not null;index" json:"name"`
	ScientificName *string `json:"scientific_name,omitempty"`
	Category       string  `gorm:"index" json:"category"`
	Difficulty     *string `json:"difficulty,omitempty"`
	Activity       *string `json:"activity,omitempty"`
	LifespanYears  *string `json:"lifespan_years,omitempty"`
	Description    *string `gorm:"type:text" json:"description,omitempty"`
	Emoji          *string `json:"emoji,omitempty"`
	Base           `gorm:"embedded"`
}

// AnimalRequirement holds husbandry requirements, one row per animal.
type AnimalRequirement struct {
	AnimalID         string  `gorm:"uniqueIndex;not null" json:"animal_id"`
	Temperature      *string `json:"temperature,omitempty"`
	Humidity         *string `json:"humidity,omitempty"`
	Lighting         *string `json:"lighting,omitempty"`
	Substrate        *string `json:"substrate,omitempty"`
	Housing          *string `json:"housing,omitempty"`
	Water            *string `json:"water,omitempty"`
	WakesAt          *string `json:"wakes_at,omitempty"`
	SleepsAt         *string `json:"sleeps_at,omitempty"`
	ActiveHours      *string `json:"active_hours,omitempty"`
	BehaviorActivity *string `json:"behavior_activity,omitempty"`
	BehaviorSocial   *string `json:"behavior_social,omitempty"`
	BehaviorPlay     *string `json:"behavior_play,omitempty"`
	Base             `gorm:"embedded"`
}

type AnimalFood struct {
	AnimalID  string `gorm:"index;not null" json:"animal_id"`
	Type      string `gorm:"not null" json:"type"`
	Amount    string `json:"amount"`
	Frequency string `json:"frequency"`
	Base      `gorm:"embedded"`
}

type AnimalDisease struct {
	AnimalID  string  `gorm:"index;not null" json:"animal_id"`
	Name      string  `gorm:"not null" json:"name"`
	Symptoms  *string `gorm:"type:text" json:"symptoms,omitempty"` // comma separated
	Treatment *string `gorm:"type:text" json:"treatment,omitempty"`
	Base      `gorm:"embedded"`
}

type AnimalWarning struct {
	AnimalID string `gorm:"index;not null" json:"animal_id"`
	Warning  string `gorm:"type:text;not null" json:"warning"`
	Base     `gorm:"embedded"`
}

type ChecklistTemplate struct {
	AnimalID  string `gorm:"index;not null" json:"animal_id"`
	Type      string `gorm:"not null" json:"type"` // inköp, daglig, veckovis
	Item      string `gorm:"not null" json:"item"`
	SortOrder int    `gorm:"default:0" json:"sort_order"`
	Base      `gorm:"embedded"`
}
