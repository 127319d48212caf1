package models

// Analysis é a ficha de anamnese/consentimento anexada a uma entrada do dossiê.
// O checklist é fechado; a assinatura é um data URL PNG (vazio = não assinada).
type Analysis struct {
	// Avaliação de saúde
	HasAllergies         bool   `json:"has_allergies"`
	AllergyDetails       string `json:"allergy_details,omitempty"`
	RecentProcedures     bool   `json:"recent_procedures"`
	IsPregnant           bool   `json:"is_pregnant"`
	HasEyeConditions     bool   `json:"has_eye_conditions"`
	UsesContactLenses    bool   `json:"uses_contact_lenses"`
	OncologicalTreatment bool   `json:"oncological_treatment"`
	UsesGrowthMeds       bool   `json:"uses_growth_meds"`

	// Hábitos e estilo de vida
	IntenseLifestyle bool   `json:"intense_lifestyle"`
	SleepingPosition string `json:"sleeping_position,omitempty"`
	MakeupHabits     bool   `json:"makeup_habits"`
	LashTics         bool   `json:"lash_tics"`

	// Alinhamento de expectativas
	PreviousExperience bool   `json:"previous_experience"`
	NegativeReaction   string `json:"negative_reaction,omitempty"`
	DesiredVolume      string `json:"desired_volume,omitempty"`
	DesiredStyle       string `json:"desired_style,omitempty"`

	// Ficha técnica
	Technique    string `json:"technique,omitempty"`
	Mapping      string `json:"mapping,omitempty"`
	Style        string `json:"style,omitempty"`
	Curvature    string `json:"curvature,omitempty"`
	Thickness    string `json:"thickness,omitempty"`
	AdhesiveUsed string `json:"adhesive_used,omitempty"`

	AdditionalNotes string `json:"additional_notes,omitempty"`
	Signature       string `json:"signature,omitempty"`
}
