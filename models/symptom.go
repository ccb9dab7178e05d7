package models

import "time"

// Severity is the static triage tier of a symptom.
type Severity string

const (
	SeverityMild      Severity = "mild"
	SeverityModerate  Severity = "moderate"
	SeveritySevere    Severity = "severe"
	SeverityEmergency Severity = "emergency"
)

type SymptomCategory string

const (
	CategoryPhysical      SymptomCategory = "physical"
	CategoryEmotional     SymptomCategory = "emotional"
	CategoryBreastfeeding SymptomCategory = "breastfeeding"
	CategoryNewborn       SymptomCategory = "newborn"
	CategoryOther         SymptomCategory = "other"
)

func (c SymptomCategory) Valid() bool {
	switch c {
	case CategoryPhysical, CategoryEmotional, CategoryBreastfeeding, CategoryNewborn, CategoryOther:
		return true
	}
	return false
}

// Symptom is reference data describing a known postpartum symptom.
type Symptom struct {
	ID                   string          `bson:"id" json:"id"`
	Name                 string          `bson:"name" json:"name"`
	Description          string          `bson:"description" json:"description"`
	Severity             Severity        `bson:"severity" json:"severity"`
	CommonCauses         []string        `bson:"commonCauses" json:"commonCauses"`
	RecommendedActions   []string        `bson:"recommendedActions" json:"recommendedActions"`
	SeekMedicalAttention bool            `bson:"seekMedicalAttention" json:"seekMedicalAttention"`
	RelatedSymptoms      []string        `bson:"relatedSymptoms" json:"relatedSymptoms"`
	Category             SymptomCategory `bson:"category" json:"category"`
}

// ReportedSymptom is one entry of a symptom check submission.
type ReportedSymptom struct {
	SymptomID    string `bson:"symptomId" json:"symptom" binding:"required"`
	SelfSeverity int    `bson:"severity" json:"severity" binding:"required,min=1,max=10"`
	Duration     string `bson:"duration" json:"duration"`
}

// SymptomCheck is an immutable record of one triage submission.
type SymptomCheck struct {
	ID                   string            `bson:"id" json:"id"`
	UserID               string            `bson:"userId" json:"user"`
	Symptoms             []ReportedSymptom `bson:"symptoms" json:"symptoms"`
	Tier                 Severity          `bson:"tier" json:"tier"`
	Assessment           string            `bson:"assessment" json:"assessment"`
	Recommendation       string            `bson:"recommendation" json:"recommendation"`
	SeekMedicalAttention bool              `bson:"seekMedicalAttention" json:"seekMedicalAttention"`
	CreatedAt            time.Time         `bson:"createdAt" json:"createdAt"`
}

// SymptomCheckView is a check with the referenced symptoms resolved.
type SymptomCheckView struct {
	SymptomCheck
	Details []Symptom `json:"symptomDetails"`
}

// SymptomCheckInput is the payload of a check submission.
type SymptomCheckInput struct {
	Symptoms []ReportedSymptom `json:"symptoms" binding:"required,min=1,dive"`
}
