package triage

import (
	"github.com/google/uuid"

	"nurturebloom/models"
)

// referenceSymptoms returns the postpartum symptom catalogue with fresh ids.
func referenceSymptoms() []models.Symptom {
	list := []models.Symptom{
		{
			Name:                 "Postpartum Bleeding (Heavy)",
			Description:          "Heavy vaginal bleeding that soaks through one or more pads per hour for more than 2 hours.",
			Severity:             models.SeverityEmergency,
			CommonCauses:         []string{"Retained placenta", "Uterine atony", "Trauma during delivery"},
			RecommendedActions:   []string{"Seek emergency medical care immediately"},
			SeekMedicalAttention: true,
			RelatedSymptoms:      []string{"Dizziness", "Weakness", "Rapid heart rate"},
			Category:             models.CategoryPhysical,
		},
		{
			Name:                 "Postpartum Bleeding (Normal)",
			Description:          "Normal vaginal discharge (lochia) that changes from red to pink to white over weeks.",
			Severity:             models.SeverityMild,
			CommonCauses:         []string{"Normal postpartum recovery"},
			RecommendedActions:   []string{"Monitor for changes", "Use sanitary pads"},
			SeekMedicalAttention: false,
			RelatedSymptoms:      []string{},
			Category:             models.CategoryPhysical,
		},
		{
			Name:                 "Severe Headache",
			Description:          "Intense headache that may be accompanied by vision changes.",
			Severity:             models.SeveritySevere,
			CommonCauses:         []string{"Preeclampsia", "Hormonal changes", "Dehydration", "Lack of sleep"},
			RecommendedActions:   []string{"Contact healthcare provider immediately"},
			SeekMedicalAttention: true,
			RelatedSymptoms:      []string{"Vision changes", "Swelling", "Upper abdominal pain"},
			Category:             models.CategoryPhysical,
		},
		{
			Name:                 "Breast Engorgement",
			Description:          "Swollen, firm, tender breasts as milk comes in.",
			Severity:             models.SeverityModerate,
			CommonCauses:         []string{"Milk production", "Milk stasis"},
			RecommendedActions:   []string{"Frequent breastfeeding", "Cold compresses", "Gentle massage"},
			SeekMedicalAttention: false,
			RelatedSymptoms:      []string{"Discomfort", "Warmth", "Hardness"},
			Category:             models.CategoryBreastfeeding,
		},
		{
			Name:                 "Mastitis",
			Description:          "Breast inflammation often with redness, pain, and flu-like symptoms.",
			Severity:             models.SeverityModerate,
			CommonCauses:         []string{"Blocked milk duct", "Bacterial infection"},
			RecommendedActions:   []string{"Continue breastfeeding", "Contact healthcare provider"},
			SeekMedicalAttention: true,
			RelatedSymptoms:      []string{"Fever", "Chills", "Fatigue", "Body aches"},
			Category:             models.CategoryBreastfeeding,
		},
		{
			Name:                 "Baby Blues",
			Description:          "Mild mood changes, tearfulness in the first two weeks after delivery.",
			Severity:             models.SeverityMild,
			CommonCauses:         []string{"Hormonal changes", "Lack of sleep", "Adjustment to new role"},
			RecommendedActions:   []string{"Rest", "Accept help", "Talk about feelings"},
			SeekMedicalAttention: false,
			RelatedSymptoms:      []string{"Irritability", "Anxiety", "Mood swings", "Crying"},
			Category:             models.CategoryEmotional,
		},
		{
			Name:                 "Postpartum Depression",
			Description:          "Persistent feelings of sadness, hopelessness, or overwhelm lasting more than two weeks.",
			Severity:             models.SeveritySevere,
			CommonCauses:         []string{"Hormonal changes", "History of depression", "Difficult delivery", "Lack of support"},
			RecommendedActions:   []string{"Contact healthcare provider", "Seek counseling"},
			SeekMedicalAttention: true,
			RelatedSymptoms:      []string{"Loss of interest", "Changes in appetite", "Fatigue", "Thoughts of harming self or baby"},
			Category:             models.CategoryEmotional,
		},
		{
			Name:                 "Perineal Pain",
			Description:          "Pain in the area between vagina and rectum following vaginal delivery.",
			Severity:             models.SeverityModerate,
			CommonCauses:         []string{"Episiotomy", "Tearing during delivery"},
			RecommendedActions:   []string{"Sitz baths", "Cold packs", "Pain medication as prescribed"},
			SeekMedicalAttention: false,
			RelatedSymptoms:      []string{"Swelling", "Bruising", "Discomfort when sitting"},
			Category:             models.CategoryPhysical,
		},
		{
			Name:                 "C-Section Incision Pain",
			Description:          "Pain at the incision site following cesarean delivery.",
			Severity:             models.SeverityModerate,
			CommonCauses:         []string{"Surgical wound healing"},
			RecommendedActions:   []string{"Take prescribed pain medication", "Avoid heavy lifting"},
			SeekMedicalAttention: false,
			RelatedSymptoms:      []string{"Redness", "Swelling"},
			Category:             models.CategoryPhysical,
		},
		{
			Name:                 "C-Section Infection",
			Description:          "Signs of infection at the incision site including increasing pain, redness, warmth, or discharge.",
			Severity:             models.SeveritySevere,
			CommonCauses:         []string{"Bacterial infection"},
			RecommendedActions:   []string{"Contact healthcare provider immediately"},
			SeekMedicalAttention: true,
			RelatedSymptoms:      []string{"Fever", "Foul-smelling discharge", "Increased pain"},
			Category:             models.CategoryPhysical,
		},
	}
	for i := range list {
		list[i].ID = uuid.New().String()
	}
	return list
}
