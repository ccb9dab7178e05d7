package triage

import "nurturebloom/models"

// rank orders the severity tiers. Unknown values rank below mild.
var rank = map[models.Severity]int{
	models.SeverityMild:      1,
	models.SeverityModerate:  2,
	models.SeveritySevere:    3,
	models.SeverityEmergency: 4,
}

// MaxTier returns the most urgent tier among the symptoms. The caller
// guarantees a non-empty slice.
func MaxTier(symptoms []models.Symptom) models.Severity {
	tier := models.SeverityMild
	for _, s := range symptoms {
		if rank[s.Severity] > rank[tier] {
			tier = s.Severity
		}
	}
	return tier
}

// Policy is the fixed guidance attached to a tier.
type Policy struct {
	SeekMedicalAttention bool
	Assessment           string
	Recommendation       string
}

var policies = map[models.Severity]Policy{
	models.SeverityEmergency: {
		SeekMedicalAttention: true,
		Assessment:           "Your symptoms indicate a potentially serious medical condition that requires immediate attention.",
		Recommendation:       "Please seek emergency medical care immediately or call emergency services.",
	},
	models.SeveritySevere: {
		SeekMedicalAttention: true,
		Assessment:           "Your symptoms may indicate a significant health concern that should be evaluated by a healthcare provider.",
		Recommendation:       "Please contact your healthcare provider today for an evaluation.",
	},
	models.SeverityModerate: {
		SeekMedicalAttention: false,
		Assessment:           "Your symptom profile suggests a moderate concern that should be monitored closely.",
		Recommendation:       "Consider scheduling an appointment with your healthcare provider within the next few days if symptoms persist or worsen.",
	},
	models.SeverityMild: {
		SeekMedicalAttention: false,
		Assessment:           "Based on the information provided, your symptoms appear to be mild and common during the postpartum period.",
		Recommendation:       "Continue to monitor your symptoms and practice self-care. If symptoms worsen or persist beyond 2 weeks, consult with your healthcare provider.",
	},
}

// PolicyFor returns the guidance for tier.
func PolicyFor(tier models.Severity) Policy {
	return policies[tier]
}

// Assessment is the outcome of triaging a set of resolved symptoms.
type Assessment struct {
	Tier models.Severity
	Policy
}

// Assess reduces the resolved symptoms to their most urgent tier. The
// self-reported scores play no part in it.
func Assess(resolved []models.Symptom) (Assessment, bool) {
	if len(resolved) == 0 {
		return Assessment{}, false
	}
	tier := MaxTier(resolved)
	return Assessment{Tier: tier, Policy: PolicyFor(tier)}, true
}
