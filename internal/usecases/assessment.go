package usecases

import (
	"strings"

	"github.com/open-sspm/open-aigov/internal/validate"
)

// Question is one field of a questionnaire tab.
type Question struct {
	Key      string `json:"key"`
	Label    string `json:"label"`
	Required bool   `json:"required"`
}

// Assessments holds questionnaire answers keyed by tab, then question key.
type Assessments map[Tab]map[string]string

var questionnaires = map[Tab][]Question{
	TabTransparency: {
		{Key: "user_disclosure", Label: "How are users told they are interacting with AI?", Required: true},
		{Key: "documentation", Label: "Where is the system documented for stakeholders?", Required: true},
		{Key: "data_sources_disclosed", Label: "Which training or grounding data sources are disclosed?"},
	},
	TabHumanOversight: {
		{Key: "oversight_mechanism", Label: "Who reviews outputs and at which point?", Required: true},
		{Key: "override_process", Label: "How can a human override or stop the system?", Required: true},
		{Key: "escalation_contact", Label: "Escalation contact"},
	},
	TabBiasFairness: {
		{Key: "protected_attributes", Label: "Which protected attributes could be affected?", Required: true},
		{Key: "fairness_metrics", Label: "Which fairness metrics are evaluated?", Required: true},
		{Key: "evaluation_dataset", Label: "Evaluation dataset"},
	},
	TabBiasMonitoring: {
		{Key: "monitoring_frequency", Label: "How often is bias re-evaluated in production?", Required: true},
		{Key: "alert_thresholds", Label: "What thresholds trigger an alert?", Required: true},
		{Key: "monitoring_owner", Label: "Monitoring owner"},
	},
	TabExplainability: {
		{Key: "explanation_method", Label: "How are individual outputs explained?", Required: true},
		{Key: "audience", Label: "Who receives explanations?", Required: true},
		{Key: "limitations", Label: "Known limitations of the explanations"},
	},
	TabEnvironmentalImpact: {
		{Key: "compute_footprint", Label: "Estimated training and inference compute footprint", Required: true},
		{Key: "mitigation_measures", Label: "Measures taken to reduce environmental impact", Required: true},
		{Key: "hosting_region_energy", Label: "Energy mix of the hosting region"},
	},
}

// QuestionsFor returns the questionnaire of tab, or nil for tabs without one.
func QuestionsFor(tab Tab) []Question {
	return append([]Question(nil), questionnaires[tab]...)
}

// IsQuestionnaire reports whether tab collects assessment answers.
func IsQuestionnaire(tab Tab) bool {
	_, ok := questionnaires[tab]
	return ok
}

// Set stores answers for tab, keeping only known question keys.
func (a Assessments) Set(tab Tab, answers map[string]string) validate.FieldErrors {
	fe := validate.FieldErrors{}
	qs := questionnaires[tab]
	known := make(map[string]bool, len(qs))
	for _, q := range qs {
		known[q.Key] = true
	}
	clean := make(map[string]string, len(answers))
	for k, v := range answers {
		if !known[k] {
			fe.Add(k, "Unknown question")
			continue
		}
		clean[k] = strings.TrimSpace(v)
	}
	if fe.Any() {
		return fe
	}
	if a[tab] == nil {
		a[tab] = make(map[string]string, len(clean))
	}
	for k, v := range clean {
		a[tab][k] = v
	}
	return fe
}

// Validate checks the required questions of tab.
func (a Assessments) Validate(tab Tab) validate.FieldErrors {
	fe := validate.FieldErrors{}
	for _, q := range questionnaires[tab] {
		if q.Required {
			fe.Check(q.Key, a[tab][q.Key], validate.Required)
		}
	}
	return fe
}
