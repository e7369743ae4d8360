package usecases

import (
	"slices"
	"strings"
	"time"

	"github.com/open-sspm/open-aigov/internal/validate"
)

type RiskLevel string

const (
	RiskLevelMinimal      RiskLevel = "Minimal"
	RiskLevelLimited      RiskLevel = "Limited"
	RiskLevelHigh         RiskLevel = "High"
	RiskLevelUnacceptable RiskLevel = "Unacceptable"
)

var RiskLevels = []RiskLevel{RiskLevelMinimal, RiskLevelLimited, RiskLevelHigh, RiskLevelUnacceptable}

type Likelihood string

const (
	LikelihoodRare     Likelihood = "Rare"
	LikelihoodUnlikely Likelihood = "Unlikely"
	LikelihoodPossible Likelihood = "Possible"
	LikelihoodLikely   Likelihood = "Likely"
)

var Likelihoods = []Likelihood{LikelihoodRare, LikelihoodUnlikely, LikelihoodPossible, LikelihoodLikely}

type MitigationStatus string

const (
	MitigationNotStarted     MitigationStatus = "Not Started"
	MitigationInProgress     MitigationStatus = "In Progress"
	MitigationRequiresReview MitigationStatus = "Requires Review"
	MitigationCompleted      MitigationStatus = "Completed"
)

var MitigationStatuses = []MitigationStatus{MitigationNotStarted, MitigationInProgress, MitigationRequiresReview, MitigationCompleted}

// DateLayout is the wire format of TargetDate.
const DateLayout = "2006-01-02"

// Risk is a project risk attached to a use case. ID is zero for risks that
// have not been saved yet.
type Risk struct {
	ID               int64            `json:"id,omitempty"`
	Name             string           `json:"name"`
	OwnerID          int64            `json:"owner_id"`
	Description      string           `json:"description"`
	RiskLevel        RiskLevel        `json:"risk_level"`
	Likelihood       Likelihood       `json:"likelihood"`
	MitigationStatus MitigationStatus `json:"mitigation_status"`
	TargetDate       string           `json:"target_date"`
	MitigationPlan   string           `json:"mitigation_plan"`
}

// Normalized trims text and fills unset enums with their first value.
func (r Risk) Normalized() Risk {
	r.Name = strings.TrimSpace(r.Name)
	r.Description = strings.TrimSpace(r.Description)
	r.MitigationPlan = strings.TrimSpace(r.MitigationPlan)
	r.TargetDate = strings.TrimSpace(r.TargetDate)
	if r.RiskLevel == "" {
		r.RiskLevel = RiskLevelMinimal
	}
	if r.Likelihood == "" {
		r.Likelihood = LikelihoodRare
	}
	if r.MitigationStatus == "" {
		r.MitigationStatus = MitigationNotStarted
	}
	return r
}

// Validate requires a name, an owner and a target date, and known enum values.
func (r Risk) Validate() validate.FieldErrors {
	r = r.Normalized()
	fe := validate.FieldErrors{}
	fe.Check("name", r.Name, validate.Required)
	if r.OwnerID <= 0 {
		fe.Add("owner_id", "This field is required")
	}
	if r.TargetDate == "" {
		fe.Add("target_date", "This field is required")
	} else if _, err := time.Parse(DateLayout, r.TargetDate); err != nil {
		fe.Add("target_date", "Enter a date as YYYY-MM-DD")
	}
	if !slices.Contains(RiskLevels, r.RiskLevel) {
		fe.Add("risk_level", "Unknown risk level")
	}
	if !slices.Contains(Likelihoods, r.Likelihood) {
		fe.Add("likelihood", "Unknown likelihood")
	}
	if !slices.Contains(MitigationStatuses, r.MitigationStatus) {
		fe.Add("mitigation_status", "Unknown mitigation status")
	}
	return fe
}
