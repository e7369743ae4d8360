// Package usecases holds AI use cases, their project risks and the wizard
// that creates or edits both together.
package usecases

import (
	"errors"
	"strings"
	"time"

	"github.com/open-sspm/open-aigov/internal/validate"
)

var (
	ErrNotFound            = errors.New("use case not found")
	ErrApplicationNotFound = errors.New("application not found")
	ErrUnknownOwner        = errors.New("risk owner is not a member of this tenant")
)

// Fields are the values collected on the use case tab.
type Fields struct {
	BusinessFunction string   `json:"business_function"`
	UseCase          string   `json:"use_case"`
	WhatItDoes       string   `json:"what_it_does"`
	AgentPatterns    []string `json:"agent_patterns"`
	KeyInputs        []string `json:"key_inputs"`
	PrimaryOutputs   []string `json:"primary_outputs"`
	BusinessImpacts  []string `json:"business_impacts"`
	KPIs             []string `json:"kpis"`
}

func (f Fields) Normalized() Fields {
	f.BusinessFunction = strings.TrimSpace(f.BusinessFunction)
	f.UseCase = strings.TrimSpace(f.UseCase)
	f.WhatItDoes = strings.TrimSpace(f.WhatItDoes)
	f.AgentPatterns = cleanList(f.AgentPatterns)
	f.KeyInputs = cleanList(f.KeyInputs)
	f.PrimaryOutputs = cleanList(f.PrimaryOutputs)
	f.BusinessImpacts = cleanList(f.BusinessImpacts)
	f.KPIs = cleanList(f.KPIs)
	return f
}

func (f Fields) Validate() validate.FieldErrors {
	f = f.Normalized()
	fe := validate.FieldErrors{}
	fe.Check("business_function", f.BusinessFunction, validate.Required)
	fe.Check("use_case", f.UseCase, validate.Required)
	fe.Check("what_it_does", f.WhatItDoes, validate.Required)
	return fe
}

// cleanList trims entries and drops blanks and case-insensitive duplicates.
func cleanList(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]bool, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" || seen[strings.ToLower(s)] {
			continue
		}
		seen[strings.ToLower(s)] = true
		out = append(out, s)
	}
	return out
}

type UseCase struct {
	ID            int64 `json:"id"`
	ApplicationID int64 `json:"application_id"`
	Fields
	Assessments Assessments `json:"assessments"`
	Risks       []Risk      `json:"risks"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// AIRisk is an entry of the tenant's AI-risk reference list.
type AIRisk struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Category    string `json:"category"`
	Description string `json:"description"`
}
