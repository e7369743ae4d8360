// Package models is the registry of AI models: models attached to a tenant's
// applications and the shared catalog of provider models.
package models

import (
	"errors"
	"strings"
	"time"

	"github.com/open-sspm/open-aigov/internal/validate"
)

var (
	ErrNotFound            = errors.New("model not found")
	ErrApplicationNotFound = errors.New("application not found")
	ErrDuplicate           = errors.New("a model with this provider and model id already exists")
)

// Details are the descriptive fields shared by application and provider models.
type Details struct {
	Provider            string `json:"provider"`
	ModelID             string `json:"model_id"`
	HostingLocation     string `json:"hosting_location"`
	Architecture        string `json:"architecture"`
	Objectives          string `json:"objectives"`
	ComputeRequirements string `json:"compute_requirements"`
	TrainingDuration    string `json:"training_duration"`
	DatasetSize         string `json:"dataset_size"`
	ModelSize           string `json:"model_size"`
	InferenceLatency    string `json:"inference_latency"`
	PromptRegistryRef   string `json:"prompt_registry_ref"`
}

func (d Details) Normalized() Details {
	out := d
	for _, f := range []*string{
		&out.Provider, &out.ModelID, &out.HostingLocation, &out.Architecture,
		&out.Objectives, &out.ComputeRequirements, &out.TrainingDuration,
		&out.DatasetSize, &out.ModelSize, &out.InferenceLatency, &out.PromptRegistryRef,
	} {
		*f = strings.TrimSpace(*f)
	}
	return out
}

func (d Details) Validate() error {
	d = d.Normalized()
	fe := validate.FieldErrors{}
	fe.Check("provider", d.Provider, validate.Required)
	fe.Check("model_id", d.ModelID, validate.Required)
	fe.Check("prompt_registry_ref", d.PromptRegistryRef, validate.OptionalURL)
	return fe.Err()
}

type ApplicationModel struct {
	ID            int64 `json:"id"`
	ApplicationID int64 `json:"application_id"`
	Details
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ProviderModel struct {
	ID int64 `json:"id"`
	Details
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
