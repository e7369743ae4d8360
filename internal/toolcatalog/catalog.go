// Package toolcatalog exposes the read-only catalog of third-party AI tools
// with their compliance and trust posture.
package toolcatalog

import (
	_ "embed"
	"fmt"
	"math"
	"regexp"
	"strings"
	"sync"

	"github.com/open-sspm/open-aigov/internal/search"
	"gopkg.in/yaml.v3"
)

//go:embed tools.yaml
var defaultData []byte

type Severity string

const (
	SeverityLow    Severity = "Low"
	SeverityMedium Severity = "Medium"
	SeverityHigh   Severity = "High"
)

type TrustComponent struct {
	Name   string  `yaml:"name" json:"name"`
	Score  float64 `yaml:"score" json:"score"`
	Weight float64 `yaml:"weight" json:"weight"`
}

type RiskFactor struct {
	Name        string   `yaml:"name" json:"name"`
	Severity    Severity `yaml:"severity" json:"severity"`
	Description string   `yaml:"description" json:"description"`
}

type PricingTier struct {
	Tier     string   `yaml:"tier" json:"tier"`
	Price    string   `yaml:"price" json:"price"`
	Features []string `yaml:"features" json:"features"`
}

type Tool struct {
	Slug            string           `yaml:"slug" json:"slug"`
	Name            string           `yaml:"name" json:"name"`
	Vendor          string           `yaml:"vendor" json:"vendor"`
	Category        string           `yaml:"category" json:"category"`
	Description     string           `yaml:"description" json:"description"`
	ComplianceScore float64          `yaml:"compliance_score" json:"compliance_score"`
	TrustComponents []TrustComponent `yaml:"trust_components" json:"trust_components"`
	RiskFactors     []RiskFactor     `yaml:"risk_factors" json:"risk_factors"`
	Certifications  []string         `yaml:"certifications" json:"certifications"`
	Pricing         []PricingTier    `yaml:"pricing" json:"pricing"`
}

// TrustScore is the weighted mean of the trust components, rounded to one
// decimal. Weights are normalized so they need not sum to 1.
func (t Tool) TrustScore() float64 {
	var sum, weights float64
	for _, c := range t.TrustComponents {
		if c.Weight <= 0 {
			continue
		}
		sum += c.Score * c.Weight
		weights += c.Weight
	}
	if weights == 0 {
		return 0
	}
	return math.Round(sum/weights*10) / 10
}

func searchFields(t Tool) search.Fields {
	return search.Fields{
		Name:        t.Name + " " + t.Vendor,
		Description: t.Description,
		Category:    t.Category,
	}
}

type Catalog struct {
	Tools  []Tool
	bySlug map[string]int
}

type file struct {
	Tools []Tool `yaml:"tools"`
}

// Parse decodes catalog YAML. It does not validate entries; see Validate.
func Parse(data []byte) (*Catalog, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse tool catalog: %w", err)
	}
	c := &Catalog{Tools: f.Tools, bySlug: make(map[string]int, len(f.Tools))}
	for i, t := range f.Tools {
		if _, dup := c.bySlug[t.Slug]; !dup {
			c.bySlug[t.Slug] = i
		}
	}
	return c, nil
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
	defaultErr     error
)

// Default returns the embedded catalog.
func Default() (*Catalog, error) {
	defaultOnce.Do(func() {
		defaultCatalog, defaultErr = Parse(defaultData)
	})
	return defaultCatalog, defaultErr
}

func (c *Catalog) BySlug(slug string) (Tool, bool) {
	i, ok := c.bySlug[strings.ToLower(strings.TrimSpace(slug))]
	if !ok {
		return Tool{}, false
	}
	return c.Tools[i], true
}

// Search filters tools by free text (name, vendor, description, category)
// and exact category. Status and credential predicates do not apply.
func (c *Catalog) Search(f search.Filter) []Tool {
	f.Status = search.StatusAll
	f.HasCredentials = search.CredentialsAll
	cat := strings.TrimSpace(f.Category)
	f.Category = ""
	out := search.Apply(c.Tools, f, searchFields)
	if cat == "" || strings.EqualFold(cat, "all") {
		return out
	}
	filtered := out[:0]
	for _, t := range out {
		if hasCategoryTag(t.Category, cat) {
			filtered = append(filtered, t)
		}
	}
	return filtered
}

// Categories returns the distinct category tags in first-seen order.
func (c *Catalog) Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, t := range c.Tools {
		for _, tag := range splitTags(t.Category) {
			key := strings.ToLower(tag)
			if seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, tag)
		}
	}
	return out
}

func splitTags(category string) []string {
	var out []string
	for _, part := range strings.Split(category, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func hasCategoryTag(category, tag string) bool {
	for _, t := range splitTags(category) {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// Validate returns one message per malformed entry; an empty result means the
// catalog is usable.
func (c *Catalog) Validate() []string {
	var problems []string
	report := func(i int, t Tool, format string, args ...any) {
		label := t.Slug
		if label == "" {
			label = fmt.Sprintf("#%d", i)
		}
		problems = append(problems, label+": "+fmt.Sprintf(format, args...))
	}

	seen := make(map[string]bool, len(c.Tools))
	for i, t := range c.Tools {
		if !slugPattern.MatchString(t.Slug) {
			report(i, t, "slug %q must be lowercase words separated by dashes", t.Slug)
		}
		if seen[t.Slug] {
			report(i, t, "duplicate slug")
		}
		seen[t.Slug] = true
		if strings.TrimSpace(t.Name) == "" {
			report(i, t, "name is required")
		}
		if strings.TrimSpace(t.Vendor) == "" {
			report(i, t, "vendor is required")
		}
		if len(splitTags(t.Category)) == 0 {
			report(i, t, "category is required")
		}
		if t.ComplianceScore < 0 || t.ComplianceScore > 100 {
			report(i, t, "compliance_score %.1f out of range 0-100", t.ComplianceScore)
		}
		if len(t.TrustComponents) == 0 {
			report(i, t, "at least one trust component is required")
		}
		var weights float64
		for _, comp := range t.TrustComponents {
			if comp.Score < 0 || comp.Score > 100 {
				report(i, t, "trust component %q score %.1f out of range 0-100", comp.Name, comp.Score)
			}
			if comp.Weight < 0 {
				report(i, t, "trust component %q has negative weight", comp.Name)
			}
			weights += comp.Weight
		}
		if len(t.TrustComponents) > 0 && weights <= 0 {
			report(i, t, "trust component weights must sum to more than zero")
		}
		for _, rf := range t.RiskFactors {
			switch rf.Severity {
			case SeverityLow, SeverityMedium, SeverityHigh:
			default:
				report(i, t, "risk factor %q has unknown severity %q", rf.Name, rf.Severity)
			}
		}
	}
	return problems
}
