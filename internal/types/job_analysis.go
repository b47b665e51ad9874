// Package types provides type definitions for structured data used throughout the resume-optimizer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// RoleType classifies the engineering discipline a job description targets.
type RoleType string

// Role types, in classifier priority order.
const (
	RoleBackend      RoleType = "backend"
	RoleFrontend     RoleType = "frontend"
	RoleFullStack    RoleType = "fullstack"
	RoleDevOps       RoleType = "devops"
	RoleMLAI         RoleType = "ml_ai"
	RoleDataEngineer RoleType = "data_engineer"
	RoleMobile       RoleType = "mobile"
	RoleGeneral      RoleType = "general"
)

// SeniorityLevel classifies the experience level a job description targets.
type SeniorityLevel string

// Seniority levels, junior to principal.
const (
	SeniorityJunior    SeniorityLevel = "junior"
	SeniorityMid       SeniorityLevel = "mid"
	SenioritySenior    SeniorityLevel = "senior"
	SeniorityLead      SeniorityLevel = "lead"
	SeniorityPrincipal SeniorityLevel = "principal"
)

// RequirementCategory describes what kind of requirement a JD sentence expresses.
type RequirementCategory string

// Requirement categories.
const (
	CategorySkill         RequirementCategory = "skill"
	CategoryExperience    RequirementCategory = "experience"
	CategoryEducation     RequirementCategory = "education"
	CategoryCertification RequirementCategory = "certification"
	CategorySoftSkill     RequirementCategory = "soft_skill"
)

// RequirementPriority describes how strongly a JD sentence demands a requirement.
type RequirementPriority string

// Requirement priorities.
const (
	PriorityCritical   RequirementPriority = "critical"
	PriorityImportant  RequirementPriority = "important"
	PriorityNiceToHave RequirementPriority = "nice_to_have"
)

// Requirement represents one structured requirement extracted from a JD sentence.
type Requirement struct {
	Text     string              `json:"text"`
	Category RequirementCategory `json:"category"`
	Priority RequirementPriority `json:"priority"`
	Keywords []string            `json:"keywords"`
}

// KeywordContext represents a technical keyword found in the JD with its
// frequency and coarse classification bucket.
type KeywordContext struct {
	Keyword   string `json:"keyword"`
	Frequency int    `json:"frequency"`
	Bucket    string `json:"bucket,omitempty"`
}

// JDAnalysis is the structured result of analyzing a raw job description.
// It is derived once per optimize call and immutable thereafter.
type JDAnalysis struct {
	Requirements          []Requirement    `json:"requirements"`
	Keywords              []KeywordContext `json:"keywords"`
	RoleType              RoleType         `json:"role_type"`
	SeniorityLevel        SeniorityLevel   `json:"seniority_level"`
	HardSkills            []string         `json:"hard_skills"`
	SoftSkills            []string         `json:"soft_skills"`
	Certifications        []string         `json:"certifications,omitempty"`
	EducationRequirements []string         `json:"education_requirements,omitempty"`
	ProjectTypes          []string         `json:"project_types,omitempty"`
}

// KeywordList returns the plain keyword strings, in frequency order.
func (a *JDAnalysis) KeywordList() []string {
	out := make([]string, 0, len(a.Keywords))
	for _, kc := range a.Keywords {
		out = append(out, kc.Keyword)
	}
	return out
}
