// Package types provides type definitions for structured data used throughout the resume-optimizer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ResumeDocument represents a parsed resume. The optimizer receives it by
// value and returns a fully independent copy; the caller's document is never
// mutated in place.
type ResumeDocument struct {
	Name           string           `json:"name"`
	Email          string           `json:"email,omitempty"`
	Phone          string           `json:"phone,omitempty"`
	Location       string           `json:"location,omitempty"`
	Summary        string           `json:"summary,omitempty"`
	Experience     []WorkExperience `json:"experience"`
	Projects       []Project        `json:"projects,omitempty"`
	Skills         []SkillCategory  `json:"skills,omitempty"`
	Education      []Education      `json:"education,omitempty"`
	Certifications []Certification  `json:"certifications,omitempty"`
}

// WorkExperience represents a single employment entry with its bullet points.
type WorkExperience struct {
	Role    string   `json:"role"`
	Company string   `json:"company"`
	Period  string   `json:"period,omitempty"`
	Bullets []string `json:"bullets"`
}

// Project represents a personal or professional project entry.
type Project struct {
	Title   string   `json:"title"`
	Bullets []string `json:"bullets"`
}

// SkillCategory groups skills under a named category (e.g. "Languages").
type SkillCategory struct {
	Category string   `json:"category"`
	Items    []string `json:"items"`
}

// Education represents a single education entry.
type Education struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Period      string `json:"period,omitempty"`
}

// Certification represents a professional certification entry.
type Certification struct {
	Name   string `json:"name"`
	Issuer string `json:"issuer,omitempty"`
	Year   string `json:"year,omitempty"`
}

// Clone returns a deep copy of the document. Slices are reallocated so the
// copy shares no memory with the receiver.
func (r ResumeDocument) Clone() ResumeDocument {
	out := r

	out.Experience = make([]WorkExperience, len(r.Experience))
	for i, exp := range r.Experience {
		out.Experience[i] = exp
		out.Experience[i].Bullets = append([]string(nil), exp.Bullets...)
	}

	out.Projects = make([]Project, len(r.Projects))
	for i, proj := range r.Projects {
		out.Projects[i] = proj
		out.Projects[i].Bullets = append([]string(nil), proj.Bullets...)
	}

	out.Skills = make([]SkillCategory, len(r.Skills))
	for i, cat := range r.Skills {
		out.Skills[i] = cat
		out.Skills[i].Items = append([]string(nil), cat.Items...)
	}

	out.Education = append([]Education(nil), r.Education...)
	out.Certifications = append([]Certification(nil), r.Certifications...)

	return out
}

// AllBullets returns every bullet in the document in section order:
// experience entries first, then projects.
func (r ResumeDocument) AllBullets() []string {
	var bullets []string
	for _, exp := range r.Experience {
		bullets = append(bullets, exp.Bullets...)
	}
	for _, proj := range r.Projects {
		bullets = append(bullets, proj.Bullets...)
	}
	return bullets
}

// AllSkills returns every skill item across all categories.
func (r ResumeDocument) AllSkills() []string {
	var skills []string
	for _, cat := range r.Skills {
		skills = append(skills, cat.Items...)
	}
	return skills
}
