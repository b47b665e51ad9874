// Package applying merges validated bullet rewrites back into a resume
// document and augments its skills and summary sections to cover gaps
// identified during job-description analysis.
package applying

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-optimizer/internal/config"
	"github.com/jonathan/resume-optimizer/internal/rewriting"
	"github.com/jonathan/resume-optimizer/internal/types"
)

const (
	maxHardSkillAdditions = 5
	maxSoftSkillAdditions = 3

	hardSkillCategory = "Technical Skills"
	softSkillCategory = "Soft Skills"
)

// roleEmphasis maps each role to the terms a summary should mention for that
// role and the clause appended when none of them appear.
var roleEmphasis = map[types.RoleType]struct {
	terms  []string
	clause string
}{
	types.RoleBackend:      {[]string{"backend", "api", "server", "distributed"}, "with a focus on backend systems and APIs"},
	types.RoleFrontend:     {[]string{"frontend", "ui", "react", "user interface"}, "with a focus on frontend development and user interfaces"},
	types.RoleFullStack:    {[]string{"full stack", "full-stack", "fullstack", "end-to-end"}, "with experience across the full stack"},
	types.RoleDevOps:       {[]string{"devops", "infrastructure", "ci/cd", "deployment"}, "with a focus on infrastructure and deployment automation"},
	types.RoleMLAI:         {[]string{"machine learning", "ml", "ai", "model"}, "with a focus on machine learning systems"},
	types.RoleDataEngineer: {[]string{"data", "pipeline", "etl", "warehouse"}, "with a focus on data pipelines and platforms"},
	types.RoleMobile:       {[]string{"mobile", "ios", "android", "app"}, "with a focus on mobile application development"},
}

// Applier merges rewrites into a resume copy under the acceptance rules
// configured at construction.
type Applier struct {
	analysis *types.JDAnalysis
	floor    float64
}

// New returns an Applier for the given analysis using the configured
// similarity floor for best-effort rewrites.
func New(analysis *types.JDAnalysis, cfg config.Config) *Applier {
	return &Applier{
		analysis: analysis,
		floor:    cfg.Thresholds.ApplyFloor,
	}
}

// Apply returns a new document with every accepted rewrite merged in and the
// skills and summary sections augmented. The input document is never mutated.
//
// A rewrite is accepted when it passed validation, or when its semantic
// similarity to the original bullet is still at or above the configured
// floor. Rewrites below the floor have drifted too far and keep the original
// bullet text.
func (a *Applier) Apply(original types.ResumeDocument, rewrites []types.RewrittenBullet) types.ResumeDocument {
	out := original.Clone()

	for _, rw := range rewrites {
		if !a.accept(rw) {
			continue
		}
		switch rw.Section {
		case rewriting.SectionExperience:
			if rw.SectionIndex < len(out.Experience) && rw.BulletIndex < len(out.Experience[rw.SectionIndex].Bullets) {
				out.Experience[rw.SectionIndex].Bullets[rw.BulletIndex] = rw.Rewritten
			}
		case rewriting.SectionProject:
			if rw.SectionIndex < len(out.Projects) && rw.BulletIndex < len(out.Projects[rw.SectionIndex].Bullets) {
				out.Projects[rw.SectionIndex].Bullets[rw.BulletIndex] = rw.Rewritten
			}
		}
	}

	a.augmentSkills(&out)
	a.augmentSummary(&out)

	return out
}

func (a *Applier) accept(rw types.RewrittenBullet) bool {
	if rw.Validation.Passed {
		return true
	}
	return rw.SemanticSimilarity >= a.floor
}

// augmentSkills adds job-required skills missing from the document. Hard
// skills go into a "Technical Skills" category, created when absent; soft
// skills into a "Soft Skills" category. Additions are capped so a sparse
// resume is not flooded with unfamiliar terms.
func (a *Applier) augmentSkills(doc *types.ResumeDocument) {
	present := make(map[string]bool)
	for _, skill := range doc.AllSkills() {
		present[strings.ToLower(skill)] = true
	}

	hard := missingFrom(a.analysis.HardSkills, present, maxHardSkillAdditions)
	soft := missingFrom(a.analysis.SoftSkills, present, maxSoftSkillAdditions)

	if len(hard) > 0 {
		addToCategory(doc, hardSkillCategory, hard)
	}
	if len(soft) > 0 {
		addToCategory(doc, softSkillCategory, soft)
	}
}

func missingFrom(required []string, present map[string]bool, limit int) []string {
	var missing []string
	for _, skill := range required {
		if present[strings.ToLower(skill)] {
			continue
		}
		missing = append(missing, skill)
		if len(missing) == limit {
			break
		}
	}
	return missing
}

func addToCategory(doc *types.ResumeDocument, category string, items []string) {
	for i, cat := range doc.Skills {
		if strings.EqualFold(cat.Category, category) {
			doc.Skills[i].Items = append(doc.Skills[i].Items, items...)
			return
		}
	}
	doc.Skills = append(doc.Skills, types.SkillCategory{Category: category, Items: items})
}

// augmentSummary appends a role-context clause when the existing summary
// never mentions any of the target role's emphasis terms. Empty summaries
// are left alone; inventing a summary from nothing is the caller's call.
func (a *Applier) augmentSummary(doc *types.ResumeDocument) {
	if doc.Summary == "" {
		return
	}
	emphasis, ok := roleEmphasis[a.analysis.RoleType]
	if !ok {
		return
	}

	lower := strings.ToLower(doc.Summary)
	for _, term := range emphasis.terms {
		if strings.Contains(lower, term) {
			return
		}
	}

	summary := strings.TrimRight(strings.TrimSpace(doc.Summary), ".")
	doc.Summary = fmt.Sprintf("%s, %s.", summary, emphasis.clause)
}
