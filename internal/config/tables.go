package config

import (
	"strings"

	"github.com/jonathan/resume-optimizer/internal/types"
)

// VerbMatrix maps role and seniority to the strong action verbs the rewriter
// may open a bullet with. It is tuned data, versioned with the repo, and can
// be overridden from a JSON tables file.
type VerbMatrix map[types.RoleType]map[types.SeniorityLevel][]string

// VerbsFor returns the verb list for a role/seniority pair, falling back to
// the general role and then the mid level so lookups never come back empty.
func (m VerbMatrix) VerbsFor(role types.RoleType, seniority types.SeniorityLevel) []string {
	bySeniority, ok := m[role]
	if !ok {
		bySeniority = m[types.RoleGeneral]
	}
	if verbs, ok := bySeniority[seniority]; ok && len(verbs) > 0 {
		return verbs
	}
	return bySeniority[types.SeniorityMid]
}

// Contains reports whether verb is in the role/seniority list, case-insensitive.
func (m VerbMatrix) Contains(role types.RoleType, seniority types.SeniorityLevel, verb string) bool {
	for _, v := range m.VerbsFor(role, seniority) {
		if strings.EqualFold(v, verb) {
			return true
		}
	}
	return false
}

// defaultVerbMatrix is the built-in 7 roles × 5 seniority levels verb matrix.
// Junior levels get contribution verbs, senior levels get ownership and
// leadership verbs.
func defaultVerbMatrix() VerbMatrix {
	return VerbMatrix{
		types.RoleBackend: {
			types.SeniorityJunior:    {"Developed", "Implemented", "Built", "Contributed"},
			types.SeniorityMid:       {"Developed", "Engineered", "Optimized", "Implemented", "Automated"},
			types.SenioritySenior:    {"Architected", "Spearheaded", "Led", "Designed", "Established", "Mentored", "Scaled"},
			types.SeniorityLead:      {"Led", "Architected", "Directed", "Established", "Drove", "Mentored"},
			types.SeniorityPrincipal: {"Architected", "Pioneered", "Directed", "Championed", "Transformed"},
		},
		types.RoleFrontend: {
			types.SeniorityJunior:    {"Developed", "Built", "Implemented", "Created"},
			types.SeniorityMid:       {"Developed", "Engineered", "Optimized", "Redesigned", "Modernized"},
			types.SenioritySenior:    {"Architected", "Led", "Designed", "Spearheaded", "Overhauled", "Mentored"},
			types.SeniorityLead:      {"Led", "Directed", "Established", "Drove", "Standardized"},
			types.SeniorityPrincipal: {"Architected", "Pioneered", "Championed", "Transformed", "Defined"},
		},
		types.RoleFullStack: {
			types.SeniorityJunior:    {"Developed", "Built", "Implemented", "Delivered"},
			types.SeniorityMid:       {"Developed", "Engineered", "Integrated", "Shipped", "Optimized"},
			types.SenioritySenior:    {"Architected", "Led", "Designed", "Spearheaded", "Delivered", "Mentored"},
			types.SeniorityLead:      {"Led", "Architected", "Directed", "Coordinated", "Drove"},
			types.SeniorityPrincipal: {"Architected", "Pioneered", "Directed", "Championed", "Unified"},
		},
		types.RoleDevOps: {
			types.SeniorityJunior:    {"Automated", "Configured", "Maintained", "Implemented"},
			types.SeniorityMid:       {"Automated", "Streamlined", "Provisioned", "Hardened", "Optimized"},
			types.SenioritySenior:    {"Architected", "Led", "Automated", "Spearheaded", "Standardized", "Mentored"},
			types.SeniorityLead:      {"Led", "Architected", "Directed", "Established", "Drove"},
			types.SeniorityPrincipal: {"Architected", "Pioneered", "Transformed", "Championed", "Defined"},
		},
		types.RoleMLAI: {
			types.SeniorityJunior:    {"Developed", "Trained", "Implemented", "Evaluated"},
			types.SeniorityMid:       {"Developed", "Engineered", "Trained", "Deployed", "Optimized"},
			types.SenioritySenior:    {"Architected", "Led", "Designed", "Productionized", "Spearheaded", "Mentored"},
			types.SeniorityLead:      {"Led", "Architected", "Directed", "Established", "Drove"},
			types.SeniorityPrincipal: {"Architected", "Pioneered", "Directed", "Championed", "Advanced"},
		},
		types.RoleDataEngineer: {
			types.SeniorityJunior:    {"Developed", "Built", "Maintained", "Implemented"},
			types.SeniorityMid:       {"Developed", "Engineered", "Automated", "Optimized", "Migrated"},
			types.SenioritySenior:    {"Architected", "Led", "Designed", "Scaled", "Spearheaded", "Mentored"},
			types.SeniorityLead:      {"Led", "Architected", "Directed", "Established", "Drove"},
			types.SeniorityPrincipal: {"Architected", "Pioneered", "Directed", "Championed", "Unified"},
		},
		types.RoleMobile: {
			types.SeniorityJunior:    {"Developed", "Built", "Implemented", "Shipped"},
			types.SeniorityMid:       {"Developed", "Engineered", "Optimized", "Shipped", "Launched"},
			types.SenioritySenior:    {"Architected", "Led", "Designed", "Launched", "Spearheaded", "Mentored"},
			types.SeniorityLead:      {"Led", "Architected", "Directed", "Established", "Drove"},
			types.SeniorityPrincipal: {"Architected", "Pioneered", "Directed", "Championed", "Transformed"},
		},
		types.RoleGeneral: {
			types.SeniorityJunior:    {"Developed", "Built", "Implemented", "Delivered"},
			types.SeniorityMid:       {"Developed", "Engineered", "Improved", "Delivered", "Optimized"},
			types.SenioritySenior:    {"Led", "Designed", "Spearheaded", "Established", "Mentored"},
			types.SeniorityLead:      {"Led", "Directed", "Established", "Coordinated", "Drove"},
			types.SeniorityPrincipal: {"Architected", "Pioneered", "Directed", "Championed", "Transformed"},
		},
	}
}

// WeakOpeners are openers the generator replaces with a matrix verb. Longer
// phrases come first so "was responsible for" is stripped before "was".
var WeakOpeners = []string{
	"was responsible for",
	"were responsible for",
	"responsible for",
	"participated in",
	"was involved in",
	"involved in",
	"assisted with",
	"assisted in",
	"helped with",
	"helped to",
	"helped",
	"worked on",
	"worked with",
	"worked",
	"tasked with",
	"contributed to",
	"assisted",
}
