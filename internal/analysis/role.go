// Package analysis provides functionality to parse raw job-description text
// into a structured requirement set, role and seniority classification, and
// keyword inventories.
package analysis

import (
	"regexp"

	"github.com/jonathan/resume-optimizer/internal/types"
)

// rolePattern pairs a role type with its detection regex.
type rolePattern struct {
	role    types.RoleType
	pattern *regexp.Regexp
}

// rolePatterns is an ordered priority list, not a scored ensemble: the first
// matching pattern wins.
var rolePatterns = []rolePattern{
	{types.RoleBackend, regexp.MustCompile(`(?i)back[- ]?end|server[- ]side|api (developer|engineer)|distributed systems`)},
	{types.RoleFrontend, regexp.MustCompile(`(?i)front[- ]?end|ui engineer|react developer|web developer`)},
	{types.RoleFullStack, regexp.MustCompile(`(?i)full[- ]?stack`)},
	{types.RoleDevOps, regexp.MustCompile(`(?i)devops|site reliability|sre\b|platform engineer|infrastructure engineer`)},
	{types.RoleMLAI, regexp.MustCompile(`(?i)machine learning|\bml engineer|deep learning|\bai engineer|artificial intelligence|computer vision|nlp engineer`)},
	{types.RoleDataEngineer, regexp.MustCompile(`(?i)data engineer|data pipeline|etl developer|data warehouse|big data`)},
	{types.RoleMobile, regexp.MustCompile(`(?i)mobile (developer|engineer)|ios (developer|engineer)|android (developer|engineer)|react native|flutter`)},
}

// ClassifyRole classifies the role a job description targets. The first
// matching pattern in priority order wins; unmatched text is RoleGeneral.
func ClassifyRole(jdText string) types.RoleType {
	for _, rp := range rolePatterns {
		if rp.pattern.MatchString(jdText) {
			return rp.role
		}
	}
	return types.RoleGeneral
}
