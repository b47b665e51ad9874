package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-optimizer/internal/types"
)

const backendJD = `Senior Backend Engineer

We are looking for a senior backend engineer with 5+ years of experience.
Must have strong experience with AWS, Docker, and PostgreSQL.
Experience with Kubernetes is preferred.
Bachelor's degree in Computer Science or a related field.
Excellent communication and collaboration skills required.`

func TestAnalyzeBackendJD(t *testing.T) {
	analysis := Analyze(backendJD)

	assert.Equal(t, types.RoleBackend, analysis.RoleType)
	assert.Equal(t, types.SenioritySenior, analysis.SeniorityLevel)
	assert.Contains(t, analysis.HardSkills, "aws")
	assert.Contains(t, analysis.HardSkills, "docker")
	assert.Contains(t, analysis.HardSkills, "postgresql")
	assert.Contains(t, analysis.SoftSkills, "communication")
	assert.NotEmpty(t, analysis.Requirements)
	assert.NotEmpty(t, analysis.EducationRequirements)
}

func TestAnalyzeEmptyInput(t *testing.T) {
	analysis := Analyze("")

	assert.Equal(t, types.RoleGeneral, analysis.RoleType)
	assert.Equal(t, types.SeniorityMid, analysis.SeniorityLevel)
	assert.Empty(t, analysis.Requirements)
	assert.Empty(t, analysis.Keywords)
	assert.Empty(t, analysis.HardSkills)
}

func TestAnalyzeNoRoleCues(t *testing.T) {
	analysis := Analyze("We want someone great to join our wonderful company and do excellent work.")
	assert.Equal(t, types.RoleGeneral, analysis.RoleType)
	assert.Equal(t, types.SeniorityMid, analysis.SeniorityLevel)
}

func TestClassifyRole(t *testing.T) {
	tests := []struct {
		name     string
		jd       string
		expected types.RoleType
	}{
		{"Backend", "Backend engineer for our API platform", types.RoleBackend},
		{"Frontend", "Front-end developer with React", types.RoleFrontend},
		{"FullStack", "Full stack developer needed", types.RoleFullStack},
		{"DevOps", "DevOps engineer to own our CI", types.RoleDevOps},
		{"SRE is DevOps", "Site reliability engineer", types.RoleDevOps},
		{"MLAI", "Machine learning engineer", types.RoleMLAI},
		{"DataEngineer", "Data engineer to build ETL", types.RoleDataEngineer},
		{"Mobile", "iOS developer for our app", types.RoleMobile},
		{"General", "Software person wanted", types.RoleGeneral},
		{"Priority: backend beats fullstack mention", "Backend engineer, full stack exposure a plus", types.RoleBackend},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClassifyRole(tt.jd))
		})
	}
}

func TestClassifySeniority(t *testing.T) {
	tests := []struct {
		name     string
		jd       string
		expected types.SeniorityLevel
	}{
		{"Principal keyword", "Principal engineer role", types.SeniorityPrincipal},
		{"Staff maps to principal", "Staff engineer, distributed systems", types.SeniorityPrincipal},
		{"Lead keyword", "Tech lead for payments team", types.SeniorityLead},
		{"Senior keyword", "Senior software engineer", types.SenioritySenior},
		{"Junior keyword", "Junior developer, great mentorship", types.SeniorityJunior},
		{"Principal beats senior", "Principal engineer mentoring senior engineers", types.SeniorityPrincipal},
		{"8 years is lead", "Requires 8+ years of experience", types.SeniorityLead},
		{"5 years is senior", "5+ years of experience required", types.SenioritySenior},
		{"3 years is mid", "3 years of experience", types.SeniorityMid},
		{"1 year is junior", "1+ years experience", types.SeniorityJunior},
		{"Largest figure wins", "2+ years with Go, 9+ years engineering overall", types.SeniorityLead},
		{"No signal defaults to mid", "Engineer wanted for exciting work", types.SeniorityMid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClassifySeniority(tt.jd))
		})
	}
}

func TestSplitSentences(t *testing.T) {
	sentences := SplitSentences("First sentence here. Too short! Another good sentence?\nA line-based sentence")
	require.Len(t, sentences, 3)
	assert.Equal(t, "First sentence here", sentences[0])
	assert.Equal(t, "Another good sentence", sentences[1])
	assert.Equal(t, "A line-based sentence", sentences[2])
}

func TestExtractRequirements(t *testing.T) {
	requirements := ExtractRequirements(backendJD)
	require.NotEmpty(t, requirements)

	var foundCritical, foundNiceToHave bool
	for _, req := range requirements {
		require.NotEmpty(t, req.Keywords, "every requirement must carry at least one keyword")
		switch req.Priority {
		case types.PriorityCritical:
			foundCritical = true
		case types.PriorityNiceToHave:
			foundNiceToHave = true
		}
	}
	assert.True(t, foundCritical, "\"must have\" sentence should be critical")
	assert.True(t, foundNiceToHave, "\"preferred\" sentence should be nice-to-have")
}

func TestRequirementCategories(t *testing.T) {
	tests := []struct {
		name     string
		sentence string
		expected types.RequirementCategory
	}{
		{"Certification", "AWS certified solutions architect certification required", types.CategoryCertification},
		{"Education", "Bachelor's degree in Computer Science required", types.CategoryEducation},
		{"Experience", "5+ years of experience with Python", types.CategoryExperience},
		{"Soft skill", "Strong communication and leadership abilities", types.CategorySoftSkill},
		{"Skill fallback", "Proficiency with Docker and Kubernetes", types.CategorySkill},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, classifyCategory(tt.sentence))
		})
	}
}

func TestKeywordContextsSortedByFrequency(t *testing.T) {
	analysis := Analyze("Docker Docker Docker. Kubernetes Kubernetes. Python.")
	require.GreaterOrEqual(t, len(analysis.Keywords), 3)
	assert.Equal(t, "docker", analysis.Keywords[0].Keyword)
	assert.Equal(t, 3, analysis.Keywords[0].Frequency)
	assert.Equal(t, "kubernetes", analysis.Keywords[1].Keyword)
}

func TestExtractProjectTypes(t *testing.T) {
	projectTypes := extractProjectTypes("Greenfield build with a legacy migration component and real-time processing")
	assert.Contains(t, projectTypes, "greenfield development")
	assert.Contains(t, projectTypes, "legacy modernization")
	assert.Contains(t, projectTypes, "real-time systems")
}
