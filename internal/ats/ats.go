// Package ats simulates how an applicant tracking system parses a resume
// document. The simulation is a fixed set of deterministic structural checks;
// it makes no network calls and renders no documents.
package ats

import (
	"fmt"
	"regexp"

	"github.com/jonathan/resume-optimizer/internal/types"
)

// Check names reported in the simulation result.
const (
	CheckEmail    = "email"
	CheckPhone    = "phone"
	CheckName     = "name"
	CheckSections = "sections"
	CheckDates    = "dates"
	CheckSkills   = "skills"
)

const (
	totalChecks = 6

	// minSections is the number of recognized section types a resume needs
	// before most ATS parsers stop treating it as free text.
	minSections = 3
)

var (
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	phonePattern = regexp.MustCompile(`^\+?[\d\s().-]{7,}$`)

	// datePattern matches the period formats resumes commonly carry:
	// "2020-2023", "Jan 2020 - Present", "03/2021".
	datePattern = regexp.MustCompile(`(?i)\b(19|20)\d{2}\b|\b\d{1,2}/\d{4}\b|\bpresent\b`)
)

// Simulate runs all parsing checks against the document and returns the
// aggregate result. Score is the fraction of passed checks scaled to 100;
// ParsedSuccessfully requires every check to pass.
func Simulate(doc types.ResumeDocument) types.ATSSimulationResult {
	sections := sectionsFound(doc)

	checks := []types.ATSCheck{
		checkEmail(doc),
		checkPhone(doc),
		checkName(doc),
		checkSections(sections),
		checkDates(doc),
		checkSkills(doc),
	}

	passed := 0
	for _, c := range checks {
		if c.Passed {
			passed++
		}
	}

	return types.ATSSimulationResult{
		Score:              float64(passed) / totalChecks * 100,
		ParsedSuccessfully: passed == totalChecks,
		Checks:             checks,
		SectionsFound:      sections,
	}
}

func checkEmail(doc types.ResumeDocument) types.ATSCheck {
	check := types.ATSCheck{Name: CheckEmail}
	switch {
	case doc.Email == "":
		check.Detail = "no email address found"
	case !emailPattern.MatchString(doc.Email):
		check.Detail = fmt.Sprintf("email %q does not parse as an address", doc.Email)
	default:
		check.Passed = true
	}
	return check
}

func checkPhone(doc types.ResumeDocument) types.ATSCheck {
	check := types.ATSCheck{Name: CheckPhone}
	switch {
	case doc.Phone == "":
		check.Detail = "no phone number found"
	case !phonePattern.MatchString(doc.Phone):
		check.Detail = fmt.Sprintf("phone %q does not parse as a number", doc.Phone)
	default:
		check.Passed = true
	}
	return check
}

func checkName(doc types.ResumeDocument) types.ATSCheck {
	check := types.ATSCheck{Name: CheckName}
	if doc.Name == "" {
		check.Detail = "no candidate name found"
		return check
	}
	check.Passed = true
	return check
}

func checkSections(sections []string) types.ATSCheck {
	check := types.ATSCheck{Name: CheckSections}
	if len(sections) < minSections {
		check.Detail = fmt.Sprintf("only %d recognized sections, need at least %d", len(sections), minSections)
		return check
	}
	check.Passed = true
	return check
}

func checkDates(doc types.ResumeDocument) types.ATSCheck {
	check := types.ATSCheck{Name: CheckDates}
	for _, exp := range doc.Experience {
		if datePattern.MatchString(exp.Period) {
			check.Passed = true
			return check
		}
	}
	for _, edu := range doc.Education {
		if datePattern.MatchString(edu.Period) {
			check.Passed = true
			return check
		}
	}
	check.Detail = "no parseable dates in experience or education"
	return check
}

func checkSkills(doc types.ResumeDocument) types.ATSCheck {
	check := types.ATSCheck{Name: CheckSkills}
	if len(doc.AllSkills()) == 0 {
		check.Detail = "skills section is empty"
		return check
	}
	check.Passed = true
	return check
}

func sectionsFound(doc types.ResumeDocument) []string {
	var sections []string
	if len(doc.Experience) > 0 {
		sections = append(sections, "Experience")
	}
	if len(doc.Education) > 0 {
		sections = append(sections, "Education")
	}
	if len(doc.Skills) > 0 {
		sections = append(sections, "Skills")
	}
	if len(doc.Projects) > 0 {
		sections = append(sections, "Projects")
	}
	if len(doc.Certifications) > 0 {
		sections = append(sections, "Certifications")
	}
	return sections
}
