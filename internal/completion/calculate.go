// Package completion computes presence-based completeness scores for resume
// sections. Scoring is purely structural: a field counts when its trimmed
// value is non-empty. Format checks (email shape, URL parsing, date order)
// belong to the wizard's step validator, not here.
package completion

import (
	"math"

	"github.com/jonathan/resume-builder/internal/types"
)

// Section names, in the fixed evaluation order. The order is part of the
// contract so section-detail iteration is deterministic.
const (
	SectionPersonal       = "personal"
	SectionContact        = "contact"
	SectionExperience     = "experience"
	SectionEducation      = "education"
	SectionSkills         = "skills"
	SectionProjects       = "projects"
	SectionCertifications = "certifications"
	SectionAdditional     = "additional"
)

// SectionOrder lists all sections in evaluation order.
var SectionOrder = []string{
	SectionPersonal,
	SectionContact,
	SectionExperience,
	SectionEducation,
	SectionSkills,
	SectionProjects,
	SectionCertifications,
	SectionAdditional,
}

// Minimum field totals for list-backed sections. An empty collection is
// scored against its minimum expected size rather than dividing by zero, so
// an untouched section reads 0%, not vacuously complete.
const (
	minExperienceFields    = 5
	minEducationFields     = 4
	minSkillFields         = 3
	minProjectFields       = 4
	minCertificationFields = 3
)

// Calculate scores a resume snapshot and returns the full report. It is a
// pure function: same snapshot in, same report out, no I/O.
func Calculate(r *types.Resume) *types.CompletionReport {
	report := &types.CompletionReport{
		SectionDetails: make(map[string]types.SectionDetail, len(SectionOrder)),
	}

	for _, section := range SectionOrder {
		completed, total := countSection(r, section)
		report.SectionDetails[section] = types.SectionDetail{
			Completed:  completed,
			Total:      total,
			Percentage: percent(completed, total),
		}
		report.CompletedFields += completed
		report.TotalFields += total
	}

	report.Percentage = percent(report.CompletedFields, report.TotalFields)
	return report
}

// SectionCompletion returns a single section's percentage. Unknown section
// names score 0. This is a thin projection over Calculate for UI components
// that only need one number.
func SectionCompletion(r *types.Resume, section string) int {
	return Calculate(r).SectionDetails[section].Percentage
}

// StepCompletionLevels flattens a report into per-step levels for dashboard
// cards and wizard progress bars.
func StepCompletionLevels(r *types.Resume) types.StepLevels {
	report := Calculate(r)
	details := report.SectionDetails
	return types.StepLevels{
		Personal:       details[SectionPersonal].Percentage,
		Contact:        details[SectionContact].Percentage,
		Experience:     details[SectionExperience].Percentage,
		Education:      details[SectionEducation].Percentage,
		Skills:         details[SectionSkills].Percentage,
		Projects:       details[SectionProjects].Percentage,
		Certifications: details[SectionCertifications].Percentage,
		Additional:     details[SectionAdditional].Percentage,
		Overall:        report.Percentage,
	}
}

func countSection(r *types.Resume, section string) (completed, total int) {
	switch section {
	case SectionPersonal:
		return countFilled(r.FullName, r.Designation, r.Summary), 3
	case SectionContact:
		return countFilled(r.Address, r.Email, r.Phone, r.LinkedIn, r.GitHub, r.Portfolio), 6
	case SectionExperience:
		total = atLeast(len(r.Experience)*5, minExperienceFields)
		for _, exp := range r.Experience {
			completed += countFilled(exp.Company, exp.Role, exp.StartDate, exp.EndDate, exp.Description)
		}
		return completed, total
	case SectionEducation:
		total = atLeast(len(r.Education)*4, minEducationFields)
		for _, edu := range r.Education {
			completed += countFilled(edu.Degree, edu.Institute, edu.StartDate, edu.EndDate)
		}
		return completed, total
	case SectionSkills:
		return countFilled(r.Skills...), atLeast(len(r.Skills), minSkillFields)
	case SectionProjects:
		total = atLeast(len(r.Projects)*4, minProjectFields)
		for _, proj := range r.Projects {
			completed += countFilled(proj.Title, proj.Description, proj.GitHub, proj.Live)
		}
		return completed, total
	case SectionCertifications:
		total = atLeast(len(r.Certifications)*3, minCertificationFields)
		for _, cert := range r.Certifications {
			completed += countFilled(cert.Title, cert.Year, cert.Link)
		}
		return completed, total
	case SectionAdditional:
		// One point for having any language, one for having any interest.
		if countFilled(r.Languages...) > 0 {
			completed++
		}
		if countFilled(r.Interests...) > 0 {
			completed++
		}
		return completed, 2
	}
	return 0, 0
}

func countFilled(values ...string) int {
	n := 0
	for _, v := range values {
		if types.Filled(v) {
			n++
		}
	}
	return n
}

func atLeast(n, minimum int) int {
	if n < minimum {
		return minimum
	}
	return n
}

// percent rounds half-up to the nearest integer. Totals are never zero for
// known sections because of the minimum floors.
func percent(completed, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}
