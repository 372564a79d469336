package wizard

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/resume-builder/internal/types"
)

// validate is the shared struct-less validator used for email and URL checks.
var validate = validator.New()

// sectionValidator checks one section of a resume snapshot. Implementations
// are pure: they never mutate the resume and never perform I/O.
type sectionValidator func(*types.Resume) types.ValidationResult

var sectionValidators = map[Section]sectionValidator{
	SectionPersonal:       validatePersonal,
	SectionContact:        validateContact,
	SectionExperience:     validateExperience,
	SectionEducation:      validateEducation,
	SectionProjects:       validateProjects,
	SectionCertifications: validateCertifications,
	SectionSkills:         validateSkills,
	SectionAdditional:     validateAdditional,
}

// Validate runs the section's checks against a resume snapshot. Unknown
// sections are treated as valid so callers can gate only on known steps.
func Validate(section Section, r *types.Resume) types.ValidationResult {
	if fn, ok := sectionValidators[section]; ok {
		return fn(r)
	}
	return types.Valid()
}

func validatePersonal(r *types.Resume) types.ValidationResult {
	var errs []string

	if !types.Filled(r.FullName) {
		errs = append(errs, "Full Name is required")
	}
	if !types.Filled(r.Designation) {
		errs = append(errs, "Designation is required")
	}
	if !types.Filled(r.Summary) {
		errs = append(errs, "Summary is required")
	}

	return result(errs)
}

func validateContact(r *types.Resume) types.ValidationResult {
	var errs []string

	if !types.Filled(r.Email) {
		errs = append(errs, "Email is required")
	} else if validate.Var(r.Email, "email") != nil {
		errs = append(errs, "Valid email is required")
	}

	if !types.Filled(r.Phone) {
		errs = append(errs, "Phone number is required")
	} else if n := len(digitsOnly(r.Phone)); n < 10 || n > 15 {
		errs = append(errs, "Valid phone number is required (10-15 digits)")
	}

	return result(errs)
}

func validateExperience(r *types.Resume) types.ValidationResult {
	if len(r.Experience) == 0 {
		return types.Invalid([]string{"At least one work experience is required"})
	}

	var errs []string
	for i, exp := range r.Experience {
		n := i + 1
		if !types.Filled(exp.Company) {
			errs = append(errs, fmt.Sprintf("Company is required in experience %d", n))
		}
		if !types.Filled(exp.Role) {
			errs = append(errs, fmt.Sprintf("Role is required in experience %d", n))
		}
		if !types.Filled(exp.StartDate) {
			errs = append(errs, fmt.Sprintf("Start date is required in experience %d", n))
		}
		if !types.Filled(exp.EndDate) {
			errs = append(errs, fmt.Sprintf("End date is required in experience %d", n))
		}
		if !types.Filled(exp.Description) {
			errs = append(errs, fmt.Sprintf("Description is required in experience %d", n))
		}
		if !datesOrdered(exp.StartDate, exp.EndDate) {
			errs = append(errs, fmt.Sprintf("End date must be after start date in experience %d", n))
		}
	}

	return result(errs)
}

func validateEducation(r *types.Resume) types.ValidationResult {
	if len(r.Education) == 0 {
		return types.Invalid([]string{"At least one education entry is required"})
	}

	var errs []string
	for i, edu := range r.Education {
		n := i + 1
		if !types.Filled(edu.Degree) {
			errs = append(errs, fmt.Sprintf("Degree is required in education %d", n))
		}
		if !types.Filled(edu.Institute) {
			errs = append(errs, fmt.Sprintf("Institution is required in education %d", n))
		}
		if !types.Filled(edu.StartDate) {
			errs = append(errs, fmt.Sprintf("Start date is required in education %d", n))
		}
		if !types.Filled(edu.EndDate) {
			errs = append(errs, fmt.Sprintf("End date is required in education %d", n))
		}
		if !datesOrdered(edu.StartDate, edu.EndDate) {
			errs = append(errs, fmt.Sprintf("End date must be after start date in education %d", n))
		}
	}

	return result(errs)
}

func validateProjects(r *types.Resume) types.ValidationResult {
	if len(r.Projects) == 0 {
		return types.Invalid([]string{"At least one project is required"})
	}

	var errs []string
	for i, proj := range r.Projects {
		n := i + 1
		if !types.Filled(proj.Title) {
			errs = append(errs, fmt.Sprintf("Project title is required in project %d", n))
		}
		if !types.Filled(proj.Description) {
			errs = append(errs, fmt.Sprintf("Project description is required in project %d", n))
		}
		if types.Filled(proj.GitHub) && validate.Var(proj.GitHub, "url") != nil {
			errs = append(errs, fmt.Sprintf("Valid GitHub URL is required in project %d", n))
		}
		if types.Filled(proj.Live) && validate.Var(proj.Live, "url") != nil {
			errs = append(errs, fmt.Sprintf("Valid live demo URL is required in project %d", n))
		}
		if !datesOrdered(proj.StartDate, proj.EndDate) {
			errs = append(errs, fmt.Sprintf("End date must be after start date in project %d", n))
		}
	}

	return result(errs)
}

func validateCertifications(r *types.Resume) types.ValidationResult {
	// No certification is mandatory, but any entry present must be sound.
	var errs []string
	for i, cert := range r.Certifications {
		n := i + 1
		if !types.Filled(cert.Title) {
			errs = append(errs, fmt.Sprintf("Certification title is required in certification %d", n))
		}
		if types.Filled(cert.Year) && !validYear(cert.Year) {
			errs = append(errs, fmt.Sprintf("Valid year is required in certification %d", n))
		}
		if types.Filled(cert.Link) && validate.Var(cert.Link, "url") != nil {
			errs = append(errs, fmt.Sprintf("Valid certificate URL is required in certification %d", n))
		}
	}

	return result(errs)
}

func validateSkills(r *types.Resume) types.ValidationResult {
	filled := 0
	for _, skill := range r.Skills {
		if types.Filled(skill) {
			filled++
		}
	}
	if filled < 4 {
		return types.Invalid([]string{"At least four skills are required"})
	}
	return types.Valid()
}

func validateAdditional(r *types.Resume) types.ValidationResult {
	var errs []string

	hasLanguage := false
	for _, lang := range r.Languages {
		if types.Filled(lang) {
			hasLanguage = true
			break
		}
	}
	if !hasLanguage {
		errs = append(errs, "At least one language is required")
	}

	hasInterest := false
	for _, interest := range r.Interests {
		if types.Filled(interest) {
			hasInterest = true
			break
		}
	}
	if !hasInterest {
		errs = append(errs, "At least one interest is required")
	}

	return result(errs)
}

func result(errs []string) types.ValidationResult {
	if len(errs) > 0 {
		return types.Invalid(errs)
	}
	return types.Valid()
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// dateLayouts are tried in order when parsing entry dates.
var dateLayouts = []string{"2006-01-02", "2006-01", "2006", time.RFC3339}

func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// datesOrdered reports whether start is strictly before end. The check only
// applies when both values are present and parseable; anything else passes
// so the presence checks above stay the single source of "required" errors.
func datesOrdered(start, end string) bool {
	if !types.Filled(start) || !types.Filled(end) {
		return true
	}
	s, okS := parseDate(start)
	e, okE := parseDate(end)
	if !okS || !okE {
		return true
	}
	return s.Before(e)
}

func validYear(s string) bool {
	year, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return false
	}
	return year >= 1900 && year <= time.Now().Year()+10
}
