// Package wizard implements the eight-step resume editing flow: per-section
// validation that gates forward navigation, and the progression write that
// happens only after a section validates cleanly.
//
// Validation here is stricter than completion scoring: it is format-aware
// (email shape, phone digit count, URL parseability, date ordering) where the
// completion evaluator only checks presence.
package wizard

import "fmt"

// Section identifies one wizard step. The set is closed: adding a section
// means adding one constant, one entry in StepOrder, and one validator in
// sectionValidators.
type Section string

// The eight wizard sections.
const (
	SectionPersonal       Section = "personal"
	SectionContact        Section = "contact"
	SectionExperience     Section = "experience"
	SectionEducation      Section = "education"
	SectionProjects       Section = "projects"
	SectionCertifications Section = "certifications"
	SectionSkills         Section = "skills"
	SectionAdditional     Section = "additional"
)

// StepOrder is the wizard's navigation order, from first to terminal step.
// Note it differs from the evaluator's scoring order: projects and
// certifications are edited before skills.
var StepOrder = []Section{
	SectionPersonal,
	SectionContact,
	SectionExperience,
	SectionEducation,
	SectionProjects,
	SectionCertifications,
	SectionSkills,
	SectionAdditional,
}

// ParseSection converts a raw string into a known Section.
func ParseSection(s string) (Section, error) {
	for _, section := range StepOrder {
		if string(section) == s {
			return section, nil
		}
	}
	return "", fmt.Errorf("unknown section: %q", s)
}

// stepIndex returns the position of a section in StepOrder, or -1.
func stepIndex(section Section) int {
	for i, s := range StepOrder {
		if s == section {
			return i
		}
	}
	return -1
}
