package types

// SectionDetail holds per-section completion counters.
type SectionDetail struct {
	Completed  int `json:"completed"`
	Total      int `json:"total"`
	Percentage int `json:"percentage"`
}

// CompletionReport is the derived, ephemeral result of scoring one resume
// snapshot. It is recomputed on demand and never persisted as a whole; only
// the overall percentage is written back as the resume's progression.
type CompletionReport struct {
	Percentage      int                      `json:"percentage"`
	CompletedFields int                      `json:"completed_fields"`
	TotalFields     int                      `json:"total_fields"`
	SectionDetails  map[string]SectionDetail `json:"section_details"`
}

// StepLevels is a flat projection of a CompletionReport for dashboard cards
// and the wizard's per-step progress bars.
type StepLevels struct {
	Personal       int `json:"personal"`
	Contact        int `json:"contact"`
	Experience     int `json:"experience"`
	Education      int `json:"education"`
	Skills         int `json:"skills"`
	Projects       int `json:"projects"`
	Certifications int `json:"certifications"`
	Additional     int `json:"additional"`
	Overall        int `json:"overall"`
}
