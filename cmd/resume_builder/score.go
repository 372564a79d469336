package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/resume-builder/internal/completion"
	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/jonathan/resume-builder/internal/wizard"
	"github.com/spf13/cobra"
)

var scoreCmd = &cobra.Command{
	Use:   "score <resume.json>",
	Short: "Score a resume snapshot's completion",
	Long:  "Validates a resume JSON file against the resume schema, then prints the overall completion percentage, per-section breakdown, and per-step fill levels.",
	Args:  cobra.ExactArgs(1),
	RunE:  runScore,
}

func init() {
	rootCmd.AddCommand(scoreCmd)
}

func runScore(_ *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read resume file: %w", err)
	}

	if err := schemas.ValidateResumeJSON(data); err != nil {
		return fmt.Errorf("resume failed schema validation: %w", err)
	}

	var resume types.Resume
	if err := json.Unmarshal(data, &resume); err != nil {
		return fmt.Errorf("failed to parse resume: %w", err)
	}

	report := completion.Calculate(&resume)
	fmt.Printf("Overall completion: %d%% (%d/%d fields)\n",
		report.Percentage, report.CompletedFields, report.TotalFields)

	for _, section := range completion.SectionOrder {
		detail := report.SectionDetails[section]
		fmt.Printf("  %-15s %3d%% (%d/%d)\n",
			section, detail.Percentage, detail.Completed, detail.Total)
	}

	levels := completion.StepCompletionLevels(&resume)
	fmt.Println("Step levels:")
	for _, step := range wizard.StepOrder {
		fmt.Printf("  %-15s %3d%%\n", step, stepLevel(levels, step))
	}
	return nil
}

func stepLevel(levels types.StepLevels, step wizard.Section) int {
	switch step {
	case wizard.SectionPersonal:
		return levels.Personal
	case wizard.SectionContact:
		return levels.Contact
	case wizard.SectionExperience:
		return levels.Experience
	case wizard.SectionEducation:
		return levels.Education
	case wizard.SectionSkills:
		return levels.Skills
	case wizard.SectionProjects:
		return levels.Projects
	case wizard.SectionCertifications:
		return levels.Certifications
	case wizard.SectionAdditional:
		return levels.Additional
	default:
		return 0
	}
}
