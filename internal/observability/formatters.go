// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/cv-builder/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintPersonalInfo outputs a human-readable summary of the CV header.
func (p *Printer) PrintPersonalInfo(info types.PersonalInfo) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Name:     %s\n", orPlaceholder(info.FullName)))
	sb.WriteString(fmt.Sprintf("Title:    %s\n", orPlaceholder(info.Title)))
	if info.Email != "" {
		sb.WriteString(fmt.Sprintf("Email:    %s\n", info.Email))
	}
	if info.Phone != "" {
		sb.WriteString(fmt.Sprintf("Phone:    %s\n", info.Phone))
	}
	if info.Location != "" {
		sb.WriteString(fmt.Sprintf("Location: %s\n", info.Location))
	}
	if info.LinkedIn != "" {
		sb.WriteString(fmt.Sprintf("LinkedIn: %s\n", info.LinkedIn))
	}
	if info.ProfileImage != "" {
		sb.WriteString("Photo:    attached\n")
	}

	p.printBox("PERSONAL INFO", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintExperience outputs the work history with achievement counts.
func (p *Printer) PrintExperience(experience []types.WorkExperience) {
	if len(experience) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total entries: %d\n\n", len(experience)))

	count := min(len(experience), maxItemsToShow)
	for i := 0; i < count; i++ {
		exp := experience[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, orPlaceholder(exp.Position)))
		sb.WriteString(fmt.Sprintf("    %s", orPlaceholder(exp.Company)))
		if exp.StartDate != "" || exp.EndDate != "" {
			sb.WriteString(fmt.Sprintf(" (%s - %s)", exp.StartDate, exp.EndDate))
		}
		sb.WriteString("\n")

		filled := 0
		for _, a := range exp.Achievements {
			if strings.TrimSpace(a) != "" {
				filled++
			}
		}
		sb.WriteString(fmt.Sprintf("    Achievements: %d\n", filled))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}
	if len(experience) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more\n", len(experience)-maxItemsToShow))
	}

	p.printBox("WORK EXPERIENCE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSkills outputs the skill list in comma-joined form.
func (p *Printer) PrintSkills(skills []string) {
	if len(skills) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total skills: %d\n\n", len(skills)))

	joined := strings.Join(skills, ", ")
	for len(joined) > boxWidth-4 {
		cut := strings.LastIndex(joined[:boxWidth-4], ", ")
		if cut < 0 {
			break
		}
		sb.WriteString(joined[:cut+1] + "\n")
		joined = joined[cut+2:]
	}
	sb.WriteString(joined)

	p.printBox("SKILLS", sb.String())
}

// PrintSectionCounts outputs a one-line census of the remaining sections.
func (p *Printer) PrintSectionCounts(data types.CVData) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Education:      %d\n", len(data.Education)))
	sb.WriteString(fmt.Sprintf("Certifications: %d\n", len(data.Certifications)))
	sb.WriteString(fmt.Sprintf("Languages:      %d\n", len(data.Languages)))
	sb.WriteString(fmt.Sprintf("Projects:       %d", len(data.Projects)))

	p.printBox("OTHER SECTIONS", sb.String())
}

// PrintSummary outputs all section boxes for one CV document.
func (p *Printer) PrintSummary(data types.CVData) {
	p.PrintPersonalInfo(data.PersonalInfo)
	p.PrintExperience(data.WorkExperience)
	p.PrintSkills(data.Skills)
	p.PrintSectionCounts(data)
}

func orPlaceholder(s string) string {
	if strings.TrimSpace(s) == "" {
		return "(not set)"
	}
	return s
}
