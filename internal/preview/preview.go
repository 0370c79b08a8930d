// Package preview renders a CV document to a print-ready HTML view.
// Rendering is a pure projection: the same CVData always produces the same
// document, and nothing in here mutates the input.
package preview

import (
	_ "embed"
	"html/template"
	"strings"

	"github.com/jonathan/cv-builder/internal/types"
)

//go:embed cv.html.tmpl
var cvTemplate string

// TemplateData is the structure handed to the HTML template.
type TemplateData struct {
	Personal     types.PersonalInfo
	Initials     string
	ProfileImage template.URL // data URI; typed so the template keeps the scheme

	Experience     []ExperienceSection
	Education      []types.Education
	Skills         []string
	Certifications []types.Certification
	Languages      []types.Language
	Projects       []ProjectSection
}

// ExperienceSection is one work-experience entry with its display-ready
// date range and only its non-blank achievements.
type ExperienceSection struct {
	Position     string
	Company      string
	DateRange    string
	Achievements []string
}

// ProjectSection is one project entry with a display-ready date range.
type ProjectSection struct {
	Title        string
	Description  string
	Technologies []string
	DateRange    string
	URL          string
	GitHub       string
}

// Renderer renders CV documents from the embedded template.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer parses the embedded template.
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.New("cv").Parse(cvTemplate)
	if err != nil {
		return nil, &TemplateError{Message: "failed to parse CV template", Cause: err}
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Render produces the full HTML document for the given CV.
func (r *Renderer) Render(data types.CVData) (string, error) {
	var out strings.Builder
	if err := r.tmpl.Execute(&out, buildTemplateData(data)); err != nil {
		return "", &RenderError{Message: "failed to execute CV template", Cause: err}
	}
	return out.String(), nil
}

func buildTemplateData(data types.CVData) *TemplateData {
	td := &TemplateData{
		Personal:       data.PersonalInfo,
		Initials:       Initials(data.PersonalInfo.FullName),
		ProfileImage:   template.URL(data.PersonalInfo.ProfileImage),
		Education:      data.Education,
		Skills:         data.Skills,
		Certifications: data.Certifications,
		Languages:      data.Languages,
	}

	for _, exp := range data.WorkExperience {
		section := ExperienceSection{
			Position:  exp.Position,
			Company:   exp.Company,
			DateRange: FormatDateRange(exp.StartDate, exp.EndDate, exp.Current),
		}
		for _, achievement := range exp.Achievements {
			if strings.TrimSpace(achievement) != "" {
				section.Achievements = append(section.Achievements, achievement)
			}
		}
		td.Experience = append(td.Experience, section)
	}

	for _, proj := range data.Projects {
		td.Projects = append(td.Projects, ProjectSection{
			Title:        proj.Title,
			Description:  proj.Description,
			Technologies: proj.Technologies,
			DateRange:    FormatDateRange(proj.StartDate, proj.EndDate, false),
			URL:          proj.URL,
			GitHub:       proj.GitHub,
		})
	}

	return td
}

// FormatDateRange renders "start – end". The current flag forces the end
// label to Present; blank dates render blank rather than pretending the
// entry is ongoing.
func FormatDateRange(start, end string, current bool) string {
	start = strings.TrimSpace(start)
	end = strings.TrimSpace(end)
	if current {
		end = "Present"
	}
	switch {
	case start == "" && end == "":
		return ""
	case end == "":
		return start
	case start == "":
		return end
	default:
		return start + " – " + end
	}
}

// Initials derives the avatar-fallback initials from a full name ("U" when
// the name is blank).
func Initials(fullName string) string {
	var b strings.Builder
	for _, word := range strings.Fields(fullName) {
		b.WriteString(strings.ToUpper(string([]rune(word)[0])))
	}
	if b.Len() == 0 {
		return "U"
	}
	return b.String()
}
