// Package types provides type definitions for structured data used throughout the cv-builder system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// PersonalInfo holds the header-level identity fields of a CV.
// There is exactly one PersonalInfo per CVData; it is replaced wholesale on edit.
type PersonalInfo struct {
	FullName     string `json:"full_name"`
	Title        string `json:"title"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Location     string `json:"location"`
	LinkedIn     string `json:"linkedin"`
	ProfileImage string `json:"profile_image,omitempty"` // data URI, set via photo upload
}

// WorkExperience represents a single employment entry.
// Achievements preserve insertion order; that order is display order.
type WorkExperience struct {
	ID           string   `json:"id"`
	Position     string   `json:"position"`
	Company      string   `json:"company"`
	StartDate    string   `json:"start_date"`
	EndDate      string   `json:"end_date"`
	Current      bool     `json:"current"`
	Achievements []string `json:"achievements"`
}

// Education represents a single education entry. No cross-field invariants.
type Education struct {
	ID          string `json:"id"`
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Location    string `json:"location"`
	StartYear   string `json:"start_year"`
	EndYear     string `json:"end_year"`
}

// Certification represents a certification or membership entry.
type Certification struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Issuer string `json:"issuer"`
	Year   string `json:"year,omitempty"`
}

// Language represents a spoken-language entry with a fixed proficiency level.
type Language struct {
	ID          string `json:"id"`
	Language    string `json:"language"`
	Proficiency string `json:"proficiency"`
}

// Project represents a portfolio project entry.
type Project struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	StartDate    string   `json:"start_date"`
	EndDate      string   `json:"end_date"`
	URL          string   `json:"url,omitempty"`
	GitHub       string   `json:"github,omitempty"`
}

// RowID returns the stable identifier used for diffing and removal.
func (w WorkExperience) RowID() string { return w.ID }

// RowID returns the stable identifier used for diffing and removal.
func (e Education) RowID() string { return e.ID }

// RowID returns the stable identifier used for diffing and removal.
func (c Certification) RowID() string { return c.ID }

// RowID returns the stable identifier used for diffing and removal.
func (l Language) RowID() string { return l.ID }

// RowID returns the stable identifier used for diffing and removal.
func (p Project) RowID() string { return p.ID }

// ProficiencyLevels are the only accepted values for Language.Proficiency.
var ProficiencyLevels = []string{
	"Native or Bilingual Proficiency",
	"Professional Working Proficiency",
	"Limited Working Proficiency",
	"Elementary Proficiency",
}

// CVData is the full in-memory CV document being edited.
// List order within each section is display order and is preserved across edits.
type CVData struct {
	PersonalInfo   PersonalInfo     `json:"personal_info"`
	WorkExperience []WorkExperience `json:"work_experience"`
	Skills         []string         `json:"skills"`
	Education      []Education      `json:"education"`
	Certifications []Certification  `json:"certifications"`
	Languages      []Language       `json:"languages"`
	Projects       []Project        `json:"projects"`
}

// NewCVData returns an empty document with all sections initialized.
func NewCVData() *CVData {
	return &CVData{
		WorkExperience: []WorkExperience{},
		Skills:         []string{},
		Education:      []Education{},
		Certifications: []Certification{},
		Languages:      []Language{},
		Projects:       []Project{},
	}
}

// Section identifies one list-valued slice of CVData.
type Section string

// Section constants name the list-valued sections of a CV.
const (
	SectionExperience     Section = "experience"
	SectionSkills         Section = "skills"
	SectionEducation      Section = "education"
	SectionCertifications Section = "certifications"
	SectionLanguages      Section = "languages"
	SectionProjects       Section = "projects"
)

// ValidSection reports whether s names a known list-valued section.
func ValidSection(s Section) bool {
	switch s {
	case SectionExperience, SectionSkills, SectionEducation,
		SectionCertifications, SectionLanguages, SectionProjects:
		return true
	}
	return false
}
