package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

const (
	// maxAchievementSuggestions caps the fallback-parsed achievement list.
	maxAchievementSuggestions = 5
	// maxSkillSuggestions caps the fallback-parsed skill list.
	maxSkillSuggestions = 12
)

// SuggestAchievements asks for quantifiable achievements for a position at a
// company and returns them as a list of bullet strings.
func SuggestAchievements(ctx context.Context, client Client, position, company string) ([]string, error) {
	system := "You are a professional CV writing assistant. Provide 3-5 specific, quantifiable achievements " +
		"for the given job title and company. Focus on measurable results, cost savings, efficiency " +
		"improvements, and team management. Return only a JSON array of strings."
	user := fmt.Sprintf("Generate professional achievements for a %s position at %s. Focus on specific, quantifiable results.", position, company)

	content, err := client.Complete(ctx, system, user, AchievementOptions)
	if err != nil {
		return nil, err
	}

	if list, ok := parseJSONStringList(content); ok {
		return list, nil
	}
	return fallbackBulletLines(content, maxAchievementSuggestions), nil
}

// SuggestSkills asks for skills relevant to a job title, informed by the
// achievement texts already on the CV.
func SuggestSkills(ctx context.Context, client Client, title string, experience []string) ([]string, error) {
	system := "You are a professional CV writing assistant. Suggest relevant technical and soft skills " +
		"for the given job title. Return only a JSON array of skill names (strings)."
	user := fmt.Sprintf("Suggest 8-12 relevant skills for a %s based on this experience: %s", title, strings.Join(experience, ", "))

	content, err := client.Complete(ctx, system, user, SkillOptions)
	if err != nil {
		return nil, err
	}

	if list, ok := parseJSONStringList(content); ok {
		return list, nil
	}
	return fallbackSkillTerms(content, maxSkillSuggestions), nil
}

// CertificationLookup is the result of normalizing a certification name.
type CertificationLookup struct {
	Name   string // full official name, first non-empty response line
	Issuer string // issuing organization when the response names one
}

// issuerPattern loosely matches "issued by X" / "from X" / "by X" and
// captures the first token of the organization name.
var issuerPattern = regexp.MustCompile(`(?i)(?:issued\s+by|from|by)\s+(\S+)`)

// LookupCertification asks for the full official name and issuer of a
// certification acronym or partial name.
func LookupCertification(ctx context.Context, client Client, certification string) (*CertificationLookup, error) {
	system := "You are a professional CV writing assistant. Provide the full official name and issuing " +
		"organization for the given certification acronym or partial name."
	user := fmt.Sprintf("What is the full name and issuing organization for this certification: %s", certification)

	content, err := client.Complete(ctx, system, user, CertificationOptions)
	if err != nil {
		return nil, err
	}

	line := firstNonEmptyLine(content)
	if line == "" {
		return nil, fmt.Errorf("empty certification lookup response")
	}

	lookup := &CertificationLookup{Name: line}
	if m := issuerPattern.FindStringSubmatch(line); m != nil {
		lookup.Issuer = strings.Trim(m[1], ".,;:")
	}
	return lookup, nil
}

// GenerateText returns the raw response for a free-form drafting prompt.
func GenerateText(ctx context.Context, client Client, prompt string) (string, error) {
	system := "You are a professional CV writing assistant. Be precise and concise."
	return client.Complete(ctx, system, prompt, TextOptions)
}

// parseJSONStringList attempts strict parsing of the response as a JSON array
// of strings, unwrapping a markdown fence first if present.
func parseJSONStringList(content string) ([]string, bool) {
	var list []string
	if err := json.Unmarshal([]byte(CleanJSONBlock(content)), &list); err != nil {
		return nil, false
	}
	out := make([]string, 0, len(list))
	for _, item := range list {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out, true
}

// fallbackBulletLines degrades a non-JSON response to its bullet lines:
// keep lines that carry a dash, strip the markers, truncate to max.
func fallbackBulletLines(content string, max int) []string {
	var out []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || !strings.Contains(line, "-") {
			continue
		}
		out = append(out, stripBulletMarker(line))
		if len(out) == max {
			break
		}
	}
	return out
}

// fallbackSkillTerms degrades a non-JSON response to comma/newline separated
// terms, stripping markers and quotes and dropping trivially short fragments.
func fallbackSkillTerms(content string, max int) []string {
	var out []string
	for _, term := range strings.FieldsFunc(content, func(r rune) bool { return r == ',' || r == '\n' }) {
		term = strings.Trim(stripBulletMarker(term), `"' `)
		if len(term) <= 2 {
			continue
		}
		out = append(out, term)
		if len(out) == max {
			break
		}
	}
	return out
}

func firstNonEmptyLine(content string) string {
	for _, line := range strings.Split(content, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			return line
		}
	}
	return ""
}
