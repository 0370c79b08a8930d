package editor

import "strings"

// SkillPolicy controls how duplicate skills are detected at insertion time.
type SkillPolicy struct {
	// CaseInsensitive treats "Python" and "python" as the same skill.
	// The default (false) matches the observed case-sensitive behavior.
	CaseInsensitive bool
}

// AddSkill inserts a trimmed skill at end-of-list unless it is blank or a
// duplicate under the policy. The second return reports whether an insertion
// happened.
func AddSkill(list []string, skill string, policy SkillPolicy) ([]string, bool) {
	skill = strings.TrimSpace(skill)
	if skill == "" {
		return list, false
	}
	for _, existing := range list {
		if skillsEqual(existing, skill, policy) {
			return list, false
		}
	}
	out := make([]string, 0, len(list)+1)
	out = append(out, list...)
	return append(out, skill), true
}

// RemoveSkill excludes the exact skill string; an absent skill is a no-op.
func RemoveSkill(list []string, skill string) []string {
	out := make([]string, 0, len(list))
	for _, existing := range list {
		if existing != skill {
			out = append(out, existing)
		}
	}
	return out
}

// MergeSuggestedSkills appends each suggestion not already present. Suggested
// skills are always compared case-insensitively, independent of the insertion
// policy, so an AI batch does not flood the list with case variants.
func MergeSuggestedSkills(list []string, suggestions []string) ([]string, int) {
	out := make([]string, 0, len(list)+len(suggestions))
	out = append(out, list...)
	added := 0
	for _, suggestion := range suggestions {
		suggestion = strings.TrimSpace(suggestion)
		if suggestion == "" {
			continue
		}
		duplicate := false
		for _, existing := range out {
			if strings.EqualFold(existing, suggestion) {
				duplicate = true
				break
			}
		}
		if !duplicate {
			out = append(out, suggestion)
			added++
		}
	}
	return out, added
}

func skillsEqual(a, b string, policy SkillPolicy) bool {
	if policy.CaseInsensitive {
		return strings.EqualFold(a, b)
	}
	return a == b
}
