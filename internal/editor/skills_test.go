package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddSkill(t *testing.T) {
	skills, added := AddSkill(nil, "Go", SkillPolicy{})
	assert.True(t, added)
	assert.Equal(t, []string{"Go"}, skills)

	skills, added = AddSkill(skills, "  Kubernetes  ", SkillPolicy{})
	assert.True(t, added)
	assert.Equal(t, []string{"Go", "Kubernetes"}, skills)
}

func TestAddSkill_BlankIsNoOp(t *testing.T) {
	skills, added := AddSkill([]string{"Go"}, "   ", SkillPolicy{})
	assert.False(t, added)
	assert.Equal(t, []string{"Go"}, skills)
}

func TestAddSkill_CaseSensitiveDedup(t *testing.T) {
	skills := []string{"Python"}

	// Default policy: "python" is a different skill than "Python".
	updated, added := AddSkill(skills, "python", SkillPolicy{})
	assert.True(t, added)
	assert.Equal(t, []string{"Python", "python"}, updated)

	updated, added = AddSkill(skills, "Python", SkillPolicy{})
	assert.False(t, added)
	assert.Equal(t, []string{"Python"}, updated)
}

func TestAddSkill_CaseInsensitivePolicy(t *testing.T) {
	skills := []string{"Python"}

	updated, added := AddSkill(skills, "python", SkillPolicy{CaseInsensitive: true})
	assert.False(t, added)
	assert.Equal(t, []string{"Python"}, updated)
}

func TestRemoveSkill(t *testing.T) {
	skills := []string{"Go", "Python", "SQL"}

	updated := RemoveSkill(skills, "Python")
	assert.Equal(t, []string{"Go", "SQL"}, updated)

	// Exact match only; absent skill is a no-op.
	updated = RemoveSkill(skills, "python")
	assert.Equal(t, skills, updated)
}

func TestMergeSuggestedSkills(t *testing.T) {
	skills := []string{"Python", "Go"}

	merged, added := MergeSuggestedSkills(skills, []string{"python", "Rust", " SQL ", "", "GO"})

	// AI suggestions dedup case-insensitively regardless of policy.
	assert.Equal(t, 2, added)
	assert.Equal(t, []string{"Python", "Go", "Rust", "SQL"}, merged)
}

func TestMergeSuggestedSkills_Empty(t *testing.T) {
	merged, added := MergeSuggestedSkills(nil, nil)
	assert.Zero(t, added)
	assert.Empty(t, merged)
}
