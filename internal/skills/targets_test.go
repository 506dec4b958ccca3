package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/fit-scorer/internal/types"
)

func TestBuildTargets(t *testing.T) {
	extraction := types.NewEmptyExtraction()
	extraction.Required = []types.Requirement{{Text: "Python", Kind: types.KindTechnicalSkill, Priority: types.PriorityRequired}}
	extraction.Preferred = []types.Requirement{{Text: "docker", Kind: types.KindTool, Priority: types.PriorityPreferred}}
	extraction.NiceToHave = []types.Requirement{
		{Text: "communication", Kind: types.KindSoftSkill, Priority: types.PriorityNiceToHave},
		{Text: "python", Kind: types.KindTechnicalSkill, Priority: types.PriorityNiceToHave},
		{Text: "phd", Kind: types.KindEducation, Priority: types.PriorityNiceToHave},
	}

	targets := BuildTargets(extraction)
	require.Len(t, targets, 3)

	assert.Equal(t, Target{Name: "python", Kind: types.SkillTechnical, Priority: types.PriorityRequired, Weight: 1.0}, targets[0])
	assert.Equal(t, Target{Name: "docker", Kind: types.SkillTechnical, Priority: types.PriorityPreferred, Weight: 0.7}, targets[1])
	assert.Equal(t, Target{Name: "communication", Kind: types.SkillSoft, Priority: types.PriorityNiceToHave, Weight: 0.3}, targets[2])
}

func TestBuildTargets_UpgradesDuplicateWeight(t *testing.T) {
	extraction := types.NewEmptyExtraction()
	extraction.Preferred = []types.Requirement{{Text: "sql", Kind: types.KindTechnicalSkill, Priority: types.PriorityPreferred}}
	extraction.NiceToHave = []types.Requirement{{Text: "SQL", Kind: types.KindTechnicalSkill, Priority: types.PriorityNiceToHave}}
	extraction.PriorityWeights = map[types.Priority]float64{types.PriorityPreferred: 0.2, types.PriorityNiceToHave: 0.9}

	targets := BuildTargets(extraction)
	require.Len(t, targets, 1)
	assert.Equal(t, 0.9, targets[0].Weight)
	assert.Equal(t, types.PriorityNiceToHave, targets[0].Priority)
}

func TestBuildTargets_Empty(t *testing.T) {
	assert.Empty(t, BuildTargets(nil))
	assert.Empty(t, BuildTargets(types.NewEmptyExtraction()))
}

func TestRequirementLists(t *testing.T) {
	extraction := types.NewEmptyExtraction()
	extraction.TechnicalSkills = []string{"Python", "golang"}
	extraction.ToolsAndPlatforms = []string{"AWS", "python"}
	extraction.Certifications = []string{"PMP"}
	extraction.SoftSkills = []string{"Communication"}

	lists := RequirementLists(extraction)

	assert.Equal(t, []string{"python", "go", "aws", "pmp"}, lists.Technical)
	assert.Equal(t, []string{"communication"}, lists.Soft)
	assert.Empty(t, lists.Domain)
}
