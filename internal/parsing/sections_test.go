package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/fit-scorer/internal/types"
)

func TestSplitSections(t *testing.T) {
	jd := "Acme Analytics\r\nWe help banks.\r\n\r\n## Requirements\r\n- Python\r\nPreferred: Tableau, Excel\r\nBenefits\r\n- Gym"

	sections := splitSections(testCatalog, jd)
	require.Len(t, sections, 4)

	assert.Equal(t, preambleSection, sections[0].Name)
	assert.Equal(t, []string{"Acme Analytics", "We help banks."}, sections[0].Lines)

	assert.Equal(t, "requirements", sections[1].Name)
	assert.Equal(t, types.PriorityRequired, sections[1].Hint)
	assert.Equal(t, []string{"- Python"}, sections[1].Lines)

	assert.Equal(t, "preferred", sections[2].Name)
	assert.Equal(t, []string{"Tableau, Excel"}, sections[2].Lines)

	assert.Equal(t, "other", sections[3].Name)
	assert.False(t, sections[3].Extract)
}

func TestSplitSections_NoHeaders(t *testing.T) {
	sections := splitSections(testCatalog, "Python and SQL.\nGood communication.")

	require.Len(t, sections, 1)
	assert.Equal(t, "requirements", sections[0].Name)
	assert.True(t, sections[0].Extract)
	assert.Equal(t, types.Priority(""), sections[0].Hint)
}

func TestSplitSections_BulletsAreNotHeaders(t *testing.T) {
	sections := splitSections(testCatalog, "Requirements\n- Python experience\n- Experience: 5 years")

	require.Len(t, sections, 1)
	assert.Len(t, sections[0].Lines, 2)
}

func TestSplitFragments(t *testing.T) {
	got := splitFragments([]string{
		"- Python; SQL",
		"• Strong communication. Team player!",
		"1. Docker",
		"Node.js and 3.5 years",
	})

	assert.Equal(t, []string{"Python", "SQL", "Strong communication", "Team player", "Docker", "Node.js and 3.5 years"}, got)
}
