package parsing

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/jonathan/fit-scorer/internal/catalog"
	"github.com/jonathan/fit-scorer/internal/policy"
	"github.com/jonathan/fit-scorer/internal/types"
)

var testCatalog = catalog.MustLoad()

func texts(reqs []types.Requirement) []string {
	out := make([]string, 0, len(reqs))
	for _, r := range reqs {
		out = append(out, r.Text)
	}
	return out
}

func TestExtract_RequiredTechnicalSkills(t *testing.T) {
	e := NewExtractor(testCatalog, nil, nil)

	got := e.Extract(context.Background(), "Data Analyst\n\nRequirements:\n- Python\n- SQL\n", "")

	assert.Equal(t, []string{"python", "sql"}, texts(got.Required))
	assert.Empty(t, got.Preferred)
	assert.Empty(t, got.NiceToHave)
	assert.Equal(t, []string{"python", "sql"}, got.TechnicalSkills)
	assert.Equal(t, 2, got.TotalRequirements)
	assert.Equal(t, 0, got.YearsExperienceRequired)
	for _, r := range got.Required {
		assert.Equal(t, types.KindTechnicalSkill, r.Kind)
		assert.Equal(t, "programming_languages", r.Category)
	}
}

func TestExtract_SectionsAndIndicators(t *testing.T) {
	jd := `About the role
We are building analytics products for hospitals.

Requirements
- 5+ years of experience with Python and SQL
- Strong communication skills

Nice to have
- Experience with Tableau
- Kubernetes is preferred

Benefits
- Free Docker training`

	e := NewExtractor(testCatalog, nil, nil)
	got := e.Extract(context.Background(), jd, "")

	assert.Equal(t, []string{"python", "sql", "communication", "5+ years of experience"}, texts(got.Required))
	assert.Equal(t, []string{"kubernetes"}, texts(got.Preferred))
	assert.Equal(t, []string{"tableau"}, texts(got.NiceToHave))
	assert.Equal(t, []string{"python", "sql"}, got.TechnicalSkills)
	assert.Equal(t, []string{"communication"}, got.SoftSkills)
	assert.Equal(t, []string{"tableau", "kubernetes"}, got.ToolsAndPlatforms)
	assert.Equal(t, 5, got.YearsExperienceRequired)
	assert.Equal(t, 6, got.TotalRequirements)
	assert.NotContains(t, got.ToolsAndPlatforms, "docker")

	years := got.Required[3]
	assert.Equal(t, types.KindExperienceYears, years.Kind)
	require.NotNil(t, years.YearsRequired)
	assert.Equal(t, 5, *years.YearsRequired)
}

func TestExtract_NoHeadersDefaultsToPreferred(t *testing.T) {
	e := NewExtractor(testCatalog, nil, nil)

	got := e.Extract(context.Background(), "We need someone who knows Python. Docker is a plus.", "")

	assert.Equal(t, []string{"python"}, texts(got.Preferred))
	assert.Equal(t, []string{"docker"}, texts(got.NiceToHave))
	assert.Empty(t, got.Required)
}

func TestExtract_DuplicatesKeepStrongestPriority(t *testing.T) {
	e := NewExtractor(testCatalog, nil, nil)

	got := e.Extract(context.Background(), "Python is a plus.\nPYTHON is required.\nSQL is required.", "")

	assert.Equal(t, []string{"python", "sql"}, texts(got.Required))
	assert.Empty(t, got.NiceToHave)
	assert.Equal(t, 2, got.TotalRequirements)
}

func TestExtract_EveryRequirementInExactlyOneTier(t *testing.T) {
	jd := "Requirements\n- Python, AWS and a bachelor's degree\n- Minimum 3 years in finance\nPreferred Qualifications:\n- Tableau, PMP\n- Risk management"
	e := NewExtractor(testCatalog, nil, nil)

	got := e.Extract(context.Background(), jd, "")

	tiers := make(map[string]int)
	for _, r := range got.All() {
		tiers[r.Text]++
	}
	for text, n := range tiers {
		assert.Equal(t, 1, n, text)
	}
	assert.Equal(t, len(got.All()), got.TotalRequirements)
	assert.Equal(t, []string{"bachelor's degree"}, got.Education)
	assert.Equal(t, []string{"pmp"}, got.Certifications)
	assert.Equal(t, []string{"risk management"}, got.DomainKeywords)
	assert.Equal(t, 3, got.YearsExperienceRequired)
}

func TestExtract_EmptyInput(t *testing.T) {
	e := NewExtractor(testCatalog, nil, nil)

	for _, jd := range []string{"", "   \n\t", "!!! ??? ..."} {
		got := e.Extract(context.Background(), jd, "We run fundraising campaigns")
		assert.True(t, got.IsEmpty(), jd)
		assert.NotNil(t, got.Required)
		assert.NotNil(t, got.TechnicalSkills)
		assert.Equal(t, types.DefaultPriorityWeights(), got.PriorityWeights)
	}
}

func TestExtract_CompanyInfoAddsDomainOnly(t *testing.T) {
	e := NewExtractor(testCatalog, nil, nil)

	got := e.Extract(context.Background(), "Requirements: Python", "A fundraising platform built with Django for nonprofits")

	assert.Equal(t, []string{"python"}, texts(got.Required))
	assert.Equal(t, []string{"fundraising"}, texts(got.NiceToHave))
	assert.Equal(t, "company_context", got.NiceToHave[0].Category)
	assert.NotContains(t, got.TechnicalSkills, "django")
}

func TestExtract_PluggableClassifier(t *testing.T) {
	everythingRequired := policy.Func(func(string) types.Priority { return types.PriorityRequired })
	e := NewExtractor(testCatalog, everythingRequired, nil)

	got := e.Extract(context.Background(), "Docker is a plus. Python preferred.", "")

	assert.Equal(t, []string{"docker", "python"}, texts(got.Required))
}

type failingClassifier struct{}

func (failingClassifier) Classify(context.Context, []string) ([]types.Priority, error) {
	return nil, errors.New("unavailable")
}

func (failingClassifier) Deterministic() bool { return true }

func TestExtract_ClassifierErrorFallsBackToRules(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	e := NewExtractor(testCatalog, failingClassifier{}, zap.New(core))

	got := e.Extract(context.Background(), "Python is required. Go programming is a plus.", "")

	assert.Equal(t, []string{"python"}, texts(got.Required))
	assert.Equal(t, []string{"go"}, texts(got.NiceToHave))
	assert.Equal(t, 1, logs.FilterMessage("priority classifier failed, using rules").Len())
}

func TestExtract_RecoversFromPanic(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	panicking := policy.Func(func(string) types.Priority { panic("broken rules") })
	e := NewExtractor(testCatalog, panicking, zap.New(core))

	got := e.Extract(context.Background(), "Python is required", "")

	assert.True(t, got.IsEmpty())
	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "requirement extraction recovered", entry.Message)
	assert.Equal(t, int64(len("Python is required")), entry.ContextMap()["jd_length"])
}

func TestExtract_YearsPriorityFollowsWording(t *testing.T) {
	e := NewExtractor(testCatalog, nil, nil)

	got := e.Extract(context.Background(), "Python developer.\n3-5 years of experience preferred.", "")

	assert.Equal(t, 3, got.YearsExperienceRequired)
	assert.Equal(t, []string{"python", "3+ years of experience"}, texts(got.Preferred))
}
