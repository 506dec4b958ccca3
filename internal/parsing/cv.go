package parsing

import (
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/fit-scorer/internal/types"
)

// experienceSections are the CV sections whose lines describe work history
var experienceSections = map[string]bool{
	"experience": true,
	"summary":    true,
}

// ParseCandidate builds the structured candidate view of a CV.
// Skills come from the same keyword tables used for job descriptions.
// Experience lines come from experience and summary sections, or from every line when the CV has neither.
func (e *Extractor) ParseCandidate(cvText string) (profile *types.CandidateProfile) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("candidate parsing recovered",
				zap.Int("cv_length", len(cvText)),
				zap.Error(recovered("candidate", r)))
			profile = &types.CandidateProfile{}
		}
	}()

	profile = &types.CandidateProfile{
		TechnicalSkills: []string{},
		SoftSkills:      []string{},
		DomainSkills:    []string{},
		ExperienceLines: []string{},
	}
	if strings.TrimSpace(cvText) == "" {
		return profile
	}

	for _, hit := range e.cat.Scan(cvText) {
		switch hit.Kind.SkillKind() {
		case types.SkillTechnical:
			profile.TechnicalSkills = append(profile.TechnicalSkills, hit.Term)
		case types.SkillSoft:
			profile.SoftSkills = append(profile.SoftSkills, hit.Term)
		case types.SkillDomain:
			profile.DomainSkills = append(profile.DomainSkills, hit.Term)
		}
		if hit.Kind == types.KindEducation {
			profile.EducationLevels = append(profile.EducationLevels, hit.Term)
		}
	}

	var all, experience []string
	inExperience := false
	for _, raw := range strings.Split(normalizeNewlines(cvText), "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if s, ok := e.cat.CVSection(line); ok {
			inExperience = experienceSections[s.Name]
			continue
		}
		all = append(all, line)
		if inExperience {
			experience = append(experience, line)
		}
	}
	if len(experience) == 0 {
		experience = all
	}
	profile.ExperienceLines = experience

	profile.YearsExperience = max(ScanYears(cvText), ScanEmploymentYears(cvText, e.now()))
	return profile
}
