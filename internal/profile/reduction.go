package profile

import "strings"

// Scoring bands for EstimateReduction. The reduction shrinks question
// targets for users who arrive with a rich prior-experience profile.
const (
	// MaxReduction is the ceiling of the reduction percentage.
	MaxReduction = 30

	// Background length band: no credit below minBackgroundLen, linear
	// scaling up to maxBackgroundLen, flat band above.
	minBackgroundLen = 500
	maxBackgroundLen = 2000
	minLengthPoints  = 5
	maxLengthPoints  = 15

	maxKeywordPoints = 5
	professionPoints = 2
	experiencePoints = 2
	educationPoints  = 2
	maxSkillPoints   = 4
)

// keywordFamilies are the domain terms that signal an already-structured
// career narrative. Each family counts once, with accented and plain
// spellings both accepted.
var keywordFamilies = [][]string{
	{"compétence", "competence"},
	{"expérience", "experience"},
	{"formation"},
	{"projet"},
	{"management", "gestion d'équipe", "encadrement"},
	{"responsable"},
	{"certification", "diplôme", "diplome"},
}

// EstimateReduction derives the percentage by which question targets
// shrink, from 0 (no profile) to MaxReduction. It is pure and
// deterministic: the same profile always yields the same reduction.
func EstimateReduction(p *Profile) int {
	if p.IsEmpty() {
		return 0
	}

	score := backgroundLengthPoints(len([]rune(p.Background)))
	score += keywordPoints(p.Background)

	if strings.TrimSpace(p.Profession) != "" {
		score += professionPoints
	}
	if p.YearsExperience > 0 {
		score += experiencePoints
	}
	if strings.TrimSpace(p.Education) != "" {
		score += educationPoints
	}

	skillPts := len(p.Skills)
	if skillPts > maxSkillPoints {
		skillPts = maxSkillPoints
	}
	score += skillPts

	if score > MaxReduction {
		return MaxReduction
	}
	if score < 0 {
		return 0
	}
	return score
}

// backgroundLengthPoints scores free-text length: 0 below the minimum,
// 5-15 scaled linearly between the bounds, flat 15 above.
func backgroundLengthPoints(n int) int {
	switch {
	case n < minBackgroundLen:
		return 0
	case n >= maxBackgroundLen:
		return maxLengthPoints
	default:
		span := maxBackgroundLen - minBackgroundLen
		extra := maxLengthPoints - minLengthPoints
		return minLengthPoints + (n-minBackgroundLen)*extra/span
	}
}

// keywordPoints counts distinct keyword families present in the text,
// capped at maxKeywordPoints.
func keywordPoints(text string) int {
	lower := strings.ToLower(text)
	found := 0
	for _, family := range keywordFamilies {
		for _, kw := range family {
			if strings.Contains(lower, kw) {
				found++
				break
			}
		}
		if found >= maxKeywordPoints {
			return maxKeywordPoints
		}
	}
	return found
}
