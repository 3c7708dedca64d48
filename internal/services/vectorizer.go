package services

import (
	"sort"
	"strings"

	"onewave/route-compass/internal/models"
)

// Feature-group weights applied during vectorization. Skills dominate on
// purpose: shared stack is the strongest signal of a comparable route.
const (
	weightBackground  = 1.5
	weightCompanySize = 1.0
	weightSkills      = 3.0
	weightProjects    = 1.5
	weightIntern      = 1.0
	weightBootcamp    = 1.0
	weightAwards      = 1.0

	// Project counts are normalized against this ceiling and clamped to [0,1].
	maxProjects = 10.0
)

// BuildSkillVocabulary unions the skill tokens of the profile and the given
// routes into a lexicographically sorted list. The vocabulary fixes the width
// and slot order of the skill block, so every vector compared within one
// matching call must be built from the same vocabulary.
func BuildSkillVocabulary(profile *models.UserDetails, routes []models.Route) []string {
	seen := make(map[string]struct{})
	for token := range profile.SkillSet() {
		seen[token] = struct{}{}
	}
	for i := range routes {
		for token := range routes[i].SkillSet() {
			seen[token] = struct{}{}
		}
	}

	vocabulary := make([]string, 0, len(seen))
	for token := range seen {
		vocabulary = append(vocabulary, token)
	}
	sort.Strings(vocabulary)
	return vocabulary
}

// ProfileVector encodes a user profile as a weighted feature vector:
// [background | companySize(4) | skills(len(vocabulary)) | projects | intern | bootcamp | awards].
// Preferred company sizes are multi-hot.
func ProfileVector(profile *models.UserDetails, vocabulary []string) []float64 {
	vector := make([]float64, 0, 9+len(vocabulary))

	background := 0.0
	if strings.EqualFold(string(profile.Background), string(models.BackgroundMajor)) {
		background = 1.0
	}
	vector = append(vector, background*weightBackground)

	sizes := profile.CompanySizeSet()
	for _, size := range models.CompanySizeOrder {
		slot := 0.0
		if _, ok := sizes[string(size)]; ok {
			slot = 1.0
		}
		vector = append(vector, slot*weightCompanySize)
	}

	vector = appendSkillSlots(vector, profile.SkillSet(), vocabulary)
	vector = appendTailSlots(vector, profile.Projects, profile.Intern, profile.Bootcamp, profile.Awards)
	return vector
}

// RouteVector encodes a route with the same layout as ProfileVector. The
// company-size block is one-hot on the route's final company size.
func RouteVector(route *models.Route, vocabulary []string) []float64 {
	vector := make([]float64, 0, 9+len(vocabulary))

	background := 0.0
	if strings.EqualFold(string(route.Background), string(models.BackgroundMajor)) {
		background = 1.0
	}
	vector = append(vector, background*weightBackground)

	finalSize := strings.ToUpper(string(route.FinalCompanySize))
	for _, size := range models.CompanySizeOrder {
		slot := 0.0
		if string(size) == finalSize {
			slot = 1.0
		}
		vector = append(vector, slot*weightCompanySize)
	}

	vector = appendSkillSlots(vector, route.SkillSet(), vocabulary)
	vector = appendTailSlots(vector, route.Projects, route.Intern, route.Bootcamp, route.Awards)
	return vector
}

func appendSkillSlots(vector []float64, skills map[string]struct{}, vocabulary []string) []float64 {
	for _, token := range vocabulary {
		slot := 0.0
		if _, ok := skills[token]; ok {
			slot = 1.0
		}
		vector = append(vector, slot*weightSkills)
	}
	return vector
}

func appendTailSlots(vector []float64, projects int, intern, bootcamp, awards bool) []float64 {
	if projects < 0 {
		projects = 0
	}
	normalized := float64(projects) / maxProjects
	if normalized > 1.0 {
		normalized = 1.0
	}
	vector = append(vector, normalized*weightProjects)

	vector = append(vector, boolSlot(intern)*weightIntern)
	vector = append(vector, boolSlot(bootcamp)*weightBootcamp)
	vector = append(vector, boolSlot(awards)*weightAwards)
	return vector
}

func boolSlot(b bool) float64 {
	if b {
		return 1.0
	}
	return 0.0
}
