package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"onewave/route-compass/internal/models"
)

// Insight is the narrative produced for a matched route: why it matched,
// where the user stands, and what to do next.
type Insight struct {
	Reason          string   `json:"reason"`
	Strengths       []string `json:"strengths"`
	Weaknesses      []string `json:"weaknesses"`
	Recommendations []string `json:"recommendations"`
}

type InsightService interface {
	// GenerateInsight asks the model for a structured comparison of the
	// profile against the matched route. Any transport, parse, or
	// missing-field problem surfaces as ErrInsightGeneration.
	GenerateInsight(ctx context.Context, profile *models.UserDetails, route *models.Route, similarity int) (*Insight, error)
}

type insightService struct {
	gemini      GeminiService
	temperature float32
}

func NewInsightService(gemini GeminiService) InsightService {
	return &insightService{
		gemini:      gemini,
		temperature: 0.3,
	}
}

// GenerateInsight implements InsightService.
func (s *insightService) GenerateInsight(ctx context.Context, profile *models.UserDetails, route *models.Route, similarity int) (*Insight, error) {
	prompt := buildInsightPrompt(profile, route, similarity)

	response, err := s.gemini.GenerateText(ctx, prompt, s.temperature)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInsightGeneration, err)
	}

	var insight Insight
	if err := json.Unmarshal([]byte(extractJSON(response)), &insight); err != nil {
		return nil, fmt.Errorf("%w: unparseable response: %v", ErrInsightGeneration, err)
	}

	if err := insight.validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInsightGeneration, err)
	}

	return &insight, nil
}

// validate enforces the generation contract: a reason plus at least two
// strengths, two weaknesses, and three recommendations.
func (i *Insight) validate() error {
	switch {
	case strings.TrimSpace(i.Reason) == "":
		return fmt.Errorf("response missing reason")
	case len(i.Strengths) < 2:
		return fmt.Errorf("response has %d strengths, want at least 2", len(i.Strengths))
	case len(i.Weaknesses) < 2:
		return fmt.Errorf("response has %d weaknesses, want at least 2", len(i.Weaknesses))
	case len(i.Recommendations) < 3:
		return fmt.Errorf("response has %d recommendations, want at least 3", len(i.Recommendations))
	}
	return nil
}

func buildInsightPrompt(profile *models.UserDetails, route *models.Route, similarity int) string {
	return fmt.Sprintf(`You are an expert in IT hiring data analysis.
The system matched the user below to a past successful candidate with %d%% similarity.
Compare the two and produce a strengths/weaknesses analysis with a roadmap.

## User profile
- Target job: %s
- Background: %s
- Preferred company sizes: %s
- Skills: %s
- Projects: %d
- Internship: %s
- Bootcamp: %s
- Awards: %s

## Matched success route (Route ID: %d)
- Job: %s
- Background: %s
- Final company size: %s
- Skills: %s
- Projects: %d
- Internship: %s
- Bootcamp: %s
- Awards: %s
- Route summary: %s

## Tasks
1. Explain why this success route is similar to the user.
2. Analyze the user's strengths compared to this candidate.
3. Analyze the user's weaknesses and gaps.
4. Recommend a concrete roadmap toward the same outcome.

## Response format (respond with this JSON only)
{
  "reason": "2-3 sentences explaining why this route matches the user",
  "strengths": ["strength 1", "strength 2"],
  "weaknesses": ["weakness 1", "weakness 2"],
  "recommendations": ["concrete recommendation 1", "concrete recommendation 2", "concrete recommendation 3"]
}

Important:
- Provide at least 2 strengths and 2 weaknesses.
- Provide at least 3 concrete recommendations.
- Respond with JSON only. No extra prose, no markdown formatting.`,
		similarity,
		profile.Job, profile.Background, profile.CompanySizes,
		profile.Skills, profile.Projects,
		yesNo(profile.Intern), yesNo(profile.Bootcamp), yesNo(profile.Awards),
		route.ID,
		route.Job, route.Background, route.FinalCompanySize,
		route.Skills, route.Projects,
		yesNo(route.Intern), yesNo(route.Bootcamp), yesNo(route.Awards),
		route.Summary,
	)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// extractJSON pulls a JSON object or array out of text that may carry
// markdown fences or surrounding prose.
func extractJSON(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")

	startObj := strings.Index(text, "{")
	endObj := strings.LastIndex(text, "}")
	if startObj != -1 && endObj > startObj {
		return text[startObj : endObj+1]
	}

	startArr := strings.Index(text, "[")
	endArr := strings.LastIndex(text, "]")
	if startArr != -1 && endArr > startArr {
		return text[startArr : endArr+1]
	}

	return text
}
