package services

import "brainhealth/internal/models"

// CognitiveScale — балл когнитивного теста живёт на шкале 0..10.
const CognitiveScale = 10

// BrainHealthScore combines the latest cognitive score (0..10) with one day's
// lifestyle factors into a composite 0..100 value. Each adjustment fires
// independently on its threshold; the result is clamped.
func BrainHealthScore(cognitiveScore float64, e *models.LifestyleEntry) float64 {
	score := cognitiveScore * 10

	if e.PhysicalActivity >= 3 {
		score += 15
	}
	if e.HealthyDiet >= 4 {
		score += 15
	}
	if e.SocialEngagement >= 2 {
		score += 10
	}
	if e.GoodSleep >= 5 {
		score += 10
	}
	if e.Smoking > 0 {
		score -= 20
	}
	if e.Alcohol > 7 {
		score -= 15
	}
	if e.Stress >= 4 {
		score -= 10
	}

	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

type recommendationRule struct {
	matches     func(score float64, e *models.LifestyleEntry) bool
	category    string
	title       string
	description string
	priority    models.RecommendationPriority
}

// Правила независимы, может сработать любое подмножество.
// Порядок вывода фиксирован порядком таблицы.
var recommendationRules = []recommendationRule{
	{
		matches:     func(score float64, e *models.LifestyleEntry) bool { return score < 70 },
		category:    "cognitive",
		title:       "Daily brain training",
		description: "Spend 15 minutes a day on memory and attention exercises: puzzles, reading, learning something new.",
		priority:    models.PriorityHigh,
	},
	{
		matches:     func(score float64, e *models.LifestyleEntry) bool { return e.PhysicalActivity < 3 },
		category:    "physical",
		title:       "Move more",
		description: "Aim for at least 30 minutes of moderate physical activity most days of the week.",
		priority:    models.PriorityMedium,
	},
	{
		matches:     func(score float64, e *models.LifestyleEntry) bool { return e.HealthyDiet < 4 },
		category:    "nutrition",
		title:       "Improve your diet",
		description: "Add more vegetables, fish and whole grains; cut back on processed food and sugar.",
		priority:    models.PriorityMedium,
	},
	{
		matches:     func(score float64, e *models.LifestyleEntry) bool { return e.GoodSleep < 5 },
		category:    "sleep",
		title:       "Improve sleep",
		description: "Try to get 7-8 hours of consistent, good-quality sleep every night.",
		priority:    models.PriorityHigh,
	},
	{
		matches:     func(score float64, e *models.LifestyleEntry) bool { return e.Stress >= 3 },
		category:    "stress",
		title:       "Manage stress",
		description: "Practice relaxation techniques such as breathing exercises, meditation or walks outdoors.",
		priority:    models.PriorityHigh,
	},
	{
		matches:     func(score float64, e *models.LifestyleEntry) bool { return e.SocialEngagement < 2 },
		category:    "social",
		title:       "Stay socially active",
		description: "Regular contact with family and friends protects cognitive health. Plan at least one social activity this week.",
		priority:    models.PriorityMedium,
	},
}

// GenerateRecommendations — чистая функция: тот же вход, тот же список.
func GenerateRecommendations(score float64, e *models.LifestyleEntry) []*models.Recommendation {
	var recs []*models.Recommendation
	for _, rule := range recommendationRules {
		if !rule.matches(score, e) {
			continue
		}
		recs = append(recs, &models.Recommendation{
			Category:    rule.category,
			Title:       rule.title,
			Description: rule.description,
			Priority:    rule.priority,
		})
	}
	return recs
}
