package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"brainhealth/internal/models"
)

func TestBrainHealthScore_AllPositiveFactors(t *testing.T) {
	e := &models.LifestyleEntry{
		PhysicalActivity: 3,
		HealthyDiet:      4,
		SocialEngagement: 2,
		GoodSleep:        5,
		Smoking:          0,
		Alcohol:          0,
		Stress:           0,
	}
	// все бонусы: cog*10 + 15+15+10+10, с клампом сверху
	assert.Equal(t, 100.0, BrainHealthScore(10, e))
	assert.Equal(t, 100.0, BrainHealthScore(6, e))
	assert.Equal(t, 90.0, BrainHealthScore(4, e))
	assert.Equal(t, 50.0, BrainHealthScore(0, e))
}

func TestBrainHealthScore_AllNegativeFactors(t *testing.T) {
	e := &models.LifestyleEntry{
		PhysicalActivity: 0,
		HealthyDiet:      0,
		SocialEngagement: 0,
		GoodSleep:        0,
		Smoking:          1,
		Alcohol:          8,
		Stress:           4,
	}
	// все штрафы: cog*10 - 20 - 15 - 10, с клампом снизу
	assert.Equal(t, 55.0, BrainHealthScore(10, e))
	assert.Equal(t, 5.0, BrainHealthScore(5, e))
	assert.Equal(t, 0.0, BrainHealthScore(4, e))
	assert.Equal(t, 0.0, BrainHealthScore(0, e))
}

func TestBrainHealthScore_ThresholdBoundaries(t *testing.T) {
	base := models.LifestyleEntry{}

	withActivity := base
	withActivity.PhysicalActivity = 2
	assert.Equal(t, 50.0, BrainHealthScore(5, &withActivity), "activity 2 is below threshold")
	withActivity.PhysicalActivity = 3
	assert.Equal(t, 65.0, BrainHealthScore(5, &withActivity), "activity 3 hits threshold")

	withAlcohol := base
	withAlcohol.Alcohol = 7
	assert.Equal(t, 50.0, BrainHealthScore(5, &withAlcohol), "alcohol 7 is still fine")
	withAlcohol.Alcohol = 8
	assert.Equal(t, 35.0, BrainHealthScore(5, &withAlcohol), "alcohol above 7 penalizes")

	withSmoking := base
	withSmoking.Smoking = 1
	assert.Equal(t, 30.0, BrainHealthScore(5, &withSmoking), "any smoking penalizes")
}

func TestBrainHealthScore_Clamped(t *testing.T) {
	for cog := 0.0; cog <= 10; cog++ {
		for activity := 0; activity <= 5; activity++ {
			for smoking := 0; smoking <= 2; smoking++ {
				e := &models.LifestyleEntry{PhysicalActivity: activity, Smoking: smoking}
				got := BrainHealthScore(cog, e)
				assert.GreaterOrEqual(t, got, 0.0)
				assert.LessOrEqual(t, got, 100.0)
			}
		}
	}
}

func TestBrainHealthScore_Pure(t *testing.T) {
	e := &models.LifestyleEntry{PhysicalActivity: 3, Stress: 4, Smoking: 1}
	first := BrainHealthScore(7, e)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, BrainHealthScore(7, e))
	}
}

func TestGenerateRecommendations_HealthyPatientGetsNone(t *testing.T) {
	e := &models.LifestyleEntry{
		PhysicalActivity: 4,
		HealthyDiet:      5,
		SocialEngagement: 3,
		GoodSleep:        7,
		Smoking:          0,
		Alcohol:          0,
		Stress:           1,
	}
	recs := GenerateRecommendations(90, e)
	assert.Empty(t, recs)
}

func TestGenerateRecommendations_AllRulesFire(t *testing.T) {
	e := &models.LifestyleEntry{
		PhysicalActivity: 1,
		HealthyDiet:      1,
		SocialEngagement: 0,
		GoodSleep:        2,
		Smoking:          1,
		Alcohol:          10,
		Stress:           5,
	}
	recs := GenerateRecommendations(5, e)

	assert.Len(t, recs, 6)
	categories := make([]string, 0, len(recs))
	for _, r := range recs {
		categories = append(categories, r.Category)
	}
	// порядок фиксирован таблицей правил
	assert.Equal(t, []string{"cognitive", "physical", "nutrition", "sleep", "stress", "social"}, categories)
}

func TestGenerateRecommendations_Priorities(t *testing.T) {
	e := &models.LifestyleEntry{
		PhysicalActivity: 1,
		HealthyDiet:      5,
		SocialEngagement: 3,
		GoodSleep:        2,
		Smoking:          0,
		Alcohol:          0,
		Stress:           0,
	}
	recs := GenerateRecommendations(80, e)

	assert.Len(t, recs, 2)
	assert.Equal(t, "physical", recs[0].Category)
	assert.Equal(t, models.PriorityMedium, recs[0].Priority)
	assert.Equal(t, "sleep", recs[1].Category)
	assert.Equal(t, models.PriorityHigh, recs[1].Priority)
}

func TestGenerateRecommendations_CognitiveRuleUsesCompositeScore(t *testing.T) {
	e := &models.LifestyleEntry{
		PhysicalActivity: 4,
		HealthyDiet:      5,
		SocialEngagement: 3,
		GoodSleep:        7,
	}
	assert.Empty(t, GenerateRecommendations(70, e), "70 is not below 70")

	recs := GenerateRecommendations(69.9, e)
	assert.Len(t, recs, 1)
	assert.Equal(t, "cognitive", recs[0].Category)
	assert.Equal(t, models.PriorityHigh, recs[0].Priority)
}
