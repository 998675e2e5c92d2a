package services

import (
	"testing"

	"github.com/zhu243450/food-buddies-sub001/models"

	"github.com/stretchr/testify/assert"
)

func coord(v float64) *float64 {
	return &v
}

func emptyHistory() ParticipationHistory {
	return ParticipationHistory{
		CuisineFrequency:  map[string]int{},
		LocationFrequency: map[string]int{},
	}
}

func TestScoreDinnersNilProfile(t *testing.T) {
	candidates := []models.DinnerEvent{
		{DinnerID: "d1", FoodPreferences: []string{"川菜"}},
		{DinnerID: "d2", FoodPreferences: []string{"火锅"}},
	}

	scores := ScoreDinners(nil, emptyHistory(), candidates)

	assert.NotNil(t, scores)
	assert.Empty(t, scores, "nil profile must short-circuit to an empty map")
}

func TestScoreCappedAt99(t *testing.T) {
	profile := &models.UserProfile{
		UserID:              "u1",
		FoodPreferences:     []string{"川菜"},
		PersonalityTags:     []string{"外向"},
		DietaryRestrictions: []string{"不吃猪肉"},
		Latitude:            coord(39.9),
		Longitude:           coord(116.4),
	}
	history := ParticipationHistory{
		CuisineFrequency:  map[string]int{"川菜": 3},
		LocationFrequency: map[string]int{"北京市": 2},
	}
	candidate := models.DinnerEvent{
		DinnerID:            "d1",
		FoodPreferences:     []string{"川菜"},
		PersonalityTags:     []string{"外向"},
		DietaryRestrictions: []string{"不吃猪肉"},
		Location:            "北京市海淀区五道口",
	}

	// Every signal maxes out: 35 + 25 + (12+8) + 10 + 10 = 100, capped.
	scores := ScoreDinners(profile, history, []models.DinnerEvent{candidate})
	assert.Equal(t, 99, scores["d1"])
}

func TestFoodOverlapAlone(t *testing.T) {
	profile := &models.UserProfile{
		UserID:          "u1",
		FoodPreferences: []string{"川菜", "火锅"},
	}
	candidate := models.DinnerEvent{
		DinnerID:        "d1",
		FoodPreferences: []string{"火锅", "川菜"},
	}

	scores := ScoreDinners(profile, emptyHistory(), []models.DinnerEvent{candidate})
	assert.Equal(t, 35, scores["d1"])
}

func TestFoodOverlapCaseInsensitive(t *testing.T) {
	profile := &models.UserProfile{
		UserID:          "u1",
		FoodPreferences: []string{"Sichuan", "Hotpot"},
	}
	candidate := models.DinnerEvent{
		DinnerID:        "d1",
		FoodPreferences: []string{"sichuan", "HOTPOT"},
	}

	scores := ScoreDinners(profile, emptyHistory(), []models.DinnerEvent{candidate})
	assert.Equal(t, 35, scores["d1"])
}

func TestFoodOverlapPartialRounding(t *testing.T) {
	profile := &models.UserProfile{
		UserID:          "u1",
		FoodPreferences: []string{"川菜"},
	}
	candidate := models.DinnerEvent{
		DinnerID:        "d1",
		FoodPreferences: []string{"川菜", "烧烤", "日料"},
	}

	// round(1/3 * 35) = 12
	scores := ScoreDinners(profile, emptyHistory(), []models.DinnerEvent{candidate})
	assert.Equal(t, 12, scores["d1"])
}

func TestDietaryFlatBonusForPermissiveProfile(t *testing.T) {
	profile := &models.UserProfile{UserID: "u1"}
	candidate := models.DinnerEvent{
		DinnerID:            "d1",
		DietaryRestrictions: []string{"素食"},
	}

	// No restrictions at all, candidate declares some: flat 5, never more.
	scores := ScoreDinners(profile, emptyHistory(), []models.DinnerEvent{candidate})
	assert.Equal(t, 5, scores["d1"])
}

func TestDietaryNoCandidateRestrictions(t *testing.T) {
	profile := &models.UserProfile{
		UserID:              "u1",
		DietaryRestrictions: []string{"不吃辣"},
	}
	candidate := models.DinnerEvent{DinnerID: "d1"}

	scores := ScoreDinners(profile, emptyHistory(), []models.DinnerEvent{candidate})
	assert.Equal(t, 0, scores["d1"])
}

func TestDietaryBinaryAwardNoDoubleCounting(t *testing.T) {
	profile := &models.UserProfile{
		UserID:              "u1",
		DietaryRestrictions: []string{"不吃猪肉", "不吃辣"},
	}
	candidate := models.DinnerEvent{
		DinnerID:            "d1",
		DietaryRestrictions: []string{"不吃猪肉", "不吃辣", "素食"},
	}

	// Two restrictions match but the award stays exactly 10.
	scores := ScoreDinners(profile, emptyHistory(), []models.DinnerEvent{candidate})
	assert.Equal(t, 10, scores["d1"])
}

func TestProximityBonusWithoutLocation(t *testing.T) {
	profile := &models.UserProfile{
		UserID:    "u1",
		Latitude:  coord(31.2),
		Longitude: coord(121.5),
	}
	candidate := models.DinnerEvent{DinnerID: "d1"}

	// Declared coordinates earn the flat 8 even when the candidate has no
	// venue string.
	scores := ScoreDinners(profile, emptyHistory(), []models.DinnerEvent{candidate})
	assert.Equal(t, 8, scores["d1"])
}

func TestLocalityHistoryAffinity(t *testing.T) {
	profile := &models.UserProfile{UserID: "u1"}
	history := ParticipationHistory{
		CuisineFrequency:  map[string]int{},
		LocationFrequency: map[string]int{"北京市": 4, "上海市": 2},
	}

	scores := ScoreDinners(profile, history, []models.DinnerEvent{
		{DinnerID: "beijing", Location: "北京市朝阳区建国路"},
		{DinnerID: "shanghai", Location: "上海市浦东新区"},
		{DinnerID: "chengdu", Location: "成都市锦江区"},
	})

	assert.Equal(t, 12, scores["beijing"])  // round(4/4 * 12)
	assert.Equal(t, 6, scores["shanghai"])  // round(2/4 * 12)
	assert.Equal(t, 0, scores["chengdu"])   // locality never seen
}

func TestLocalityKey(t *testing.T) {
	cases := []struct {
		location string
		want     string
	}{
		{"北京市朝阳区建国路", "北京市"}, // 市 wins over the later 区
		{"Main Street 123", "Main"},
		{"朝阳区望京", "朝阳区"},
		{"武功县城关镇", "武功县"},
		{"汉口", "汉口"},
		{"", ""},
		// 市 is probed first across the whole string, so a later 市 beats
		// an earlier 区.
		{"望京区商场市", "望京区商场市"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, LocalityKey(tc.location), "location %q", tc.location)
	}
}

func TestBuildParticipationHistory(t *testing.T) {
	events := []models.DinnerEvent{
		{DinnerID: "d1", FoodPreferences: []string{"川菜", "火锅"}, Location: "北京市朝阳区"},
		{DinnerID: "d2", FoodPreferences: []string{"川菜"}, Location: "Main Street 123"},
		{DinnerID: "d3"},
	}

	history := BuildParticipationHistory(events)

	assert.Equal(t, map[string]int{"川菜": 2, "火锅": 1}, history.CuisineFrequency)
	assert.Equal(t, map[string]int{"北京市": 1, "Main": 1}, history.LocationFrequency)
}

func TestScoreDeterminism(t *testing.T) {
	profile := &models.UserProfile{
		UserID:          "u1",
		FoodPreferences: []string{"川菜", "火锅"},
		PersonalityTags: []string{"安静"},
		Latitude:        coord(39.9),
		Longitude:       coord(116.4),
	}
	history := ParticipationHistory{
		CuisineFrequency:  map[string]int{"川菜": 3, "烧烤": 1},
		LocationFrequency: map[string]int{"北京市": 2},
	}
	candidates := []models.DinnerEvent{
		{DinnerID: "d1", FoodPreferences: []string{"川菜"}, Location: "北京市海淀区"},
		{DinnerID: "d2", FoodPreferences: []string{"烧烤"}, PersonalityTags: []string{"安静", "热闹"}},
	}

	first := ScoreDinners(profile, history, candidates)
	second := ScoreDinners(profile, history, candidates)
	assert.Equal(t, first, second)
}

func TestAddingMatchingTagNeverLowersScore(t *testing.T) {
	profile := &models.UserProfile{
		UserID:          "u1",
		FoodPreferences: []string{"川菜", "火锅"},
	}

	without := models.DinnerEvent{DinnerID: "d1", FoodPreferences: []string{"烧烤"}}
	with := models.DinnerEvent{DinnerID: "d1", FoodPreferences: []string{"烧烤", "川菜"}}

	base := ScoreDinners(profile, emptyHistory(), []models.DinnerEvent{without})["d1"]
	bumped := ScoreDinners(profile, emptyHistory(), []models.DinnerEvent{with})["d1"]

	assert.GreaterOrEqual(t, bumped, base)
}

func TestScoreRange(t *testing.T) {
	profile := &models.UserProfile{
		UserID:              "u1",
		FoodPreferences:     []string{"川菜", "火锅", "日料"},
		PersonalityTags:     []string{"外向"},
		DietaryRestrictions: []string{"不吃辣"},
		Latitude:            coord(39.9),
		Longitude:           coord(116.4),
	}
	history := ParticipationHistory{
		CuisineFrequency:  map[string]int{"川菜": 5, "火锅": 2},
		LocationFrequency: map[string]int{"北京市": 3},
	}
	candidates := []models.DinnerEvent{
		{DinnerID: "d1"},
		{DinnerID: "d2", FoodPreferences: []string{"川菜", "火锅", "日料"}, Location: "北京市朝阳区", PersonalityTags: []string{"外向"}, DietaryRestrictions: []string{"不吃辣"}},
		{DinnerID: "d3", FoodPreferences: []string{"粤菜"}, Location: "广州市天河区"},
		{DinnerID: "d4", DietaryRestrictions: []string{"素食"}},
	}

	scores := ScoreDinners(profile, history, candidates)

	assert.Len(t, scores, len(candidates), "every candidate gets exactly one score")
	for id, score := range scores {
		assert.GreaterOrEqual(t, score, 0, "score for %s", id)
		assert.LessOrEqual(t, score, 99, "score for %s", id)
	}
}

func TestEndToEndScenario(t *testing.T) {
	profile := &models.UserProfile{
		UserID:          "u1",
		FoodPreferences: []string{"川菜", "火锅"},
	}
	history := ParticipationHistory{
		CuisineFrequency:  map[string]int{"川菜": 3},
		LocationFrequency: map[string]int{},
	}
	candidate := models.DinnerEvent{
		DinnerID:        "d1",
		FoodPreferences: []string{"川菜"},
	}

	// food 35 + cuisine affinity 25; locality, personality and dietary all
	// fail their guards (the flat dietary 5 needs the candidate to declare
	// restrictions, which it does not).
	scores := ScoreDinners(profile, history, []models.DinnerEvent{candidate})
	assert.Equal(t, 60, scores["d1"])
}
