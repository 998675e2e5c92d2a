package services

import (
	"context"
	"math"
	"strings"

	"github.com/zhu243450/food-buddies-sub001/models"
)

// Signal weights; every ceiling is added to the denominator whether or not
// the signal's guard fires, so the denominator is always weightTotal.
const (
	weightFoodOverlap     = 35
	weightCuisineAffinity = 25
	weightLocality        = 20
	weightPersonality     = 10
	weightDietary         = 10

	weightTotal = weightFoodOverlap + weightCuisineAffinity + weightLocality + weightPersonality + weightDietary

	localityHistoryWeight  = 12
	localityProximityBonus = 8
	dietaryPermissiveBonus = 5

	maxMatchScore = 99
)

// localityMarkers are probed in this exact order; the first one present in
// the string wins, regardless of where the others appear.
var localityMarkers = []rune{'市', '区', '县'}

// ParticipationHistory is the in-memory frequency view of a user's past
// dinners, rebuilt from the full participation list on every request.
type ParticipationHistory struct {
	CuisineFrequency  map[string]int
	LocationFrequency map[string]int
}

type RecommendationService struct {
	Profiles *UserProfileService
	Dinners  *DinnerService
}

// LocalityKey normalizes a free-text venue string into a coarse grouping
// key: the prefix up to and including the first city/district/county
// marker, or the first 4 characters when no marker is present. This is a
// lossy heuristic, not geocoding.
func LocalityKey(location string) string {
	for _, marker := range localityMarkers {
		if idx := strings.IndexRune(location, marker); idx >= 0 {
			return location[:idx+len(string(marker))]
		}
	}

	runes := []rune(location)
	if len(runes) > 4 {
		runes = runes[:4]
	}
	return string(runes)
}

// BuildParticipationHistory reduces a user's past dinners to frequency
// maps. Each cuisine tag on an event counts once per event; each event
// with a location counts once toward its locality key.
func BuildParticipationHistory(events []models.DinnerEvent) ParticipationHistory {
	history := ParticipationHistory{
		CuisineFrequency:  make(map[string]int),
		LocationFrequency: make(map[string]int),
	}

	for _, event := range events {
		for _, tag := range event.FoodPreferences {
			history.CuisineFrequency[tag]++
		}
		if event.Location != "" {
			history.LocationFrequency[LocalityKey(event.Location)]++
		}
	}

	return history
}

// ScoreDinners computes a 0-99 match score for every candidate dinner. A
// nil profile (new or signed-out user) short-circuits to an empty map.
// Candidates are scored independently; the function is deterministic and
// performs no I/O.
func ScoreDinners(profile *models.UserProfile, history ParticipationHistory, candidates []models.DinnerEvent) map[string]int {
	scores := make(map[string]int)
	if profile == nil {
		return scores
	}

	for _, candidate := range candidates {
		scores[candidate.DinnerID] = scoreDinner(profile, history, candidate)
	}
	return scores
}

func scoreDinner(profile *models.UserProfile, history ParticipationHistory, candidate models.DinnerEvent) int {
	var raw, max float64

	// Food-preference overlap: fraction of the candidate's tags the user
	// has declared.
	max += weightFoodOverlap
	if len(profile.FoodPreferences) > 0 && len(candidate.FoodPreferences) > 0 {
		prefs := foldedSet(profile.FoodPreferences)
		matched := 0
		for _, tag := range candidate.FoodPreferences {
			if prefs[strings.ToLower(tag)] {
				matched++
			}
		}
		raw += math.Round(float64(matched) / float64(len(candidate.FoodPreferences)) * weightFoodOverlap)
	}

	// Historical cuisine affinity: candidate tag frequencies normalized
	// against the user's single most-frequent cuisine.
	max += weightCuisineAffinity
	if len(history.CuisineFrequency) > 0 && len(candidate.FoodPreferences) > 0 {
		sum := 0
		for _, tag := range candidate.FoodPreferences {
			sum += history.CuisineFrequency[tag]
		}
		peak := maxFrequency(history.CuisineFrequency) // >= 1, map is non-empty
		raw += math.Round(float64(sum) / float64(len(candidate.FoodPreferences)*peak) * weightCuisineAffinity)
	}

	// Locality affinity: up to 12 points for venues in localities the user
	// frequents, plus a flat 8 once the user has declared coordinates at
	// all (no per-event coordinates exist to compare against).
	max += weightLocality
	if candidate.Location != "" {
		if count := history.LocationFrequency[LocalityKey(candidate.Location)]; count > 0 {
			peak := maxFrequency(history.LocationFrequency)
			raw += math.Round(float64(count) / float64(peak) * localityHistoryWeight)
		}
	}
	if profile.Latitude != nil && profile.Longitude != nil {
		raw += localityProximityBonus
	}

	// Personality-tag overlap
	max += weightPersonality
	if len(profile.PersonalityTags) > 0 && len(candidate.PersonalityTags) > 0 {
		tags := foldedSet(profile.PersonalityTags)
		matched := 0
		for _, tag := range candidate.PersonalityTags {
			if tags[strings.ToLower(tag)] {
				matched++
			}
		}
		raw += math.Round(float64(matched) / float64(len(candidate.PersonalityTags)) * weightPersonality)
	}

	// Dietary compatibility: binary full award on any explicit match; a
	// user with no restrictions gets a flat 5 against any candidate that
	// declares some. Both branches require the candidate to list at least
	// one restriction.
	max += weightDietary
	if len(candidate.DietaryRestrictions) > 0 {
		if len(profile.DietaryRestrictions) > 0 {
			listed := foldedSet(candidate.DietaryRestrictions)
			for _, restriction := range profile.DietaryRestrictions {
				if listed[strings.ToLower(restriction)] {
					raw += weightDietary
					break
				}
			}
		} else {
			raw += dietaryPermissiveBonus
		}
	}

	// The denominator is currently always weightTotal, but the division
	// stays explicit in case a ceiling ever becomes conditional.
	score := int(math.Round(raw / max * 100))
	if score > maxMatchScore {
		score = maxMatchScore
	}
	return score
}

func foldedSet(tags []string) map[string]bool {
	set := make(map[string]bool, len(tags))
	for _, tag := range tags {
		set[strings.ToLower(tag)] = true
	}
	return set
}

func maxFrequency(freq map[string]int) int {
	peak := 0
	for _, count := range freq {
		if count > peak {
			peak = count
		}
	}
	return peak
}

// ScoreOpenDinners gathers the three scoring inputs for a user and runs
// the scorer over every open dinner. A user without a profile yields an
// empty map without touching the dinner tables.
func (rs *RecommendationService) ScoreOpenDinners(ctx context.Context, userID string) (map[string]int, error) {
	profile, err := rs.Profiles.GetUserProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return map[string]int{}, nil
	}

	pastDinners, err := rs.Dinners.GetUserDinnerHistory(ctx, userID)
	if err != nil {
		return nil, err
	}
	history := BuildParticipationHistory(pastDinners)

	candidates, err := rs.Dinners.ListOpenDinners(ctx)
	if err != nil {
		return nil, err
	}

	return ScoreDinners(profile, history, candidates), nil
}
