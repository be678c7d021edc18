package domain

import (
	"regexp"
	"strconv"
)

// Exercise categories as shown in the library UI.
const (
	CategoryUpperBody = "Upper Body"
	CategoryLowerBody = "Lower Body"
	CategoryCore      = "Core"
	CategoryCardio    = "Cardio"
)

// AgeRangeAll marks an exercise as suitable for every age.
const AgeRangeAll = "All Ages"

// Exercise is a catalog entry. Entries are reference data: seeded at startup
// or created via the API, never updated or deleted afterwards.
type Exercise struct {
	ID            int            `bson:"_id" json:"id"`
	Name          string         `bson:"name" json:"name"`
	Description   string         `bson:"description" json:"description"`
	ImageURL      string         `bson:"imageUrl" json:"imageUrl"`
	VideoURL      string         `bson:"videoUrl,omitempty" json:"videoUrl,omitempty"`
	Instructions  []Instruction  `bson:"instructions" json:"instructions"`
	Category      string         `bson:"category" json:"category"`     // e.g. "Upper Body"
	Difficulty    string         `bson:"difficulty" json:"difficulty"` // "Beginner", "Intermediate", "Advanced", "All Levels"
	AgeRange      string         `bson:"ageRange" json:"ageRange"`     // "All Ages" or "Age <min>-<max>"
	MuscleGroups  string         `bson:"muscleGroups" json:"muscleGroups"`
	Modifications []Modification `bson:"modifications" json:"modifications"`
}

// Instruction is one ordered step of performing an exercise.
type Instruction struct {
	Step        int    `bson:"step" json:"step"`
	Title       string `bson:"title" json:"title"`
	Description string `bson:"description" json:"description"`
	KeyPoint    string `bson:"keyPoint" json:"keyPoint"`
}

// Modification is an easier or harder variant of an exercise.
type Modification struct {
	Type        string `bson:"type" json:"type"` // "easier" or "harder"
	Name        string `bson:"name" json:"name"`
	Description string `bson:"description" json:"description"`
}

var ageRangePattern = regexp.MustCompile(`Age (\d+)-(\d+)`)

// ParseAgeRange extracts the inclusive [min, max] range encoded in an
// exercise's AgeRange string. Returns ok=false for "All Ages" and for any
// string that does not match the "Age <min>-<max>" form.
func ParseAgeRange(ageRange string) (min, max int, ok bool) {
	m := ageRangePattern.FindStringSubmatch(ageRange)
	if m == nil {
		return 0, 0, false
	}
	min, _ = strconv.Atoi(m[1]) // digits guaranteed by the pattern
	max, _ = strconv.Atoi(m[2])
	return min, max, true
}

// MatchesAgeRange reports whether the exercise suits the queried age span:
// "All Ages" always matches, an encoded range matches when it overlaps
// [minAge, maxAge], and an unparsable range never matches.
func (e *Exercise) MatchesAgeRange(minAge, maxAge int) bool {
	if e.AgeRange == AgeRangeAll {
		return true
	}
	exMin, exMax, ok := ParseAgeRange(e.AgeRange)
	if !ok {
		return false
	}
	return minAge <= exMax && maxAge >= exMin
}
