package trophies

import (
	"time"

	"github.com/google/uuid"
)

type TrophyType string

const (
	TrophyTypeCount    TrophyType = "count"
	TrophyTypeSequence TrophyType = "sequence"
	TrophyTypeVolume   TrophyType = "volume"
	TrophyTypeTime     TrophyType = "time"
	TrophyTypeDate     TrophyType = "date"
	TrophyTypeOther    TrophyType = "other"
)

// CheckerParams is the parameter bag a trophy hands to its checker,
// e.g. {"kg": 5000} or {"days": 7}
type CheckerParams map[string]float64

// Trophy is a catalog entry, not bound to any user
type Trophy struct {
	ID            uuid.UUID     `json:"id"`
	Name          string        `json:"name"`
	Description   string        `json:"description"`
	Type          TrophyType    `json:"type"`
	CheckerName   string        `json:"checkerName"`
	CheckerParams CheckerParams `json:"checkerParams,omitempty"`
	IsActive      bool          `json:"isActive"`
	IsHidden      bool          `json:"isHidden"`
	IsProgressive bool          `json:"isProgressive"`
	DisplayOrder  int           `json:"displayOrder"`
}

// UserTrophy records that a user earned a trophy. Its existence is the
// single source of truth for "earned"; one per (user, trophy) pair.
type UserTrophy struct {
	UserID     string    `json:"userId"`
	TrophyID   uuid.UUID `json:"trophyId"`
	EarnedAt   time.Time `json:"earnedAt"`
	Progress   float64   `json:"progress"`
	IsNotified bool      `json:"isNotified"`
}

type AwardResult struct {
	Trophy     Trophy     `json:"trophy"`
	UserTrophy UserTrophy `json:"userTrophy"`
}

// ProgressEntry is one row of a user's trophy progress report
type ProgressEntry struct {
	Trophy       Trophy     `json:"trophy"`
	Earned       bool       `json:"earned"`
	EarnedAt     *time.Time `json:"earnedAt,omitempty"`
	Progress     float64    `json:"progress"`
	CurrentValue float64    `json:"currentValue"`
	TargetValue  float64    `json:"targetValue"`
}

// ReevaluateResult sums up an administrative bulk rerun
type ReevaluateResult struct {
	UsersChecked    int `json:"usersChecked"`
	TrophiesAwarded int `json:"trophiesAwarded"`
}
