package domain

import (
	"time"

	"github.com/Cameron8325/teahouse-booking/pkg/types"
)

// DayType represents the kind of offering assigned to a calendar day
type DayType string

const (
	TypeTeaTasting       DayType = "tea_tasting"
	TypeIntroGongfu      DayType = "intro_gongfu"
	TypeGuidedMeditation DayType = "guided_meditation"
)

// dayTypeLabels closed table of human-readable labels per offering type
// Adding a new offering requires updating this table and dayTypeColors, nowhere else
var dayTypeLabels = map[DayType]string{
	TypeTeaTasting:       "Tea Tasting",
	TypeIntroGongfu:      "Intro to Gongfu",
	TypeGuidedMeditation: "Guided Meditation",
}

// dayTypeColors closed table of calendar color keys per offering type
var dayTypeColors = map[DayType]string{
	TypeTeaTasting:       "green",
	TypeIntroGongfu:      "orange",
	TypeGuidedMeditation: "purple",
}

// AllDayTypes returns the closed list of offering types in a stable order
func AllDayTypes() []DayType {
	return []DayType{TypeTeaTasting, TypeIntroGongfu, TypeGuidedMeditation}
}

// IsValid returns true if the type belongs to the closed enumeration
func (t DayType) IsValid() bool {
	_, ok := dayTypeLabels[t]
	return ok
}

// Label returns the human-readable label of the offering type
func (t DayType) Label() string {
	return dayTypeLabels[t]
}

// ColorKey returns the calendar color key of the offering type
func (t DayType) ColorKey() string {
	return dayTypeColors[t]
}

// AvailableDay binds one calendar date to one offering type
// At most one record exists per date
type AvailableDay struct {
	ID        int64
	Date      types.DateString
	Type      DayType
	CreatedAt time.Time
	UpdatedAt time.Time
}

// AvailabilityBlock is a derived, non-persisted run of consecutive
// same-type available days, used for compact display and editing
type AvailabilityBlock struct {
	StartDate types.DateString
	EndDate   types.DateString
	Type      DayType
	Days      int
}

// IsSingleDay returns true if the block covers exactly one date
func (b *AvailabilityBlock) IsSingleDay() bool {
	return b.StartDate == b.EndDate
}
