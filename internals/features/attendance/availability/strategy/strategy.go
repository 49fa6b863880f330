// file: internals/features/attendance/availability/strategy/strategy.go

// Package strategy selects between the two interchangeable availability
// computation modes: on-demand recomputation and precomputed materialized
// records. Callers hold one Strategy value and stay mode-agnostic.
package strategy

import (
	"strings"

	"github.com/google/uuid"

	"github.com/IdanZeman/Miuim-sub008/internals/features/attendance/availability/engine"
	"github.com/IdanZeman/Miuim-sub008/internals/helpers/dates"
)

const (
	VersionOnDemand    = "on_demand"
	VersionPrecomputed = "precomputed"
)

// Strategy is the uniform availability-resolution contract shared by both
// modes.
type Strategy interface {
	Resolve(
		person engine.Person,
		day dates.DayKey,
		rotations []engine.RotationSchedule,
		absences []engine.Absence,
		blockages []engine.Blockage,
	) (engine.EffectiveAvailability, error)
}

// RecordLookup reads a materialized per-person-per-date record. A nil result
// with nil error means no record exists for that date. Keeping this an
// interface keeps the package storage-free; the service layer provides the
// GORM-backed implementation.
type RecordLookup interface {
	Find(personID uuid.UUID, day dates.DayKey) (*engine.EffectiveAvailability, error)
}

// OnDemand recomputes through the engine on every call. Always consistent
// with the supplied records; cost scales with caller frequency.
type OnDemand struct{}

func (OnDemand) Resolve(
	person engine.Person,
	day dates.DayKey,
	rotations []engine.RotationSchedule,
	absences []engine.Absence,
	blockages []engine.Blockage,
) (engine.EffectiveAvailability, error) {
	return engine.Resolve(person, day, rotations, absences, blockages), nil
}

// Precomputed reads a materialized record and falls back to on-demand
// computation only when none exists for the date.
type Precomputed struct {
	Records RecordLookup
}

func (s Precomputed) Resolve(
	person engine.Person,
	day dates.DayKey,
	rotations []engine.RotationSchedule,
	absences []engine.Absence,
	blockages []engine.Blockage,
) (engine.EffectiveAvailability, error) {
	if s.Records != nil {
		rec, err := s.Records.Find(person.ID, day)
		if err != nil {
			return engine.EffectiveAvailability{}, err
		}
		if rec != nil {
			return *rec, nil
		}
	}
	return engine.Resolve(person, day, rotations, absences, blockages), nil
}

// ForVersion maps an organization's stored strategy value to an
// implementation. Unknown or empty values fall back to on-demand, which is
// always correct.
func ForVersion(version string, records RecordLookup) Strategy {
	switch strings.ToLower(strings.TrimSpace(version)) {
	case VersionPrecomputed:
		return Precomputed{Records: records}
	default:
		return OnDemand{}
	}
}
