// file: internals/features/attendance/availability/service/availability_service.go

// Package service loads resolver inputs from storage, picks the org's
// strategy, and owns the materialization write path.
package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	absenceModel "github.com/IdanZeman/Miuim-sub008/internals/features/attendance/absences/model"
	"github.com/IdanZeman/Miuim-sub008/internals/features/attendance/availability/engine"
	availModel "github.com/IdanZeman/Miuim-sub008/internals/features/attendance/availability/model"
	"github.com/IdanZeman/Miuim-sub008/internals/features/attendance/availability/strategy"
	blockageModel "github.com/IdanZeman/Miuim-sub008/internals/features/attendance/blockages/model"
	settingModel "github.com/IdanZeman/Miuim-sub008/internals/features/organizations/settings/model"
	personModel "github.com/IdanZeman/Miuim-sub008/internals/features/personnel/people/model"
	rotationModel "github.com/IdanZeman/Miuim-sub008/internals/features/personnel/rotations/model"
	"github.com/IdanZeman/Miuim-sub008/internals/helpers/dates"
)

type AvailabilityService struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *AvailabilityService {
	return &AvailabilityService{DB: db}
}

// ResolveInputs are all the org-wide rows the engine needs for one date.
// Loaded once per request and shared across every person on the board.
type ResolveInputs struct {
	Rotations []engine.RotationSchedule
	Absences  []engine.Absence
	Blockages []engine.Blockage
}

// LoadInputs pulls the date's rotations, absences and blockages in one go.
// Rotations come back ordered created_at ASC so the resolver's
// last-schedule-wins rule lands on the most recently created one.
func (s *AvailabilityService) LoadInputs(ctx context.Context, orgID uuid.UUID, day dates.DayKey) (ResolveInputs, error) {
	var in ResolveInputs

	var rotations []rotationModel.TeamRotationModel
	if err := s.DB.WithContext(ctx).
		Where("team_rotation_org_id = ?", orgID).
		Order("team_rotation_created_at ASC").
		Find(&rotations).Error; err != nil {
		return in, err
	}
	for _, r := range rotations {
		in.Rotations = append(in.Rotations, r.ToEngine())
	}

	var absences []absenceModel.AbsenceModel
	if err := s.DB.WithContext(ctx).
		Where("absence_org_id = ? AND absence_start_date <= ? AND absence_end_date >= ?", orgID, day.Time(), day.Time()).
		Find(&absences).Error; err != nil {
		return in, err
	}
	for _, a := range absences {
		in.Absences = append(in.Absences, a.ToEngine())
	}

	var blockages []blockageModel.HourlyBlockageModel
	if err := s.DB.WithContext(ctx).
		Where("hourly_blockage_org_id = ? AND hourly_blockage_date = ?", orgID, day.Time()).
		Find(&blockages).Error; err != nil {
		return in, err
	}
	for _, b := range blockages {
		in.Blockages = append(in.Blockages, b.ToEngine())
	}

	return in, nil
}

// StrategyFor reads the org's settings row and returns the matching strategy.
// Orgs without a settings row resolve on demand.
func (s *AvailabilityService) StrategyFor(ctx context.Context, orgID uuid.UUID) (strategy.Strategy, error) {
	var setting settingModel.OrganizationSettingModel
	err := s.DB.WithContext(ctx).
		Where("organization_setting_org_id = ?", orgID).
		First(&setting).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return strategy.OnDemand{}, nil
		}
		return nil, err
	}
	return strategy.ForVersion(
		string(setting.OrganizationSettingAvailabilityStrategy),
		&recordLookup{db: s.DB.WithContext(ctx), orgID: orgID},
	), nil
}

// recordLookup is the GORM-backed strategy.RecordLookup.
type recordLookup struct {
	db    *gorm.DB
	orgID uuid.UUID
}

func (l *recordLookup) Find(personID uuid.UUID, day dates.DayKey) (*engine.EffectiveAvailability, error) {
	var rec availModel.AvailabilityRecordModel
	err := l.db.
		Where("availability_record_org_id = ? AND availability_record_person_id = ? AND availability_record_date = ?",
			l.orgID, personID, day.Time()).
		First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	av, err := rec.ToEngine()
	if err != nil {
		return nil, err
	}
	return &av, nil
}

// ResolvePerson resolves one person for one date through the org's strategy.
func (s *AvailabilityService) ResolvePerson(ctx context.Context, orgID uuid.UUID, person personModel.PersonModel, day dates.DayKey) (engine.EffectiveAvailability, error) {
	strat, err := s.StrategyFor(ctx, orgID)
	if err != nil {
		return engine.EffectiveAvailability{}, err
	}
	in, err := s.LoadInputs(ctx, orgID, day)
	if err != nil {
		return engine.EffectiveAvailability{}, err
	}
	return strat.Resolve(person.ToEngine(), day, in.Rotations, in.Absences, in.Blockages)
}

// BoardEntry pairs a person with their resolved availability for the
// whole-org daily view.
type BoardEntry struct {
	Person       personModel.PersonModel      `json:"person"`
	Availability engine.EffectiveAvailability `json:"availability"`
}

// ResolveBoard resolves every active person in the org for one date, loading
// inputs once.
func (s *AvailabilityService) ResolveBoard(ctx context.Context, orgID uuid.UUID, day dates.DayKey) ([]BoardEntry, error) {
	strat, err := s.StrategyFor(ctx, orgID)
	if err != nil {
		return nil, err
	}
	in, err := s.LoadInputs(ctx, orgID, day)
	if err != nil {
		return nil, err
	}

	var people []personModel.PersonModel
	if err := s.DB.WithContext(ctx).
		Where("person_org_id = ? AND person_is_active = TRUE", orgID).
		Order("person_full_name ASC").
		Find(&people).Error; err != nil {
		return nil, err
	}

	entries := make([]BoardEntry, 0, len(people))
	for _, p := range people {
		av, err := strat.Resolve(p.ToEngine(), day, in.Rotations, in.Absences, in.Blockages)
		if err != nil {
			return nil, err
		}
		entries = append(entries, BoardEntry{Person: p, Availability: av})
	}
	return entries, nil
}

// Materialize recomputes the whole org for one date on demand (never through
// stale records) and rewrites availability_records in a single transaction.
// Returns the number of rows written.
func (s *AvailabilityService) Materialize(ctx context.Context, orgID uuid.UUID, day dates.DayKey) (int, error) {
	in, err := s.LoadInputs(ctx, orgID, day)
	if err != nil {
		return 0, err
	}

	var people []personModel.PersonModel
	if err := s.DB.WithContext(ctx).
		Where("person_org_id = ? AND person_is_active = TRUE", orgID).
		Find(&people).Error; err != nil {
		return 0, err
	}

	now := time.Now()
	rows := make([]availModel.AvailabilityRecordModel, 0, len(people))
	for _, p := range people {
		av := engine.Resolve(p.ToEngine(), day, in.Rotations, in.Absences, in.Blockages)
		row, err := availModel.FromEngine(orgID, p.PersonID, day, av)
		if err != nil {
			return 0, err
		}
		row.AvailabilityRecordComputedAt = now
		rows = append(rows, row)
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Drop rows for people who went inactive since the last run, then
		// upsert the fresh batch.
		if err := tx.
			Where("availability_record_org_id = ? AND availability_record_date = ?", orgID, day.Time()).
			Delete(&availModel.AvailabilityRecordModel{}).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "availability_record_org_id"},
				{Name: "availability_record_person_id"},
				{Name: "availability_record_date"},
			},
			UpdateAll: true,
		}).Create(&rows).Error
	})
	if err != nil {
		return 0, err
	}
	return len(rows), nil
}

// PrecomputedOrgIDs lists orgs whose settings request materialized records.
// The scheduler drives off this.
func (s *AvailabilityService) PrecomputedOrgIDs(ctx context.Context) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := s.DB.WithContext(ctx).
		Model(&settingModel.OrganizationSettingModel{}).
		Where("organization_setting_availability_strategy = ?", settingModel.StrategyPrecomputed).
		Pluck("organization_setting_org_id", &ids).Error
	return ids, err
}
