// file: internals/features/attendance/reports/controller/report_controller.go
package controller

import (
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/IdanZeman/Miuim-sub008/internals/features/attendance/availability/engine"
	"github.com/IdanZeman/Miuim-sub008/internals/features/attendance/availability/service"
	d "github.com/IdanZeman/Miuim-sub008/internals/features/attendance/reports/dto"
	snapshotModel "github.com/IdanZeman/Miuim-sub008/internals/features/attendance/snapshots/model"
	personModel "github.com/IdanZeman/Miuim-sub008/internals/features/personnel/people/model"
	teamModel "github.com/IdanZeman/Miuim-sub008/internals/features/personnel/teams/model"
	helper "github.com/IdanZeman/Miuim-sub008/internals/helpers"
	"github.com/IdanZeman/Miuim-sub008/internals/helpers/dates"
)

/* =========================
   Controller & Constructor
   ========================= */

type ReportController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Service  *service.AvailabilityService
}

func New(db *gorm.DB, v *validator.Validate) *ReportController {
	return &ReportController{DB: db, Validate: v, Service: service.New(db)}
}

func queryDay(c *fiber.Ctx) (dates.DayKey, error) {
	raw := strings.TrimSpace(c.Query("date"))
	if raw == "" {
		return dates.DayKeyOf(time.Now().UTC()), nil
	}
	return dates.ParseDayKey(raw)
}

// teamNames maps every team in the org (active or not) to its name so
// reports stay readable even for since-deactivated teams.
func (ctl *ReportController) teamNames(c *fiber.Ctx, orgID uuid.UUID) (map[uuid.UUID]string, error) {
	var teams []teamModel.TeamModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("team_org_id = ?", orgID).
		Find(&teams).Error; err != nil {
		return nil, err
	}
	names := make(map[uuid.UUID]string, len(teams))
	for _, t := range teams {
		names[t.TeamID] = t.TeamName
	}
	return names, nil
}

/* ========================= Change report ========================= */

// Changes compares a captured snapshot batch against freshly resolved
// availability for a date. Without ?batch_id= the most recent batch is used.
func (ctl *ReportController) Changes(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	day, err := queryDay(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid date, want YYYY-MM-DD")
	}

	batchID, err := ctl.resolveBatchID(c, orgID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var prior []snapshotModel.PresenceSnapshotModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("presence_snapshot_org_id = ? AND presence_snapshot_batch_id = ?", orgID, batchID).
		Find(&prior).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if len(prior) == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "snapshot batch not found")
	}
	records := make([]engine.SnapshotRecord, 0, len(prior))
	for _, row := range prior {
		records = append(records, engine.SnapshotRecord{
			PersonID:   row.PresenceSnapshotPersonID,
			Status:     row.PresenceSnapshotStatus,
			CapturedAt: row.PresenceSnapshotCapturedAt,
		})
	}

	var peopleRows []personModel.PersonModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("person_org_id = ? AND person_is_active = TRUE", orgID).
		Find(&peopleRows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	nameByID := make(map[uuid.UUID]string, len(peopleRows))
	people := make([]engine.Person, 0, len(peopleRows))
	for _, p := range peopleRows {
		nameByID[p.PersonID] = p.PersonFullName
		people = append(people, p.ToEngine())
	}

	strat, err := ctl.Service.StrategyFor(c.Context(), orgID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	in, err := ctl.Service.LoadInputs(c.Context(), orgID, day)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	changes, perTeam, err := engine.Diff(records, people, func(p engine.Person) (engine.EffectiveAvailability, error) {
		return strat.Resolve(p, day, in.Rotations, in.Absences, in.Blockages)
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	teamName, err := ctl.teamNames(c, orgID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	resp := d.ChangeReportResponse{
		BatchID:      batchID,
		Date:         day,
		Changes:      make([]d.StatusChangeResponse, 0, len(changes)),
		TotalChanges: len(changes),
	}
	for _, ch := range changes {
		resp.Changes = append(resp.Changes, d.StatusChangeResponse{
			PersonID:   ch.Person.ID,
			PersonName: nameByID[ch.Person.ID],
			TeamID:     ch.Person.TeamID,
			TeamName:   teamName[ch.Person.TeamID],
			From:       string(ch.From),
			To:         string(ch.To),
		})
	}
	for teamID, n := range perTeam {
		resp.TeamSummary = append(resp.TeamSummary, d.TeamChangeSummary{
			TeamID:   teamID,
			TeamName: teamName[teamID],
			Changes:  n,
		})
	}
	sort.Slice(resp.TeamSummary, func(i, j int) bool {
		return resp.TeamSummary[i].TeamName < resp.TeamSummary[j].TeamName
	})

	return helper.JsonOK(c, "change report", resp)
}

// resolveBatchID reads ?batch_id= or falls back to the org's newest batch.
func (ctl *ReportController) resolveBatchID(c *fiber.Ctx, orgID uuid.UUID) (uuid.UUID, error) {
	if raw := strings.TrimSpace(c.Query("batch_id")); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "invalid batch_id")
		}
		return id, nil
	}

	var latest snapshotModel.PresenceSnapshotModel
	err := ctl.DB.WithContext(c.Context()).
		Where("presence_snapshot_org_id = ?", orgID).
		Order("presence_snapshot_captured_at DESC").
		First(&latest).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, fiber.NewError(fiber.StatusNotFound, "no snapshot batches captured yet")
		}
		return uuid.Nil, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return latest.PresenceSnapshotBatchID, nil
}

/* ========================= Daily report ========================= */

// Daily summarizes the resolved board per team for one date.
func (ctl *ReportController) Daily(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	day, err := queryDay(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid date, want YYYY-MM-DD")
	}

	resp, err := ctl.buildDailyReport(c, orgID, day)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "daily report", resp)
}

func (ctl *ReportController) buildDailyReport(c *fiber.Ctx, orgID uuid.UUID, day dates.DayKey) (d.DailyReportResponse, error) {
	entries, err := ctl.Service.ResolveBoard(c.Context(), orgID, day)
	if err != nil {
		return d.DailyReportResponse{}, err
	}
	teamName, err := ctl.teamNames(c, orgID)
	if err != nil {
		return d.DailyReportResponse{}, err
	}

	byTeam := make(map[uuid.UUID]*d.TeamDailySummary)
	resp := d.DailyReportResponse{Date: day}
	for _, e := range entries {
		teamID := uuid.Nil
		if e.Person.PersonTeamID != nil {
			teamID = *e.Person.PersonTeamID
		}
		summary, ok := byTeam[teamID]
		if !ok {
			name := teamName[teamID]
			if name == "" {
				name = "unassigned"
			}
			summary = &d.TeamDailySummary{
				TeamID:   teamID,
				TeamName: name,
				ByStatus: make(map[string]int),
			}
			byTeam[teamID] = summary
		}

		summary.Total++
		summary.ByStatus[string(e.Availability.Status)]++
		resp.TotalPeople++
		if e.Availability.IsAvailable {
			summary.Available++
			resp.TotalAvailable++
		}
	}

	for _, summary := range byTeam {
		resp.Teams = append(resp.Teams, *summary)
	}
	sort.Slice(resp.Teams, func(i, j int) bool {
		return resp.Teams[i].TeamName < resp.Teams[j].TeamName
	})
	return resp, nil
}
