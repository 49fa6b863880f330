// file: internals/features/attendance/availability/controller/availability_controller.go
package controller

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	d "github.com/IdanZeman/Miuim-sub008/internals/features/attendance/availability/dto"
	"github.com/IdanZeman/Miuim-sub008/internals/features/attendance/availability/engine"
	"github.com/IdanZeman/Miuim-sub008/internals/features/attendance/availability/service"
	personModel "github.com/IdanZeman/Miuim-sub008/internals/features/personnel/people/model"
	helper "github.com/IdanZeman/Miuim-sub008/internals/helpers"
	"github.com/IdanZeman/Miuim-sub008/internals/helpers/dates"
)

/* =========================
   Controller & Constructor
   ========================= */

type AvailabilityController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Service  *service.AvailabilityService
}

func New(db *gorm.DB, v *validator.Validate) *AvailabilityController {
	return &AvailabilityController{DB: db, Validate: v, Service: service.New(db)}
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	idStr := strings.TrimSpace(c.Params(name))
	if idStr == "" {
		return uuid.Nil, fmt.Errorf("%s is required", name)
	}
	return uuid.Parse(idStr)
}

// queryDay reads ?date=YYYY-MM-DD, defaulting to today (UTC).
func queryDay(c *fiber.Ctx) (dates.DayKey, error) {
	raw := strings.TrimSpace(c.Query("date"))
	if raw == "" {
		return dates.DayKeyOf(time.Now().UTC()), nil
	}
	return dates.ParseDayKey(raw)
}

func (ctl *AvailabilityController) loadPerson(c *fiber.Ctx, orgID uuid.UUID) (personModel.PersonModel, error) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return personModel.PersonModel{}, fiber.NewError(fiber.StatusBadRequest, "invalid person id")
	}
	var person personModel.PersonModel
	err = ctl.DB.WithContext(c.Context()).
		Where("person_id = ? AND person_org_id = ?", id, orgID).
		First(&person).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return personModel.PersonModel{}, fiber.NewError(fiber.StatusNotFound, "person not found")
		}
		return personModel.PersonModel{}, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return person, nil
}

/* ========================= Person availability ========================= */

// GetPersonAvailability answers one person's effective availability for a
// date through the org's configured strategy.
func (ctl *AvailabilityController) GetPersonAvailability(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	day, err := queryDay(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid date, want YYYY-MM-DD")
	}
	person, err := ctl.loadPerson(c, orgID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	av, err := ctl.Service.ResolvePerson(c.Context(), orgID, person, day)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "availability resolved", d.PersonAvailabilityResponse{
		PersonID:     person.PersonID,
		Date:         day,
		Availability: av,
	})
}

/* ========================= Point-in-time presence ========================= */

// GetPersonPresence answers whether a person is on base at a given
// HH:MM within a date. Pending blockages do not exclude.
func (ctl *AvailabilityController) GetPersonPresence(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	day, err := queryDay(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid date, want YYYY-MM-DD")
	}
	timeStr := strings.TrimSpace(c.Query("time"))
	if timeStr == "" {
		timeStr = time.Now().UTC().Format("15:04")
	}
	minute, err := dates.ParseMinuteOfDay(timeStr)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid time, want HH:MM")
	}
	person, err := ctl.loadPerson(c, orgID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	av, err := ctl.Service.ResolvePerson(c.Context(), orgID, person, day)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "presence resolved", d.PersonPresenceResponse{
		PersonID: person.PersonID,
		Date:     day,
		Time:     timeStr,
		Present:  engine.IsPresentAt(av, minute),
	})
}

/* ========================= Board ========================= */

// GetBoard resolves the whole org for one date.
func (ctl *AvailabilityController) GetBoard(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	day, err := queryDay(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid date, want YYYY-MM-DD")
	}

	entries, err := ctl.Service.ResolveBoard(c.Context(), orgID, day)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "board resolved", fiber.Map{
		"date":   day,
		"people": entries,
		"total":  len(entries),
	})
}

/* ========================= Materialize ========================= */

// Materialize rewrites the org's availability_records for one date.
// Admin-only; the scheduler calls the same service path.
func (ctl *AvailabilityController) Materialize(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req d.MaterializeRequest
	if err := helper.BindAndValidate(c, ctl.Validate, &req); err != nil {
		return helper.FromFiberError(c, err)
	}
	day, err := dates.ParseDayKey(req.Date)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid date, want YYYY-MM-DD")
	}

	written, err := ctl.Service.Materialize(c.Context(), orgID, day)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "availability materialized", d.MaterializeResponse{
		Date:           day,
		RecordsWritten: written,
	})
}
