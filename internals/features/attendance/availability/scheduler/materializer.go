// file: internals/features/attendance/availability/scheduler/materializer.go
package scheduler

import (
	"context"
	"os"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/IdanZeman/Miuim-sub008/internals/features/attendance/availability/service"
	"github.com/IdanZeman/Miuim-sub008/internals/helpers/dates"
	"github.com/IdanZeman/Miuim-sub008/internals/logger"
)

// StartAvailabilityMaterializer keeps availability_records warm for every
// org configured with the precomputed strategy: each pass rewrites today
// and tomorrow, so reads stay one worker-interval fresh at worst.
func StartAvailabilityMaterializer(db *gorm.DB) {
	go func() {
		intervalMin := 60
		if val := os.Getenv("AVAILABILITY_MATERIALIZER_INTERVAL_MINUTES"); val != "" {
			if parsed, err := strconv.Atoi(val); err == nil && parsed > 0 {
				intervalMin = parsed
			}
		}

		log := logger.GetLogger("materializer")
		svc := service.New(db)

		for {
			runMaterializerPass(svc, log)
			time.Sleep(time.Duration(intervalMin) * time.Minute)
		}
	}()
}

func runMaterializerPass(svc *service.AvailabilityService, log *logrus.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	orgIDs, err := svc.PrecomputedOrgIDs(ctx)
	if err != nil {
		log.WithError(err).Error("❌ failed to list precomputed orgs")
		return
	}
	if len(orgIDs) == 0 {
		log.Debug("no precomputed orgs, skipping pass")
		return
	}

	today := dates.DayKeyOf(time.Now().UTC())
	for _, orgID := range orgIDs {
		for _, day := range []dates.DayKey{today, today.AddDays(1)} {
			written, err := svc.Materialize(ctx, orgID, day)
			if err != nil {
				log.WithError(err).
					WithField("org_id", orgID).
					WithField("date", day).
					Error("❌ materialization failed")
				continue
			}
			log.WithFields(logrus.Fields{
				"org_id":  orgID,
				"date":    day,
				"records": written,
			}).Info("✅ availability materialized")
		}
	}
}
