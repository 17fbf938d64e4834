package store

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"go.uber.org/zap"

	"github.com/storhub/bqsync/pkg/entity"
	"github.com/storhub/bqsync/pkg/logger"
	"github.com/storhub/bqsync/pkg/syncerrors"
)

var unitColumns = []string{
	"facility_id",
	"facility_name",
	"unit_id",
	"unit_name",
	"unit_type",
	"unit_features",
	"pg_id",
	"pricing_group",
	"rate_managed",
	"unit_floor_num",
	"unit_building_name",
	"unit_width",
	"unit_depth",
	"unit_height",
	"is_leased",
	"is_insurable",
	"is_rentable",
	"is_overlocked",
	"unit_unrentable_reason",
	"unit_unrentable_note",
	"unit_keypad_zone",
	"unit_time_zone",
	"web_rate_override",
	"strikethrough_price_override",
	"walk_in_rate_override",
}

// unitUpdateColumns are refreshed on conflict. The natural key and the
// original created_at are left alone.
func unitUpdateColumns() []string {
	cols := make([]string, 0, len(unitColumns))
	for _, col := range unitColumns {
		if col == "unit_id" {
			continue
		}
		cols = append(cols, col)
	}
	return append(cols, "updated_at")
}

// UpsertUnits writes units one at a time, updating rows in place keyed by
// unit_id. The first failure aborts the remainder so a partial batch never
// masks a destination problem.
func (s *Store) UpsertUnits(ctx context.Context, units []entity.Unit) error {
	log := logger.WithContext(ctx).With(zap.String("table", "units"))

	if len(units) == 0 {
		log.Debug("no rows to load")
		return nil
	}

	suffix := "ON CONFLICT (unit_id) DO UPDATE SET " + upsertAssignments(unitUpdateColumns())
	columns := append(append([]string{}, unitColumns...), "created_at", "updated_at")

	start := time.Now()
	for i := range units {
		u := &units[i]
		ts := now()

		query, args, err := psql.Insert("units").
			Columns(columns...).
			Values(
				u.FacilityID,
				u.FacilityName,
				u.UnitID,
				u.UnitName,
				u.UnitType,
				u.UnitFeatures,
				u.PgID,
				u.PricingGroup,
				u.RateManaged,
				u.UnitFloorNum,
				u.UnitBuildingName,
				u.UnitWidth,
				u.UnitDepth,
				u.UnitHeight,
				u.IsLeased,
				u.IsInsurable,
				u.IsRentable,
				u.IsOverlocked,
				u.UnitUnrentableReason,
				u.UnitUnrentableNote,
				u.UnitKeypadZone,
				u.UnitTimeZone,
				u.WebRateOverride,
				u.StrikethroughPriceOverride,
				u.WalkInRateOverride,
				ts,
				ts,
			).
			Suffix(suffix).
			ToSql()
		if err != nil {
			return syncerrors.Wrap(err, syncerrors.ErrorTypeData, "failed to build unit upsert")
		}

		if _, err := s.db.Exec(ctx, query, args...); err != nil {
			wrapped := syncerrors.Wrap(err, syncerrors.ErrorTypeQuery, "unit upsert failed").
				WithDetail("position", i)
			if u.UnitID != nil {
				wrapped = wrapped.WithDetail("unit_id", *u.UnitID)
			}
			return wrapped
		}
	}

	log.Debug("rows loaded",
		zap.Int("count", len(units)),
		zap.Duration("duration", time.Since(start)))
	return nil
}

// FindUnitByID fetches a single unit by its natural key. A missing unit is
// not an error; the caller gets nil.
func (s *Store) FindUnitByID(ctx context.Context, unitID string) (*entity.Unit, error) {
	query, args, err := psql.Select(unitColumns...).
		From("units").
		Where(sq.Eq{"unit_id": unitID}).
		ToSql()
	if err != nil {
		return nil, syncerrors.Wrap(err, syncerrors.ErrorTypeData, "failed to build unit lookup")
	}

	var unit entity.Unit
	if err := pgxscan.Get(ctx, s.db, &unit, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, nil
		}
		return nil, syncerrors.Wrap(err, syncerrors.ErrorTypeQuery, "unit lookup failed").
			WithDetail("unit_id", unitID)
	}
	return &unit, nil
}
