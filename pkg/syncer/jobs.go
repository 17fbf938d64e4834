package syncer

import (
	"context"

	"github.com/storhub/bqsync/pkg/config"
	"github.com/storhub/bqsync/pkg/scheduler"
)

// Jobs builds the full entity→job table. The mapping is spelled out per
// entity so adding a schema is a compile-visible change, and each job gets
// its own cadence from configuration.
func Jobs(svc *Service, schedules config.ScheduleConfig) []scheduler.Job {
	return []scheduler.Job{
		{
			Name:   "sync-units",
			Entity: "units",
			Spec:   schedules.Units,
			Run: func(ctx context.Context) (int, error) {
				recs, err := svc.SyncUnits(ctx)
				return len(recs), err
			},
		},
		{
			Name:   "sync-payments",
			Entity: "payments",
			Spec:   schedules.Payments,
			Run: func(ctx context.Context) (int, error) {
				recs, err := svc.SyncPayments(ctx)
				return len(recs), err
			},
		},
		{
			Name:   "sync-leases",
			Entity: "leases",
			Spec:   schedules.Leases,
			Run: func(ctx context.Context) (int, error) {
				recs, err := svc.SyncLeases(ctx)
				return len(recs), err
			},
		},
		{
			Name:   "sync-leads",
			Entity: "leads",
			Spec:   schedules.Leads,
			Run: func(ctx context.Context) (int, error) {
				recs, err := svc.SyncLeads(ctx)
				return len(recs), err
			},
		},
		{
			Name:   "sync-contacts",
			Entity: "contacts",
			Spec:   schedules.Contacts,
			Run: func(ctx context.Context) (int, error) {
				recs, err := svc.SyncContacts(ctx)
				return len(recs), err
			},
		},
		{
			Name:   "sync-managers",
			Entity: "managers",
			Spec:   schedules.Managers,
			Run: func(ctx context.Context) (int, error) {
				recs, err := svc.SyncManagers(ctx)
				return len(recs), err
			},
		},
		{
			Name:   "sync-pricing-groups",
			Entity: "pricing_groups",
			Spec:   schedules.PricingGroups,
			Run: func(ctx context.Context) (int, error) {
				recs, err := svc.SyncPricingGroups(ctx)
				return len(recs), err
			},
		},
		{
			Name:   "sync-spaces-historical",
			Entity: "spaces_historical",
			Spec:   schedules.SpacesHistorical,
			Run: func(ctx context.Context) (int, error) {
				recs, err := svc.SyncSpacesHistorical(ctx)
				return len(recs), err
			},
		},
		{
			Name:   "sync-unit-turnovers",
			Entity: "unit_turnovers",
			Spec:   schedules.UnitTurnovers,
			Run: func(ctx context.Context) (int, error) {
				recs, err := svc.SyncUnitTurnovers(ctx)
				return len(recs), err
			},
		},
		{
			Name:   "sync-book-entries",
			Entity: "book_entries",
			Spec:   schedules.BookEntries,
			Run: func(ctx context.Context) (int, error) {
				recs, err := svc.SyncBookEntries(ctx)
				return len(recs), err
			},
		},
		{
			Name:   "sync-customer-touches",
			Entity: "customer_touches",
			Spec:   schedules.CustomerTouches,
			Run: func(ctx context.Context) (int, error) {
				recs, err := svc.SyncCustomerTouches(ctx)
				return len(recs), err
			},
		},
		{
			Name:   "sync-ga-events",
			Entity: "ga_events",
			Spec:   schedules.GAEvents,
			Run: func(ctx context.Context) (int, error) {
				recs, err := svc.SyncGAEvents(ctx)
				return len(recs), err
			},
		},
	}
}
