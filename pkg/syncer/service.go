// Package syncer orchestrates the per-entity sync passes: extract the raw
// rows from the warehouse, map them onto canonical records, load them into
// the destination store. Each entity has its own method; failures propagate
// to the caller untouched so scheduling policy stays out of this package.
package syncer

import (
	"context"
	"fmt"

	"github.com/storhub/bqsync/pkg/entity"
	"github.com/storhub/bqsync/pkg/warehouse"
)

// Store is the destination capability the orchestrator depends on.
type Store interface {
	UpsertUnits(ctx context.Context, units []entity.Unit) error
	InsertPayments(ctx context.Context, payments []entity.Payment) error
	InsertLeases(ctx context.Context, leases []entity.Lease) error
	InsertLeads(ctx context.Context, leads []entity.Lead) error
	InsertContacts(ctx context.Context, contacts []entity.Contact) error
	InsertManagers(ctx context.Context, managers []entity.Manager) error
	InsertPricingGroups(ctx context.Context, groups []entity.PricingGroup) error
	InsertSpacesHistorical(ctx context.Context, snapshots []entity.SpacesHistorical) error
	InsertUnitTurnovers(ctx context.Context, turnovers []entity.UnitTurnover) error
	InsertBookEntries(ctx context.Context, entries []entity.BookEntry) error
	InsertCustomerTouches(ctx context.Context, touches []entity.CustomerTouch) error
	InsertGAEvents(ctx context.Context, events []entity.GAEvent) error
}

// Service runs sync passes against one warehouse dataset and one store.
type Service struct {
	wh      warehouse.Runner
	dataset string
	store   Store
}

// New builds a Service reading from the given dataset namespace.
func New(wh warehouse.Runner, dataset string, store Store) *Service {
	return &Service{wh: wh, dataset: dataset, store: store}
}

// selectAll builds the full-view read for an entity source view, with an
// optional ORDER BY tail.
func (s *Service) selectAll(view, orderBy string) string {
	query := fmt.Sprintf("SELECT * FROM `%s.%s`", s.dataset, view)
	if orderBy != "" {
		query += " ORDER BY " + orderBy
	}
	return query
}

// SyncUnits refreshes the unit inventory. Units are the single
// update-in-place entity.
func (s *Service) SyncUnits(ctx context.Context) ([]entity.Unit, error) {
	rows, err := s.wh.Query(ctx, "getUnits", s.selectAll("units", ""))
	if err != nil {
		return nil, err
	}

	units := make([]entity.Unit, len(rows))
	for i, row := range rows {
		units[i] = entity.MapUnit(row)
	}

	if err := s.store.UpsertUnits(ctx, units); err != nil {
		return nil, err
	}
	return units, nil
}

// SyncPayments appends new payment observations.
func (s *Service) SyncPayments(ctx context.Context) ([]entity.Payment, error) {
	rows, err := s.wh.Query(ctx, "getPayments", s.selectAll("payments", ""))
	if err != nil {
		return nil, err
	}

	payments := make([]entity.Payment, len(rows))
	for i, row := range rows {
		payments[i] = entity.MapPayment(row)
	}

	if err := s.store.InsertPayments(ctx, payments); err != nil {
		return nil, err
	}
	return payments, nil
}

// SyncLeases appends lease snapshots.
func (s *Service) SyncLeases(ctx context.Context) ([]entity.Lease, error) {
	rows, err := s.wh.Query(ctx, "getLeases", s.selectAll("leases", ""))
	if err != nil {
		return nil, err
	}

	leases := make([]entity.Lease, len(rows))
	for i, row := range rows {
		leases[i] = entity.MapLease(row)
	}

	if err := s.store.InsertLeases(ctx, leases); err != nil {
		return nil, err
	}
	return leases, nil
}

// SyncLeads appends lead observations.
func (s *Service) SyncLeads(ctx context.Context) ([]entity.Lead, error) {
	rows, err := s.wh.Query(ctx, "getLeads", s.selectAll("leads", ""))
	if err != nil {
		return nil, err
	}

	leads := make([]entity.Lead, len(rows))
	for i, row := range rows {
		leads[i] = entity.MapLead(row)
	}

	if err := s.store.InsertLeads(ctx, leads); err != nil {
		return nil, err
	}
	return leads, nil
}

// SyncContacts appends contact records.
func (s *Service) SyncContacts(ctx context.Context) ([]entity.Contact, error) {
	rows, err := s.wh.Query(ctx, "getContacts", s.selectAll("contact", ""))
	if err != nil {
		return nil, err
	}

	contacts := make([]entity.Contact, len(rows))
	for i, row := range rows {
		contacts[i] = entity.MapContact(row)
	}

	if err := s.store.InsertContacts(ctx, contacts); err != nil {
		return nil, err
	}
	return contacts, nil
}

// SyncManagers appends manager accounts.
func (s *Service) SyncManagers(ctx context.Context) ([]entity.Manager, error) {
	rows, err := s.wh.Query(ctx, "getManagers", s.selectAll("managers", ""))
	if err != nil {
		return nil, err
	}

	managers := make([]entity.Manager, len(rows))
	for i, row := range rows {
		managers[i] = entity.MapManager(row)
	}

	if err := s.store.InsertManagers(ctx, managers); err != nil {
		return nil, err
	}
	return managers, nil
}

// SyncPricingGroups appends pricing groups.
func (s *Service) SyncPricingGroups(ctx context.Context) ([]entity.PricingGroup, error) {
	rows, err := s.wh.Query(ctx, "getPricingGroups", s.selectAll("pricing_group", ""))
	if err != nil {
		return nil, err
	}

	groups := make([]entity.PricingGroup, len(rows))
	for i, row := range rows {
		groups[i] = entity.MapPricingGroup(row)
	}

	if err := s.store.InsertPricingGroups(ctx, groups); err != nil {
		return nil, err
	}
	return groups, nil
}

// SyncSpacesHistorical appends daily occupancy snapshots.
func (s *Service) SyncSpacesHistorical(ctx context.Context) ([]entity.SpacesHistorical, error) {
	rows, err := s.wh.Query(ctx, "getSpacesHistorical", s.selectAll("spaces_historical", ""))
	if err != nil {
		return nil, err
	}

	snapshots := make([]entity.SpacesHistorical, len(rows))
	for i, row := range rows {
		snapshots[i] = entity.MapSpacesHistorical(row)
	}

	if err := s.store.InsertSpacesHistorical(ctx, snapshots); err != nil {
		return nil, err
	}
	return snapshots, nil
}

// SyncUnitTurnovers appends move events. Load failures propagate like every
// other entity's.
func (s *Service) SyncUnitTurnovers(ctx context.Context) ([]entity.UnitTurnover, error) {
	rows, err := s.wh.Query(ctx, "getUnitTurnover", s.selectAll("unit_turnover", ""))
	if err != nil {
		return nil, err
	}

	turnovers := make([]entity.UnitTurnover, len(rows))
	for i, row := range rows {
		turnovers[i] = entity.MapUnitTurnover(row)
	}

	if err := s.store.InsertUnitTurnovers(ctx, turnovers); err != nil {
		return nil, err
	}
	return turnovers, nil
}

// SyncBookEntries appends ledger lines, newest first.
func (s *Service) SyncBookEntries(ctx context.Context) ([]entity.BookEntry, error) {
	rows, err := s.wh.Query(ctx, "getBookEntries",
		s.selectAll("book_entries", "entry_date_time DESC"))
	if err != nil {
		return nil, err
	}

	entries := make([]entity.BookEntry, len(rows))
	for i, row := range rows {
		entries[i] = entity.MapBookEntry(row)
	}

	if err := s.store.InsertBookEntries(ctx, entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// SyncCustomerTouches appends touch events, newest first.
func (s *Service) SyncCustomerTouches(ctx context.Context) ([]entity.CustomerTouch, error) {
	rows, err := s.wh.Query(ctx, "getCustomerTouches",
		s.selectAll("customer_touches", "created_at DESC"))
	if err != nil {
		return nil, err
	}

	touches := make([]entity.CustomerTouch, len(rows))
	for i, row := range rows {
		touches[i] = entity.MapCustomerTouch(row)
	}

	if err := s.store.InsertCustomerTouches(ctx, touches); err != nil {
		return nil, err
	}
	return touches, nil
}

// SyncGAEvents appends analytics events.
func (s *Service) SyncGAEvents(ctx context.Context) ([]entity.GAEvent, error) {
	rows, err := s.wh.Query(ctx, "getGaEvents", s.selectAll("ga_events", ""))
	if err != nil {
		return nil, err
	}

	events := make([]entity.GAEvent, len(rows))
	for i, row := range rows {
		events[i] = entity.MapGAEvent(row)
	}

	if err := s.store.InsertGAEvents(ctx, events); err != nil {
		return nil, err
	}
	return events, nil
}
