package entity

import (
	"time"

	"github.com/storhub/bqsync/pkg/warehouse"
)

// GAEvent is a web analytics event observation.
type GAEvent struct {
	OrgID                    *string   `db:"org_id"`
	GaSessionID              *string   `db:"ga_session_id"`
	EventDate                time.Time `db:"event_date"`
	EventName                *string   `db:"event_name"`
	EventTimestamp           *string   `db:"event_timestamp"`
	Hostname                 *string   `db:"hostname"`
	DeviceCategory           *string   `db:"device_category"`
	GeoCity                  *string   `db:"geo_city"`
	GeoCountry               *string   `db:"geo_country"`
	GeoContinent             *string   `db:"geo_continent"`
	GeoRegion                *string   `db:"geo_region"`
	GeoMetro                 *string   `db:"geo_metro"`
	TrafficSourceName        *string   `db:"traffic_source_name"`
	TrafficSourceSource      *string   `db:"traffic_source_source"`
	TrafficSourceMedium      *string   `db:"traffic_source_medium"`
	EcommerceTransactionID   *string   `db:"ecommerce_transaction_id"`
	EcommercePurchaseRevenue *string   `db:"ecommerce_purchase_revenue"`
}

// MapGAEvent projects a raw warehouse row onto a GAEvent.
func MapGAEvent(row warehouse.Row) GAEvent {
	return GAEvent{
		OrgID:                    warehouse.ToString(row, "org_id"),
		GaSessionID:              warehouse.ToString(row, "ga_session_id"),
		EventDate:                dateOrNow(row, "event_date"),
		EventName:                warehouse.ToString(row, "event_name"),
		EventTimestamp:           warehouse.ToString(row, "event_timestamp"),
		Hostname:                 warehouse.ToString(row, "host_name"),
		DeviceCategory:           warehouse.ToString(row, "device_category"),
		GeoCity:                  warehouse.ToString(row, "geo_city"),
		GeoCountry:               warehouse.ToString(row, "geo_country"),
		GeoContinent:             warehouse.ToString(row, "geo_continent"),
		GeoRegion:                warehouse.ToString(row, "geo_region"),
		GeoMetro:                 warehouse.ToString(row, "geo_metro"),
		TrafficSourceName:        warehouse.ToString(row, "traffic_source_name"),
		TrafficSourceSource:      warehouse.ToString(row, "traffic_source_source"),
		TrafficSourceMedium:      warehouse.ToString(row, "traffic_source_medium"),
		EcommerceTransactionID:   warehouse.ToString(row, "ecommerce_transaction_id"),
		EcommercePurchaseRevenue: warehouse.ToString(row, "ecommerce_purchase_revenue"),
	}
}
