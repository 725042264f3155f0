package types

// Log context actions
const (
	ActionIngest         = "ingest_taxi_data"
	ActionOverview       = "analytics_overview"
	ActionHourly         = "analytics_hourly"
	ActionZones          = "analytics_zones"
	ActionHealthCheck    = "health_check"
	ActionDatabaseQuery  = "database_query"
	ActionStatsBroadcast = "stats_broadcast"
	ActionServerStart    = "http_server_start"
	ActionServerStop     = "http_server_stop"
)
