package constants

type (
	APIStatus   string
	CachePrefix string
)

const (
	APIStatusOk    APIStatus = "ok"
	APIStatusError APIStatus = "error"

	CachePrefixAvailability CachePrefix = "AVAIL_"
	CachePrefixMTTR         CachePrefix = "MTTR_"
	CachePrefixAlerts       CachePrefix = "ALERTS_"
	CachePrefixAlertRead    CachePrefix = "ALERT_READ_"
	CachePrefixTechLoad     CachePrefix = "TECH_LOAD_"
)

// Technician capacity: concurrent active work orders before overload.
const TechCapacity = 3
