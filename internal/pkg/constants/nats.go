package constants

// NATS subjects
const (
	// Published by the routes service
	SubjectRoutePlanned       = "route.planned"
	SubjectRouteStatusChanged = "route.status_changed"
	SubjectRouteCancelled     = "route.cancelled"

	// Consumed from the geocoding service
	SubjectAddressGeocoded = "address.geocoded"
)
