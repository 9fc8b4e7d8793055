package constants

// Redis key formats
const (
	// Geocode cache, keyed by a normalized address query
	KeyGeocodeAddress = "geo:addr:%s" // Format: geo:addr:{sha1(normalized query)}

	// Rate limiting
	KeyRateLimit = "rate:limit"
)
