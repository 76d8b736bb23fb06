package constant

const (
	RequestParamID        = "id"
	RequestParamDate      = "date"
	RequestParamDirection = "direction"
	RequestParamSearch    = "search"
	RequestParamHotel     = "hotel_id"
	RequestParamRoom      = "room_id"
	RequestParamPayment   = "payment_status"
	RequestParamStatus    = "booking_status"
)

const (
	DateFormat = "2006-01-02"
	TimeFormat = "15:04"
)

const (
	OtelServiceScopeName  = "service"
	OtelHandlerScopeName  = "handler"
	OtelExternalScopeName = "external"
	OtelHTTPScopeName     = "http"

	OtelBookingAttributeKey = "booking.id"
	OtelURLAttributeKey     = "url"
)

const (
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderRequestID          = "X-Request-ID"
	RequestHeaderForwardedFor       = "X-Forwarded-For"
	RequestHeaderRealIP             = "X-Real-IP"
)

const (
	ContentTypeJSON = "application/json"
)

const (
	ResponseErrorPrepareShutdown      = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorUnhealthy            = "SERVER UNHEALTHY"
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	CacheKeySchedule  = "schedule:day"
	CacheKeyHotels    = "directory:hotels"
	CacheKeyRooms     = "directory:rooms"
	CacheKeyRateLimit = "limiter"
)

const (
	Asterix = "*"
	Empty   = ""
)
