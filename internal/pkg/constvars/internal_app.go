package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "PRXMTCH_SVC_"
)

const (
	AppEnvDevelopment = "development"
	AppEnvProduction  = "production"
)

const (
	MongoCollectionPatients   = "patients"
	MongoCollectionTherapists = "therapists"
	MongoCollectionSlots      = "therapist_slots"
	MongoCollectionMatches    = "matches"
	MongoCollectionSupplyGaps = "supply_gaps"
)

const (
	RedisKeyTherapistPool = "therapist_pool_verified"
)
