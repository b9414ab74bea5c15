package constvars

// Client-facing messages. Kept generic so internal detail never leaks.
const (
	ErrClientSomethingWrongWithApplication = "Something went wrong with the application, please try again later"
	ErrClientCannotProcessRequest          = "Cannot process your request, please check your input"
	ErrClientServerLongRespond             = "Server is taking too long to respond, please try again later"
	ErrClientPatientNotFound               = "We could not find your intake record"
	ErrClientMatchNotFound                 = "We could not find the requested matches"
	ErrClientMatchingDisabled              = "Matching is currently unavailable, our team will follow up shortly"
)

// Developer-facing messages carried inside CustomError.
const (
	ErrDevValidationFailed           = "VALIDATION_FAILED"
	ErrDevCannotParseJSON            = "CANNOT_PARSE_JSON"
	ErrDevCannotMarshalJSON          = "CANNOT_MARSHAL_JSON"
	ErrDevServerDeadlineExceeded     = "SERVER_DEADLINE_EXCEEDED"
	ErrDevPatientNotFound            = "PATIENT_NOT_FOUND"
	ErrDevMatchNotFound              = "MATCH_NOT_FOUND"
	ErrDevDBFailedToFindDocument     = "DB_FAILED_TO_FIND_DOCUMENT"
	ErrDevDBFailedToInsertDocument   = "DB_FAILED_TO_INSERT_DOCUMENT"
	ErrDevDBFailedToIterateDocuments = "DB_FAILED_TO_ITERATE_DOCUMENTS"
	ErrDevRedisGetData               = "REDIS_FAILED_TO_GET_DATA"
	ErrDevRedisSetData               = "REDIS_FAILED_TO_SET_DATA"
	ErrDevRedisDeleteData            = "REDIS_FAILED_TO_DELETE_DATA"
	ErrDevQueuePublishFailed         = "QUEUE_PUBLISH_FAILED"
)
