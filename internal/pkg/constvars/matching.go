package constvars

// Session formats as stored on both patient preferences and therapist profiles.
const (
	SessionFormatOnline   = "online"
	SessionFormatInPerson = "in_person"
)

// Gender preference values accepted on patient intake records.
const (
	GenderPreferenceMale   = "male"
	GenderPreferenceFemale = "female"
	GenderPreferenceNone   = "no_preference"
)

const (
	TherapistStatusVerified = "verified"
)

// The matching engine only ever writes "proposed"; downstream workflows own
// the later status transitions.
const (
	MatchStatusProposed = "proposed"
)

const (
	MatchQualityExact   = "exact"
	MatchQualityPartial = "partial"
	MatchQualityNone    = "none"
)

// Mismatch reason labels, ordered by severity for display purposes.
const (
	MismatchReasonCity       = "city"
	MismatchReasonGender     = "gender"
	MismatchReasonLocation   = "location"
	MismatchReasonModality   = "modality"
	MismatchReasonFocusAreas = "focus_areas"
)

// Coarse day-part labels used for time-slot preferences.
const (
	TimeSlotMorning   = "morning"
	TimeSlotAfternoon = "afternoon"
	TimeSlotEvening   = "evening"
	TimeSlotWeekend   = "weekend"
	TimeSlotFlexible  = "flexible"
)

const (
	AnalyticsEventBusinessOpportunity = "business_opportunity_logged"
)

const (
	AppMatchesUrlFormat = "/matches/%s"
)
