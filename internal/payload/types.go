package payload

// TranscriptTurn is one utterance in the call, attributed to a speaker role.
// Ordering follows call chronology as delivered by the platform.
type TranscriptTurn struct {
	Role    string `json:"role"`
	Message string `json:"message"`
}

// CallRecord is the flat, typed result of normalizing one post-call payload.
// Pointer fields are nil when the source node is absent or not the expected
// type; `any` fields carry whatever JSON-native value the platform supplied,
// untouched. Every field has a defined value for every input — normalization
// never fails.
type CallRecord struct {
	AgentID        *string
	ConversationID *string

	CallSID        *string
	ExternalNumber *string
	AgentNumber    *string

	// Collected-answer fields, delivered by the platform's own analysis as
	// {value: ...}. Types vary per field and are not validated here.
	FirstName     any
	ZipCode       any
	Age           any
	HouseholdSize any
	Income        any
	Insurance     any
	WillingToTalk any
	LifeChange    any
	Qualified     any
	PhoneNumber   any

	TranscriptText    string
	CallSummary       *string
	CallDurationSecs  *float64
	CallSuccessful    any
	TerminationReason *string
	VoicemailDetected bool
}
