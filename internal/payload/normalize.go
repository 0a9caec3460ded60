package payload

// Collected-answer lookup keys, exactly as the platform cases them. Two of
// them are capitalized upstream even though the destination columns are not.
const (
	keyFirstName     = "first_name"
	keyZipCode       = "zip_code"
	keyAge           = "age"
	keyHouseholdSize = "household_size"
	keyIncome        = "income"
	keyInsurance     = "insurance"
	keyWillingToTalk = "Willing_to_talk"
	keyLifeChange    = "life_change"
	keyQualified     = "Qualified"
	keyPhoneNumber   = "phone_number"
)

// Normalize flattens a decoded post-call payload into a CallRecord. It is
// total: any missing or mistyped sub-structure yields a nil field, never an
// error. triggers is the voicemail phrase set passed through to Assemble.
func Normalize(raw any, triggers []string) CallRecord {
	rec := CallRecord{
		AgentID:           lookupString(raw, "data", "agent_id"),
		ConversationID:    lookupString(raw, "data", "conversation_id"),
		CallSID:           lookupString(raw, "data", "metadata", "phone_call", "call_sid"),
		ExternalNumber:    lookupString(raw, "data", "metadata", "phone_call", "external_number"),
		AgentNumber:       lookupString(raw, "data", "metadata", "phone_call", "agent_number"),
		FirstName:         collected(raw, keyFirstName),
		ZipCode:           collected(raw, keyZipCode),
		Age:               collected(raw, keyAge),
		HouseholdSize:     collected(raw, keyHouseholdSize),
		Income:            collected(raw, keyIncome),
		Insurance:         collected(raw, keyInsurance),
		WillingToTalk:     collected(raw, keyWillingToTalk),
		LifeChange:        collected(raw, keyLifeChange),
		Qualified:         collected(raw, keyQualified),
		PhoneNumber:       collected(raw, keyPhoneNumber),
		CallSummary:       lookupString(raw, "data", "analysis", "transcript_summary"),
		CallDurationSecs:  lookupNumber(raw, "data", "metadata", "call_duration_secs"),
		TerminationReason: lookupString(raw, "data", "metadata", "termination_reason"),
	}

	// Platform-defined value, sometimes a bool, sometimes a string. Passed
	// through untyped.
	rec.CallSuccessful, _ = lookup(raw, "data", "analysis", "call_successful")

	rec.TranscriptText, rec.VoicemailDetected = Assemble(Turns(raw), triggers)

	return rec
}

// Turns extracts data.transcript as an ordered slice of turns. Entries that
// are not objects, or whose role/message are not strings, degrade to empty
// fields rather than failing.
func Turns(raw any) []TranscriptTurn {
	list, ok := lookup(raw, "data", "transcript")
	if !ok {
		return nil
	}
	entries, ok := list.([]any)
	if !ok {
		return nil
	}

	turns := make([]TranscriptTurn, 0, len(entries))
	for _, entry := range entries {
		var t TranscriptTurn
		if m, ok := entry.(map[string]any); ok {
			if role, ok := m["role"].(string); ok {
				t.Role = role
			}
			if msg, ok := m["message"].(string); ok {
				t.Message = msg
			}
		}
		turns = append(turns, t)
	}
	return turns
}

// collected reads one collected-answer value from
// data.analysis.data_collection_results.<key>.value. Lookup keys are
// case-sensitive.
func collected(raw any, key string) any {
	v, _ := lookup(raw, "data", "analysis", "data_collection_results", key, "value")
	return v
}

// lookup walks a decoded JSON tree along path. It reports false as soon as a
// step is missing or the current node is not an object, so callers never
// touch an absent branch.
func lookup(node any, path ...string) (any, bool) {
	for _, key := range path {
		m, ok := node.(map[string]any)
		if !ok {
			return nil, false
		}
		node, ok = m[key]
		if !ok {
			return nil, false
		}
	}
	return node, true
}

func lookupString(raw any, path ...string) *string {
	v, ok := lookup(raw, path...)
	if !ok {
		return nil
	}
	s, ok := v.(string)
	if !ok {
		return nil
	}
	return &s
}

func lookupNumber(raw any, path ...string) *float64 {
	v, ok := lookup(raw, path...)
	if !ok {
		return nil
	}
	// encoding/json decodes every JSON number into float64.
	n, ok := v.(float64)
	if !ok {
		return nil
	}
	return &n
}
