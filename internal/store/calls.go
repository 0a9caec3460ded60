package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/copperline/callsink/internal/payload"
)

// callColumns is the destination column list, in insert order. callValues
// must stay aligned index-for-index with this slice.
var callColumns = []string{
	"agent_id",
	"conversation_id",
	"call_sid",
	"external_number",
	"agent_number",
	"first_name",
	"zip_code",
	"age",
	"household_size",
	"income",
	"insurance",
	"willing_to_talk",
	"life_change",
	"qualified",
	"phone_number",
	"transcript",
	"summary",
	"call_duration_secs",
	"call_successful",
	"termination_reason",
	"voicemail_detected",
}

// InsertCall writes one call record as a single row. No dedup is performed;
// a redelivered webhook produces a second row.
func (s *Store) InsertCall(ctx context.Context, rec payload.CallRecord) error {
	if _, err := s.pool.Exec(ctx, insertCallSQL(s.table), callValues(rec)...); err != nil {
		return fmt.Errorf("insert call: %w", err)
	}
	return nil
}

func insertCallSQL(table string) string {
	placeholders := make([]string, len(callColumns))
	for i := range callColumns {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		table,
		strings.Join(callColumns, ", "),
		strings.Join(placeholders, ", "),
	)
}

func callValues(rec payload.CallRecord) []any {
	return []any{
		rec.AgentID,
		rec.ConversationID,
		rec.CallSID,
		rec.ExternalNumber,
		rec.AgentNumber,
		rec.FirstName,
		rec.ZipCode,
		rec.Age,
		rec.HouseholdSize,
		rec.Income,
		rec.Insurance,
		rec.WillingToTalk,
		rec.LifeChange,
		rec.Qualified,
		rec.PhoneNumber,
		rec.TranscriptText,
		rec.CallSummary,
		rec.CallDurationSecs,
		rec.CallSuccessful,
		rec.TerminationReason,
		rec.VoicemailDetected,
	}
}
