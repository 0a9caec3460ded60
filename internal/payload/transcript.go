package payload

import "strings"

// voicemailRole is the speaker role inspected by the voicemail heuristic.
// The platform surfaces an answering machine's greeting through the agent
// channel, so only agent-authored turns are in scope.
const voicemailRole = "agent"

// DefaultVoicemailTriggers is the phrase set used when no override is
// configured. Matching is lower-cased substring containment; the list is kept
// small and auditable on purpose — a missed voicemail is cheaper than
// misclassifying a live conversation.
var DefaultVoicemailTriggers = []string{
	"voicemail",
	"mailbox is full",
	"please record your message",
	"after the tone",
}

// Assemble joins the transcript into one text blob and runs voicemail
// detection over it. Turns with an empty message contribute no line. The
// voicemail flag is true when any in-scope turn contains any trigger phrase;
// evaluation stops at the first match.
func Assemble(turns []TranscriptTurn, triggers []string) (string, bool) {
	var lines []string
	detected := false

	for _, t := range turns {
		if t.Message == "" {
			continue
		}
		lines = append(lines, t.Role+": "+t.Message)

		if detected || t.Role != voicemailRole {
			continue
		}
		msg := strings.ToLower(t.Message)
		for _, trigger := range triggers {
			if strings.Contains(msg, trigger) {
				detected = true
				break
			}
		}
	}

	return strings.Join(lines, "\n"), detected
}
