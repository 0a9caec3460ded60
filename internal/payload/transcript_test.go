package payload

import "testing"

func TestAssemble_EmptyTranscript(t *testing.T) {
	text, voicemail := Assemble(nil, DefaultVoicemailTriggers)
	if text != "" {
		t.Errorf("expected empty text, got %q", text)
	}
	if voicemail {
		t.Error("expected voicemail false")
	}
}

func TestAssemble_JoinsAndSkipsEmptyMessages(t *testing.T) {
	turns := []TranscriptTurn{
		{Role: "agent", Message: "Hello, this is Sam"},
		{Role: "user"},
		{Role: "user", Message: "Hi Sam"},
		{Role: "agent", Message: ""},
		{Role: "agent", Message: "Great to hear"},
	}

	text, voicemail := Assemble(turns, DefaultVoicemailTriggers)

	want := "agent: Hello, this is Sam\nuser: Hi Sam\nagent: Great to hear"
	if text != want {
		t.Errorf("expected %q, got %q", want, text)
	}
	if voicemail {
		t.Error("expected voicemail false")
	}
}

func TestAssemble_VoicemailDetection(t *testing.T) {
	tests := []struct {
		name  string
		turns []TranscriptTurn
		want  bool
	}{
		{
			name:  "trigger phrase in agent turn, mixed case",
			turns: []TranscriptTurn{{Role: "agent", Message: "Please Record Your Message after the beep"}},
			want:  true,
		},
		{
			name:  "trigger phrase only in user turn is out of scope",
			turns: []TranscriptTurn{{Role: "user", Message: "please record your message"}},
			want:  false,
		},
		{
			name:  "full mailbox greeting",
			turns: []TranscriptTurn{{Role: "agent", Message: "The mailbox is full and cannot accept messages"}},
			want:  true,
		},
		{
			name:  "voicemail keyword mid-sentence",
			turns: []TranscriptTurn{{Role: "agent", Message: "You have reached the VOICEMAIL of 555-0100"}},
			want:  true,
		},
		{
			name: "match after non-matching turns",
			turns: []TranscriptTurn{
				{Role: "agent", Message: "Hello?"},
				{Role: "user", Message: "..."},
				{Role: "agent", Message: "Leave it after the tone"},
			},
			want: true,
		},
		{
			name:  "live conversation",
			turns: []TranscriptTurn{{Role: "agent", Message: "Hi, do you have a minute?"}, {Role: "user", Message: "Sure"}},
			want:  false,
		},
		{
			name:  "empty agent message never matches",
			turns: []TranscriptTurn{{Role: "agent"}},
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, got := Assemble(tt.turns, DefaultVoicemailTriggers)
			if got != tt.want {
				t.Errorf("expected voicemail %v, got %v", tt.want, got)
			}
		})
	}
}

func TestAssemble_CustomTriggers(t *testing.T) {
	turns := []TranscriptTurn{{Role: "agent", Message: "Der Anrufbeantworter ist aktiv"}}

	_, got := Assemble(turns, []string{"anrufbeantworter"})
	if !got {
		t.Error("expected custom trigger to match")
	}

	_, got = Assemble(turns, DefaultVoicemailTriggers)
	if got {
		t.Error("expected default triggers not to match")
	}
}
