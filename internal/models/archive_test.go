package models

import (
	"testing"
)

func TestArchive_AppendAndContains(t *testing.T) {
	a := ParseArchive("[]")

	a = a.Append("Geography")
	a = a.Append("Science")

	if !a.Contains("Geography") || !a.Contains("Science") {
		t.Error("Archive missing appended titles")
	}
	if a.Contains("History") {
		t.Error("Archive contains title that was never appended")
	}
}

func TestArchive_AppendIsIdempotent(t *testing.T) {
	a := Archive{}
	a = a.Append("Geography")
	a = a.Append("Geography")

	if len(a) != 1 {
		t.Errorf("Archive length = %d after duplicate append, want 1", len(a))
	}
}

func TestArchive_RoundTrip(t *testing.T) {
	a := Archive{}.Append("Geography").Append("Science")

	decoded := ParseArchive(a.Encode())
	if len(decoded) != 2 {
		t.Fatalf("decoded length = %d, want 2", len(decoded))
	}
	if decoded[0] != "Geography" || decoded[1] != "Science" {
		t.Errorf("decoded = %v, order not preserved", decoded)
	}
}

func TestParseArchive_MalformedInput(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{
			name: "Empty string",
			raw:  "",
		},
		{
			name: "Garbage",
			raw:  "{not json",
		},
		{
			name: "Wrong type",
			raw:  `{"0": "Geography"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := ParseArchive(tt.raw)
			if len(a) != 0 {
				t.Errorf("ParseArchive(%q) = %v, want empty", tt.raw, a)
			}
		})
	}
}

func TestGameSession_ArchiveAccessors(t *testing.T) {
	session := &GameSession{
		AnsweredThemes:    `["Geography"]`,
		AnsweredQuestions: `["What is the capital of France?"]`,
	}

	if !session.ThemeArchive().Contains("Geography") {
		t.Error("ThemeArchive missing archived theme")
	}
	if !session.QuestionArchive().Contains("What is the capital of France?") {
		t.Error("QuestionArchive missing archived question")
	}
	if session.ThemeArchive().Contains("Science") {
		t.Error("ThemeArchive contains unarchived theme")
	}
}

func TestQuestion_CorrectAnswer(t *testing.T) {
	q := &Question{
		Answers: []Answer{
			{Title: "London"},
			{Title: "Paris", IsCorrect: true},
			{Title: "Rome"},
		},
	}

	correct := q.CorrectAnswer()
	if correct == nil || correct.Title != "Paris" {
		t.Errorf("CorrectAnswer() = %v, want Paris", correct)
	}
}

func TestQuestion_CorrectAnswer_None(t *testing.T) {
	q := &Question{
		Answers: []Answer{
			{Title: "London"},
			{Title: "Rome"},
		},
	}

	if q.CorrectAnswer() != nil {
		t.Error("CorrectAnswer() != nil for question without a correct answer")
	}
}
