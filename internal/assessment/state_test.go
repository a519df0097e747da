package assessment

import "testing"

func TestRecordAnswerReplacesInPlace(t *testing.T) {
	bank := DefaultBank()
	st := NewState(bank)

	st.RecordAnswer("section1", Answer{QuestionID: "q1_1", Points: 2, Kind: AnswerSingle, Option: "1 patent/publication"})
	st.RecordAnswer("section1", Answer{QuestionID: "q1_2", Points: 4, Kind: AnswerSingle})
	st.RecordAnswer("section1", Answer{QuestionID: "q1_1", Points: 8, Kind: AnswerSingle, Option: "15+"})

	answers := st.Answers("section1")
	if len(answers) != 2 {
		t.Fatalf("len(answers) = %d, want 2", len(answers))
	}
	if answers[0].QuestionID != "q1_1" || answers[0].Points != 8 {
		t.Errorf("replaced answer not in original slot: %+v", answers[0])
	}
	if answers[1].QuestionID != "q1_2" {
		t.Errorf("second answer displaced: %+v", answers[1])
	}
}

func TestAnsweredCountsZeroPointSelections(t *testing.T) {
	st := NewState(DefaultBank())

	st.RecordAnswer("section1", Answer{QuestionID: "q1_1", Points: 0, Kind: AnswerSingle, Option: "None"})

	if !st.Answered("section1", "q1_1") {
		t.Error("zero-point selection should count as answered")
	}
	if st.Answered("section1", "q1_2") {
		t.Error("unanswered question reported as answered")
	}
}

func TestAdvanceWalksEveryQuestionOnce(t *testing.T) {
	bank := DefaultBank()
	st := NewState(bank)

	seen := map[string]bool{}
	for {
		q := st.CurrentQuestion()
		if seen[q.ID] {
			t.Fatalf("question %s visited twice", q.ID)
		}
		seen[q.ID] = true
		if st.AtEnd() {
			break
		}
		st.Advance()
	}

	if len(seen) != bank.TotalQuestions() {
		t.Errorf("visited %d questions, want %d", len(seen), bank.TotalQuestions())
	}
}

func TestAdvanceCrossesSectionBoundary(t *testing.T) {
	st := NewState(DefaultBank())

	// section1 has three questions.
	st.Advance()
	st.Advance()
	if sec, q := st.Cursor(); sec != 0 || q != 2 {
		t.Fatalf("cursor = (%d, %d), want (0, 2)", sec, q)
	}

	st.Advance()
	if sec, q := st.Cursor(); sec != 1 || q != 0 {
		t.Errorf("cursor = (%d, %d), want (1, 0)", sec, q)
	}
}

func TestAdvanceNoOpAtEnd(t *testing.T) {
	st := NewState(DefaultBank())
	for !st.AtEnd() {
		st.Advance()
	}
	endSec, endQ := st.Cursor()

	st.Advance()
	if sec, q := st.Cursor(); sec != endSec || q != endQ {
		t.Errorf("cursor moved past end: (%d, %d)", sec, q)
	}
}

func TestRetreatMirrorsAdvance(t *testing.T) {
	st := NewState(DefaultBank())

	st.Advance()
	st.Advance()
	st.Advance() // (1, 0)

	st.Retreat()
	if sec, q := st.Cursor(); sec != 0 || q != 2 {
		t.Errorf("cursor = (%d, %d), want (0, 2)", sec, q)
	}

	st.Retreat()
	st.Retreat()
	if !st.AtStart() {
		t.Error("expected cursor back at start")
	}

	st.Retreat()
	if !st.AtStart() {
		t.Error("retreat at start should be a no-op")
	}
}

func TestResetClearsEverythingAndRotatesSession(t *testing.T) {
	st := NewState(DefaultBank())
	oldID := st.SessionID()

	st.SetProfile(CompanyProfile{CompanyName: "Acme"})
	st.RecordAnswer("section1", Answer{QuestionID: "q1_1", Points: 4, Kind: AnswerSingle})
	st.Advance()

	st.Reset()

	if st.SessionID() == oldID {
		t.Error("session id unchanged after reset")
	}
	if st.Profile() != nil {
		t.Error("profile survived reset")
	}
	if st.AnsweredCount() != 0 {
		t.Errorf("AnsweredCount() = %d after reset", st.AnsweredCount())
	}
	if !st.AtStart() {
		t.Error("cursor not back at start after reset")
	}
}

func TestProgress(t *testing.T) {
	st := NewState(DefaultBank())
	if st.Progress() != 0 {
		t.Errorf("Progress() = %v on empty state", st.Progress())
	}

	st.RecordAnswer("section1", Answer{QuestionID: "q1_1", Points: 4, Kind: AnswerSingle})
	want := 1.0 / float64(st.Bank().TotalQuestions())
	if got := st.Progress(); got != want {
		t.Errorf("Progress() = %v, want %v", got, want)
	}
}

func TestSingleAnswerLooksUpPoints(t *testing.T) {
	q := DefaultBank().Sections[0].Questions[0] // q1_1

	tests := []struct {
		option string
		want   int
	}{
		{"None", 0},
		{"2-4", 4},
		{"15+", 8},
		{"not an option", 0},
	}
	for _, tt := range tests {
		a := SingleAnswer(q, tt.option)
		if a.Points != tt.want {
			t.Errorf("SingleAnswer(%q).Points = %d, want %d", tt.option, a.Points, tt.want)
		}
		if a.Kind != AnswerSingle {
			t.Errorf("SingleAnswer(%q).Kind = %v, want AnswerSingle", tt.option, a.Kind)
		}
	}
}

func TestMultiAnswerSumsCheckedOptions(t *testing.T) {
	var q Question
	for _, sec := range DefaultBank().Sections {
		for _, cand := range sec.Questions {
			if cand.ID == "q6_2" {
				q = cand
			}
		}
	}
	if q.ID == "" {
		t.Fatal("q6_2 not found")
	}

	a := MultiAnswer(q, []string{
		"Named business unit or dedicated division",
		"Standalone targets, KPIs, or performance metrics",
		"not an option",
	})
	if a.Points != 2 {
		t.Errorf("Points = %d, want 2", a.Points)
	}
	if a.Kind != AnswerMulti {
		t.Errorf("Kind = %v, want AnswerMulti", a.Kind)
	}
	if len(a.Options) != 3 {
		t.Errorf("len(Options) = %d, want 3 (selection recorded verbatim)", len(a.Options))
	}
}
