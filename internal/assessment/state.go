package assessment

import (
	"github.com/google/uuid"
)

// State tracks one in-progress assessment: the captured profile, the
// accumulated answers, and the cursor into the question bank. It is owned
// by a single interactive session and is not safe for concurrent use.
type State struct {
	bank      *Bank
	sessionID string
	profile   *CompanyProfile

	// answers preserves insertion order per section; replacing an answer
	// keeps its slot.
	answers map[string][]Answer

	section  int
	question int
}

// NewState creates an empty State over the given bank.
func NewState(bank *Bank) *State {
	return &State{
		bank:      bank,
		sessionID: uuid.NewString(),
		answers:   make(map[string][]Answer, len(bank.Sections)),
	}
}

// SessionID identifies this assessment run. It changes on Reset, which is
// how late-arriving async results for an abandoned run are detected and
// dropped.
func (s *State) SessionID() string {
	return s.sessionID
}

// SetProfile attaches the intake profile. Called once, before the first
// answer is recorded.
func (s *State) SetProfile(p CompanyProfile) {
	s.profile = &p
}

// Profile returns the captured profile, or nil before intake completes.
func (s *State) Profile() *CompanyProfile {
	return s.profile
}

// Bank returns the question bank this state runs over.
func (s *State) Bank() *Bank {
	return s.bank
}

// RecordAnswer stores an answer under the given section. An existing
// answer for the same question is replaced in place; otherwise the answer
// is appended.
func (s *State) RecordAnswer(sectionID string, a Answer) {
	list := s.answers[sectionID]
	for i := range list {
		if list[i].QuestionID == a.QuestionID {
			list[i] = a
			return
		}
	}
	s.answers[sectionID] = append(list, a)
}

// Answers returns the recorded answers for a section in insertion order.
func (s *State) Answers(sectionID string) []Answer {
	return s.answers[sectionID]
}

// AnswerFor returns the answer for a question within a section, if any.
func (s *State) AnswerFor(sectionID, questionID string) (Answer, bool) {
	for _, a := range s.answers[sectionID] {
		if a.QuestionID == questionID {
			return a, true
		}
	}
	return Answer{}, false
}

// Answered reports whether a question has an answer record. A zero-point
// selection counts as answered; absence does not.
func (s *State) Answered(sectionID, questionID string) bool {
	_, ok := s.AnswerFor(sectionID, questionID)
	return ok
}

// AnsweredCount returns the number of answered questions across all
// sections.
func (s *State) AnsweredCount() int {
	n := 0
	for _, list := range s.answers {
		n += len(list)
	}
	return n
}

// Progress returns the overall completion fraction in [0, 1].
func (s *State) Progress() float64 {
	total := s.bank.TotalQuestions()
	if total == 0 {
		return 0
	}
	return float64(s.AnsweredCount()) / float64(total)
}

// Cursor returns the current (section, question) indexes.
func (s *State) Cursor() (section, question int) {
	return s.section, s.question
}

// CurrentSection returns the section under the cursor.
func (s *State) CurrentSection() *Section {
	return &s.bank.Sections[s.section]
}

// CurrentQuestion returns the question under the cursor.
func (s *State) CurrentQuestion() *Question {
	return &s.bank.Sections[s.section].Questions[s.question]
}

// AtStart reports whether the cursor is on the very first question.
func (s *State) AtStart() bool {
	return s.section == 0 && s.question == 0
}

// AtEnd reports whether the cursor is on the last question of the last
// section, i.e. Advance would be a no-op and the caller should treat the
// assessment as complete.
func (s *State) AtEnd() bool {
	return s.section == len(s.bank.Sections)-1 &&
		s.question == len(s.bank.Sections[s.section].Questions)-1
}

// Advance moves the cursor forward: next question in the section, or the
// first question of the next section. No-op at the end of the bank.
func (s *State) Advance() {
	sec := s.bank.Sections[s.section]
	if s.question < len(sec.Questions)-1 {
		s.question++
		return
	}
	if s.section < len(s.bank.Sections)-1 {
		s.section++
		s.question = 0
	}
}

// Retreat mirrors Advance: previous question in the section, or the last
// question of the previous section. No-op at the start of the bank.
func (s *State) Retreat() {
	if s.question > 0 {
		s.question--
		return
	}
	if s.section > 0 {
		s.section--
		s.question = len(s.bank.Sections[s.section].Questions) - 1
	}
}

// Reset discards the profile, all answers, and the cursor, and issues a
// fresh session id so in-flight results for the old run are dropped.
func (s *State) Reset() {
	s.sessionID = uuid.NewString()
	s.profile = nil
	s.answers = make(map[string][]Answer, len(s.bank.Sections))
	s.section = 0
	s.question = 0
}
