package assessment

// Option is a selectable answer choice with its point value.
type Option struct {
	Text   string
	Points int
}

// QuestionKind discriminates how a question is answered.
type QuestionKind int

const (
	// SingleSelect questions award the points of the one chosen option.
	SingleSelect QuestionKind = iota
	// MultiSelect questions award the sum of all checked options.
	MultiSelect
)

// Question is one scored prompt within a section.
type Question struct {
	ID        string
	Text      string
	Options   []Option
	HelpText  string
	MaxPoints int
	Kind      QuestionKind
}

// Section is a thematic group of questions with a declared point budget.
type Section struct {
	ID          string
	Title       string
	Description string
	MaxPoints   int
	Questions   []Question
}

// Bank is the fixed, ordered list of assessment sections.
// It is built once at startup and never mutated.
type Bank struct {
	Sections []Section
}

// TotalQuestions returns the number of questions across all sections.
func (b *Bank) TotalQuestions() int {
	n := 0
	for _, s := range b.Sections {
		n += len(s.Questions)
	}
	return n
}

// TotalMaxPoints returns the sum of all section point budgets.
func (b *Bank) TotalMaxPoints() int {
	n := 0
	for _, s := range b.Sections {
		n += s.MaxPoints
	}
	return n
}

// Section returns the section with the given id, or nil.
func (b *Bank) Section(id string) *Section {
	for i := range b.Sections {
		if b.Sections[i].ID == id {
			return &b.Sections[i]
		}
	}
	return nil
}

// AnswerKind discriminates the two answer shapes.
type AnswerKind int

const (
	// AnswerSingle holds one chosen option text.
	AnswerSingle AnswerKind = iota
	// AnswerMulti holds the set of checked option texts.
	AnswerMulti
)

// Answer records a selection for one question. The Kind tag tells which of
// Option/Options is meaningful. Points always equal the value recomputed
// from the selection against the question's options.
type Answer struct {
	QuestionID string
	Points     int
	Kind       AnswerKind
	Option     string   // single-select: the chosen option text
	Options    []string // multi-select: checked option texts, in check order
}

// SingleAnswer builds a single-select Answer for the given question,
// looking the points up from the question's options. Unknown option texts
// score zero.
func SingleAnswer(q Question, optionText string) Answer {
	points := 0
	for _, opt := range q.Options {
		if opt.Text == optionText {
			points = opt.Points
			break
		}
	}
	return Answer{
		QuestionID: q.ID,
		Points:     points,
		Kind:       AnswerSingle,
		Option:     optionText,
	}
}

// MultiAnswer builds a multi-select Answer for the given question. Points
// are the sum of the point values of the checked options; unknown texts
// contribute nothing.
func MultiAnswer(q Question, checked []string) Answer {
	points := 0
	for _, text := range checked {
		for _, opt := range q.Options {
			if opt.Text == text {
				points += opt.Points
				break
			}
		}
	}
	return Answer{
		QuestionID: q.ID,
		Points:     points,
		Kind:       AnswerMulti,
		Options:    append([]string(nil), checked...),
	}
}
