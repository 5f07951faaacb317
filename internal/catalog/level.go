package catalog

// PayloadKind identifies which payload a level carries.
type PayloadKind string

const (
	KindReading  PayloadKind = "reading"
	KindQuiz     PayloadKind = "quiz"
	KindActivity PayloadKind = "activity"
	KindScenario PayloadKind = "scenario"
)

// Label returns a human-readable label for the kind.
func (k PayloadKind) Label() string {
	switch k {
	case KindReading:
		return "Reading"
	case KindQuiz:
		return "Quiz"
	case KindActivity:
		return "Activity"
	case KindScenario:
		return "Scenario"
	default:
		return string(k)
	}
}

// Payload is the optional interactive part of a level. It is sealed: only
// *Quiz, *Activity and *Scenario implement it, so a level carries at most
// one payload kind.
type Payload interface {
	Kind() PayloadKind
	sealed()
}

// Option is one answer choice of a quiz.
type Option struct {
	Text    string
	Correct bool
}

// Quiz is a single multiple-choice question.
type Quiz struct {
	Question    string
	Options     []Option
	Explanation string
}

func (*Quiz) Kind() PayloadKind { return KindQuiz }
func (*Quiz) sealed()           {}

// OptionByText returns the option whose text matches exactly.
func (q *Quiz) OptionByText(text string) (Option, bool) {
	for _, o := range q.Options {
		if o.Text == text {
			return o, true
		}
	}
	return Option{}, false
}

// CorrectOption returns the first option marked correct.
func (q *Quiz) CorrectOption() (Option, bool) {
	for _, o := range q.Options {
		if o.Correct {
			return o, true
		}
	}
	return Option{}, false
}

// Activity is a free-form exercise. Data is opaque to the progression core.
type Activity struct {
	Type         string
	Instructions string
	Data         map[string]any
}

func (*Activity) Kind() PayloadKind { return KindActivity }
func (*Activity) sealed()           {}

// Scenario is a prompt with a canned resolution, e.g. a job ad whose red
// flags are revealed on demand.
type Scenario struct {
	Prompt     string
	Highlights []string
	Resolution string
	Takeaway   string
}

func (*Scenario) Kind() PayloadKind { return KindScenario }
func (*Scenario) sealed()           {}

// Level is the atomic unit of content and progress.
type Level struct {
	ID      string
	Title   string
	Body    string
	Payload Payload // nil for plain reading levels
}

// Kind returns the payload kind, KindReading when there is no payload.
func (l Level) Kind() PayloadKind {
	if l.Payload == nil {
		return KindReading
	}
	return l.Payload.Kind()
}

// Quiz returns the level's quiz payload, if it has one.
func (l Level) Quiz() (*Quiz, bool) {
	q, ok := l.Payload.(*Quiz)
	return q, ok
}

// Activity returns the level's activity payload, if it has one.
func (l Level) Activity() (*Activity, bool) {
	a, ok := l.Payload.(*Activity)
	return a, ok
}

// Scenario returns the level's scenario payload, if it has one.
func (l Level) Scenario() (*Scenario, bool) {
	s, ok := l.Payload.(*Scenario)
	return s, ok
}

// Module is a named, badge-bearing group of ordered levels. Level order
// defines the prerequisite chain.
type Module struct {
	ID      string
	Title   string
	Summary string
	BadgeID string
	Levels  []Level
}
