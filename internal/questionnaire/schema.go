package questionnaire

import "fmt"

// QuestionType is the closed set of field kinds the questionnaire
// supports. Validation and rendering both switch exhaustively on it.
type QuestionType string

const (
	TypeText        QuestionType = "text"
	TypeTextArea    QuestionType = "textarea"
	TypeSelect      QuestionType = "select"
	TypeDate        QuestionType = "date"
	TypePhone       QuestionType = "phone"
	TypeEmail       QuestionType = "email"
	TypeBoolean     QuestionType = "boolean"
	TypeNumber      QuestionType = "number"
	TypeMultiSelect QuestionType = "multi_select"
)

type Question struct {
	ID       string       `json:"id"`
	Text     string       `json:"text"`
	Type     QuestionType `json:"type"`
	Options  []string     `json:"options,omitempty"`
	Required bool         `json:"required"`
}

// IsMulti reports whether answers to q are lists rather than scalars.
func (q Question) IsMulti() bool { return q.Type == TypeMultiSelect }

type Category struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Questions   []Question `json:"questions"`
}

// Schema is the full ordered questionnaire definition. It is loaded
// once at startup and never mutated afterwards.
type Schema []Category

// Registry wraps a validated Schema with a reverse index from question
// id to its definition for O(1) lookups during validation and diffing.
type Registry struct {
	schema Schema
	index  map[string]Question
	total  int
}

// NewRegistry checks the schema invariants once and builds the index.
// A duplicate question id or a choice question without options is a
// malformed schema and aborts startup.
func NewRegistry(schema Schema) (*Registry, error) {
	index := make(map[string]Question)
	total := 0

	for _, category := range schema {
		for _, question := range category.Questions {
			if question.ID == "" {
				return nil, &SchemaError{Reason: fmt.Sprintf("category %q has a question with an empty id", category.ID)}
			}
			if _, exists := index[question.ID]; exists {
				return nil, &SchemaError{Reason: fmt.Sprintf("duplicate question id %q", question.ID)}
			}
			switch question.Type {
			case TypeSelect, TypeMultiSelect:
				if len(question.Options) == 0 {
					return nil, &SchemaError{Reason: fmt.Sprintf("question %q is %s but has no options", question.ID, question.Type)}
				}
			case TypeText, TypeTextArea, TypeDate, TypePhone, TypeEmail, TypeBoolean, TypeNumber:
				// no per-type invariants
			default:
				return nil, &SchemaError{Reason: fmt.Sprintf("question %q has unknown type %q", question.ID, question.Type)}
			}
			index[question.ID] = question
			total++
		}
	}

	return &Registry{schema: schema, index: index, total: total}, nil
}

// Schema returns the ordered categories. Callers must not mutate it.
func (r *Registry) Schema() Schema { return r.schema }

// TotalQuestions returns the number of questions across all categories.
func (r *Registry) TotalQuestions() int { return r.total }

// Find returns the question for id, or false when the id is not part
// of the schema.
func (r *Registry) Find(id string) (Question, bool) {
	q, ok := r.index[id]
	return q, ok
}

// EmptyAnswers builds an AnswerMap with every known question id present
// and unanswered. This is the baseline for a subject with no stored
// profile.
func (r *Registry) EmptyAnswers() AnswerMap {
	answers := make(AnswerMap, r.total)
	for id := range r.index {
		answers[id] = Value{}
	}
	return answers
}
