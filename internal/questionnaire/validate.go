package questionnaire

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// Coerce turns a raw input value from the presentation layer into the
// canonical form for the question, or reports why it is unacceptable.
// Required-emptiness is deliberately not checked here: editing passes
// through transient empty states, and the gate applies at save time
// via CheckRequired.
func Coerce(q Question, raw Value) (Value, *FieldError) {
	switch q.Type {
	case TypeText, TypeTextArea, TypePhone:
		if raw.IsList() {
			return Value{}, &FieldError{QuestionID: q.ID, Reason: "expected a single value"}
		}
		return raw, nil

	case TypeSelect:
		if raw.IsList() {
			return Value{}, &FieldError{QuestionID: q.ID, Reason: "expected a single value"}
		}
		if raw.Single != "" && !containsOption(q.Options, raw.Single) {
			return Value{}, &FieldError{QuestionID: q.ID, Reason: fmt.Sprintf("%q is not one of the allowed options", raw.Single)}
		}
		return raw, nil

	case TypeMultiSelect:
		if !raw.IsList() {
			if raw.Single == "" {
				return Value{Multi: []string{}}, nil
			}
			return Value{}, &FieldError{QuestionID: q.ID, Reason: "expected a list of values"}
		}
		// Deduplicate keeping first-occurrence order, reject anything
		// outside the option set.
		seen := make(map[string]bool, len(raw.Multi))
		canonical := make([]string, 0, len(raw.Multi))
		for _, item := range raw.Multi {
			if !containsOption(q.Options, item) {
				return Value{}, &FieldError{QuestionID: q.ID, Reason: fmt.Sprintf("%q is not one of the allowed options", item)}
			}
			if seen[item] {
				continue
			}
			seen[item] = true
			canonical = append(canonical, item)
		}
		return Value{Multi: canonical}, nil

	case TypeDate:
		if raw.IsList() {
			return Value{}, &FieldError{QuestionID: q.ID, Reason: "expected a single value"}
		}
		if raw.Single == "" {
			return raw, nil
		}
		parsed, err := time.Parse(dateLayout, raw.Single)
		if err != nil || parsed.Format(dateLayout) != raw.Single {
			return Value{}, &FieldError{QuestionID: q.ID, Reason: fmt.Sprintf("%q is not a YYYY-MM-DD date", raw.Single)}
		}
		return raw, nil

	case TypeEmail:
		if raw.IsList() {
			return Value{}, &FieldError{QuestionID: q.ID, Reason: "expected a single value"}
		}
		// Minimal syntactic check only: an @ with a dot somewhere after
		// it. Stricter validation would reject addresses the app already
		// accepts today.
		if raw.Single != "" {
			at := strings.Index(raw.Single, "@")
			if at < 0 || !strings.Contains(raw.Single[at+1:], ".") {
				return Value{}, &FieldError{QuestionID: q.ID, Reason: fmt.Sprintf("%q does not look like an email address", raw.Single)}
			}
		}
		return raw, nil

	case TypeBoolean:
		if raw.IsList() {
			return Value{}, &FieldError{QuestionID: q.ID, Reason: "expected a single value"}
		}
		switch raw.Single {
		case "Yes", "No", "":
			return raw, nil
		}
		return Value{}, &FieldError{QuestionID: q.ID, Reason: fmt.Sprintf("%q must be Yes or No", raw.Single)}

	case TypeNumber:
		if raw.IsList() {
			return Value{}, &FieldError{QuestionID: q.ID, Reason: "expected a single value"}
		}
		if raw.Single == "" {
			return raw, nil
		}
		// Numbers stay strings end to end so nothing is lost to float
		// precision or locale formatting; parsing only gates validity.
		n, err := strconv.ParseFloat(raw.Single, 64)
		if err != nil || math.IsInf(n, 0) || math.IsNaN(n) {
			return Value{}, &FieldError{QuestionID: q.ID, Reason: fmt.Sprintf("%q is not a number", raw.Single)}
		}
		return raw, nil
	}

	return Value{}, &FieldError{QuestionID: q.ID, Reason: fmt.Sprintf("unknown question type %q", q.Type)}
}

// CheckRequired applies the save-time gate: a required question may not
// be left empty. Surrounding whitespace does not count as an answer.
func CheckRequired(q Question, v Value) *FieldError {
	if !q.Required {
		return nil
	}
	if v.IsList() {
		if len(v.Multi) == 0 {
			return &FieldError{QuestionID: q.ID, Reason: "this question is required", Missing: true}
		}
		return nil
	}
	if strings.TrimSpace(v.Single) == "" {
		return &FieldError{QuestionID: q.ID, Reason: "this question is required", Missing: true}
	}
	return nil
}

func containsOption(options []string, candidate string) bool {
	for _, o := range options {
		if o == candidate {
			return true
		}
	}
	return false
}
