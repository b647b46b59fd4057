package questionnaire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoerceSelect(t *testing.T) {
	q := Question{ID: "gender", Type: TypeSelect, Options: []string{"Male", "Female", "Other"}}

	v, fe := Coerce(q, StringValue("Female"))
	require.Nil(t, fe)
	assert.Equal(t, "Female", v.Single)

	// Empty passes through; the required gate is separate.
	_, fe = Coerce(q, StringValue(""))
	assert.Nil(t, fe)

	_, fe = Coerce(q, StringValue("female"))
	require.NotNil(t, fe)
	assert.Equal(t, "gender", fe.QuestionID)
}

func TestCoerceMultiSelectDedupesInFirstOccurrenceOrder(t *testing.T) {
	q := Question{ID: "langs", Type: TypeMultiSelect, Options: []string{"A", "B", "C"}}

	v, fe := Coerce(q, ListValue("B", "A", "B", "C", "A"))
	require.Nil(t, fe)
	assert.Equal(t, []string{"B", "A", "C"}, v.Multi)

	_, fe = Coerce(q, ListValue("B", "X"))
	require.NotNil(t, fe)
	assert.Contains(t, fe.Reason, "X")
}

func TestCoerceMultiSelectAcceptsEmptyScalar(t *testing.T) {
	q := Question{ID: "langs", Type: TypeMultiSelect, Options: []string{"A"}}

	v, fe := Coerce(q, StringValue(""))
	require.Nil(t, fe)
	assert.True(t, v.IsList())
	assert.Empty(t, v.Multi)
}

func TestCoerceDate(t *testing.T) {
	q := Question{ID: "birth_date", Type: TypeDate}

	for _, ok := range []string{"", "2003-11-30", "1999-01-01"} {
		_, fe := Coerce(q, StringValue(ok))
		assert.Nil(t, fe, "%q should be accepted", ok)
	}
	for _, bad := range []string{"30-11-2003", "2003-13-01", "2003-2-1", "yesterday"} {
		_, fe := Coerce(q, StringValue(bad))
		assert.NotNil(t, fe, "%q should be rejected", bad)
	}
}

func TestCoerceEmailMinimalHeuristic(t *testing.T) {
	q := Question{ID: "email", Type: TypeEmail}

	for _, ok := range []string{"", "a@b.com", "first.last@sub.example.org"} {
		_, fe := Coerce(q, StringValue(ok))
		assert.Nil(t, fe, "%q should be accepted", ok)
	}
	for _, bad := range []string{"not-an-email", "a@b", "a.b@c"} {
		_, fe := Coerce(q, StringValue(bad))
		assert.NotNil(t, fe, "%q should be rejected", bad)
	}
}

func TestCoerceBoolean(t *testing.T) {
	q := Question{ID: "weekend_stay", Type: TypeBoolean}

	for _, ok := range []string{"Yes", "No", ""} {
		_, fe := Coerce(q, StringValue(ok))
		assert.Nil(t, fe)
	}
	for _, bad := range []string{"yes", "true", "maybe"} {
		_, fe := Coerce(q, StringValue(bad))
		assert.NotNil(t, fe, "%q should be rejected", bad)
	}
}

func TestCoerceNumberKeepsStringForm(t *testing.T) {
	q := Question{ID: "room", Type: TypeNumber}

	v, fe := Coerce(q, StringValue("007"))
	require.Nil(t, fe)
	assert.Equal(t, "007", v.Single, "numeric answers keep their original text")

	for _, ok := range []string{"", "12", "-3.5", "1e3"} {
		_, fe := Coerce(q, StringValue(ok))
		assert.Nil(t, fe, "%q should be accepted", ok)
	}
	for _, bad := range []string{"twelve", "1,5", "Inf", "NaN"} {
		_, fe := Coerce(q, StringValue(bad))
		assert.NotNil(t, fe, "%q should be rejected", bad)
	}
}

func TestCoerceIsStableUnderReapplication(t *testing.T) {
	q := Question{ID: "langs", Type: TypeMultiSelect, Options: []string{"A", "B", "C"}}

	once, fe := Coerce(q, ListValue("C", "A", "C"))
	require.Nil(t, fe)
	twice, fe := Coerce(q, once)
	require.Nil(t, fe)
	assert.True(t, once.Equal(twice))
}

func TestCheckRequired(t *testing.T) {
	text := Question{ID: "full_name", Type: TypeText, Required: true}
	assert.NotNil(t, CheckRequired(text, StringValue("")))
	assert.NotNil(t, CheckRequired(text, StringValue("   ")), "whitespace is not an answer")
	assert.Nil(t, CheckRequired(text, StringValue("Dana")))

	multi := Question{ID: "langs", Type: TypeMultiSelect, Options: []string{"A"}, Required: true}
	assert.NotNil(t, CheckRequired(multi, ListValue()))
	assert.Nil(t, CheckRequired(multi, ListValue("A")))

	optional := Question{ID: "email", Type: TypeEmail}
	assert.Nil(t, CheckRequired(optional, StringValue("")))
}
