package questionnaire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeProgress(t *testing.T) {
	schema := Schema{
		{ID: "c", Questions: []Question{
			{ID: "a", Type: TypeText},
			{ID: "b", Type: TypeText},
			{ID: "m", Type: TypeMultiSelect, Options: []string{"X"}},
		}},
	}

	p := ComputeProgress(schema, AnswerMap{"a": Value{}, "b": Value{}, "m": Value{}})
	assert.Equal(t, Progress{Answered: 0, Total: 3, Ratio: 0}, p)

	p = ComputeProgress(schema, AnswerMap{"a": StringValue("hi"), "m": ListValue("X")})
	assert.Equal(t, 2, p.Answered)
	assert.InDelta(t, 2.0/3.0, p.Ratio, 1e-9)
}

func TestProgressMonotonicity(t *testing.T) {
	schema := Schema{
		{ID: "c", Questions: []Question{
			{ID: "a", Type: TypeText},
			{ID: "b", Type: TypeText},
		}},
	}
	answers := AnswerMap{}

	before := ComputeProgress(schema, answers)
	answers["a"] = StringValue("x")
	after := ComputeProgress(schema, answers)
	assert.Greater(t, after.Answered, before.Answered)

	answers["a"] = Value{}
	cleared := ComputeProgress(schema, answers)
	assert.Less(t, cleared.Answered, after.Answered)

	for _, p := range []Progress{before, after, cleared} {
		assert.GreaterOrEqual(t, p.Ratio, 0.0)
		assert.LessOrEqual(t, p.Ratio, 1.0)
	}
}

func TestProgressIgnoresKeysOutsideSchema(t *testing.T) {
	schema := Schema{{ID: "c", Questions: []Question{{ID: "a", Type: TypeText}}}}

	p := ComputeProgress(schema, AnswerMap{"legacy_field": StringValue("kept but unseen")})
	assert.Equal(t, Progress{Answered: 0, Total: 1, Ratio: 0}, p)
}

func TestProgressEmptySchema(t *testing.T) {
	p := ComputeProgress(Schema{}, AnswerMap{"a": StringValue("x")})
	require.Equal(t, Progress{}, p)
}
