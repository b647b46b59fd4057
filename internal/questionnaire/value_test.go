package questionnaire

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueJSONIsStringOrArray(t *testing.T) {
	doc, err := json.Marshal(AnswerMap{
		"email": StringValue("a@b.com"),
		"langs": ListValue("B", "A"),
		"phone": Value{},
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"email":"a@b.com","langs":["B","A"],"phone":""}`, string(doc))

	var back AnswerMap
	require.NoError(t, json.Unmarshal(doc, &back))
	assert.Equal(t, "a@b.com", back["email"].Single)
	assert.Equal(t, []string{"B", "A"}, back["langs"].Multi)

	var v Value
	assert.Error(t, json.Unmarshal([]byte(`42`), &v))
}

func TestValueEqualTreatsAllEmptyFormsAlike(t *testing.T) {
	assert.True(t, Value{}.Equal(ListValue()))
	assert.True(t, StringValue("").Equal(Value{}))
	assert.False(t, ListValue("A").Equal(ListValue("A", "B")))
	assert.False(t, ListValue("A", "B").Equal(ListValue("B", "A")), "list order is significant")
	assert.False(t, StringValue("A").Equal(ListValue("A")))
}

func TestAnswerMapCloneIsDeep(t *testing.T) {
	original := AnswerMap{"langs": ListValue("A", "B")}
	clone := original.Clone()
	clone["langs"].Multi[0] = "Z"
	assert.Equal(t, "A", original["langs"].Multi[0])
}
