package rule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatches(t *testing.T) {
	r := NewRule("experienced", "", 2, []Condition{
		{Field: "experienceYears", Operator: ">=", Value: 5},
		{Field: "category", Operator: "==", Value: "development"},
	})

	matched, err := r.Matches(map[string]interface{}{
		"experienceYears": float64(7),
		"category":        "development",
	})
	require.NoError(t, err)
	assert.True(t, matched)

	matched, err = r.Matches(map[string]interface{}{
		"experienceYears": float64(2),
		"category":        "development",
	})
	require.NoError(t, err)
	assert.False(t, matched)
}

func TestMatchesUnknownField(t *testing.T) {
	r := NewRule("typo", "", 1, []Condition{
		{Field: "no_such_field", Operator: "==", Value: "x"},
	})

	matched, err := r.Matches(map[string]interface{}{"category": "support"})
	require.NoError(t, err)
	assert.False(t, matched)
}

func TestMatchesStringValueNotInterpolated(t *testing.T) {
	r := NewRule("quoted", "", 1, []Condition{
		{Field: "title", Operator: "==", Value: "it's || broken"},
	})

	matched, err := r.Matches(map[string]interface{}{"title": "it's || broken"})
	require.NoError(t, err)
	assert.True(t, matched)
}

func TestMatchesUnsupportedOperator(t *testing.T) {
	r := &Rule{Name: "bad", Conditions: []Condition{
		{Field: "category", Operator: "=~", Value: "dev"},
	}}

	_, err := r.Matches(map[string]interface{}{"category": "development"})
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	r := NewRule("ok", "desc", 0, []Condition{{Field: "priority", Operator: "==", Value: "high"}})
	require.NoError(t, r.Validate())
	assert.Equal(t, 3, r.Priority, "non-positive priority gets the default")

	assert.Error(t, (&Rule{Conditions: []Condition{{Field: "f", Operator: "=="}}}).Validate())
	assert.Error(t, (&Rule{Name: "n"}).Validate())
	assert.Error(t, (&Rule{Name: "n", Conditions: []Condition{{Operator: "=="}}}).Validate())
	assert.Error(t, (&Rule{Name: "n", Conditions: []Condition{{Field: "f", Operator: "like"}}}).Validate())
}
