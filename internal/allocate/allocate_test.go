package allocate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/learnzy/learnzy/internal/plan"
)

func TestHoursSumsToBudget(t *testing.T) {
	topics := []string{"Linear Regression", "Neural Networks", "Decision Trees"}
	knowledge := plan.KnowledgeMap{"Linear Regression": 40, "Decision Trees": 30}

	alloc, err := Hours(topics, 30, 2.5, knowledge, []string{"Neural Networks"})
	require.NoError(t, err)
	require.Len(t, alloc, len(topics))

	sum := 0.0
	for _, topic := range topics {
		hours, ok := alloc[topic]
		require.True(t, ok, "missing allocation for %s", topic)
		assert.GreaterOrEqual(t, hours, 0.0)
		sum += hours
	}
	assert.InDelta(t, 30*2.5, sum, 1e-9)
}

func TestHoursWeighting(t *testing.T) {
	// fresh: weight 100; weakMid: (100-50)*1.5*1.3 = 97.5
	topics := []string{"fresh", "weakMid"}
	knowledge := plan.KnowledgeMap{"weakMid": 50}

	alloc, err := Hours(topics, 10, 2, knowledge, []string{"weakMid"})
	require.NoError(t, err)

	total := 100.0 + 97.5
	assert.InDelta(t, 100.0/total*20, alloc["fresh"], 1e-9)
	assert.InDelta(t, 97.5/total*20, alloc["weakMid"], 1e-9)
}

func TestHoursSpacedBoostBounds(t *testing.T) {
	// Boundary knowledge levels 30 and 70 get the repetition boost;
	// 29 and 71 do not.
	tests := []struct {
		knowledge int
		boosted   bool
	}{
		{29, false},
		{30, true},
		{70, true},
		{71, false},
	}

	for _, tt := range tests {
		alloc, err := Hours([]string{"a", "b"}, 1, 1, plan.KnowledgeMap{"a": tt.knowledge}, nil)
		require.NoError(t, err)

		weightA := float64(100 - tt.knowledge)
		if tt.boosted {
			weightA *= 1.3
		}
		want := weightA / (weightA + 100) * 1
		assert.InDelta(t, want, alloc["a"], 1e-9, "knowledge %d", tt.knowledge)
	}
}

func TestHoursDefaultsUnknownTopicsToZero(t *testing.T) {
	alloc, err := Hours([]string{"a", "b"}, 2, 1, plan.KnowledgeMap{}, nil)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, alloc["a"], 1e-9)
	assert.InDelta(t, 1.0, alloc["b"], 1e-9)
}

func TestHoursZeroWeightIsValidationError(t *testing.T) {
	knowledge := plan.KnowledgeMap{"a": 100, "b": 100}
	_, err := Hours([]string{"a", "b"}, 5, 2, knowledge, nil)
	require.Error(t, err)

	var verr *plan.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "knowledge", verr.Field)
}

func TestHoursRejectsOutOfRangeKnowledge(t *testing.T) {
	for _, level := range []int{-1, 101} {
		_, err := Hours([]string{"a"}, 5, 2, plan.KnowledgeMap{"a": level}, nil)
		var verr *plan.ValidationError
		require.ErrorAs(t, err, &verr, "knowledge level %d", level)
	}
}

func TestHoursFullyMasteredButWeakStillAllocates(t *testing.T) {
	// knowledge 100 zeroes the base weight even for weak areas, so a
	// mixed list allocates everything to the unmastered topic.
	knowledge := plan.KnowledgeMap{"done": 100}
	alloc, err := Hours([]string{"done", "todo"}, 4, 1, knowledge, []string{"done"})
	require.NoError(t, err)
	assert.InDelta(t, 0.0, alloc["done"], 1e-9)
	assert.InDelta(t, 4.0, alloc["todo"], 1e-9)
}
