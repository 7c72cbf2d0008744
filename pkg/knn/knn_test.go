package knn_test

import (
	"fmt"
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datakit-go/datakit/pkg/knn"
)

// separableFrame builds two well-separated classes: low incomes in the
// west, high incomes in the east.
func separableFrame() dataframe.DataFrame {
	records := [][]string{{"income", "age", "region", "segment"}}
	for i := 0; i < 12; i++ {
		records = append(records, []string{
			fmt.Sprintf("%d", 1000+i*10),
			fmt.Sprintf("%d", 25+i),
			"west",
			"basic",
		})
	}
	for i := 0; i < 12; i++ {
		records = append(records, []string{
			fmt.Sprintf("%d", 9000+i*10),
			fmt.Sprintf("%d", 45+i),
			"east",
			"premium",
		})
	}
	return dataframe.LoadRecords(records)
}

func evalConfig() knn.Config {
	return knn.Config{
		Categorical: []string{"region"},
		Continuous:  []string{"income", "age"},
		Target:      "segment",
		TestSize:    0.25,
		Seed:        7,
		Neighbors:   3,
	}
}

func TestEvaluateSeparableClasses(t *testing.T) {
	report, err := knn.Evaluate(separableFrame(), evalConfig())
	require.NoError(t, err)

	assert.Equal(t, 1.0, report.Accuracy, "separable classes should classify perfectly")
	assert.Equal(t, 1.0, report.Precision)
	assert.Equal(t, 1.0, report.Recall)
	assert.Equal(t, 1.0, report.F1)
	assert.Equal(t, []string{"basic", "premium"}, report.Labels)
}

func TestEvaluateMetricBounds(t *testing.T) {
	report, err := knn.Evaluate(separableFrame(), evalConfig())
	require.NoError(t, err)

	for name, v := range map[string]float64{
		"accuracy":  report.Accuracy,
		"precision": report.Precision,
		"recall":    report.Recall,
		"f1":        report.F1,
	} {
		assert.GreaterOrEqual(t, v, 0.0, name)
		assert.LessOrEqual(t, v, 1.0, name)
	}
}

func TestEvaluateConfusionRowSums(t *testing.T) {
	report, err := knn.Evaluate(separableFrame(), evalConfig())
	require.NoError(t, err)

	// 12 rows per class at TestSize 0.25 puts 3 of each class in the
	// held-out set; confusion rows sum to the per-class test counts.
	require.Len(t, report.Confusion, 2)
	for i := range report.Confusion {
		sum := 0
		for _, c := range report.Confusion[i] {
			sum += c
		}
		assert.Equal(t, 3, sum, "row %d", i)
	}
}

func TestEvaluateDeterministic(t *testing.T) {
	first, err := knn.Evaluate(separableFrame(), evalConfig())
	require.NoError(t, err)
	second, err := knn.Evaluate(separableFrame(), evalConfig())
	require.NoError(t, err)

	assert.Equal(t, first, second, "same inputs and seed must reproduce the report")
}

func TestEvaluateDefaultNeighbors(t *testing.T) {
	cfg := evalConfig()
	cfg.Neighbors = 0 // falls back to 15, clamped to the training set size

	report, err := knn.Evaluate(separableFrame(), cfg)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, report.Accuracy, 0.5)
}

func TestEvaluateValidation(t *testing.T) {
	df := separableFrame()

	tests := []struct {
		name     string
		mutate   func(*knn.Config)
		expected error
	}{
		{
			name:     "unknown feature column",
			mutate:   func(c *knn.Config) { c.Continuous = []string{"salary"} },
			expected: knn.ErrUnknownColumn,
		},
		{
			name:     "no features",
			mutate:   func(c *knn.Config) { c.Categorical = nil; c.Continuous = nil },
			expected: knn.ErrNoFeatures,
		},
		{
			name:     "no target",
			mutate:   func(c *knn.Config) { c.Target = "" },
			expected: knn.ErrNoTarget,
		},
		{
			name:     "test size too large",
			mutate:   func(c *knn.Config) { c.TestSize = 1.5 },
			expected: knn.ErrInvalidTestSize,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := evalConfig()
			tt.mutate(&cfg)
			_, err := knn.Evaluate(df, cfg)
			assert.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestEvaluateClassTooSmall(t *testing.T) {
	df := dataframe.LoadRecords([][]string{
		{"x", "y"},
		{"1", "a"},
		{"2", "a"},
		{"3", "b"}, // singleton class cannot appear on both split sides
	})

	_, err := knn.Evaluate(df, knn.Config{
		Continuous: []string{"x"},
		Target:     "y",
		TestSize:   0.25,
	})
	assert.ErrorIs(t, err, knn.ErrClassTooSmall)
}
