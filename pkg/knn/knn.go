package knn

import (
	"fmt"
	"math"
	"slices"
	"sort"

	"github.com/go-gota/gota/dataframe"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// defaultNeighbors matches the fixed neighbor count the toolkit has
// always evaluated with.
const defaultNeighbors = 15

// Config describes one evaluation run. Zero values fall back to
// defaults: Stratify to Target, TestSize to 0.25, Neighbors to 15.
type Config struct {
	// Categorical lists multi-valued feature columns to one-hot encode.
	Categorical []string
	// Continuous lists numeric feature columns to standard-scale.
	Continuous []string
	// Target is the class column to predict.
	Target string
	// Stratify is the column whose class proportions the split preserves.
	Stratify string
	// TestSize is the held-out fraction of rows.
	TestSize float64
	// Seed fixes the split shuffle for reproducible runs.
	Seed int64
	// Neighbors is the k of the classifier.
	Neighbors int
}

// Report holds the evaluation result. Precision, Recall and F1 are macro
// averages over all classes; Confusion is indexed [actual][predicted]
// with both dimensions following Labels.
type Report struct {
	Accuracy  float64
	Precision float64
	Recall    float64
	F1        float64
	Labels    []string
	Confusion [][]int
}

// Evaluate one-hot encodes the categorical features, splits the rows with
// stratification, standard-scales the continuous features on training
// statistics, fits a k-nearest-neighbors classifier on the training side
// and scores it on the held-out side.
func Evaluate(df dataframe.DataFrame, cfg Config) (Report, error) {
	var zero Report

	cfg = withDefaults(cfg)
	if err := validate(df, cfg); err != nil {
		return zero, err
	}

	features, continuous, err := buildFeatures(df, cfg)
	if err != nil {
		return zero, err
	}

	labels := df.Col(cfg.Target).Records()
	strata := df.Col(cfg.Stratify).Records()

	trainIdx, testIdx, err := stratifiedSplit(strata, cfg.TestSize, cfg.Seed)
	if err != nil {
		return zero, err
	}

	scaleContinuous(features, continuous, trainIdx)

	predicted := predict(features, labels, trainIdx, testIdx, cfg.Neighbors)

	actual := make([]string, len(testIdx))
	for i, idx := range testIdx {
		actual[i] = labels[idx]
	}
	return score(distinctSorted(labels), actual, predicted), nil
}

func withDefaults(cfg Config) Config {
	if cfg.Stratify == "" {
		cfg.Stratify = cfg.Target
	}
	if cfg.TestSize == 0 {
		cfg.TestSize = 0.25
	}
	if cfg.Neighbors <= 0 {
		cfg.Neighbors = defaultNeighbors
	}
	return cfg
}

func validate(df dataframe.DataFrame, cfg Config) error {
	if cfg.Target == "" {
		return ErrNoTarget
	}
	if len(cfg.Categorical)+len(cfg.Continuous) == 0 {
		return ErrNoFeatures
	}
	if cfg.TestSize <= 0 || cfg.TestSize >= 1 {
		return fmt.Errorf("%w: got %v", ErrInvalidTestSize, cfg.TestSize)
	}

	names := df.Names()
	for _, group := range [][]string{cfg.Categorical, cfg.Continuous, {cfg.Target, cfg.Stratify}} {
		for _, col := range group {
			if !slices.Contains(names, col) {
				return fmt.Errorf("%w: %q", ErrUnknownColumn, col)
			}
		}
	}
	return nil
}

// buildFeatures assembles the design matrix: continuous columns first,
// then one indicator column per distinct value of each categorical
// column. It returns the matrix and the indices of the continuous
// columns, which are the only ones the scaler touches.
func buildFeatures(df dataframe.DataFrame, cfg Config) (*mat.Dense, []int, error) {
	nrow := df.Nrow()
	var cols [][]float64
	var continuous []int

	for _, name := range cfg.Continuous {
		continuous = append(continuous, len(cols))
		cols = append(cols, df.Col(name).Float())
	}
	for _, name := range cfg.Categorical {
		records := df.Col(name).Records()
		for _, value := range distinctSorted(records) {
			indicator := make([]float64, nrow)
			for i, r := range records {
				if r == value {
					indicator[i] = 1
				}
			}
			cols = append(cols, indicator)
		}
	}
	if len(cols) == 0 {
		return nil, nil, ErrNoFeatures
	}

	features := mat.NewDense(nrow, len(cols), nil)
	for j, col := range cols {
		for i, v := range col {
			features.Set(i, j, v)
		}
	}
	return features, continuous, nil
}

// scaleContinuous standardizes the continuous feature columns in place
// using mean and standard deviation fitted on the training rows only.
func scaleContinuous(features *mat.Dense, continuous, trainIdx []int) {
	rows, _ := features.Dims()
	sample := make([]float64, len(trainIdx))
	for _, j := range continuous {
		for i, idx := range trainIdx {
			sample[i] = features.At(idx, j)
		}
		mean, std := stat.MeanStdDev(sample, nil)
		if std == 0 || math.IsNaN(std) {
			std = 1
		}
		for i := 0; i < rows; i++ {
			features.Set(i, j, (features.At(i, j)-mean)/std)
		}
	}
}

// predict classifies each test row by Euclidean majority vote among its
// k nearest training rows. Ties resolve toward the class of the closer
// neighbor, which keeps the result deterministic.
func predict(features *mat.Dense, labels []string, trainIdx, testIdx []int, k int) []string {
	_, ncol := features.Dims()
	xi := make([]float64, ncol)
	xj := make([]float64, ncol)

	type neighbor struct {
		dist float64
		idx  int
	}
	neighbors := make([]neighbor, len(trainIdx))

	predicted := make([]string, len(testIdx))
	for t, testRow := range testIdx {
		mat.Row(xi, testRow, features)
		for i, trainRow := range trainIdx {
			mat.Row(xj, trainRow, features)
			neighbors[i] = neighbor{dist: floats.Distance(xi, xj, 2), idx: trainRow}
		}
		sort.Slice(neighbors, func(a, b int) bool {
			if neighbors[a].dist != neighbors[b].dist {
				return neighbors[a].dist < neighbors[b].dist
			}
			return neighbors[a].idx < neighbors[b].idx
		})

		kk := min(k, len(neighbors))
		votes := make(map[string]int, kk)
		for _, n := range neighbors[:kk] {
			votes[labels[n.idx]]++
		}
		best, bestVotes := "", -1
		for _, n := range neighbors[:kk] {
			if v := votes[labels[n.idx]]; v > bestVotes {
				best, bestVotes = labels[n.idx], v
			}
		}
		predicted[t] = best
	}
	return predicted
}

func distinctSorted(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		seen[v] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
