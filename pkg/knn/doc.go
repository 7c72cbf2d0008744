// Package knn trains and scores a k-nearest-neighbors classifier on a
// dataframe in one call, covering the preprocessing an analyst would
// otherwise copy-paste between notebooks: one-hot encoding of categorical
// features, a stratified train/test split, and standard scaling of
// continuous features fitted on the training side only.
//
// Evaluate returns a Report with accuracy, a confusion matrix and
// macro-averaged precision, recall and F1. All metrics lie in [0, 1] and
// repeated calls with the same Config (including Seed) produce identical
// results.
//
// There is no cross-validation and no hyperparameter search; the
// neighbor count defaults to 15 and can be overridden in the Config. A
// stratification class with fewer than two members cannot be split and
// aborts with ErrClassTooSmall.
//
// # Usage
//
//	import "github.com/datakit-go/datakit/pkg/knn"
//
//	report, err := knn.Evaluate(df, knn.Config{
//	    Categorical: []string{"region", "channel"},
//	    Continuous:  []string{"age", "income"},
//	    Target:      "churned",
//	    TestSize:    0.25,
//	    Seed:        42,
//	})
package knn
