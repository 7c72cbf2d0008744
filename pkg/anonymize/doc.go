// Package anonymize generalizes quasi-identifier columns of a dataframe
// until the table satisfies k-anonymity: every combination of values
// across the generalized columns occurs in at least k rows.
//
// Table is bookkeeping around the generalizer: it tags which
// quasi-identifiers are categorical, attaches a synthetic per-row
// identifier, runs the partitioner, drops the partition-size artifact
// column, left-joins the generalized columns back onto the original frame
// by the identifier and finally removes the identifier again. Columns
// listed as kept or sensitive are never touched, the row count and row
// order are preserved.
//
// The generalizer itself is a greedy multidimensional partitioner in the
// Mondrian style: it repeatedly cuts the partition with the
// widest-spread quasi-identifier at its median, refusing any cut that
// would leave a side with fewer than k rows. Numeric identifiers
// generalize to "lo-hi" range strings, categorical ones to the sorted
// set of values present in the partition.
//
// # Usage
//
//	import "github.com/datakit-go/datakit/pkg/anonymize"
//
//	out, err := anonymize.Table(df,
//	    anonymize.QuasiIdentifiers("age", "zip", "occupation"),
//	    anonymize.Categorical("occupation"),
//	    anonymize.Keep("id"),
//	    anonymize.Sensitive("diagnosis"),
//	    anonymize.K(3),
//	)
//
// # Error handling
//
// Sentinel errors cover the caller mistakes (unknown columns, k < 2,
// fewer rows than k, no quasi-identifiers); anything the underlying frame
// operations report propagates wrapped and unmodified.
package anonymize
