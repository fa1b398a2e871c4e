package jobindex

import "github.com/eqhq/jobindex/jobindex/ops"

const (
	DefaultLimit               = ops.DefaultLimit
	MaxLimit                   = ops.MaxLimit
	DefaultBackfillBatchSize   = ops.DefaultBackfillBatchSize
	DefaultBackfillConcurrency = ops.DefaultBackfillConcurrency
	DefaultSimilarLimit        = 5
)
