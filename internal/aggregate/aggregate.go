// internal/aggregate/aggregate.go

// Package aggregate reduces pipeline MapResults into the two output maps
// keyed by read id, plus a run report covering per-read failures.
package aggregate

import (
	"github.com/nceglia/ghost/internal/pipeline"
)

// Output holds the per-read mapping tables. Only mapped reads appear.
type Output struct {
	EqClasses map[string][]uint32 `json:"eq_classes"`
	Coverage  map[string]int      `json:"coverage"`
}

// ReadError pairs a read id with its classification failure.
type ReadError struct {
	ReadID string
	Err    error
}

// Report summarizes one pipeline run. Errors holds a bounded sample of
// the per-read failures; Failed is the full count.
type Report struct {
	Processed int
	Mapped    int
	Failed    int
	Errors    []ReadError
}

// maxSampledErrors caps the error sample so a pathological input cannot
// balloon the report.
const maxSampledErrors = 20

// Collector accumulates MapResults. It is single-consumer by design: the
// pipeline has exactly one collector goroutine, so no locking here.
type Collector struct {
	out Output
	rep Report
}

func NewCollector() *Collector {
	return &Collector{
		out: Output{
			EqClasses: make(map[string][]uint32),
			Coverage:  make(map[string]int),
		},
	}
}

// Add folds one result into the collector. Unmapped reads are counted and
// discarded. A recurring read id overwrites the earlier entry
// (last-write-wins); correct input never produces one.
func (c *Collector) Add(r pipeline.MapResult) error {
	c.rep.Processed++
	if r.Err != nil {
		c.rep.Failed++
		if len(c.rep.Errors) < maxSampledErrors {
			c.rep.Errors = append(c.rep.Errors, ReadError{ReadID: r.ReadID, Err: r.Err})
		}
		return nil
	}
	if !r.Mapped {
		return nil
	}
	c.rep.Mapped++
	c.out.EqClasses[r.ReadID] = r.EqClass
	c.out.Coverage[r.ReadID] = r.Coverage
	return nil
}

// Finalize returns the reduced output and the run report.
func (c *Collector) Finalize() (Output, Report) {
	return c.out, c.rep
}
