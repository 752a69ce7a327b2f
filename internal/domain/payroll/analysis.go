package payroll

import (
	"context"
	"math"

	"golang.org/x/sync/errgroup"
)

const (
	DefaultSampleFrom = 1100.0
	DefaultSampleTo   = 40000.0
	DefaultSampleStep = 100.0

	sampleChunk = 64

	// maxSampleSteps caps Len so absurd ranges cannot overflow int.
	maxSampleSteps = 1 << 30
)

type SampleRange struct {
	From float64 `json:"from"`
	To   float64 `json:"to"`
	Step float64 `json:"step"`
}

func DefaultSampleRange() SampleRange {
	return SampleRange{From: DefaultSampleFrom, To: DefaultSampleTo, Step: DefaultSampleStep}
}

// Len is the number of salaries in the range, both ends included.
func (r SampleRange) Len() int {
	if !isPositiveAmount(r.Step) || math.IsNaN(r.From) || math.IsNaN(r.To) || r.To < r.From {
		return 0
	}
	steps := math.Floor((r.To-r.From)/r.Step + 1e-9)
	if steps >= maxSampleSteps {
		return maxSampleSteps
	}
	return int(steps) + 1
}

// At returns the i-th salary. Indexing avoids drift from repeated adds.
func (r SampleRange) At(i int) float64 {
	return r.From + float64(i)*r.Step
}

func (r SampleRange) Validate(maxPoints int) error {
	if !isPositiveAmount(r.Step) || math.Abs(r.From) > MaxAmount || math.Abs(r.To) > MaxAmount || r.Len() == 0 {
		return ErrInvalidRange
	}
	if maxPoints > 0 && r.Len() > maxPoints {
		return ErrRangeTooLarge
	}
	return nil
}

// Sample evaluates both pension schemes at every salary in the range.
// Points come back in salary order. workers <= 0 runs on a single goroutine.
func (c Calculator) Sample(ctx context.Context, rng SampleRange, privateRatePercent float64, workers int) ([]SamplePoint, error) {
	n := rng.Len()
	if n == 0 {
		return nil, ErrInvalidRange
	}
	private := PrivateScheme{RatePercent: privateRatePercent}
	public := PublicScheme{}
	points := make([]SamplePoint, n)

	g, ctx := errgroup.WithContext(ctx)
	if workers <= 0 {
		workers = 1
	}
	g.SetLimit(workers)
	for start := 0; start < n; start += sampleChunk {
		end := min(start+sampleChunk, n)
		g.Go(func() error {
			for i := start; i < end; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				salary := rng.At(i)
				a := c.ComputeNetSalary(salary, private)
				o := c.ComputeNetSalary(salary, public)
				points[i] = SamplePoint{
					Salary:           salary,
					PrivateNet:       a.NetSalary,
					PublicNet:        o.NetSalary,
					PrivateDeduction: a.PensionDeduction,
					PublicDeduction:  o.PensionDeduction,
					IncomeTax:        a.IncomeTax,
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return points, nil
}
