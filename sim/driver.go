package sim

import (
	"io"
	"log"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol3d/model"
	"github.com/sheikhrachel/go-gol3d/rules"
)

// StepResult summarises one committed generation
type StepResult struct {
	Generation int
	Births     int
	Deaths     int
	Population int
}

// Transitions returns the number of cells that changed state
func (r StepResult) Transitions() int {
	return r.Births + r.Deaths
}

// Driver advances a lattice one generation at a time.
//
// Each step reads the whole lattice before writing any of it, so every
// neighbor count in a step sees the generation the step started from.
type Driver struct {
	lattice    *model.Lattice
	pool       *model.GenerationPool
	logger     *log.Logger
	generation int
}

// NewDriver creates a driver for lattice. pool and logger may be nil.
func NewDriver(lattice *model.Lattice, pool *model.GenerationPool, logger *log.Logger) *Driver {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Driver{
		lattice: lattice,
		pool:    pool,
		logger:  logger,
	}
}

// Lattice returns the lattice being driven
func (d *Driver) Lattice() *model.Lattice {
	return d.lattice
}

// Generation returns the number of steps committed so far
func (d *Driver) Generation() int {
	return d.generation
}

// Compute decides the next generation without touching the lattice
func (d *Driver) Compute() (*model.Generation, error) {
	var next *model.Generation
	if d.pool != nil {
		next = d.pool.Get(d.lattice.Len())
	} else {
		next = model.NewGeneration(d.lattice.Len())
	}

	for i := range d.lattice.Indices() {
		alive, err := d.lattice.Get(i)
		if err != nil {
			model.GenerationToPool(next, d.pool)
			return nil, errors.Wrap(err, "[Compute]")
		}
		score, err := d.lattice.NeighborCount(i)
		if err != nil {
			model.GenerationToPool(next, d.pool)
			return nil, errors.Wrap(err, "[Compute]")
		}
		if rules.ApplyVoxelRules(score, alive) {
			next.Mark(i)
		}
	}
	return next, nil
}

// Commit writes next into the lattice. Only cells whose state differs
// produce transitions.
func (d *Driver) Commit(next *model.Generation) (StepResult, error) {
	if next.Len() != d.lattice.Len() {
		return StepResult{}, errors.Wrapf(model.ErrIndexOutOfRange,
			"[Commit] generation covers %d cells, lattice has %d", next.Len(), d.lattice.Len())
	}

	var res StepResult
	for i := range d.lattice.Indices() {
		was, err := d.lattice.Get(i)
		if err != nil {
			return res, errors.Wrap(err, "[Commit]")
		}
		alive := next.Has(i)
		if err = d.lattice.Set(i, alive); err != nil {
			return res, errors.Wrap(err, "[Commit]")
		}
		switch {
		case alive && !was:
			res.Births++
		case !alive && was:
			res.Deaths++
		}
	}
	res.Population = next.Count()
	return res, nil
}

// Step computes and commits one generation
func (d *Driver) Step() (StepResult, error) {
	next, err := d.Compute()
	if err != nil {
		return StepResult{}, errors.Wrapf(err, "[Step] generation %d", d.generation+1)
	}
	defer model.GenerationToPool(next, d.pool)

	res, err := d.Commit(next)
	if err != nil {
		return res, errors.Wrapf(err, "[Step] generation %d", d.generation+1)
	}
	d.generation++
	res.Generation = d.generation

	if res.Population == 0 && res.Deaths > 0 {
		d.logger.Printf("generation %d: lattice went extinct", d.generation)
	}
	return res, nil
}
