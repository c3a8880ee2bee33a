package impl

import (
	"math"
)

const (
	// InfeasibleCost is the lowest value ever written for an infeasible pair.
	InfeasibleCost int64 = 1_000_000_000

	// sentinelFactor keeps the sentinel at least this multiple of the largest
	// finite cost in the same matrix.
	sentinelFactor = 10
)

// Cost is a matrix cell: either a finite weighted cost or infeasible.
// The zero value is infeasible.
type Cost struct {
	value  int64
	finite bool
}

// Finite returns a feasible cost.
func Finite(value int64) Cost {
	return Cost{value: value, finite: true}
}

// Infeasible returns a cost for a pair the vehicle must never travel.
func Infeasible() Cost {
	return Cost{}
}

// IsFinite reports whether the pair is travelable.
func (c Cost) IsFinite() bool {
	return c.finite
}

// Value returns the finite cost, or 0 for an infeasible cell.
func (c Cost) Value() int64 {
	return c.value
}

// CostWeights converts raw distance and duration into a single cost.
type CostWeights struct {
	PerMeter  float64
	PerSecond float64
}

// Cost returns round(distance*PerMeter + duration*PerSecond).
func (w CostWeights) Cost(distance, duration float64) Cost {
	return Finite(int64(math.Round(distance*w.PerMeter + duration*w.PerSecond)))
}

// CostMatrix is a square matrix over vehicle-start nodes followed by job nodes.
type CostMatrix struct {
	cells [][]Cost
}

func newCostMatrix(size int) *CostMatrix {
	cells := make([][]Cost, size)
	for i := range cells {
		cells[i] = make([]Cost, size)
	}

	return &CostMatrix{cells: cells}
}

// Size returns the number of nodes.
func (m *CostMatrix) Size() int {
	return len(m.cells)
}

// At returns the cost of travelling from node i to node j.
func (m *CostMatrix) At(i, j int) Cost {
	return m.cells[i][j]
}

// MaxFinite returns the largest finite cost, or 0 when there is none.
func (m *CostMatrix) MaxFinite() int64 {
	var largest int64
	for _, row := range m.cells {
		for _, cell := range row {
			if cell.finite && cell.value > largest {
				largest = cell.value
			}
		}
	}

	return largest
}

// Sentinel returns the numeric cost written for infeasible cells.
func (m *CostMatrix) Sentinel() int64 {
	return max(InfeasibleCost, sentinelFactor*m.MaxFinite())
}

// Serialize renders the matrix for the solver, replacing infeasible cells
// with the sentinel.
func (m *CostMatrix) Serialize() [][]int64 {
	sentinel := m.Sentinel()
	out := make([][]int64, len(m.cells))
	for i, row := range m.cells {
		out[i] = make([]int64, len(row))
		for j, cell := range row {
			if cell.finite {
				out[i][j] = cell.value
			} else {
				out[i][j] = sentinel
			}
		}
	}

	return out
}
