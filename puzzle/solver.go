package puzzle

/*

The propagation loop

Each pass applies every rule in a fixed order (the global rule, then
the per-region uniqueness rules, then the per-region hidden-single
rules) and then commits any collapsed candidates into the grid.  The
loop stops at the first pass whose commit step changes nothing: the
fixed point of pure deduction.  That point is not necessarily a
solved puzzle; when the rules run out of forced moves, cells are
simply left unknown.  Passes are bounded because each one either
removes candidate bits or exits, and there are only sidelen^2 *
sidelen bits to remove.

*/

// A Result summarizes a solve: how many passes the loop ran and how
// many cells remained unknown at the fixed point.
type Result struct {
	Passes  int `json:"passes"`
	Unknown int `json:"unknown"`
}

// A Solver owns the rule list and candidate state for one solve.
// Solvers are single-use: the candidate set accumulates exclusions
// destructively across passes and is never reset.
type Solver struct {
	rules      []Rule
	candidates *CandidateSet
}

// NewSolver makes a Solver for grids of the given side length.
func NewSolver(sidelen int) (*Solver, error) {
	regions, err := Regions(sidelen)
	if err != nil {
		return nil, err
	}
	return &Solver{
		rules:      SudokuRules(regions),
		candidates: NewCandidateSet(sidelen),
	}, nil
}

// Candidates returns the solver's candidate state.  After Solve has
// returned it holds the final per-cell masks, which is the
// diagnostic record of how far deduction got.
func (s *Solver) Candidates() *CandidateSet {
	return s.candidates
}

// Solve runs the propagation loop on a grid until a full pass makes
// no change, writing resolved cells into the grid as it goes.  The
// grid must have the side length the solver was built for.
//
// Contradictory input is not detected: an over-constrained cell just
// ends with an empty mask and a zero grid value.
func (s *Solver) Solve(g *Grid) Result {
	if g.SideLength() != s.candidates.sidelen {
		panic(rangeError(SideLengthAttribute, g.SideLength(),
			s.candidates.sidelen, s.candidates.sidelen))
	}
	passes := 0
	for {
		passes++
		for _, rule := range s.rules {
			rule.Visit(g, s.candidates)
		}
		if !s.candidates.ApplyUniques(g) {
			break
		}
	}
	return Result{Passes: passes, Unknown: g.Unknown()}
}

// Solve is the convenience form: it builds a solver for the grid,
// runs it to the fixed point, and returns the result along with the
// final candidate state.
func Solve(g *Grid) (Result, *CandidateSet, error) {
	s, err := NewSolver(g.SideLength())
	if err != nil {
		return Result{}, nil, err
	}
	return s.Solve(g), s.Candidates(), nil
}
