package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/oakmund/sieve/puzzle"
	"github.com/oakmund/sieve/storage"
)

// registerRoutes wires the API onto the engine.  When storage is
// unavailable only the stateless solve endpoint is offered.
func registerRoutes(e *gin.Engine, stored bool) {
	v1 := e.Group("/api").Group("/v1")
	v1.POST("/solve", handleSolve(stored))
	if stored {
		v1.GET("/puzzles", handleListPuzzles)
		v1.POST("/puzzles", handleSavePuzzle)
		v1.GET("/puzzles/:id", handleGetPuzzle)
		v1.POST("/puzzles/:id/solve", handleSolveStored)
	}
}

// solveRequest is the body of a solve call: the puzzle's cells in
// row order, digits for solved cells, '.' or '0' for empty ones.
type solveRequest struct {
	Cells string `json:"cells" binding:"required"`
}

// solveResponse reports the fixed point the rules reached.  For a
// fresh solve it includes the per-cell count of values still
// possible (0 for settled cells); cached replies omit it.
type solveResponse struct {
	Cells     string  `json:"cells"`
	Passes    int     `json:"passes"`
	Unknown   int     `json:"unknown"`
	Remaining [][]int `json:"remaining,omitempty"`
}

// remainingCounts tabulates how many candidates each cell has left.
func remainingCounts(c *puzzle.CandidateSet, sidelen int) [][]int {
	counts := make([][]int, sidelen)
	for x := range counts {
		counts[x] = make([]int, sidelen)
		for y := range counts[x] {
			counts[x][y] = c.Remaining(x, y)
		}
	}
	return counts
}

func handleSolve(stored bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req solveRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read request", "message": err.Error()})
			return
		}
		grid, err := puzzle.ParseGrid(req.Cells)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid puzzle", "message": err.Error()})
			return
		}
		start := grid.Compact()
		if stored {
			if cached, hit := storage.CachedResult(start); hit {
				log.Debug().Str("cells", start).Msg("solve served from cache")
				c.JSON(http.StatusOK, solveResponse{
					Cells:   cached.Cells,
					Passes:  cached.Passes,
					Unknown: cached.Unknown,
				})
				return
			}
		}
		result, candidates, err := puzzle.Solve(grid)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to solve", "message": err.Error()})
			return
		}
		if stored {
			storage.CacheResult(start, &storage.ResultRecord{
				Cells:    grid.Compact(),
				Passes:   result.Passes,
				Unknown:  result.Unknown,
				SolvedAt: time.Now(),
			})
		}
		c.JSON(http.StatusOK, solveResponse{
			Cells:     grid.Compact(),
			Passes:    result.Passes,
			Unknown:   result.Unknown,
			Remaining: remainingCounts(candidates, grid.SideLength()),
		})
	}
}

type savePuzzleRequest struct {
	Name  string `json:"name"`
	Cells string `json:"cells" binding:"required"`
}

func handleSavePuzzle(c *gin.Context) {
	var req savePuzzleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read request", "message": err.Error()})
		return
	}
	grid, err := puzzle.ParseGrid(req.Cells)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid puzzle", "message": err.Error()})
		return
	}
	rec, err := storage.SavePuzzle(c, req.Name, grid)
	if err != nil {
		log.Err(err).Msg("save puzzle")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save puzzle", "message": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, rec)
}

func handleListPuzzles(c *gin.Context) {
	recs, err := storage.ListPuzzles(c)
	if err != nil {
		log.Err(err).Msg("list puzzles")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list puzzles", "message": err.Error()})
		return
	}
	if recs == nil {
		recs = []storage.PuzzleRecord{}
	}
	c.JSON(http.StatusOK, recs)
}

// puzzleReply pairs a stored puzzle with its result, when one exists.
type puzzleReply struct {
	Puzzle *storage.PuzzleRecord `json:"puzzle"`
	Result *storage.ResultRecord `json:"result,omitempty"`
}

func handleGetPuzzle(c *gin.Context) {
	id := c.Param("id")
	rec, err := storage.LoadPuzzle(c, id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No such puzzle", "message": err.Error()})
		return
	}
	res, found, err := storage.LoadResult(c, id)
	if err != nil {
		log.Err(err).Str("puzzle", id).Msg("load result")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load result", "message": err.Error()})
		return
	}
	reply := puzzleReply{Puzzle: rec}
	if found {
		reply.Result = res
	}
	c.JSON(http.StatusOK, reply)
}

func handleSolveStored(c *gin.Context) {
	id := c.Param("id")
	rec, err := storage.LoadPuzzle(c, id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No such puzzle", "message": err.Error()})
		return
	}
	grid, err := rec.Grid()
	if err != nil {
		log.Err(err).Str("puzzle", id).Msg("rebuild stored grid")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Corrupt stored puzzle", "message": err.Error()})
		return
	}
	result, _, err := puzzle.Solve(grid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to solve", "message": err.Error()})
		return
	}
	res, err := storage.SaveResult(c, rec, grid, result)
	if err != nil {
		log.Err(err).Str("puzzle", id).Msg("save result")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save result", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, res)
}
