package storage

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gomodule/redigo/redis"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/oakmund/sieve/puzzle"
)

/*

stored puzzles

*/

// A PuzzleRecord is the stored form of a puzzle: its cells in
// compact string form plus identifying metadata.
type PuzzleRecord struct {
	ID         string    `json:"id"`
	Name       string    `json:"name,omitempty"`
	SideLength int       `json:"sideLength"`
	Cells      string    `json:"cells"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Grid reconstructs the record's grid.
func (r *PuzzleRecord) Grid() (*puzzle.Grid, error) {
	return puzzle.ParseGrid(r.Cells)
}

// SavePuzzle stores a grid under a fresh ID and returns the record.
func SavePuzzle(ctx context.Context, name string, g *puzzle.Grid) (*PuzzleRecord, error) {
	rec := &PuzzleRecord{
		ID:         uuid.NewString(),
		Name:       name,
		SideLength: g.SideLength(),
		Cells:      g.Compact(),
		CreatedAt:  time.Now(),
	}
	err := pgExecute(ctx, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx,
			`INSERT INTO puzzles (puzzleId, name, sideLength, cells, createdAt)
			 VALUES ($1, $2, $3, $4, $5)`,
			rec.ID, rec.Name, rec.SideLength, rec.Cells, rec.CreatedAt)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("couldn't save puzzle: %v", err)
	}
	return rec, nil
}

// LoadPuzzle fetches a stored puzzle by ID.
func LoadPuzzle(ctx context.Context, id string) (*PuzzleRecord, error) {
	rec := &PuzzleRecord{}
	err := pgExecute(ctx, func(tx pgx.Tx) error {
		return tx.QueryRow(ctx,
			`SELECT puzzleId, name, sideLength, cells, createdAt
			 FROM puzzles WHERE puzzleId = $1`, id).
			Scan(&rec.ID, &rec.Name, &rec.SideLength, &rec.Cells, &rec.CreatedAt)
	})
	if err != nil {
		return nil, fmt.Errorf("couldn't load puzzle %q: %v", id, err)
	}
	return rec, nil
}

// ListPuzzles fetches all stored puzzles, newest first.
func ListPuzzles(ctx context.Context) ([]PuzzleRecord, error) {
	var recs []PuzzleRecord
	err := pgExecute(ctx, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx,
			`SELECT puzzleId, name, sideLength, cells, createdAt
			 FROM puzzles ORDER BY createdAt DESC`)
		if err != nil {
			return err
		}
		defer rows.Close()
		for rows.Next() {
			var rec PuzzleRecord
			if err := rows.Scan(&rec.ID, &rec.Name, &rec.SideLength,
				&rec.Cells, &rec.CreatedAt); err != nil {
				return err
			}
			recs = append(recs, rec)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("couldn't list puzzles: %v", err)
	}
	return recs, nil
}

/*

solve results

*/

// A ResultRecord is the stored outcome of a solve: the grid at the
// fixed point plus the solve summary.  Cache entries made for
// stateless solves have no PuzzleID.
type ResultRecord struct {
	PuzzleID string    `json:"puzzleId,omitempty"`
	Cells    string    `json:"cells"`
	Passes   int       `json:"passes"`
	Unknown  int       `json:"unknown"`
	SolvedAt time.Time `json:"solvedAt"`
}

// resultKey is the cache key for a result.  Results are cached by
// the hash of the starting cells, not the puzzle ID, so the same
// board stored twice still hits the cache.
func resultKey(cells string) string {
	sum := sha256.Sum256([]byte(cells))
	return "sieve:result:" + hex.EncodeToString(sum[:])
}

// cacheTTL bounds how long a cached result lives.
const cacheTTL = 24 * time.Hour

// SaveResult stores the outcome of solving a stored puzzle, both in
// the database and in the cache.  A cache failure doesn't fail the
// save; the database is the system of record.
func SaveResult(ctx context.Context, rec *PuzzleRecord, solved *puzzle.Grid, result puzzle.Result) (*ResultRecord, error) {
	res := &ResultRecord{
		PuzzleID: rec.ID,
		Cells:    solved.Compact(),
		Passes:   result.Passes,
		Unknown:  result.Unknown,
		SolvedAt: time.Now(),
	}
	err := pgExecute(ctx, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx,
			`INSERT INTO results (puzzleId, cells, passes, unknown, solvedAt)
			 VALUES ($1, $2, $3, $4, $5)
			 ON CONFLICT (puzzleId) DO UPDATE
			 SET cells = $2, passes = $3, unknown = $4, solvedAt = $5`,
			res.PuzzleID, res.Cells, res.Passes, res.Unknown, res.SolvedAt)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("couldn't save result for puzzle %q: %v", rec.ID, err)
	}
	CacheResult(rec.Cells, res)
	return res, nil
}

// LoadResult fetches the stored result for a puzzle, if any.  The
// ok return is false when the puzzle has no stored result.
func LoadResult(ctx context.Context, id string) (*ResultRecord, bool, error) {
	res := &ResultRecord{}
	err := pgExecute(ctx, func(tx pgx.Tx) error {
		return tx.QueryRow(ctx,
			`SELECT puzzleId, cells, passes, unknown, solvedAt
			 FROM results WHERE puzzleId = $1`, id).
			Scan(&res.PuzzleID, &res.Cells, &res.Passes, &res.Unknown, &res.SolvedAt)
	})
	if err == nil {
		return res, true, nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	return nil, false, fmt.Errorf("couldn't load result for puzzle %q: %v", id, err)
}

/*

result cache

*/

// CacheResult caches a result under the hash of the starting cells.
// Stateless solves fill the cache this way too, with no PuzzleID.
// Cache errors are deliberately dropped: the caller already has the
// result, and for stored puzzles the database copy is authoritative.
func CacheResult(startCells string, res *ResultRecord) {
	bytes, err := json.Marshal(res)
	if err != nil {
		return
	}
	rdExecute(func(conn redis.Conn) error {
		_, err := conn.Do("SETEX", resultKey(startCells), int(cacheTTL.Seconds()), bytes)
		return err
	})
}

// CachedResult looks up the cached result for a board's starting
// cells.  The ok return is false on a miss or any cache trouble.
func CachedResult(startCells string) (*ResultRecord, bool) {
	var bytes []byte
	err := rdExecute(func(conn redis.Conn) error {
		var err error
		bytes, err = redis.Bytes(conn.Do("GET", resultKey(startCells)))
		return err
	})
	if err != nil {
		return nil, false
	}
	res := &ResultRecord{}
	if err := json.Unmarshal(bytes, res); err != nil {
		return nil, false
	}
	return res, true
}
