// Package http wires the sudoku engine to a small gin HTTP API: submit a
// puzzle to be solved, step through it one deduction at a time, or check
// liveness.
package http

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"sudoku-api/internal/core"
	"sudoku-api/internal/sudoku"
	"sudoku-api/pkg/config"
	"sudoku-api/pkg/constants"
)

// RegisterRoutes attaches the sudoku API group to r.
func RegisterRoutes(r *gin.Engine, cfg *config.Config) {
	r.GET("/api/health", handleHealth)

	api := r.Group("/api")
	api.POST("/solve", handleSolve)
	api.POST("/next-step", handleNextStep)
	api.GET("/solve/stream", handleSolveStream)
}

func handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "version": constants.APIVersion})
}

func handleSolve(c *gin.Context) {
	var req solveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	s := sudoku.New()
	if err := s.LoadStrict(req.Puzzle); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	solvedHuman := s.SolveLikeHuman()
	resp := solveResponse{
		Status:         constants.StatusCompleted,
		Solved:         solvedHuman,
		Board:          s.Serialize(),
		Difficulty:     s.Difficulty(),
		DifficultyBand: string(core.ClassifyDifficulty(s.Difficulty(), solvedHuman)),
		Effort:         s.Effort(),
		Rating:         ratingToJSON(s.Rating()),
	}

	if !solvedHuman {
		resp.Status = constants.StatusStalled
		backtracked := sudoku.New()
		if err := backtracked.Load(req.Puzzle); err == nil && backtracked.SolveByBacktracking() {
			resp.Solved = true
			resp.Board = backtracked.Serialize()
		}
	}

	c.JSON(http.StatusOK, resp)
}

func handleNextStep(c *gin.Context) {
	var req nextStepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	s := sudoku.New()
	if err := s.LoadStrict(req.Puzzle); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	sr := s.NextStep()
	resp := nextStepResponse{
		Strategy: sr.Strategy.String(),
		Fired:    !sr.Removal.Empty() || sr.Removal.SetsCell != nil,
	}
	if resp.Fired {
		resp.Action = constants.ActionEliminate
		if sr.Removal.SetsCell != nil {
			resp.Action = constants.ActionAssign
		}
	}

	if req.Apply && resp.Fired {
		resolution := s.Apply(sr)
		resp.Applied = true
		resp.CandidatesRemoved = resolution.CandidatesRemoved
		resp.Board = s.Serialize()
	}

	c.JSON(http.StatusOK, resp)
}

// handleSolveStream streams each next_step/apply cycle as a server-sent
// event until the board solves or stalls. The puzzle travels as a query
// parameter since EventSource issues plain GET requests.
func handleSolveStream(c *gin.Context) {
	puzzle := c.Query("puzzle")

	s := sudoku.New()
	if err := s.LoadStrict(puzzle); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	c.Stream(func(w io.Writer) bool {
		if s.IsSolved() {
			c.SSEvent("done", gin.H{"board": s.Serialize()})
			return false
		}
		sr := s.NextStep()
		if sr.Strategy == core.StrategyNone {
			c.SSEvent("stalled", gin.H{"board": s.Serialize()})
			return false
		}
		resolution := s.Apply(sr)
		c.SSEvent("step", nextStepResponse{
			Strategy:          sr.Strategy.String(),
			Fired:             true,
			Applied:           true,
			CandidatesRemoved: resolution.CandidatesRemoved,
			Board:             s.Serialize(),
		})
		return true
	})
}

func ratingToJSON(rating map[core.Strategy]int) map[string]int {
	out := make(map[string]int, len(rating))
	for s, count := range rating {
		out[s.String()] = count
	}
	return out
}
