// Package httpadapter exposes the engine and game sessions as a JSON
// API. Outcomes are reported in response bodies: an illegal move or an
// unsolvable board is a 200 with the outcome field set, never a 5xx.
package httpadapter

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"go.uber.org/zap"

	"svw.info/sudoku-master/internal/domain"
	"svw.info/sudoku-master/internal/generator"
	"svw.info/sudoku-master/internal/usecase"
)

type Handler struct {
	uc  *usecase.Service
	log *zap.Logger
}

func New(uc *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{uc: uc, log: log}
}

// Routes builds the API router.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(h.log))
	r.Route("/api", func(r chi.Router) {
		r.Post("/generate", h.handleGenerate)
		r.Post("/solve", h.handleSolve)
		r.Post("/validate", h.handleValidate)
		r.Route("/games", func(r chi.Router) {
			r.Post("/", h.handleNewGame)
			r.Post("/load", h.handleLoadGame)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.handleGameState)
				r.Delete("/", h.handleDeleteGame)
				r.Post("/moves", h.handleMove)
				r.Post("/restart", h.handleRestart)
				r.Post("/undo", h.handleUndo)
				r.Post("/redo", h.handleRedo)
				r.Post("/hint", h.handleHint)
				r.Post("/pause", h.handlePause)
				r.Post("/resume", h.handleResume)
				r.Post("/save", h.handleSaveGame)
				r.Get("/events", h.handleEvents)
			})
		})
		r.Route("/puzzles", func(r chi.Router) {
			r.Get("/", h.handleListPuzzles)
			r.Post("/save", h.handleSavePuzzle)
			r.Post("/load", h.handleLoadPuzzle)
		})
	})
	return r
}

type errResp struct {
	Error string `json:"error"`
}

func badRequest(w http.ResponseWriter, r *http.Request, msg string) {
	render.Status(r, http.StatusBadRequest)
	render.JSON(w, r, errResp{Error: msg})
}

func internalError(w http.ResponseWriter, r *http.Request, err error) {
	render.Status(r, http.StatusInternalServerError)
	render.JSON(w, r, errResp{Error: err.Error()})
}

// ---- Generate ----

type generateReq struct {
	Difficulty    string `json:"difficulty,omitempty"`
	CellsToRemove *int   `json:"cellsToRemove,omitempty"`
	Seed          int64  `json:"seed,omitempty"`
	Unique        bool   `json:"unique,omitempty"`
}

type generateResp struct {
	Puzzle     *domain.Puzzle `json:"puzzle"`
	DurationMs int64          `json:"durationMs"`
	Nodes      int            `json:"nodes"`
}

func (h *Handler) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req generateReq
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		badRequest(w, r, "invalid JSON: "+err.Error())
		return
	}
	remove, diff, err := resolveRemoval(req.Difficulty, req.CellsToRemove)
	if err != nil {
		badRequest(w, r, err.Error())
		return
	}
	seed := req.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	gen := h.uc.Generate
	if req.Unique {
		gen = h.uc.GenerateUnique
	}
	p, st, err := gen(r.Context(), seed, remove)
	if err != nil {
		if errors.Is(err, generator.ErrBadRemovalCount) {
			badRequest(w, r, err.Error())
			return
		}
		internalError(w, r, err)
		return
	}
	p.Difficulty = diff
	render.JSON(w, r, generateResp{Puzzle: p, DurationMs: st.Duration.Milliseconds(), Nodes: st.Nodes})
}

// resolveRemoval picks the removal target: an explicit count wins over
// the difficulty name, and when only a count arrives the label is
// derived from it.
func resolveRemoval(difficulty string, cellsToRemove *int) (int, domain.Difficulty, error) {
	diff, err := domain.ParseDifficulty(difficulty)
	if err != nil {
		return 0, 0, err
	}
	if cellsToRemove != nil {
		if difficulty == "" {
			diff = domain.DifficultyForRemoval(*cellsToRemove)
		}
		return *cellsToRemove, diff, nil
	}
	return diff.CellsToRemove(), diff, nil
}

// ---- Solve ----

type solveReq struct {
	Board [9][9]uint8 `json:"board"`
}

// boardInRange rejects boards a constructor could never produce; cell
// values stop at 9.
func boardInRange(b [9][9]uint8) bool {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if b[r][c] > 9 {
				return false
			}
		}
	}
	return true
}

type solveResp struct {
	Solved     bool        `json:"solved"`
	Board      [9][9]uint8 `json:"board,omitempty"`
	DurationMs int64       `json:"durationMs"`
	Nodes      int         `json:"nodes"`
	Error      string      `json:"error,omitempty"`
}

func (h *Handler) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req solveReq
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		badRequest(w, r, "invalid JSON: "+err.Error())
		return
	}
	if !boardInRange(req.Board) {
		badRequest(w, r, "cell values must be 0-9")
		return
	}
	g := domain.GridFromValues(req.Board)
	st, err := h.uc.Solve(r.Context(), g)
	resp := solveResp{DurationMs: st.Duration.Milliseconds(), Nodes: st.Nodes}
	if err != nil {
		resp.Error = err.Error()
	} else {
		resp.Solved = true
		resp.Board = g.Values()
	}
	render.JSON(w, r, resp)
}

// ---- Validate ----

type validateResp struct {
	OK        bool               `json:"ok"`
	Conflicts []domain.CellCoord `json:"conflicts,omitempty"`
}

func (h *Handler) handleValidate(w http.ResponseWriter, r *http.Request) {
	var req solveReq
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		badRequest(w, r, "invalid JSON: "+err.Error())
		return
	}
	if !boardInRange(req.Board) {
		badRequest(w, r, "cell values must be 0-9")
		return
	}
	ok, conflicts := h.uc.Validate(r.Context(), domain.GridFromValues(req.Board))
	render.JSON(w, r, validateResp{OK: ok, Conflicts: conflicts})
}

// ---- Puzzle persistence ----

func (h *Handler) handleSavePuzzle(w http.ResponseWriter, r *http.Request) {
	var p domain.Puzzle
	if err := render.DecodeJSON(r.Body, &p); err != nil {
		badRequest(w, r, "invalid JSON: "+err.Error())
		return
	}
	if p.ID == "" {
		badRequest(w, r, "missing id")
		return
	}
	if p.CreatedAt == 0 {
		p.CreatedAt = time.Now().UnixNano()
	}
	if err := h.uc.SavePuzzle(r.Context(), &p); err != nil {
		internalError(w, r, err)
		return
	}
	render.JSON(w, r, map[string]string{"id": p.ID})
}

type loadReq struct {
	ID string `json:"id"`
}

func (h *Handler) handleLoadPuzzle(w http.ResponseWriter, r *http.Request) {
	var req loadReq
	if err := render.DecodeJSON(r.Body, &req); err != nil || req.ID == "" {
		badRequest(w, r, "invalid JSON or missing id")
		return
	}
	p, err := h.uc.LoadPuzzle(r.Context(), req.ID)
	if err != nil {
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, errResp{Error: err.Error()})
		return
	}
	render.JSON(w, r, p)
}

func (h *Handler) handleListPuzzles(w http.ResponseWriter, r *http.Request) {
	ps, err := h.uc.ListPuzzles(r.Context())
	if err != nil {
		internalError(w, r, err)
		return
	}
	render.JSON(w, r, map[string]any{"puzzles": ps})
}
