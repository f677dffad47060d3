package httpadapter

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"go.uber.org/zap"

	"svw.info/sudoku-master/internal/domain"
	"svw.info/sudoku-master/internal/game"
	"svw.info/sudoku-master/internal/generator"
)

// ---- Session lifecycle ----

type newGameReq struct {
	Difficulty    string `json:"difficulty,omitempty"`
	CellsToRemove *int   `json:"cellsToRemove,omitempty"`
	Seed          int64  `json:"seed,omitempty"`
}

func (h *Handler) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req newGameReq
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
	p, st, err := h.uc.Generate(r.Context(), seed, remove)
	if err != nil {
		if errors.Is(err, generator.ErrBadRemovalCount) {
			badRequest(w, r, err.Error())
			return
		}
		internalError(w, r, err)
		return
	}
	p.Difficulty = diff
	s := h.uc.Sessions.Create(p)
	h.log.Info("game started",
		zap.String("id", s.ID()),
		zap.Stringer("difficulty", diff),
		zap.Int("clues", p.Clues),
		zap.Duration("generation", st.Duration))
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, s.State())
}

func (h *Handler) handleLoadGame(w http.ResponseWriter, r *http.Request) {
	var req loadReq
	if err := render.DecodeJSON(r.Body, &req); err != nil || req.ID == "" {
		badRequest(w, r, "invalid JSON or missing id")
		return
	}
	sg, err := h.uc.LoadGame(r.Context(), req.ID)
	if err != nil {
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, errResp{Error: err.Error()})
		return
	}
	s := h.uc.Sessions.Restore(sg)
	render.JSON(w, r, s.State())
}

// session resolves the {id} URL parameter, answering 404 itself when
// the session is gone.
func (h *Handler) session(w http.ResponseWriter, r *http.Request) (*game.Session, bool) {
	id := chi.URLParam(r, "id")
	s, ok := h.uc.Sessions.Get(id)
	if !ok {
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, errResp{Error: "no such game"})
		return nil, false
	}
	return s, true
}

func (h *Handler) handleGameState(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	render.JSON(w, r, s.State())
}

// ---- Play ----

type moveReq struct {
	Row   int   `json:"row"`
	Col   int   `json:"col"`
	Value uint8 `json:"value"` // 0 clears
}

type moveResp struct {
	Applied bool       `json:"applied"`
	State   game.State `json:"state"`
}

func (h *Handler) handleMove(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	var req moveReq
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		badRequest(w, r, "invalid JSON: "+err.Error())
		return
	}
	applied := s.Apply(req.Row, req.Col, req.Value)
	render.JSON(w, r, moveResp{Applied: applied, State: s.State()})
}

func (h *Handler) handleUndo(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	applied := s.Undo()
	render.JSON(w, r, moveResp{Applied: applied, State: s.State()})
}

func (h *Handler) handleRedo(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	applied := s.Redo()
	render.JSON(w, r, moveResp{Applied: applied, State: s.State()})
}

type hintResp struct {
	Found bool        `json:"found"`
	Hint  domain.Hint `json:"hint,omitempty"`
}

func (h *Handler) handleHint(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	hint, found, err := s.Hint(r.Context())
	if err != nil {
		internalError(w, r, err)
		return
	}
	render.JSON(w, r, hintResp{Found: found, Hint: hint})
}

// handleRestart wipes the player's entries, history, stats, and clock
// while keeping the same puzzle.
func (h *Handler) handleRestart(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	s.Restart()
	render.JSON(w, r, s.State())
}

func (h *Handler) handleDeleteGame(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	h.uc.Sessions.Delete(id)
	render.NoContent(w, r)
}

func (h *Handler) handlePause(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	s.Pause()
	render.JSON(w, r, s.State())
}

func (h *Handler) handleResume(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	s.Resume()
	render.JSON(w, r, s.State())
}

func (h *Handler) handleSaveGame(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	sg := s.Snapshot()
	if err := h.uc.SaveGame(r.Context(), sg); err != nil {
		internalError(w, r, err)
		return
	}
	h.log.Info("game saved",
		zap.String("id", sg.ID),
		zap.Int("actions", sg.Stats.TotalActions()),
		zap.Int64("elapsedSeconds", sg.ElapsedSeconds))
	render.JSON(w, r, map[string]string{"id": sg.ID})
}
