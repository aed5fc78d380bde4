package httpadapter

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/chenyiwei198603-source/xmpkzhihuizhusuan/internal/domain"
	"github.com/chenyiwei198603-source/xmpkzhihuizhusuan/internal/usecase"
)

type Handler struct {
	uc        *usecase.Service
	boardRods int
}

func NewHandler(uc *usecase.Service, boardRods int) *Handler {
	return &Handler{uc: uc, boardRods: boardRods}
}

func (h *Handler) Register(e *echo.Echo) {
	e.GET("/healthz", h.Healthz)
	e.POST("/api/board", h.NewBoard)
	e.POST("/api/move", h.Move)
	e.POST("/api/formula", h.Formula)
	e.POST("/api/challenge", h.Challenge)
	e.POST("/api/validate", h.Validate)
	e.GET("/api/settings", h.GetSettings)
	e.PUT("/api/settings", h.PutSettings)
	e.GET("/api/stats", h.Stats)
	e.POST("/api/reset", h.Reset)
}

func (h *Handler) Healthz(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// NewBoard returns an all-zero board. Rod count defaults to the configured
// board size when the request omits it.
func (h *Handler) NewBoard(c echo.Context) error {
	var req newBoardReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid JSON: " + err.Error()})
	}
	rods := req.Rods
	if rods == 0 {
		rods = h.boardRods
	}
	b, err := h.uc.NewBoard(rods)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(http.StatusOK, boardResp{Board: b, Total: 0})
}

// Move applies one bead mutation and returns the full pipeline result.
func (h *Handler) Move(c echo.Context) error {
	var req moveReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid JSON: " + err.Error()})
	}
	res, err := h.uc.ApplyMove(c.Request().Context(), &req.Board, req.Index, req.Heaven, req.Earth, req.Challenge)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(http.StatusOK, moveResp{
		Board:    res.Board,
		RodValue: res.RodValue,
		Formula:  res.Formula,
		Total:    res.Total,
		Verdict:  res.Verdict.String(),
	})
}

// Formula classifies a single rod's value transition.
func (h *Handler) Formula(c echo.Context) error {
	var req formulaReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid JSON: " + err.Error()})
	}
	f, err := h.uc.Classify(req.OldValue, req.NewValue)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(http.StatusOK, formulaResp{Formula: f})
}

// Challenge generates a new exercise of the requested type.
func (h *Handler) Challenge(c echo.Context) error {
	var req challengeReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid JSON: " + err.Error()})
	}
	t, ok := parseProblemType(req.Type)
	if !ok {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "unknown problem type: " + req.Type})
	}
	ch, err := h.uc.Generate(t)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(http.StatusOK, ch)
}

// Validate judges a board (or an explicit total) against a challenge.
func (h *Handler) Validate(c echo.Context) error {
	var req validateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid JSON: " + err.Error()})
	}
	if req.Challenge == nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: domain.ErrNoChallenge.Error()})
	}
	var total int
	switch {
	case req.Total != nil:
		total = *req.Total
	case req.Board != nil:
		total = req.Board.Total()
	default:
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "board or total required"})
	}
	v, err := h.uc.Validate(total, req.Challenge)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(http.StatusOK, validateResp{Verdict: v.String()})
}

func (h *Handler) GetSettings(c echo.Context) error {
	s, err := h.uc.Settings(c.Request().Context())
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(http.StatusOK, s)
}

func (h *Handler) PutSettings(c echo.Context) error {
	var s domain.Settings
	if err := c.Bind(&s); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid JSON: " + err.Error()})
	}
	if err := h.uc.SaveSettings(c.Request().Context(), s); err != nil {
		return mapError(c, err)
	}
	return c.JSON(http.StatusOK, s)
}

func (h *Handler) Stats(c echo.Context) error {
	return c.JSON(http.StatusOK, h.uc.Stats())
}

// Reset clears the session counters.
func (h *Handler) Reset(c echo.Context) error {
	if err := h.uc.ResetSession(c.Request().Context()); err != nil {
		return mapError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func mapError(c echo.Context, err error) error {
	requestID, _ := c.Get("request_id").(string)

	switch {
	case errors.Is(err, domain.ErrBeadOutOfRange),
		errors.Is(err, domain.ErrRodIndex),
		errors.Is(err, domain.ErrBoardSize),
		errors.Is(err, domain.ErrUnknownType):
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	default:
		slog.Error("internal error", "request_id", requestID, "error", err)
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}
