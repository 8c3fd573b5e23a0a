package httpadapter

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"svw.info/elevator/internal/domain"
	"svw.info/elevator/internal/parser"
	"svw.info/elevator/internal/usecase"
)

type Handler struct {
	UC      *usecase.Service
	Extras  []string      // part-two items added to the first floor
	Timeout time.Duration // per-request search limit; zero means none
}

func New(uc *usecase.Service, extras []string, timeout time.Duration) *Handler {
	return &Handler{UC: uc, Extras: extras, Timeout: timeout}
}

func (h *Handler) Register(r gin.IRouter) {
	api := r.Group("/api")
	api.POST("/solve", h.handleSolve)
	api.POST("/parse", h.handleParse)
	api.POST("/check", h.handleCheck)
	api.POST("/hint", h.handleHint)
	api.POST("/save", h.handleSave)
	api.POST("/load", h.handleLoad)
	api.GET("/list", h.handleList)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// RequestLogger logs method, path, status, bytes, and duration in a human-readable format.
func RequestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("http",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"bytes", c.Writer.Size(),
			"dur", time.Since(start).Round(time.Millisecond),
		)
	}
}

type errorResp struct {
	Error string `json:"error"`
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, errorResp{Error: err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrMalformed):
		return http.StatusBadRequest
	case errors.Is(err, os.ErrNotExist):
		return http.StatusNotFound
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	}
	return http.StatusInternalServerError
}

// searchContext bounds a search by the request and the configured timeout.
func (h *Handler) searchContext(c *gin.Context) (context.Context, context.CancelFunc) {
	if h.Timeout <= 0 {
		return context.WithCancel(c.Request.Context())
	}
	return context.WithTimeout(c.Request.Context(), h.Timeout)
}

// ---- Solve ----

type solveReq struct {
	Name   string     `json:"name,omitempty"`
	Floors [][]string `json:"floors"`
	Text   string     `json:"text,omitempty"`
	Part   int        `json:"part,omitempty"`
}

// floors prefers explicit codes and falls back to puzzle text.
func (r *solveReq) floors() ([][]domain.Item, error) {
	if len(r.Floors) == 0 && r.Text != "" {
		return parser.ParseText(r.Text)
	}
	return parser.ParseCodes(r.Floors)
}

type solveResp struct {
	Solution   *domain.Solution `json:"solution,omitempty"`
	DurationMs int64            `json:"durationMs,omitempty"`
	Nodes      int              `json:"nodes,omitempty"`
	Error      string           `json:"error,omitempty"`
}

func (h *Handler) handleSolve(c *gin.Context) {
	var req solveReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, solveResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	floors, err := req.floors()
	if err != nil {
		badRequest(c, err)
		return
	}
	part := req.Part
	if part == 0 {
		part = 1
	}
	ctx, cancel := h.searchContext(c)
	defer cancel()
	sol, st, err := h.UC.SolvePart(ctx, req.Name, floors, part, h.Extras)
	if err != nil {
		c.JSON(statusFor(err), solveResp{Error: err.Error(), DurationMs: st.Duration.Milliseconds(), Nodes: st.Nodes})
		return
	}
	c.JSON(http.StatusOK, solveResp{Solution: sol, DurationMs: st.Duration.Milliseconds(), Nodes: st.Nodes})
}

// ---- Parse ----

type parseReq struct {
	Text string `json:"text"`
}
type parseResp struct {
	Floors [][]string `json:"floors"`
}

func (h *Handler) handleParse(c *gin.Context) {
	var req parseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	floors, err := parser.ParseText(req.Text)
	if err != nil {
		badRequest(c, err)
		return
	}
	c.JSON(http.StatusOK, parseResp{Floors: domain.Codes(floors)})
}

// ---- Check / Hint ----

type positionReq struct {
	Floors   [][]string `json:"floors"`
	Elevator int        `json:"elevator"`
}
type checkResp struct {
	Status string   `json:"status"`
	Fried  []string `json:"fried,omitempty"`
}

func (h *Handler) handleCheck(c *gin.Context) {
	var req positionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	floors, err := parser.ParseCodes(req.Floors)
	if err != nil {
		badRequest(c, err)
		return
	}
	st, fried, err := h.UC.Check(c.Request.Context(), floors, req.Elevator)
	if err != nil {
		badRequest(c, err)
		return
	}
	resp := checkResp{Status: st.String()}
	for _, it := range fried {
		resp.Fried = append(resp.Fried, it.String())
	}
	c.JSON(http.StatusOK, resp)
}

type hintResp struct {
	Found bool        `json:"found"`
	Move  domain.Move `json:"move,omitempty"`
	Error string      `json:"error,omitempty"`
}

func (h *Handler) handleHint(c *gin.Context) {
	var req positionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	floors, err := parser.ParseCodes(req.Floors)
	if err != nil {
		badRequest(c, err)
		return
	}
	ctx, cancel := h.searchContext(c)
	defer cancel()
	mv, ok, err := h.UC.Hint(ctx, floors, req.Elevator)
	if err != nil {
		c.JSON(statusFor(err), hintResp{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, hintResp{Found: ok, Move: mv})
}

// ---- Save / Load / List ----

type saveResp struct {
	ID    string `json:"id,omitempty"`
	Error string `json:"error,omitempty"`
}

func (h *Handler) handleSave(c *gin.Context) {
	var sol domain.Solution
	if err := c.ShouldBindJSON(&sol); err != nil {
		c.JSON(http.StatusBadRequest, saveResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	if err := h.UC.Save(c.Request.Context(), &sol); err != nil {
		c.JSON(statusFor(err), saveResp{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, saveResp{ID: sol.ID})
}

type loadReq struct {
	ID string `json:"id" binding:"required"`
}
type loadResp struct {
	Solution *domain.Solution `json:"solution,omitempty"`
	Error    string           `json:"error,omitempty"`
}

func (h *Handler) handleLoad(c *gin.Context) {
	var req loadReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, loadResp{Error: "invalid JSON or missing id"})
		return
	}
	sol, err := h.UC.Load(c.Request.Context(), req.ID)
	if err != nil {
		c.JSON(statusFor(err), loadResp{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, loadResp{Solution: sol})
}

type listResp struct {
	Solutions []domain.SolutionMeta `json:"solutions"`
	Error     string                `json:"error,omitempty"`
}

func (h *Handler) handleList(c *gin.Context) {
	ms, err := h.UC.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, listResp{Error: err.Error()})
		return
	}
	if ms == nil {
		ms = []domain.SolutionMeta{}
	}
	c.JSON(http.StatusOK, listResp{Solutions: ms})
}
