package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/randomtoy/spinwheel/internal/app"
	"github.com/randomtoy/spinwheel/internal/domain"
)

type Handler struct {
	svc *app.WheelService
}

func NewHandler(svc *app.WheelService) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Register(e *echo.Echo) {
	e.GET("/healthz", h.Healthz)
	e.GET("/v1/presets", h.ListPresets)
	e.POST("/v1/spin", h.Spin)
	e.GET("/v1/spin/stream", h.StreamSpin)
}

func (h *Handler) Healthz(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (h *Handler) ListPresets(c echo.Context) error {
	list, err := h.svc.Presets(c.Request().Context())
	if err != nil {
		return mapError(c, err)
	}
	out := make([]PresetResponse, len(list))
	for i, p := range list {
		out[i] = PresetResponse{ID: p.ID, Name: p.Name, Labels: p.Labels}
	}
	return c.JSON(http.StatusOK, out)
}

func (h *Handler) Spin(c echo.Context) error {
	var body SpinRequest
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid JSON body"})
	}
	pointers := 1
	if body.Pointers != nil {
		pointers = *body.Pointers
	}

	resp, err := h.svc.Spin(c.Request().Context(), app.SpinRequest{
		Labels:   body.Labels,
		Text:     body.Text,
		PresetID: body.Preset,
		Pointers: pointers,
	})
	if err != nil {
		return mapError(c, err)
	}

	out := h.toResponse(c, resp)
	if body.Frames {
		for f := range resp.Frames.All() {
			out.Frames = append(out.Frames, toFrame(f))
		}
	}
	return c.JSON(http.StatusOK, out)
}

// StreamSpin computes a spin and replays its frames as server-sent events at
// the configured sample rate, ending with a "result" event.
func (h *Handler) StreamSpin(c echo.Context) error {
	pointers := 1
	if raw := c.QueryParam("pointers"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "pointers must be an integer"})
		}
		pointers = parsed
	}

	ctx := c.Request().Context()
	resp, err := h.svc.Spin(ctx, app.SpinRequest{
		Labels:   c.QueryParams()["labels"],
		Text:     c.QueryParam("text"),
		PresetID: c.QueryParam("preset"),
		Pointers: pointers,
	})
	if err != nil {
		return mapError(c, err)
	}

	w := c.Response()
	w.Header().Set(echo.HeaderContentType, "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	sink := &sseRenderer{w: w}
	err = app.Animate(ctx, resp.Frames, h.svc.Scheduler().Interval(), sink)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		// Client went away mid-spin.
		return nil
	}
	if err != nil {
		return err
	}
	return sink.event("result", h.toResponse(c, resp))
}

type sseRenderer struct {
	w *echo.Response
}

func (s *sseRenderer) RenderFrame(_ context.Context, f domain.Frame) error {
	return s.event("frame", toFrame(f))
}

func (s *sseRenderer) event(name string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", name, err)
	}
	if _, err := fmt.Fprintf(s.w, "event: %s\ndata: %s\n\n", name, data); err != nil {
		return fmt.Errorf("write %s event: %w", name, err)
	}
	s.w.Flush()
	return nil
}

func (h *Handler) toResponse(c echo.Context, r app.SpinResponse) SpinResponse {
	sched := h.svc.Scheduler()

	winners := make([]WinnerResponse, len(r.Ranking))
	for i, rw := range r.Ranking {
		winners[i] = WinnerResponse{
			Rank:    rw.Rank,
			Ordinal: rw.Ordinal,
			Index:   r.Result.WinnerIndices[i],
			Label:   rw.Label,
		}
	}
	return SpinResponse{
		ID:             r.ID,
		Labels:         r.Result.Labels,
		SliceAngle:     r.Result.SliceAngle,
		PrimaryIndex:   r.Result.PrimaryIndex,
		Winners:        winners,
		PointerOffsets: r.Result.PointerOffsets,
		TargetAngle:    r.Result.TargetAngle,
		FinalAngle:     r.Result.FinalAngle,
		Degenerate:     r.Result.Degenerate,
		Meta: MetaResp{
			RequestID:  requestID(c),
			FrameCount: sched.TotalFrames() + 1,
			IntervalMS: sched.Interval().Milliseconds(),
			DurationMS: sched.Duration().Milliseconds(),
		},
	}
}

func toFrame(f domain.Frame) FrameResponse {
	return FrameResponse{
		Index:     f.Index,
		T:         f.T,
		ElapsedMS: f.Elapsed.Milliseconds(),
		Angle:     f.Angle,
		Final:     f.Final,
	}
}

func mapError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrPresetNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrDegenerateSpacing):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	default:
		slog.Error("internal error", "request_id", requestID(c), "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}
