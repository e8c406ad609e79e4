package observability

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// LogHooks writes every event to a structured logger at debug level.
// Failures are logged as warnings.
type LogHooks struct {
	Logger *log.Logger
}

// NewLogHooks returns hooks that log to logger, or to the default logger
// when logger is nil.
func NewLogHooks(logger *log.Logger) *LogHooks {
	if logger == nil {
		logger = log.Default()
	}
	return &LogHooks{Logger: logger}
}

func (h *LogHooks) OnSynthStart(_ context.Context, variant string) {
	h.Logger.Debug("synth start", "variant", variant)
}

func (h *LogHooks) OnSynthComplete(_ context.Context, variant string, rooms int, d time.Duration, err error) {
	if err != nil {
		h.Logger.Warn("synth failed", "variant", variant, "error", err)
		return
	}
	h.Logger.Debug("synth done", "variant", variant, "rooms", rooms, "duration", d)
}

func (h *LogHooks) OnColumns(_ context.Context, columns int, d time.Duration) {
	h.Logger.Debug("columns done", "columns", columns, "duration", d)
}

func (h *LogHooks) OnRenderStart(_ context.Context, formats []string) {
	h.Logger.Debug("render start", "formats", formats)
}

func (h *LogHooks) OnRenderComplete(_ context.Context, formats []string, d time.Duration, err error) {
	if err != nil {
		h.Logger.Warn("render failed", "formats", formats, "error", err)
		return
	}
	h.Logger.Debug("render done", "formats", formats, "duration", d)
}

func (h *LogHooks) OnCacheHit(_ context.Context, stage string) {
	h.Logger.Debug("cache hit", "stage", stage)
}

func (h *LogHooks) OnCacheMiss(_ context.Context, stage string) {
	h.Logger.Debug("cache miss", "stage", stage)
}

func (h *LogHooks) OnCacheSet(_ context.Context, stage string, size int) {
	h.Logger.Debug("cache set", "stage", stage, "bytes", size)
}

func (h *LogHooks) OnDragBegin(_ context.Context, room, handle string) {
	h.Logger.Debug("drag begin", "room", room, "handle", handle)
}

func (h *LogHooks) OnDragEnd(_ context.Context, room string, committed bool) {
	h.Logger.Debug("drag end", "room", room, "committed", committed)
}
