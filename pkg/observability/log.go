package observability

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// LogHooks writes every pipeline event to a charm logger at debug level and
// failures at error level.
type LogHooks struct {
	logger *log.Logger
}

// NewLogHooks returns hooks that log to l. A nil logger discards events.
func NewLogHooks(l *log.Logger) *LogHooks {
	return &LogHooks{logger: l}
}

func (h *LogHooks) OnBuildStart(_ context.Context, input string) {
	h.debug("build start", "input", input)
}

func (h *LogHooks) OnBuildComplete(_ context.Context, input string, nodeCount int, d time.Duration, err error) {
	h.done("build", err, "input", input, "nodes", nodeCount, "took", d)
}

func (h *LogHooks) OnLayoutStart(_ context.Context, direction string, nodeCount int) {
	h.debug("layout start", "direction", direction, "nodes", nodeCount)
}

func (h *LogHooks) OnLayoutComplete(_ context.Context, direction string, d time.Duration, err error) {
	h.done("layout", err, "direction", direction, "took", d)
}

func (h *LogHooks) OnRenderStart(_ context.Context, engine string, formats []string) {
	h.debug("render start", "engine", engine, "formats", formats)
}

func (h *LogHooks) OnRenderComplete(_ context.Context, engine string, formats []string, d time.Duration, err error) {
	h.done("render", err, "engine", engine, "formats", formats, "took", d)
}

func (h *LogHooks) debug(msg string, kv ...any) {
	if h.logger != nil {
		h.logger.Debug(msg, kv...)
	}
}

func (h *LogHooks) done(stage string, err error, kv ...any) {
	if h.logger == nil {
		return
	}
	if err != nil {
		h.logger.Error(stage+" failed", append(kv, "err", err)...)
		return
	}
	h.logger.Debug(stage+" complete", kv...)
}
