package stackr

import (
	"io"

	"github.com/jcorbin/stackr/internal/flushio"
)

// Option configures an Engine at construction.
type Option interface{ apply(c *core) }

var defaults = []Option{
	WithOutput(io.Discard),
}

func (c *core) apply(opts ...Option) {
	for _, opt := range defaults {
		opt.apply(c)
	}
	for _, opt := range opts {
		if opt != nil {
			opt.apply(c)
		}
	}
}

// WithOutput sets where printing words write; the output is flushed at the
// end of every Evaluate.
func WithOutput(w io.Writer) Option { return outputOption{w} }

// WithTee adds another destination for output.
func WithTee(w io.Writer) Option { return teeOption{w} }

// WithLogf installs a trace log function, called for every loaded source and
// every dispatched instruction.
func WithLogf(logfn func(mess string, args ...interface{})) Option { return withLogfn(logfn) }

// WithMemLimit limits the highest address that memory may hold an entry for.
// Builtin words are always installed and callable: a limit below the
// addresses of the builtins is raised to cover them.
func WithMemLimit(limit uint) Option { return memLimitOption(limit) }

// WithPageSize sets the size of memory pages.
func WithPageSize(size uint) Option { return pageSizeOption(size) }

type outputOption struct{ io.Writer }
type teeOption struct{ io.Writer }
type withLogfn func(mess string, args ...interface{})
type memLimitOption uint
type pageSizeOption uint

func (o outputOption) apply(c *core) {
	if c.out != nil {
		c.out.Flush()
	}
	c.out = flushio.NewWriteFlusher(o.Writer)
}

func (o teeOption) apply(c *core) {
	c.out = flushio.Tee(c.out, flushio.NewWriteFlusher(o.Writer))
}

func (logfn withLogfn) apply(c *core) { c.logfn = logfn }

func (lim memLimitOption) apply(c *core) { c.memLimit = uint(lim) }

func (size pageSizeOption) apply(c *core) { c.pageSize = uint(size) }
