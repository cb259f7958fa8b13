package dataflow

// Option configures the behavior of pipeline stages.
type Option func(*config)

type config struct {
	workers    int
	bufferSize int
	// errorHandler returns true when the error is considered handled.
	errorHandler func(error) bool
}

func newConfig(opts []Option) *config {
	cfg := &config{workers: 1}
	for _, o := range opts {
		o(cfg)
	}
	return cfg
}

func (c *config) handle(err error) bool {
	if c.errorHandler == nil {
		return false
	}
	return c.errorHandler(err)
}

// WithWorkers sets the number of concurrent workers for a stage.
// Default is 1 (sequential).
func WithWorkers(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.workers = n
		}
	}
}

// WithBufferSize sets the buffer size for the output channel of a stage.
func WithBufferSize(n int) Option {
	return func(c *config) {
		if n >= 0 {
			c.bufferSize = n
		}
	}
}

// WithErrorHandler sets a custom error handler. Returning true swallows the
// error; for ForEach, false makes it the stage's result.
func WithErrorHandler(h func(error) bool) Option {
	return func(c *config) {
		c.errorHandler = h
	}
}
