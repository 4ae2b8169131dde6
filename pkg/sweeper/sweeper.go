package sweeper

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/dmitrymomot/authkit/pkg/logger"
)

// Job deletes expired records and returns how many it removed.
type Job func(ctx context.Context) (int64, error)

// Result is the outcome of one job run.
type Result struct {
	Name    string
	Deleted int64
	Err     error
}

type job struct {
	name string
	run  Job
}

// Sweeper runs registered jobs on a fixed interval.
type Sweeper struct {
	mu       sync.RWMutex
	jobs     []job
	interval time.Duration
	timeout  time.Duration
	logger   *slog.Logger
}

// Option configures a Sweeper.
type Option func(*Sweeper)

// WithInterval sets the time between runs, one hour by default.
func WithInterval(d time.Duration) Option {
	return func(s *Sweeper) {
		if d > 0 {
			s.interval = d
		}
	}
}

// WithJobTimeout bounds each job run. Zero disables the bound.
func WithJobTimeout(d time.Duration) Option {
	return func(s *Sweeper) { s.timeout = d }
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Sweeper) {
		if l != nil {
			s.logger = l
		}
	}
}

// New returns a Sweeper without jobs.
func New(opts ...Option) *Sweeper {
	s := &Sweeper{
		interval: time.Hour,
		timeout:  time.Minute,
		logger:   logger.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With(logger.Component("sweeper"))
	return s
}

// Add registers fn under name.
func (s *Sweeper) Add(name string, fn Job) error {
	if name == "" || fn == nil {
		return ErrInvalidJob
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, j := range s.jobs {
		if j.name == name {
			return ErrJobAlreadyRegistered
		}
	}
	s.jobs = append(s.jobs, job{name: name, run: fn})
	return nil
}

// Start runs the jobs now and then on every tick until ctx is done, and
// returns ctx.Err().
func (s *Sweeper) Start(ctx context.Context) error {
	s.mu.RLock()
	n := len(s.jobs)
	s.mu.RUnlock()
	if n == 0 {
		return ErrNoJobs
	}

	s.logger.InfoContext(ctx, "sweeper started",
		logger.Count(int64(n)),
		logger.Duration(s.interval),
	)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.RunOnce(ctx)
	for {
		select {
		case <-ctx.Done():
			s.logger.InfoContext(ctx, "sweeper stopped")
			return ctx.Err()
		case <-ticker.C:
			s.RunOnce(ctx)
		}
	}
}

// RunOnce runs every job once, in registration order.
func (s *Sweeper) RunOnce(ctx context.Context) []Result {
	s.mu.RLock()
	jobs := make([]job, len(s.jobs))
	copy(jobs, s.jobs)
	s.mu.RUnlock()

	results := make([]Result, 0, len(jobs))
	for _, j := range jobs {
		if ctx.Err() != nil {
			break
		}
		results = append(results, s.run(ctx, j))
	}
	return results
}

func (s *Sweeper) run(ctx context.Context, j job) Result {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	n, err := j.run(ctx)
	res := Result{Name: j.name, Deleted: n, Err: err}

	if err != nil {
		s.logger.ErrorContext(ctx, "sweep failed",
			logger.Event(j.name),
			logger.Error(err),
		)
		return res
	}
	s.logger.DebugContext(ctx, "sweep finished",
		logger.Event(j.name),
		logger.Count(n),
		logger.Duration(time.Since(start)),
	)
	return res
}
