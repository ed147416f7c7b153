package assist

import (
	"context"
	"errors"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/lcampos/notedeck/internal/apperrors"
	"github.com/lcampos/notedeck/internal/cache"
	"github.com/lcampos/notedeck/internal/logger"
)

// DefaultTimeout bounds a single external generation call.
const DefaultTimeout = 30 * time.Second

// Operation is the external call the coordinator manages. It must honor
// ctx cancellation, or at least accept that its result may be abandoned.
type Operation func(ctx context.Context) (string, error)

// Result is the outcome of Execute. Superseded means a newer call replaced
// this one before it settled; its value must not be applied anywhere.
type Result struct {
	Value      string
	FromCache  bool
	Superseded bool
}

// Coordinator runs at most one current generation request at a time. A new
// Execute cancels the previous in-flight call, short-circuits through the
// cache on a hit, and on a miss runs the operation under a timeout, caching
// the value on success. A stale call that settles after being superseded
// resolves as Superseded, never as an error and never with an applied
// value, so an old round-trip can never overwrite newer state.
//
// Re-issuing the fingerprint that is already in flight (a double-click)
// does not cancel anything: the new call joins the live flight through
// singleflight and becomes the current request, so the shared value is
// applied exactly once.
type Coordinator struct {
	mu       sync.Mutex
	seq      uint64
	cancel   context.CancelFunc
	inFlight string
	cache    *cache.Cache
	timeout  time.Duration
	sf       singleflight.Group
	log      *logger.Logger
}

// NewCoordinator creates a Coordinator backed by c. A timeout of zero
// means DefaultTimeout.
func NewCoordinator(c *cache.Cache, timeout time.Duration) *Coordinator {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Coordinator{
		cache:   c,
		timeout: timeout,
		log:     logger.Default().WithPrefix("assist"),
	}
}

// Execute runs op for fingerprint as the coordinator's current request.
// name labels the operation in failures ("summarize", "enhance").
func (co *Coordinator) Execute(ctx context.Context, name, fingerprint string, op Operation) (Result, error) {
	co.mu.Lock()
	sameFlight := co.cancel != nil && co.inFlight == fingerprint
	if co.cancel != nil && !sameFlight {
		co.log.Debug("cancelling superseded request: op=%s", name)
		co.cancel()
		co.cancel = nil
		co.inFlight = ""
	}
	co.seq++
	seq := co.seq

	if v, ok := co.cache.Get(fingerprint); ok {
		co.mu.Unlock()
		co.log.Debug("cache hit: op=%s", name)
		return Result{Value: v, FromCache: true}, nil
	}

	// When joining a live flight for the same fingerprint the original
	// call's context keeps owning it; registering ours would let a later
	// supersession cancel the wrong context.
	opCtx, cancel := context.WithTimeout(ctx, co.timeout)
	if !sameFlight {
		co.cancel = cancel
		co.inFlight = fingerprint
	}
	co.mu.Unlock()
	defer cancel()

	start := time.Now()
	v, err, _ := co.sf.Do(fingerprint, func() (any, error) {
		return op(opCtx)
	})

	co.mu.Lock()
	current := seq == co.seq
	if current {
		co.cancel = nil
		co.inFlight = ""
	}
	co.mu.Unlock()

	if !current {
		co.log.Debug("discarding superseded result: op=%s", name)
		return Result{Superseded: true}, nil
	}
	if err != nil {
		if errors.Is(err, context.Canceled) {
			// Cancellation is not a failure and never reaches the user.
			return Result{Superseded: true}, nil
		}
		co.log.Error("operation failed after %v: op=%s err=%v", time.Since(start), name, err)
		return Result{}, apperrors.NewOperationFailedError(name, err)
	}

	value := v.(string)
	co.cache.Put(fingerprint, value)
	co.log.Debug("operation completed in %v: op=%s", time.Since(start), name)
	return Result{Value: value}, nil
}
