package agent

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	"github.com/jsamuelsen11/ward-alert-service/internal/domain"
	"github.com/jsamuelsen11/ward-alert-service/internal/domain/broadcast"
	"github.com/jsamuelsen11/ward-alert-service/internal/platform/config"
	"github.com/jsamuelsen11/ward-alert-service/internal/platform/health"
	"github.com/jsamuelsen11/ward-alert-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/ward-alert-service/internal/ports"
)

// Name identifies the agent in health results, spans and breaker logs.
const Name = "mesh-agent"

var (
	_ ports.Dispatcher    = (*Dispatcher)(nil)
	_ ports.HealthChecker = (*Dispatcher)(nil)
)

// Dispatcher hands encoded commands to the mesh agent through a shell:
//
//	OTEL Span → [Circuit Breaker] → [Rate Limiter] → process
//
// Calls are single-attempt. The circuit breaker is off unless
// agent.circuit_breaker.max_failures is positive; when on, it fails fast
// while the agent keeps failing and never re-runs a command.
type Dispatcher struct {
	commander Commander
	shell     string
	shellArgs []string
	maxOutput int
	breaker   *gobreaker.CircuitBreaker[broadcast.DispatchResult] // nil when disabled
	limiter   *rate.Limiter // nil when rate limiting is disabled
	metrics   *telemetry.Metrics
	logger    *slog.Logger
}

// Option customizes a Dispatcher.
type Option func(*Dispatcher)

// WithCommander replaces the os/exec commander.
func WithCommander(c Commander) Option {
	return func(d *Dispatcher) {
		if c != nil {
			d.commander = c
		}
	}
}

// New creates a Dispatcher from the agent configuration. A nil metrics
// disables metric recording.
func New(cfg config.AgentConfig, metrics *telemetry.Metrics, logger *slog.Logger, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		commander: ExecCommander,
		shell:     cfg.Shell,
		shellArgs: slices.Clone(cfg.ShellArgs),
		maxOutput: cfg.MaxOutputBytes,
		metrics:   metrics,
		logger:    logger,
	}

	if cfg.CircuitBreaker.MaxFailures > 0 {
		d.breaker = newBreaker(cfg.CircuitBreaker, logger)
	}

	if cfg.RateLimit.PerSecond > 0 {
		d.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit.PerSecond), cfg.RateLimit.Burst)
	}

	for _, opt := range opts {
		opt(d)
	}
	return d
}

func newBreaker(cfg config.CircuitBreakerConfig, logger *slog.Logger) *gobreaker.CircuitBreaker[broadcast.DispatchResult] {
	return gobreaker.NewCircuitBreaker[broadcast.DispatchResult](gobreaker.Settings{
		Name:        Name,
		MaxRequests: toUint32(cfg.HalfOpenLimit),
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= cfg.MaxFailures
		},
		// Only agent process failures count; a canceled rate-limit wait
		// says nothing about the agent.
		IsSuccessful: func(err error) bool {
			var exitErr *ExitError
			return !errors.As(err, &exitErr)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})
}

// Dispatch runs cmd through the shell inside workDir and blocks until the
// process exits. The process is not killed when ctx is canceled.
func (d *Dispatcher) Dispatch(ctx context.Context, cmd broadcast.Command, workDir string) (broadcast.DispatchResult, error) {
	start := time.Now()

	ctx, span := d.startSpan(ctx, cmd, workDir)
	defer span.End()

	attempt := func() (broadcast.DispatchResult, error) {
		if err := d.waitForRateLimit(ctx); err != nil {
			return broadcast.DispatchResult{}, fmt.Errorf("%w: waiting for rate limiter: %w", domain.ErrDispatch, err)
		}
		return d.run(cmd, workDir)
	}

	var (
		res broadcast.DispatchResult
		err error
	)
	if d.breaker == nil {
		res, err = attempt()
	} else {
		res, err = d.breaker.Execute(attempt)
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			err = fmt.Errorf("%w: %s: %w (%w)", domain.ErrDispatch, Name, domain.ErrUnavailable, err)
		}
	}

	d.finishSpan(span, res, err)
	d.metrics.RecordDispatch(ctx, time.Since(start), dispatchResult(err))

	if err != nil {
		return res, err
	}

	d.logger.DebugContext(ctx, "mesh agent finished",
		slog.Int("exit_code", res.ExitCode),
		slog.Duration("duration", res.Duration),
		slog.String("output", res.Output),
	)
	return res, nil
}

// Name implements ports.HealthChecker.
func (d *Dispatcher) Name() string {
	return Name
}

// HealthCheck maps the breaker state to agent health without spawning
// anything. Half-open is reported as degraded. Without a breaker the agent
// is always reported healthy.
func (d *Dispatcher) HealthCheck(_ context.Context) error {
	if d.breaker == nil {
		return nil
	}
	switch state := d.breaker.State(); state {
	case gobreaker.StateClosed:
		return nil
	case gobreaker.StateHalfOpen:
		return fmt.Errorf("%s: %w (circuit breaker half-open)", Name, health.ErrDegraded)
	case gobreaker.StateOpen:
		return fmt.Errorf("%s: failing (circuit breaker open)", Name)
	default:
		return fmt.Errorf("%s: unknown circuit breaker state %v", Name, state)
	}
}

func (d *Dispatcher) run(cmd broadcast.Command, workDir string) (broadcast.DispatchResult, error) {
	spec := Spec{
		Prog: d.shell,
		Args: append(slices.Clone(d.shellArgs), cmd.String()),
		Dir:  workDir,
	}

	stdout := newCappedBuffer(d.maxOutput)
	stderr := newCappedBuffer(d.maxOutput)

	c := d.commander.NewCommand(spec)
	c.Stdout(stdout)
	c.Stderr(stderr)

	start := time.Now()
	err := c.Start()
	if err == nil {
		err = c.Wait()
	}

	res := broadcast.DispatchResult{
		Output:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: exitCode(err),
		Duration: time.Since(start),
	}
	if err != nil {
		return res, &ExitError{Code: res.ExitCode, Stderr: res.Stderr, Err: err}
	}
	return res, nil
}

func (d *Dispatcher) waitForRateLimit(ctx context.Context) error {
	if d.limiter == nil {
		return nil
	}
	return d.limiter.Wait(ctx)
}

func (d *Dispatcher) startSpan(ctx context.Context, cmd broadcast.Command, workDir string) (context.Context, trace.Span) {
	tracer := otel.GetTracerProvider().Tracer("agent")

	return tracer.Start(ctx, "agent.dispatch",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("peer.service", Name),
			attribute.String("agent.command", cmd.String()),
			attribute.String("agent.work_dir", workDir),
		),
	)
}

func (d *Dispatcher) finishSpan(span trace.Span, res broadcast.DispatchResult, err error) {
	span.SetAttributes(attribute.Int("process.exit.code", res.ExitCode))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return
	}
	span.SetStatus(codes.Ok, "")
}

// exitCode extracts the exit status from a Start/Wait error. Errors that do
// not carry one, such as a missing shell, map to -1.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var coded interface{ ExitCode() int }
	if errors.As(err, &coded) {
		return coded.ExitCode()
	}
	return -1
}

func dispatchResult(err error) string {
	switch {
	case err == nil:
		return telemetry.ResultSuccess
	case errors.Is(err, domain.ErrUnavailable):
		return telemetry.ResultRejected
	default:
		return telemetry.ResultFailure
	}
}

func toUint32(n int) uint32 {
	if n <= 0 {
		return 0
	}
	return uint32(n) //nolint:gosec // bounded by config validation
}
