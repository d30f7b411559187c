package observability

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/riskibarqy/mockmaster/internal/config"
	"github.com/riskibarqy/mockmaster/internal/platform/logging"
	"github.com/riskibarqy/mockmaster/internal/platform/resilience"
	"github.com/valyala/bytebufferpool"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	betterStackQueueSize     = 1024
	betterStackMaxBatchLines = 100
	betterStackFlushInterval = time.Second
)

// InitBetterStackLogger tees the service logger to Better Stack when enabled.
// The returned drain func flushes queued lines and must run before exit.
func InitBetterStackLogger(cfg config.Config, baseLogger *logging.Logger) (*logging.Logger, func(context.Context) error, error) {
	if baseLogger == nil {
		baseLogger = logging.NewJSON(cfg.LogLevel)
	}

	if !cfg.BetterStackEnabled {
		baseLogger.Info("betterstack disabled", "reason", "BETTERSTACK_ENABLED=false")
		return baseLogger, func(context.Context) error { return nil }, nil
	}

	endpoint := normalizeBetterStackEndpoint(cfg.BetterStackEndpoint)
	if endpoint == "" {
		return nil, nil, fmt.Errorf("betterstack endpoint cannot be empty")
	}

	shipper := newBetterStackShipper(endpoint, strings.TrimSpace(cfg.BetterStackToken), cfg.BetterStackTimeout, betterStackFlushInterval)
	shipCore := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		zapcore.AddSync(shipper),
		cfg.BetterStackMinLevel,
	)

	zapLogger := baseLogger.Zap().WithOptions(zap.WrapCore(func(core zapcore.Core) zapcore.Core {
		return zapcore.NewTee(core, shipCore)
	}))
	logger := logging.FromZap(zapLogger.With(
		zap.String("service", cfg.ServiceName),
		zap.String("env", cfg.AppEnv),
	))
	logger.Info("betterstack enabled",
		"endpoint", endpoint,
		"min_level", cfg.BetterStackMinLevel.String(),
	)

	return logger, func(ctx context.Context) error {
		if _, hasDeadline := ctx.Deadline(); !hasDeadline {
			withTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
			defer cancel()
			ctx = withTimeout
		}
		if err := shipper.Close(ctx); err != nil {
			return fmt.Errorf("drain betterstack queue: %w", err)
		}
		if err := logger.Sync(); err != nil && !isIgnorableLoggerSyncError(err) {
			return err
		}
		return nil
	}, nil
}

func normalizeBetterStackEndpoint(raw string) string {
	value := strings.TrimSpace(raw)
	if value == "" {
		return ""
	}
	if strings.HasPrefix(value, "http://") || strings.HasPrefix(value, "https://") {
		return value
	}
	return "https://" + value
}

// betterStackShipper queues encoded log lines and posts them as JSON arrays.
// Lines are dropped, never blocked on, when the queue is full or the ingest
// endpoint's circuit is open.
type betterStackShipper struct {
	endpoint      string
	token         string
	timeout       time.Duration
	flushInterval time.Duration
	client        *fasthttp.Client
	breaker       *resilience.Breaker
	queue         chan []byte
	queueMu       sync.RWMutex
	closeOnce     sync.Once
	closed        atomic.Bool
	wg            sync.WaitGroup
	dropped       atomic.Uint64
	failed        atomic.Uint64
}

func newBetterStackShipper(endpoint, token string, timeout, flushInterval time.Duration) *betterStackShipper {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	if flushInterval <= 0 {
		flushInterval = betterStackFlushInterval
	}

	s := &betterStackShipper{
		endpoint:      endpoint,
		token:         token,
		timeout:       timeout,
		flushInterval: flushInterval,
		client: &fasthttp.Client{
			Name:         "mockmaster-log-shipper",
			ReadTimeout:  timeout,
			WriteTimeout: timeout,
		},
		breaker: resilience.NewBreaker(resilience.BreakerConfig{FailureThreshold: 5, Cooldown: 30 * time.Second}),
		queue:   make(chan []byte, betterStackQueueSize),
	}
	s.wg.Add(1)
	go s.run()

	return s
}

func (s *betterStackShipper) Write(p []byte) (int, error) {
	line := bytes.TrimSpace(p)
	if len(line) == 0 {
		return len(p), nil
	}

	s.queueMu.RLock()
	defer s.queueMu.RUnlock()
	if s.closed.Load() {
		return len(p), nil
	}

	// zap reuses its buffer once Write returns.
	copied := make([]byte, len(line))
	copy(copied, line)

	select {
	case s.queue <- copied:
	default:
		dropped := s.dropped.Add(1)
		if dropped == 1 || dropped%100 == 0 {
			fmt.Fprintf(os.Stderr, "betterstack queue full; dropped logs=%d\n", dropped)
		}
	}

	return len(p), nil
}

func (s *betterStackShipper) run() {
	defer s.wg.Done()

	ticker := time.NewTicker(s.flushInterval)
	defer ticker.Stop()

	batch := bytebufferpool.Get()
	defer bytebufferpool.Put(batch)
	lines := 0

	flush := func() {
		if lines == 0 {
			return
		}
		_ = batch.WriteByte(']')
		s.send(batch.B)
		batch.Reset()
		lines = 0
	}

	for {
		select {
		case line, ok := <-s.queue:
			if !ok {
				flush()
				return
			}
			if lines == 0 {
				_ = batch.WriteByte('[')
			} else {
				_ = batch.WriteByte(',')
			}
			_, _ = batch.Write(line)
			lines++
			if lines >= betterStackMaxBatchLines {
				flush()
			}
		case <-ticker.C:
			flush()
		}
	}
}

func (s *betterStackShipper) send(body []byte) {
	if err := s.breaker.Allow(); err != nil {
		s.reportFailure("send", err)
		return
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(s.endpoint)
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType("application/json")
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}
	req.SetBody(body)

	if err := s.client.DoTimeout(req, resp, s.timeout); err != nil {
		s.breaker.Record(err)
		s.reportFailure("send", err)
		return
	}
	if status := resp.StatusCode(); status >= fasthttp.StatusMultipleChoices {
		err := fmt.Errorf("non-2xx status=%d", status)
		s.breaker.Record(err)
		s.reportFailure("status", err)
		return
	}
	s.breaker.Record(nil)
}

func (s *betterStackShipper) reportFailure(stage string, err error) {
	failed := s.failed.Add(1)
	if failed == 1 || failed%50 == 0 {
		fmt.Fprintf(os.Stderr, "betterstack %s failed (total=%d): %v\n", stage, failed, err)
	}
}

func (s *betterStackShipper) Close(ctx context.Context) error {
	s.closeOnce.Do(func() {
		s.queueMu.Lock()
		s.closed.Store(true)
		close(s.queue)
		s.queueMu.Unlock()
	})

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *betterStackShipper) Sync() error {
	return nil
}

func isIgnorableLoggerSyncError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "bad file descriptor") || strings.Contains(msg, "invalid argument")
}
