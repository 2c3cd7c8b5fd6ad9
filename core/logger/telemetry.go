package logger

import (
	"bytes"
	"context"
	"net/http"
	"strings"
	"sync"
	"time"
)

const defaultTelemetryEndpoint = "https://in.logs.betterstack.com"

type telemetryOptions struct {
	Endpoint string
	Token    string
	// FlushInterval bounds how long a batch may sit in the buffer.
	FlushInterval time.Duration
	// MaxBatch bounds the number of lines shipped per request.
	MaxBatch int
	Client   *http.Client
}

// telemetryWriter ships log lines to a remote HTTP sink with a bearer token.
// Writes never block the logging pipeline: lines go into a bounded queue and
// are dropped when the shipper cannot keep up.
type telemetryWriter struct {
	opts   telemetryOptions
	queue  chan []byte
	done   chan struct{}
	once   sync.Once
	client *http.Client
}

func newTelemetryWriter(opts telemetryOptions) *telemetryWriter {
	if strings.TrimSpace(opts.Endpoint) == "" {
		opts.Endpoint = defaultTelemetryEndpoint
	}
	if opts.FlushInterval <= 0 {
		opts.FlushInterval = 2 * time.Second
	}
	if opts.MaxBatch <= 0 {
		opts.MaxBatch = 64
	}
	client := opts.Client
	if client == nil {
		client = &http.Client{Timeout: 5 * time.Second}
	}
	tw := &telemetryWriter{
		opts:   opts,
		queue:  make(chan []byte, 512),
		done:   make(chan struct{}),
		client: client,
	}
	go tw.loop()
	return tw
}

// Write enqueues one formatted log line. Lines are dropped when the queue is
// saturated; losing telemetry is preferable to stalling a handler.
func (t *telemetryWriter) Write(p []byte) (int, error) {
	line := make([]byte, len(p))
	copy(line, p)
	select {
	case t.queue <- line:
	default:
	}
	return len(p), nil
}

// Close flushes remaining batches and stops the shipper goroutine.
func (t *telemetryWriter) Close() error {
	t.once.Do(func() {
		close(t.queue)
	})
	<-t.done
	return nil
}

func (t *telemetryWriter) loop() {
	defer close(t.done)

	ticker := time.NewTicker(t.opts.FlushInterval)
	defer ticker.Stop()

	batch := make([][]byte, 0, t.opts.MaxBatch)
	flush := func() {
		if len(batch) == 0 {
			return
		}
		t.ship(batch)
		batch = batch[:0]
	}

	for {
		select {
		case line, ok := <-t.queue:
			if !ok {
				flush()
				return
			}
			batch = append(batch, line)
			if len(batch) >= t.opts.MaxBatch {
				flush()
			}
		case <-ticker.C:
			flush()
		}
	}
}

func (t *telemetryWriter) ship(batch [][]byte) {
	body := bytes.Join(batch, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.opts.Endpoint, bytes.NewReader(body))
	if err != nil {
		return
	}
	req.Header.Set("Content-Type", "application/x-ndjson")
	req.Header.Set("Authorization", "Bearer "+t.opts.Token)

	resp, err := t.client.Do(req)
	if err != nil {
		// best effort; the local sinks already carry the line
		return
	}
	resp.Body.Close()
}
