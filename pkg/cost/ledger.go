package cost

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Ledger is an append-only audit trail of completion costs, one log file per
// calendar day. Appends are serialized; nothing in the request path reads it.
type Ledger struct {
	dir string
	now func() time.Time

	mu     sync.Mutex
	day    string
	file   *os.File
	logger *slog.Logger
}

func NewLedger(dir string) (*Ledger, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create cost log directory: %w", err)
	}
	return &Ledger{dir: dir, now: time.Now}, nil
}

// Append writes one breakdown record to the current day's log file.
func (l *Ledger) Append(b Breakdown) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.rotate(); err != nil {
		return err
	}

	l.logger.Info("chat completion cost",
		"model", b.Model,
		"input_price_per_1k", b.Pricing.InputPer1K,
		"output_price_per_1k", b.Pricing.OutputPer1K,
		"cached_input_price_per_1m", b.Pricing.CachedPer1M,
		"prompt_tokens", b.Usage.PromptTokens,
		"cached_tokens", b.Usage.CachedTokens,
		"completion_tokens", b.Usage.CompletionTokens,
		"non_cached_input_cost", fmt.Sprintf("%.6f", b.NonCachedInput),
		"cached_input_cost", fmt.Sprintf("%.6f", b.CachedInput),
		"completion_cost", fmt.Sprintf("%.6f", b.Completion),
		"total_cost", fmt.Sprintf("%.6f", b.Total),
	)
	return nil
}

// rotate opens the log file for the current date, closing the previous day's
// file on rollover. Caller must hold mu.
func (l *Ledger) rotate() error {
	day := l.now().Format("2006-01-02")
	if day == l.day && l.file != nil {
		return nil
	}

	if l.file != nil {
		l.file.Close()
	}

	path := filepath.Join(l.dir, fmt.Sprintf("cost_log_%s.log", day))
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open cost log file: %w", err)
	}

	l.day = day
	l.file = file
	l.logger = slog.New(slog.NewTextHandler(file, nil))
	return nil
}

// Close releases the current log file.
func (l *Ledger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}

// Tracker computes and records the cost of completion calls.
type Tracker struct {
	ledger *Ledger
}

func NewTracker(ledger *Ledger) *Tracker {
	return &Tracker{ledger: ledger}
}

// Track itemizes the cost of one completion and appends it to the ledger.
// An unpriced model is a hard failure.
func (t *Tracker) Track(usage Usage, model string) (float64, error) {
	b, err := Compute(usage, model)
	if err != nil {
		return 0, err
	}
	if err := t.ledger.Append(b); err != nil {
		return 0, fmt.Errorf("append cost ledger: %w", err)
	}
	return b.Total, nil
}
