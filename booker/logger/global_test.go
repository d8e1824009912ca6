package logger

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"
)

type captured struct {
	level slog.Level
	msg   string
	attrs map[string]slog.Value
}

type captureHandler struct {
	records *[]captured
}

func (h captureHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h captureHandler) Handle(_ context.Context, r slog.Record) error {
	rec := captured{level: r.Level, msg: r.Message, attrs: map[string]slog.Value{}}
	r.Attrs(func(a slog.Attr) bool {
		rec.attrs[a.Key] = a.Value
		return true
	})
	*h.records = append(*h.records, rec)
	return nil
}

func (h captureHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h captureHandler) WithGroup(string) slog.Handler      { return h }

func capture(t *testing.T) *[]captured {
	t.Helper()
	records := &[]captured{}
	prev := slog.Default()
	slog.SetDefault(slog.New(captureHandler{records: records}))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return records
}

func TestLogCommand(t *testing.T) {
	tests := []struct {
		name       string
		duration   time.Duration
		err        error
		wantLevel  slog.Level
		wantMsg    string
		wantStatus string
	}{
		{
			name:       "success",
			duration:   50 * time.Millisecond,
			wantLevel:  slog.LevelInfo,
			wantMsg:    "Command completed",
			wantStatus: "success",
		},
		{
			name:       "slow",
			duration:   3 * time.Second,
			wantLevel:  slog.LevelWarn,
			wantMsg:    "Command executed slowly",
			wantStatus: "slow",
		},
		{
			name:       "failed",
			duration:   50 * time.Millisecond,
			err:        errors.New("boom"),
			wantLevel:  slog.LevelError,
			wantMsg:    "Command failed",
			wantStatus: "failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := capture(t)

			LogCommand("book", "tester", tt.duration, tt.err)

			if len(*records) != 1 {
				t.Fatalf("got %d records, want 1", len(*records))
			}
			rec := (*records)[0]
			if rec.level != tt.wantLevel || rec.msg != tt.wantMsg {
				t.Errorf("logged %v %q, want %v %q", rec.level, rec.msg, tt.wantLevel, tt.wantMsg)
			}
			if got := rec.attrs["type"].String(); got != "cmd" {
				t.Errorf("type = %q, want cmd", got)
			}
			if got := rec.attrs["name"].String(); got != "book" {
				t.Errorf("name = %q, want book", got)
			}
			if got := rec.attrs["status"].String(); got != tt.wantStatus {
				t.Errorf("status = %q, want %q", got, tt.wantStatus)
			}
		})
	}
}

func TestLogQuery(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		records := capture(t)

		LogQuery("write", 3, time.Millisecond, nil)

		rec := (*records)[0]
		if rec.level != slog.LevelInfo || rec.msg != "Query executed" {
			t.Errorf("logged %v %q", rec.level, rec.msg)
		}
		if got := rec.attrs["type"].String(); got != "db" {
			t.Errorf("type = %q, want db", got)
		}
		if got := rec.attrs["slot"].Int64(); got != 3 {
			t.Errorf("slot = %d, want 3", got)
		}
	})

	t.Run("failure", func(t *testing.T) {
		records := capture(t)

		LogQuery("read", 2, time.Millisecond, errors.New("conn reset"))

		rec := (*records)[0]
		if rec.level != slog.LevelError || rec.msg != "Query failed" {
			t.Errorf("logged %v %q", rec.level, rec.msg)
		}
		if _, ok := rec.attrs["error"]; !ok {
			t.Error("error attr missing")
		}
	})
}

func TestLogSystemAndError(t *testing.T) {
	records := capture(t)

	LogSystem("Inbox email delivered", slog.String("from", "Medical Team"))
	LogError("Autosave failed", errors.New("timeout"), slog.Int("slot", 1))

	if len(*records) != 2 {
		t.Fatalf("got %d records, want 2", len(*records))
	}

	sys := (*records)[0]
	if sys.level != slog.LevelInfo || sys.attrs["type"].String() != "sys" {
		t.Errorf("system record = %v type=%q", sys.level, sys.attrs["type"].String())
	}
	if sys.attrs["from"].String() != "Medical Team" {
		t.Errorf("from = %q", sys.attrs["from"].String())
	}

	errRec := (*records)[1]
	if errRec.level != slog.LevelError || errRec.attrs["type"].String() != "error" {
		t.Errorf("error record = %v type=%q", errRec.level, errRec.attrs["type"].String())
	}
	if errRec.attrs["slot"].Int64() != 1 {
		t.Errorf("slot = %d", errRec.attrs["slot"].Int64())
	}
}
