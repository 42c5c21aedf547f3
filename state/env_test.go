package state

import (
	"context"
	"log"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"

	"fncase/common"
)

func TestContextWithEnv(t *testing.T) {
	ctx := ContextWithEnv(context.Background())
	env := EnvFromContext(ctx)
	if env == nil {
		t.Fatal("EnvFromContext() returned nil")
	}
	if env.start.IsZero() {
		t.Error("Environment start time not set")
	}
	if env.Format != common.OutputFmtText {
		t.Errorf("Default format = %s, want text", env.Format)
	}
	if env.CodePage != nil || env.Output != "" {
		t.Error("Expected empty code page and output by default")
	}
	if EnvFromContext(ctx) != env {
		t.Error("Expected the same environment on repeated lookups")
	}
}

func TestEnvFromContext_Missing(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic when env not in context")
		}
	}()
	EnvFromContext(context.Background())
}

func TestLocalEnv_Uptime(t *testing.T) {
	env := &LocalEnv{start: time.Now()}

	delays := []time.Duration{5 * time.Millisecond, 10 * time.Millisecond}
	var total time.Duration
	for _, delay := range delays {
		time.Sleep(delay)
		total += delay
		if uptime := env.Uptime(); uptime < total {
			t.Errorf("After %v, uptime %v is too small", total, uptime)
		}
	}
}

func TestLocalEnv_RedirectStdLog(t *testing.T) {
	t.Run("messages reach logger", func(t *testing.T) {
		core, logs := observer.New(zap.InfoLevel)
		env := &LocalEnv{Log: zap.New(core)}

		env.RedirectStdLog()
		log.Print("from standard logger")
		env.RestoreStdLog()

		if logs.FilterMessage("from standard logger").Len() != 1 {
			t.Errorf("Expected redirected message, got %v", logs.All())
		}
		if env.restoreStdLog != nil {
			t.Error("Expected restoreStdLog to be cleared")
		}
	})

	t.Run("repeated cycles", func(t *testing.T) {
		env := &LocalEnv{
			Log: zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller(), zap.AddCallerSkip(1))),
		}
		for i := range 3 {
			env.RedirectStdLog()
			if env.restoreStdLog == nil {
				t.Errorf("Iteration %d: restoreStdLog not set", i)
			}
			env.RestoreStdLog()
		}
	})

	t.Run("without logger", func(t *testing.T) {
		env := &LocalEnv{}
		env.RedirectStdLog()
		if env.restoreStdLog != nil {
			t.Error("Expected restoreStdLog to remain nil")
		}
		env.RestoreStdLog()
	})
}
