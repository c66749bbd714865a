package state

import (
	"context"
	"log"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
)

func TestContextWithEnv(t *testing.T) {
	ctx := ContextWithEnv(context.Background())
	env := EnvFromContext(ctx)
	if env.start.IsZero() {
		t.Error("start time not set")
	}
	if env.Cfg != nil || env.Log != nil || env.Rpt != nil {
		t.Error("fresh environment must be empty")
	}

	// the same environment is shared by derived contexts
	child, cancel := context.WithCancel(ctx)
	defer cancel()
	EnvFromContext(child).ClassificationPath = "thesis.yaml"
	if env.ClassificationPath != "thesis.yaml" {
		t.Error("derived context must share environment")
	}
}

func TestEnvFromContext_Missing(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic when environment is not in context")
		}
	}()
	EnvFromContext(context.Background())
}

func TestLocalEnv_Uptime(t *testing.T) {
	env := &LocalEnv{start: time.Now().Add(-time.Minute)}
	if up := env.Uptime(); up < time.Minute || up > 2*time.Minute {
		t.Errorf("Uptime() = %v", up)
	}
}

func TestLocalEnv_StdLog(t *testing.T) {
	t.Run("redirected", func(t *testing.T) {
		core, logs := observer.New(zap.InfoLevel)
		env := &LocalEnv{Log: zap.New(core)}

		env.RedirectStdLog()
		log.Print("from standard logger")
		env.RestoreStdLog()
		log.Print("after restore")

		if logs.Len() != 1 || logs.All()[0].Message != "from standard logger" {
			t.Errorf("captured = %v", logs.All())
		}
	})

	t.Run("repeated", func(t *testing.T) {
		env := &LocalEnv{Log: zaptest.NewLogger(t)}
		for i := range 3 {
			env.RedirectStdLog()
			if env.restoreStdLog == nil {
				t.Fatalf("iteration %d: restore function not set", i)
			}
			env.RestoreStdLog()
		}
	})

	t.Run("no logger", func(t *testing.T) {
		env := &LocalEnv{}
		env.RedirectStdLog()
		if env.restoreStdLog != nil {
			t.Error("nothing to restore without logger")
		}
		env.RestoreStdLog()
	})
}
