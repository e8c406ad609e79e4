package observability

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	p := NoopPipelineHooks{}
	p.OnSynthStart(ctx, "base")
	p.OnSynthComplete(ctx, "base", 12, time.Second, nil)
	p.OnColumns(ctx, 9, time.Millisecond)
	p.OnRenderStart(ctx, []string{"svg"})
	p.OnRenderComplete(ctx, []string{"svg"}, time.Second, nil)

	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "plan")
	c.OnCacheMiss(ctx, "columns")
	c.OnCacheSet(ctx, "artifact", 1024)

	e := NoopEditHooks{}
	e.OnDragBegin(ctx, "kitchen-1", "se")
	e.OnDragEnd(ctx, "kitchen-1", true)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()
	defer Reset()

	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Pipeline() should return NoopPipelineHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}
	if _, ok := Edit().(NoopEditHooks); !ok {
		t.Error("Edit() should return NoopEditHooks by default")
	}

	h := NewLogHooks(nil)
	SetPipelineHooks(h)
	SetCacheHooks(h)
	SetEditHooks(h)
	if Pipeline() != PipelineHooks(h) || Cache() != CacheHooks(h) || Edit() != EditHooks(h) {
		t.Error("setters did not register hooks")
	}

	Reset()
	if _, ok := Edit().(NoopEditHooks); !ok {
		t.Error("Reset() should restore NoopEditHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()
	defer Reset()

	custom := &testPipelineHooks{}
	SetPipelineHooks(custom)
	SetPipelineHooks(nil)

	if Pipeline() != custom {
		t.Error("SetPipelineHooks(nil) should be ignored")
	}
}

func TestLogHooks(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	h := NewLogHooks(logger)
	ctx := context.Background()

	h.OnSynthComplete(ctx, "luxury", 14, time.Millisecond, nil)
	h.OnRenderComplete(ctx, []string{"svg"}, 0, errors.New("boom"))
	h.OnDragEnd(ctx, "bath-2", false)

	out := buf.String()
	for _, want := range []string{"synth done", "luxury", "render failed", "boom", "drag end", "bath-2"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

type testPipelineHooks struct{ NoopPipelineHooks }
