package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	// Pipeline hooks
	p := NoopPipelineHooks{}
	p.OnBuildStart(ctx, "build-1", 2)
	p.OnBuildComplete(ctx, "build-1", 10, 1, time.Second, nil)
	p.OnRenderStart(ctx, "build-1", "jsx", "less")
	p.OnRenderComplete(ctx, "build-1", 1024, time.Second, nil)

	// Host hooks
	h := NoopHostHooks{}
	h.OnSelection(ctx, 3)
	h.OnSuperseded(ctx, "build-1")
	h.OnPost(ctx, "artifacts", 512)

	// HTTP hooks
	w := NoopHTTPHooks{}
	w.OnRequest(ctx, "POST", "/v1/convert")
	w.OnResponse(ctx, "POST", "/v1/convert", 200, time.Second)
	w.OnError(ctx, "GET", "/v1/events", nil)
}

func TestGlobalHooksRegistry(t *testing.T) {
	// Reset to known state
	Reset()

	// Verify defaults are noop
	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Pipeline() should return NoopPipelineHooks by default")
	}
	if _, ok := Host().(NoopHostHooks); !ok {
		t.Error("Host() should return NoopHostHooks by default")
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Error("HTTP() should return NoopHTTPHooks by default")
	}

	// Set custom hooks
	customPipeline := &testPipelineHooks{}
	SetPipelineHooks(customPipeline)
	if Pipeline() != customPipeline {
		t.Error("SetPipelineHooks should set custom hooks")
	}

	customHost := &testHostHooks{}
	SetHostHooks(customHost)
	if Host() != customHost {
		t.Error("SetHostHooks should set custom hooks")
	}

	customHTTP := &testHTTPHooks{}
	SetHTTPHooks(customHTTP)
	if HTTP() != customHTTP {
		t.Error("SetHTTPHooks should set custom hooks")
	}

	// Reset and verify
	Reset()
	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Reset() should restore NoopPipelineHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testPipelineHooks{}
	SetPipelineHooks(custom)

	// Setting nil should be ignored
	SetPipelineHooks(nil)

	if Pipeline() != custom {
		t.Error("SetPipelineHooks(nil) should be ignored")
	}

	Reset()
}

// Test implementations
type testPipelineHooks struct{ NoopPipelineHooks }
type testHostHooks struct{ NoopHostHooks }
type testHTTPHooks struct{ NoopHTTPHooks }
