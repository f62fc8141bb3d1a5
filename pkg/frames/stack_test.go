package frames

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/ivlev/framefx/pkg/canvas"
	"github.com/ivlev/framefx/pkg/config"
)

// markerSource emits a single rect whose width identifies the layer.
func markerSource(t *testing.T, width float64) FrameSource {
	t.Helper()
	fs, err := NewCustom(func(progress float64, sink canvas.Sink) error {
		return sink.Add(canvas.Rect(width, 1, colorful.Color{}))
	})
	if err != nil {
		t.Fatal(err)
	}
	return fs
}

func TestStackFlushesBackToFront(t *testing.T) {
	fs, err := NewStack(
		markerSource(t, 1),
		markerSource(t, 2),
		markerSource(t, 3),
		markerSource(t, 4),
	)
	if err != nil {
		t.Fatal(err)
	}
	defer fs.Dispose()

	// Layers render concurrently; the emitted stream must still follow
	// layer order. Repeat to shake out scheduling luck.
	for i := 0; i < 20; i++ {
		var buf canvas.Buffer
		if err := fs.Render(0.5, &buf); err != nil {
			t.Fatal(err)
		}
		objs := buf.Objects()
		if len(objs) != 4 {
			t.Fatalf("stack emitted %d objects, want 4", len(objs))
		}
		for j, o := range objs {
			if o.Width != float64(j+1) {
				t.Fatalf("iteration %d: object %d has width %v, want %v", i, j, o.Width, j+1)
			}
		}
	}
}

func TestStackPropagatesLayerErrors(t *testing.T) {
	boom := fmt.Errorf("decode exploded")
	bad, err := NewCustom(func(progress float64, sink canvas.Sink) error {
		return boom
	})
	if err != nil {
		t.Fatal(err)
	}

	fs, err := NewStack(markerSource(t, 1), bad)
	if err != nil {
		t.Fatal(err)
	}
	defer fs.Dispose()

	var buf canvas.Buffer
	if err := fs.Render(0.5, &buf); !errors.Is(err, boom) {
		t.Errorf("expected layer error to surface, got %v", err)
	}
}

func TestStackDisposeFansOut(t *testing.T) {
	a := markerSource(t, 1)
	b := markerSource(t, 2)
	fs, err := NewStack(a, b)
	if err != nil {
		t.Fatal(err)
	}

	if err := fs.Dispose(); err != nil {
		t.Fatal(err)
	}

	var buf canvas.Buffer
	if err := fs.Render(0.5, &buf); !errors.Is(err, ErrDisposed) {
		t.Errorf("stack render after dispose: expected ErrDisposed, got %v", err)
	}
	if err := a.Render(0.5, &buf); !errors.Is(err, ErrDisposed) {
		t.Errorf("layer render after stack dispose: expected ErrDisposed, got %v", err)
	}
}

func TestStackRequiresLayers(t *testing.T) {
	if _, err := NewStack(); !errors.Is(err, ErrConfig) {
		t.Errorf("expected ErrConfig, got %v", err)
	}
}

func TestNewSceneBuildsAllLayers(t *testing.T) {
	scene := &config.Scene{
		Layers: []config.Layer{
			{Type: config.TypeFillColor, Color: "#101010"},
			{Type: config.TypeTitle, Text: "Scene Test"},
		},
	}

	fs, err := NewScene(scene, 640, 360)
	if err != nil {
		t.Fatal(err)
	}
	defer fs.Dispose()

	var buf canvas.Buffer
	if err := fs.Render(1, &buf); err != nil {
		t.Fatal(err)
	}
	objs := buf.Objects()
	if len(objs) != 2 {
		t.Fatalf("scene emitted %d objects, want 2", len(objs))
	}
	if objs[0].Kind != canvas.KindRect || objs[1].Kind != canvas.KindText {
		t.Errorf("scene order = (%q, %q), want fill under title", objs[0].Kind, objs[1].Kind)
	}
}

func TestNewSceneReportsBadLayer(t *testing.T) {
	scene := &config.Scene{
		Layers: []config.Layer{
			{Type: config.TypeFillColor},
			{Type: config.TypeTitle}, // missing text
		},
	}

	if _, err := NewScene(scene, 640, 360); !errors.Is(err, ErrConfig) {
		t.Errorf("expected ErrConfig, got %v", err)
	}
}
