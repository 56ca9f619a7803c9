package capture

import (
	"bytes"
	"testing"
)

func TestSaveLoad(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	frame := []byte("\x1b[38;5;203m***\x1b[0m\n")
	id, err := st.Save(Metadata{
		Width: 3, Height: 1, MaxIters: 120,
		ParamRe: -0.8, ParamIm: 0.156, Directives: 2,
	}, frame)
	if err != nil {
		t.Fatal(err)
	}

	meta, err := st.Load(id)
	if err != nil {
		t.Fatal(err)
	}
	if meta.ID != id {
		t.Errorf("expected id %s, got %s", id, meta.ID)
	}
	if meta.Width != 3 || meta.Height != 1 {
		t.Errorf("size not preserved: %dx%d", meta.Width, meta.Height)
	}
	if meta.Directives != 2 {
		t.Errorf("expected 2 directives, got %d", meta.Directives)
	}

	got, err := st.LoadFrame(id)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, frame) {
		t.Error("frame bytes not preserved")
	}
}

func TestLoadMissing(t *testing.T) {
	st := New(t.TempDir())
	if _, err := st.Load("frame_0"); err == nil {
		t.Error("expected error for missing capture")
	}
}

func TestListEmpty(t *testing.T) {
	st := New(t.TempDir())
	metas, err := st.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(metas) != 0 {
		t.Errorf("expected no captures, got %d", len(metas))
	}
}

func TestListReturnsSaved(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	if _, err := st.Save(Metadata{Width: 10, Height: 4}, []byte("frame\n")); err != nil {
		t.Fatal(err)
	}

	metas, err := st.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(metas) != 1 {
		t.Fatalf("expected 1 capture, got %d", len(metas))
	}
	if metas[0].Width != 10 {
		t.Errorf("expected width 10, got %d", metas[0].Width)
	}
}
