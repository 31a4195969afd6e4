package io

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/tagcloud/pkg/cloud"
	"github.com/matzehuels/tagcloud/pkg/errors"
	"github.com/matzehuels/tagcloud/pkg/sizes"
)

func sampleDocument(t *testing.T) *Document {
	t.Helper()
	entries := []sizes.Entry{
		{Label: "gopher", Size: cloud.Size{Width: 60, Height: 20}, FontSize: 18, Weight: 1},
		{Label: "cloud", Size: cloud.Size{Width: 40, Height: 14}, FontSize: 12, Weight: 0.5},
		{Label: "tag", Size: cloud.Size{Width: 30, Height: 10}},
	}
	l := cloud.New(cloud.Point{X: 100, Y: 50})
	rects, err := l.PlaceAll(sizes.SizesOf(entries))
	if err != nil {
		t.Fatal(err)
	}
	return NewDocument(l.Center(), entries, rects)
}

func TestNewDocument(t *testing.T) {
	doc := sampleDocument(t)
	if doc.ID == "" {
		t.Error("document should get an ID")
	}
	if len(doc.Tags) != 3 {
		t.Fatalf("len(Tags) = %d, want 3", len(doc.Tags))
	}
	if doc.Tags[0].Label != "gopher" || doc.Tags[0].FontSize != 18 {
		t.Errorf("first tag = %+v", doc.Tags[0])
	}
	first := doc.Tags[0].Rect()
	if first.Center() != doc.Center {
		t.Errorf("first tag center = %v, want %v", first.Center(), doc.Center)
	}
	var want cloud.Rect
	for _, r := range doc.Rects() {
		want = want.Union(r)
	}
	if doc.Bounds != want {
		t.Errorf("Bounds = %v, want %v", doc.Bounds, want)
	}
	if got := doc.Entries(); got[1].Label != "cloud" || got[1].Size != (cloud.Size{Width: 40, Height: 14}) {
		t.Errorf("Entries()[1] = %+v", got[1])
	}
}

func TestNewDocumentFewerRects(t *testing.T) {
	entries := []sizes.Entry{{Label: "a"}, {Label: "b"}}
	doc := NewDocument(cloud.Point{}, entries, []cloud.Rect{cloud.NewRect(0, 0, 2, 2)})
	if len(doc.Tags) != 1 || doc.Tags[0].Label != "a" {
		t.Errorf("Tags = %+v", doc.Tags)
	}
}

func TestRoundTrip(t *testing.T) {
	doc := sampleDocument(t)
	var buf bytes.Buffer
	if err := WriteJSON(doc, &buf); err != nil {
		t.Fatal(err)
	}
	got, err := ReadJSON(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if got.ID != doc.ID || got.Center != doc.Center || got.Bounds != doc.Bounds {
		t.Errorf("header mismatch: %+v vs %+v", got, doc)
	}
	for i := range doc.Tags {
		if got.Tags[i] != doc.Tags[i] {
			t.Errorf("tag %d = %+v, want %+v", i, got.Tags[i], doc.Tags[i])
		}
	}

	data, err := MarshalJSON(doc)
	if err != nil {
		t.Fatal(err)
	}
	var again bytes.Buffer
	WriteJSON(doc, &again)
	if !bytes.Equal(data, again.Bytes()) {
		t.Error("MarshalJSON and WriteJSON disagree")
	}
}

func TestExportImport(t *testing.T) {
	doc := sampleDocument(t)
	path := filepath.Join(t.TempDir(), "layout.json")
	if err := ExportJSON(doc, path); err != nil {
		t.Fatal(err)
	}
	got, err := ImportJSON(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Tags) != len(doc.Tags) {
		t.Errorf("imported %d tags, want %d", len(got.Tags), len(doc.Tags))
	}

	if _, err := ImportJSON(filepath.Join(t.TempDir(), "missing.json")); !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("missing file error = %v", err)
	}
}

func TestReadJSONValidation(t *testing.T) {
	tests := []struct {
		name string
		in   string
		code errors.Code
	}{
		{"malformed", `{"tags": [`, errors.ErrCodeInvalidFormat},
		{"unknown field", `{"tagz": []}`, errors.ErrCodeInvalidFormat},
		{"bad id", `{"id": "nope", "tags": []}`, errors.ErrCodeInvalidInput},
		{"zero size", `{"tags": [{"label": "a", "x": 0, "y": 0, "width": 0, "height": 4}]}`, errors.ErrCodeInvalidSize},
		{"bad label", `{"tags": [{"label": "a\u0007", "x": 0, "y": 0, "width": 3, "height": 4}]}`, errors.ErrCodeInvalidInput},
		{"overlap", `{"tags": [
			{"label": "a", "x": 0, "y": 0, "width": 10, "height": 10},
			{"label": "b", "x": 5, "y": 5, "width": 10, "height": 10}]}`, errors.ErrCodeInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadJSON(strings.NewReader(tt.in))
			if !errors.Is(err, tt.code) {
				t.Errorf("ReadJSON() error = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestReadJSONFixesBounds(t *testing.T) {
	in := `{"bounds": {"x": 0, "y": 0, "width": 1, "height": 1}, "tags": [
		{"label": "a", "x": 0, "y": 0, "width": 10, "height": 10},
		{"label": "b", "x": 10, "y": 0, "width": 5, "height": 20}]}`
	doc, err := ReadJSON(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	if doc.Bounds != cloud.NewRect(0, 0, 15, 20) {
		t.Errorf("Bounds = %v", doc.Bounds)
	}
	if doc.ID == "" {
		t.Error("missing ID should be generated")
	}
}

func TestExportJSONBadPath(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nope")
	if err := ExportJSON(&Document{}, filepath.Join(dir, "x.json")); err == nil {
		t.Error("expected error for missing directory")
	}
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Error("ExportJSON should not create directories")
	}
}
