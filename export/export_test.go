package export

import (
	"bytes"
	"errors"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/milcktoast/sketchy"
	"github.com/milcktoast/sketchy/scene"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.RGBA
		wantErr bool
	}{
		{"#000", color.RGBA{A: 0xff}, false},
		{"#fff8", color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x88}, false},
		{"#c0c0c0", color.RGBA{R: 0xc0, G: 0xc0, B: 0xc0, A: 0xff}, false},
		{"#11223344", color.RGBA{R: 0x11, G: 0x22, B: 0x33, A: 0x44}, false},
		{"abc", color.RGBA{R: 0xaa, G: 0xbb, B: 0xcc, A: 0xff}, false},
		{"#12345", color.RGBA{}, true},
		{"#zzzzzz", color.RGBA{}, true},
		{"", color.RGBA{}, true},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseColor(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

// testDocument holds one source path and one group with a single
// horizontal line 4 units wide across y=50.
func testDocument(lineOpacity, groupOpacity float64) *scene.Document {
	doc := scene.NewDocument()
	doc.AddPath(sketchy.NewPolyline(sketchy.Pt(10, 10), sketchy.Pt(90, 10)), true)

	l := doc.NewLine(sketchy.Pt(10, 50), sketchy.Pt(90, 50))
	l.SetStrokeWidth(4)
	l.SetOpacity(lineOpacity)
	g := doc.NewGroup([]sketchy.Primitive{l})
	g.SetOpacity(groupOpacity)
	return doc
}

func TestSVGExport(t *testing.T) {
	doc := testDocument(1, 0.6)
	var buf bytes.Buffer
	if err := Must("svg").Export(&buf, doc, DefaultOptions(100, 100)); err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	out := buf.String()

	g := doc.Groups()[0]
	for _, want := range []string{
		`<svg`,
		`id="g-` + g.ID + `"`,
		`opacity="0.6"`,
		`x1="1000"`,
		`stroke-width:400`,
		`</svg>`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("SVG output missing %q", want)
		}
	}
	if strings.Contains(out, "<polyline") {
		t.Error("sources should be hidden by default")
	}
	if n := strings.Count(out, "<line"); n != 1 {
		t.Errorf("SVG has %d lines, want 1", n)
	}
}

func TestSVGExportShowSources(t *testing.T) {
	opts := DefaultOptions(100, 100)
	opts.ShowSources = true

	var buf bytes.Buffer
	if err := (SVG{}).Export(&buf, testDocument(1, 1), opts); err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if !strings.Contains(buf.String(), "<polyline") {
		t.Error("ShowSources should draw the source paths")
	}
}

func TestSVGUnits(t *testing.T) {
	tests := []struct {
		in   float64
		want int
	}{
		{10, 1000},
		{10.004, 1000},
		{10.005, 1001},
		{0.004, 0},
		{-2.5, -250},
	}
	for _, tt := range tests {
		if got := svgUnits(tt.in); got != tt.want {
			t.Errorf("svgUnits(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestSVGExportWriteError(t *testing.T) {
	err := (SVG{}).Export(failingWriter{}, testDocument(1, 1), DefaultOptions(10, 10))
	if err == nil || !strings.Contains(err.Error(), "disk full") {
		t.Errorf("Export() = %v, want the write error", err)
	}
}

func TestRasterize(t *testing.T) {
	tests := []struct {
		name         string
		lineOpacity  float64
		groupOpacity float64
		scale        float64
		wantR        uint8
	}{
		{"opaque", 1, 1, 1, 0},
		{"translucent line", 0.5, 1, 1, 127},
		{"translucent group", 1, 0.5, 1, 127},
		{"scaled", 1, 1, 2, 0},
		{"invisible group", 1, 0, 1, 255},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions(100, 100)
			opts.Scale = tt.scale
			img := Rasterize(testDocument(tt.lineOpacity, tt.groupOpacity), opts)

			size := int(100 * tt.scale)
			if b := img.Bounds(); b.Dx() != size || b.Dy() != size {
				t.Fatalf("image is %v, want %dx%d", b, size, size)
			}

			on := img.RGBAAt(int(50*tt.scale), int(50*tt.scale))
			if diff := int(on.R) - int(tt.wantR); diff < -2 || diff > 2 {
				t.Errorf("pixel on the line has R=%d, want %d", on.R, tt.wantR)
			}
			off := img.RGBAAt(int(50*tt.scale), int(20*tt.scale))
			if off != (color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}) {
				t.Errorf("pixel off the line = %v, want white", off)
			}
		})
	}
}

func TestRasterizeOverlapInsideGroup(t *testing.T) {
	doc := scene.NewDocument()
	a := doc.NewLine(sketchy.Pt(0, 50), sketchy.Pt(100, 50))
	b := doc.NewLine(sketchy.Pt(50, 0), sketchy.Pt(50, 100))
	a.SetStrokeWidth(4)
	b.SetStrokeWidth(4)
	doc.NewGroup([]sketchy.Primitive{a, b}).SetOpacity(0.5)

	img := Rasterize(doc, DefaultOptions(100, 100))
	cross := img.RGBAAt(50, 50)
	arm := img.RGBAAt(20, 50)
	if diff := int(cross.R) - int(arm.R); diff < -2 || diff > 2 {
		t.Errorf("crossing R=%d differs from arm R=%d; group should composite once", cross.R, arm.R)
	}
}

func TestPNGExport(t *testing.T) {
	var buf bytes.Buffer
	if err := Must("png").Export(&buf, testDocument(1, 1), DefaultOptions(40, 30)); err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("output is not a PNG: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 40 || b.Dy() != 30 {
		t.Errorf("decoded size = %v, want 40x30", b)
	}
}
