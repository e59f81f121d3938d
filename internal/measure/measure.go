// Package measure determines the native bounding box of logo payloads.
// Raster images (PNG, JPEG, GIF) are measured from their pixel dimensions at
// a configured DPI; DXF vector files are measured from their entity bounding
// box, with drawing units taken as inches.
package measure

import (
	"bytes"
	"fmt"
	"image"
	"math"
	"os"
	"path/filepath"
	"strings"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/entity"
)

// Options controls how payloads are interpreted.
type Options struct {
	DPI float64 // Pixels per inch for raster payloads
}

// Sniff identifies a payload's content type from its leading bytes.
// Returns "png", "jpeg", "gif", "dxf", or "" when unrecognized.
func Sniff(data []byte) string {
	switch {
	case bytes.HasPrefix(data, []byte("\x89PNG\r\n\x1a\n")):
		return "png"
	case bytes.HasPrefix(data, []byte{0xFF, 0xD8, 0xFF}):
		return "jpeg"
	case bytes.HasPrefix(data, []byte("GIF87a")) || bytes.HasPrefix(data, []byte("GIF89a")):
		return "gif"
	case looksLikeDXF(data):
		return "dxf"
	default:
		return ""
	}
}

// looksLikeDXF checks for the group-code structure of a DXF header.
func looksLikeDXF(data []byte) bool {
	head := data
	if len(head) > 256 {
		head = head[:256]
	}
	s := string(head)
	return strings.Contains(s, "SECTION") && (strings.Contains(s, "HEADER") || strings.Contains(s, "ENTITIES"))
}

// Bytes measures a raw payload, returning its width and height in inches
// and the detected content type. The first frame's bounding box defines the
// item size. DXF payloads are routed through a temporary file because the
// DXF reader operates on paths.
func Bytes(data []byte, opts Options) (width, height float64, contentType string, err error) {
	contentType = Sniff(data)
	switch contentType {
	case "png", "jpeg", "gif":
		width, height, err = raster(data, opts.DPI)
	case "dxf":
		width, height, err = dxfBytes(data)
	default:
		err = fmt.Errorf("unsupported content type")
	}
	return width, height, contentType, err
}

// File reads and measures a logo file from disk.
func File(path string, opts Options) (data []byte, width, height float64, contentType string, err error) {
	data, err = os.ReadFile(path)
	if err != nil {
		return nil, 0, 0, "", err
	}

	// Extension-only DXF files with unusual headers still deserve a try.
	if Sniff(data) == "" && strings.EqualFold(filepath.Ext(path), ".dxf") {
		width, height, err = DXFFile(path)
		return data, width, height, "dxf", err
	}

	width, height, contentType, err = Bytes(data, opts)
	if err != nil {
		return nil, 0, 0, "", fmt.Errorf("measure %s: %w", path, err)
	}
	return data, width, height, contentType, nil
}

// raster measures a raster image via its decoded config, converting pixels
// to inches at the given DPI.
func raster(data []byte, dpi float64) (float64, float64, error) {
	if dpi <= 0 {
		dpi = 300.0
	}
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return 0, 0, fmt.Errorf("decode image: %w", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return 0, 0, fmt.Errorf("image has no pixels")
	}
	return float64(cfg.Width) / dpi, float64(cfg.Height) / dpi, nil
}

func dxfBytes(data []byte) (float64, float64, error) {
	tmp, err := os.CreateTemp("", "ezgang-*.dxf")
	if err != nil {
		return 0, 0, err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return 0, 0, err
	}
	if err := tmp.Close(); err != nil {
		return 0, 0, err
	}
	return DXFFile(tmp.Name())
}

// DXFFile measures a DXF drawing as the bounding box of its supported
// entities (LWPOLYLINE, LINE, CIRCLE, ARC). Unsupported entity types are
// skipped.
func DXFFile(path string) (float64, float64, error) {
	drawing, err := dxf.Open(path)
	if err != nil {
		return 0, 0, fmt.Errorf("open dxf: %w", err)
	}

	entities := drawing.Entities()
	if len(entities) == 0 {
		return 0, 0, fmt.Errorf("dxf file contains no entities")
	}

	box := newBounds()
	for _, ent := range entities {
		switch e := ent.(type) {
		case *entity.LwPolyline:
			for _, v := range e.Vertices {
				box.add(v[0], v[1])
			}
		case *entity.Line:
			box.add(e.Start[0], e.Start[1])
			box.add(e.End[0], e.End[1])
		case *entity.Circle:
			box.add(e.Center[0]-e.Radius, e.Center[1]-e.Radius)
			box.add(e.Center[0]+e.Radius, e.Center[1]+e.Radius)
		case *entity.Arc:
			for _, p := range arcPoints(e, 32) {
				box.add(p[0], p[1])
			}
		default:
			// Unsupported entity types are silently skipped
		}
	}

	if !box.valid() {
		return 0, 0, fmt.Errorf("no measurable entities in dxf file")
	}

	width := box.maxX - box.minX
	height := box.maxY - box.minY
	if width < 0.01 || height < 0.01 {
		return 0, 0, fmt.Errorf("degenerate dxf bounding box (%.2f x %.2f)", width, height)
	}
	return width, height, nil
}

// arcPoints samples an ARC entity into points for bounding purposes.
func arcPoints(a *entity.Arc, numSegments int) [][2]float64 {
	cx, cy := a.Circle.Center[0], a.Circle.Center[1]
	r := a.Circle.Radius

	startRad := a.Angle[0] * math.Pi / 180
	endRad := a.Angle[1] * math.Pi / 180
	if endRad <= startRad {
		endRad += 2 * math.Pi
	}

	pts := make([][2]float64, 0, numSegments+1)
	for i := 0; i <= numSegments; i++ {
		t := float64(i) / float64(numSegments)
		angle := startRad + t*(endRad-startRad)
		pts = append(pts, [2]float64{cx + r*math.Cos(angle), cy + r*math.Sin(angle)})
	}
	return pts
}

type bounds struct {
	minX, minY, maxX, maxY float64
	set                    bool
}

func newBounds() *bounds {
	return &bounds{}
}

func (b *bounds) add(x, y float64) {
	if !b.set {
		b.minX, b.maxX, b.minY, b.maxY = x, x, y, y
		b.set = true
		return
	}
	b.minX = math.Min(b.minX, x)
	b.maxX = math.Max(b.maxX, x)
	b.minY = math.Min(b.minY, y)
	b.maxY = math.Max(b.maxY, y)
}

func (b *bounds) valid() bool { return b.set }
