package signature

import (
	"testing"
)

func TestPadGesture(t *testing.T) {

	t.Run("movimento sem gesto ativo é ignorado", func(t *testing.T) {
		pad := NewPad(nil)

		if pad.Move(Point{X: 50, Y: 50}) {
			t.Fatal("expected stray move to report inactive gesture")
		}
		if !pad.Empty() {
			t.Fatal("stray move must not draw")
		}
	})

	t.Run("traçar marca a superfície e serializa no fim", func(t *testing.T) {
		var saved []string
		pad := NewPad(func(dataURL string) { saved = append(saved, dataURL) })

		pad.Begin(Point{X: 20, Y: 30})
		if !pad.Move(Point{X: 120, Y: 80}) {
			t.Fatal("expected move during gesture to report active")
		}
		pad.End()

		if pad.Empty() {
			t.Fatal("expected surface to carry the stroke")
		}
		if len(saved) != 1 {
			t.Fatalf("expected 1 save callback, got %d", len(saved))
		}

		img, err := ParseDataURL(saved[0])
		if err != nil {
			t.Fatalf("saved signature must round-trip: %v", err)
		}
		b := img.Bounds()
		if b.Dx() != SurfaceWidth || b.Dy() != SurfaceHeight {
			t.Fatalf("expected %dx%d surface, got %dx%d",
				SurfaceWidth, SurfaceHeight, b.Dx(), b.Dy())
		}
	})

	t.Run("end sem begin não dispara callback", func(t *testing.T) {
		calls := 0
		pad := NewPad(func(string) { calls++ })

		pad.End()
		if calls != 0 {
			t.Fatalf("expected no callback, got %d", calls)
		}
	})

	t.Run("clear limpa e sinaliza ausência de assinatura", func(t *testing.T) {
		var last string
		pad := NewPad(func(dataURL string) { last = dataURL })

		pad.Begin(Point{X: 10, Y: 10})
		pad.Move(Point{X: 60, Y: 40})
		pad.End()
		if last == "" {
			t.Fatal("expected serialized signature before clear")
		}

		pad.Clear()
		if last != "" {
			t.Fatalf("expected empty signal after clear, got %q", last)
		}
		if !pad.Empty() {
			t.Fatal("expected clean surface after clear")
		}

		// Clear no meio de um gesto também encerra o desenho.
		pad.Begin(Point{X: 30, Y: 30})
		pad.Clear()
		if pad.Move(Point{X: 90, Y: 90}) {
			t.Fatal("clear must end the active gesture")
		}

		// Assinar de novo depois do clear volta a serializar.
		pad.Begin(Point{X: 40, Y: 40})
		pad.Move(Point{X: 80, Y: 60})
		pad.End()
		if last == "" {
			t.Fatal("expected non-empty signature after redraw")
		}
	})

	t.Run("traço fora da superfície não causa pânico", func(t *testing.T) {
		pad := NewPad(nil)

		pad.Begin(Point{X: -50, Y: -50})
		pad.Move(Point{X: 500, Y: 300})
		pad.End()
	})
}

func TestNormalize(t *testing.T) {

	t.Run("compensa superfície apresentada menor que o raster", func(t *testing.T) {
		bounds := Rect{MinX: 100, MinY: 50, Width: 200, Height: 75}

		pt := Normalize(200, 125, bounds)
		if pt.X != 200 || pt.Y != 150 {
			t.Fatalf("expected (200,150), got (%v,%v)", pt.X, pt.Y)
		}
	})

	t.Run("apresentação 1:1 é identidade deslocada", func(t *testing.T) {
		bounds := Rect{MinX: 10, MinY: 20, Width: SurfaceWidth, Height: SurfaceHeight}

		pt := Normalize(50, 60, bounds)
		if pt.X != 40 || pt.Y != 40 {
			t.Fatalf("expected (40,40), got (%v,%v)", pt.X, pt.Y)
		}
	})

	t.Run("bounds degenerados não dividem por zero", func(t *testing.T) {
		pt := Normalize(50, 60, Rect{})
		if pt.X != 50 || pt.Y != 60 {
			t.Fatalf("expected raw coordinates, got (%v,%v)", pt.X, pt.Y)
		}
	})
}

func TestParseDataURL(t *testing.T) {

	t.Run("rejeita prefixo errado", func(t *testing.T) {
		if _, err := ParseDataURL("data:image/jpeg;base64,xxxx"); err == nil {
			t.Fatal("expected invalid data url error")
		}
	})

	t.Run("rejeita base64 corrompido", func(t *testing.T) {
		if _, err := ParseDataURL(dataURLPrefix + "%%%"); err == nil {
			t.Fatal("expected invalid data url error")
		}
	})

	t.Run("superfície vazia ainda é um PNG válido", func(t *testing.T) {
		pad := NewPad(nil)

		if _, err := ParseDataURL(pad.DataURL()); err != nil {
			t.Fatalf("empty surface must serialize to valid png: %v", err)
		}
	})
}
