// Package signature captura o gesto de assinatura da cliente em uma
// superfície raster e o serializa como data URL PNG para a ficha de
// consentimento.
package signature

import (
	"image"
	"image/color"
	"image/draw"
	"math"
)

// ===============================
// Configuração fixa do traço
// ===============================

const (
	// Tamanho intrínseco da superfície, em pixels.
	SurfaceWidth  = 400
	SurfaceHeight = 150

	// Traço dourado de 2px com pontas arredondadas; não é negociável em runtime.
	StrokeWidth = 2.0
)

var StrokeColor = color.RGBA{R: 0xBF, G: 0x95, B: 0x3F, A: 0xFF}

type Point struct {
	X float64
	Y float64
}

// Rect é o retângulo de apresentação da superfície (tamanho CSS),
// usado para normalizar coordenadas de mouse e toque.
type Rect struct {
	MinX   float64
	MinY   float64
	Width  float64
	Height float64
}

// Normalize converte coordenadas absolutas do ponteiro para pixels
// intrínsecos da superfície, compensando o descasamento entre o tamanho
// de apresentação e o tamanho real do raster (densidade de pixels).
func Normalize(clientX, clientY float64, bounds Rect) Point {
	sx := 1.0
	sy := 1.0
	if bounds.Width > 0 {
		sx = SurfaceWidth / bounds.Width
	}
	if bounds.Height > 0 {
		sy = SurfaceHeight / bounds.Height
	}
	return Point{
		X: (clientX - bounds.MinX) * sx,
		Y: (clientY - bounds.MinY) * sy,
	}
}

// ===============================
// Pad
// ===============================

type state int

const (
	stateIdle state = iota
	stateDrawing
)

// Pad é a máquina de estados Idle/Drawing da captura. Eventos fora do
// estado esperado são ignorados: nunca há pânico nem traço implícito.
type Pad struct {
	img    *image.RGBA
	state  state
	last   Point
	onSave func(dataURL string)
}

// NewPad cria a superfície limpa. onSave recebe a assinatura serializada
// a cada fim de gesto, e a string vazia após Clear.
func NewPad(onSave func(dataURL string)) *Pad {
	p := &Pad{onSave: onSave}
	p.reset()
	return p
}

func (p *Pad) reset() {
	p.img = image.NewRGBA(image.Rect(0, 0, SurfaceWidth, SurfaceHeight))
	p.state = stateIdle
}

// Begin inicia um traço no ponto dado (pointer-down dentro da superfície).
func (p *Pad) Begin(pt Point) {
	p.state = stateDrawing
	p.last = pt
	p.stamp(pt)
}

// Move estende o traço até o ponto dado, renderizando imediatamente.
// Devolve true enquanto há gesto ativo: é o sinal para a camada de
// apresentação suprimir o scroll padrão SOMENTE durante o desenho.
// Fora do estado Drawing é um no-op.
func (p *Pad) Move(pt Point) bool {
	if p.state != stateDrawing {
		return false
	}
	p.segment(p.last, pt)
	p.last = pt
	return true
}

// End encerra o gesto (pointer-up, leave ou touch-end) e entrega a
// superfície serializada ao callback. Traço parcial é preservado.
func (p *Pad) End() {
	if p.state != stateDrawing {
		return
	}
	p.state = stateIdle
	if p.onSave != nil {
		p.onSave(p.DataURL())
	}
}

// Clear limpa tudo, de qualquer estado, e sinaliza "sem assinatura".
func (p *Pad) Clear() {
	p.reset()
	if p.onSave != nil {
		p.onSave("")
	}
}

// DataURL serializa o raster atual como data:image/png;base64.
func (p *Pad) DataURL() string {
	return EncodeDataURL(p.img)
}

// Empty informa se nada foi desenhado desde o último Clear/criação.
func (p *Pad) Empty() bool {
	for _, px := range p.img.Pix {
		if px != 0 {
			return false
		}
	}
	return true
}

// ===============================
// Rasterização
// ===============================

// segment pinta discos ao longo da reta entre a e b; o passo subpixel dá
// pontas e junções arredondadas sem biblioteca de desenho.
func (p *Pad) segment(a, b Point) {
	dx := b.X - a.X
	dy := b.Y - a.Y
	dist := math.Hypot(dx, dy)
	if dist == 0 {
		p.stamp(a)
		return
	}

	steps := int(dist*2) + 1
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		p.stamp(Point{X: a.X + dx*t, Y: a.Y + dy*t})
	}
}

func (p *Pad) stamp(pt Point) {
	r := StrokeWidth / 2
	minX := int(math.Floor(pt.X - r))
	maxX := int(math.Ceil(pt.X + r))
	minY := int(math.Floor(pt.Y - r))
	maxY := int(math.Ceil(pt.Y + r))

	src := image.NewUniform(StrokeColor)
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			if !(image.Point{X: x, Y: y}).In(p.img.Bounds()) {
				continue
			}
			cx := float64(x) + 0.5 - pt.X
			cy := float64(y) + 0.5 - pt.Y
			if math.Hypot(cx, cy) <= r {
				draw.Draw(p.img, image.Rect(x, y, x+1, y+1), src, image.Point{}, draw.Over)
			}
		}
	}
}
