package scenes

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/heartbloom/pkg/components"
	"github.com/decker502/heartbloom/pkg/game"
)

// pathBuilder 把逻辑坐标经过 GeoM 变换后写入 vector.Path
type pathBuilder struct {
	path *vector.Path
	geo  *ebiten.GeoM
}

func newPathBuilder(geo *ebiten.GeoM) *pathBuilder {
	return &pathBuilder{path: &vector.Path{}, geo: geo}
}

func (b *pathBuilder) pt(x, y float64) (float32, float32) {
	tx, ty := b.geo.Apply(x, y)
	return float32(tx), float32(ty)
}

func (b *pathBuilder) moveTo(x, y float64) {
	px, py := b.pt(x, y)
	b.path.MoveTo(px, py)
}

func (b *pathBuilder) lineTo(x, y float64) {
	px, py := b.pt(x, y)
	b.path.LineTo(px, py)
}

func (b *pathBuilder) quadTo(cx, cy, x, y float64) {
	c1, c2 := b.pt(cx, cy)
	px, py := b.pt(x, y)
	b.path.QuadTo(c1, c2, px, py)
}

func (b *pathBuilder) cubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	a1, a2 := b.pt(c1x, c1y)
	b1, b2 := b.pt(c2x, c2y)
	px, py := b.pt(x, y)
	b.path.CubicTo(a1, a2, b1, b2, px, py)
}

func drawOptions(clr color.RGBA, alpha float64) *vector.DrawPathOptions {
	op := &vector.DrawPathOptions{AntiAlias: true}
	op.ColorScale.ScaleWithColor(clr)
	if alpha < 1 {
		op.ColorScale.ScaleAlpha(float32(alpha))
	}
	return op
}

func (s *BloomScene) drawGround(screen *ebiten.Image, vp game.ViewportState) {
	b := newPathBuilder(&s.geo)
	b.moveTo(0, vp.GroundY)
	b.lineTo(vp.LogicalWidth, vp.GroundY)
	vector.StrokePath(screen, b.path, &vector.StrokeOptions{Width: float32(vp.DeviceScale)}, drawOptions(s.palette.ground, 1))
}

// drawHeart 两段三次贝塞尔组成的爱心，(x, y) 为中心
func (s *BloomScene) drawHeart(screen *ebiten.Image, x, y, size float64) {
	top := y - size/2
	b := newPathBuilder(&s.geo)
	b.moveTo(x, top)
	b.cubicTo(x-size, top-size, x-2*size, top+size/2, x, top+2*size)
	b.cubicTo(x+2*size, top+size/2, x+size, top-size, x, top)
	b.path.Close()
	vector.FillPath(screen, b.path, &vector.FillOptions{}, drawOptions(s.palette.heart, 1))
}

func (s *BloomScene) drawTree(screen *ebiten.Image, vp game.ViewportState) {
	op := drawOptions(s.palette.trunk, 1)
	for _, seg := range s.sim.TreeSegments() {
		b := newPathBuilder(&s.geo)
		b.moveTo(seg.X0, seg.Y0)
		b.quadTo(seg.CX, seg.CY, seg.X1, seg.Y1)
		vector.StrokePath(screen, b.path, &vector.StrokeOptions{
			Width:   float32(seg.Width * vp.DeviceScale),
			LineCap: vector.LineCapRound,
		}, op)
	}
}

// petalBatcher 把连续的、颜色相同且完全不透明的花瓣合并为一条路径
// 只合并相邻的花瓣，绘制顺序保持不变
type petalBatcher struct {
	screen *ebiten.Image
	geo    *ebiten.GeoM

	builder *pathBuilder
	color   color.RGBA
	alpha   float64
}

func (pb *petalBatcher) add(p *components.PetalComponent, pos *components.PositionComponent) {
	if p.Alpha <= 0 {
		return
	}
	if pb.builder != nil && (p.Alpha < 1 || pb.alpha < 1 || p.Color != pb.color) {
		pb.flush()
	}
	if pb.builder == nil {
		pb.builder = newPathBuilder(pb.geo)
		pb.color = p.Color
		pb.alpha = p.Alpha
	}

	angle := 0.0
	if p.Detached {
		angle = p.Angle
	}
	appendPetalShape(pb.builder, pos.X, pos.Y, p.Size, angle)
}

func (pb *petalBatcher) flush() {
	if pb.builder == nil {
		return
	}
	vector.FillPath(pb.screen, pb.builder.path, &vector.FillOptions{}, drawOptions(pb.color, pb.alpha))
	pb.builder = nil
}

// appendPetalShape 在 (x, y) 处追加一片叶形花瓣，绕中心旋转 angle
func appendPetalShape(b *pathBuilder, x, y, size, angle float64) {
	sin, cos := math.Sincos(angle)
	local := func(lx, ly float64) (float64, float64) {
		return x + lx*cos - ly*sin, y + lx*sin + ly*cos
	}

	s := size
	x0, y0 := local(0, -s/2)
	b.moveTo(x0, y0)

	c1x, c1y := local(-s, -s*1.5)
	c2x, c2y := local(-s*2, 0)
	ex, ey := local(0, s*1.5)
	b.cubicTo(c1x, c1y, c2x, c2y, ex, ey)

	c1x, c1y = local(s*2, 0)
	c2x, c2y = local(s, -s*1.5)
	b.cubicTo(c1x, c1y, c2x, c2y, x0, y0)
	b.path.Close()
}

// drawPetals 依次绘制飘散层、后层、前层
func (s *BloomScene) drawPetals(screen *ebiten.Image) {
	pb := &petalBatcher{screen: screen, geo: &s.geo}
	for _, layer := range []components.PetalLayer{
		components.PetalLayerFlying,
		components.PetalLayerBack,
		components.PetalLayerFront,
	} {
		s.sim.EachPetal(layer, pb.add)
		pb.flush()
	}
}
