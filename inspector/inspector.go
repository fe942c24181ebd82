package inspector

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/platformer/components"
)

// Panel dimensions
const (
	PanelWidth   = 280
	PanelPadding = 10
	HeaderHeight = 30
)

// Panel colors
var (
	ColorPanelBg     = rl.Color{R: 30, G: 30, B: 35, A: 240}
	ColorPanelHeader = rl.Color{R: 45, G: 45, B: 55, A: 255}
	ColorPanelBorder = rl.Color{R: 70, G: 70, B: 80, A: 255}
	ColorHeaderText  = rl.Color{R: 255, G: 255, B: 255, A: 255}
	ColorSection     = rl.Color{R: 50, G: 50, B: 60, A: 255}
	ColorSectionText = rl.Color{R: 200, G: 200, B: 220, A: 255}
	ColorHighlight   = rl.Color{R: 255, G: 255, B: 0, A: 200}
)

// Section is one component's fields, ready to draw.
type Section struct {
	Title  string
	Fields []Field
}

// Inspector manages entity selection and panel rendering.
type Inspector struct {
	selected    ecs.Entity
	hasSelected bool
	panelX      int32
	panelY      int32

	posMap      *ecs.Map[components.Position]
	velMap      *ecs.Map[components.Velocity]
	colliderMap *ecs.Map[components.Collider]
	contactMap  *ecs.Map[components.Contact]
	spriteMap   *ecs.Map[components.Sprite]
}

// NewInspector creates an inspector over w, anchored to the right edge.
func NewInspector(w *ecs.World, screenWidth int32) *Inspector {
	return &Inspector{
		panelX:      screenWidth - PanelWidth - 10,
		panelY:      10,
		posMap:      ecs.NewMap[components.Position](w),
		velMap:      ecs.NewMap[components.Velocity](w),
		colliderMap: ecs.NewMap[components.Collider](w),
		contactMap:  ecs.NewMap[components.Contact](w),
		spriteMap:   ecs.NewMap[components.Sprite](w),
	}
}

// Resize re-anchors the panel after the window size changes.
func (ins *Inspector) Resize(screenWidth int32) {
	ins.panelX = screenWidth - PanelWidth - 10
}

// HandleClick selects e when the world point lies inside its collider, and
// deselects otherwise. Returns whether e is selected.
func (ins *Inspector) HandleClick(wx, wy float32, e ecs.Entity) bool {
	if ins.contains(e, wx, wy) {
		ins.Select(e)
		return true
	}
	ins.Deselect()
	return false
}

func (ins *Inspector) contains(e ecs.Entity, wx, wy float32) bool {
	if !ins.posMap.Has(e) || !ins.colliderMap.Has(e) {
		return false
	}
	pos := ins.posMap.Get(e)
	col := ins.colliderMap.Get(e)
	return wx >= pos.X-col.Width/2 && wx <= pos.X+col.Width/2 &&
		wy >= pos.Y-col.Height && wy <= pos.Y
}

// Select makes e the inspected entity.
func (ins *Inspector) Select(e ecs.Entity) {
	ins.selected = e
	ins.hasSelected = true
}

// Deselect clears the current selection.
func (ins *Inspector) Deselect() {
	ins.hasSelected = false
}

// Selected returns the currently selected entity.
func (ins *Inspector) Selected() (ecs.Entity, bool) {
	return ins.selected, ins.hasSelected
}

// Sections extracts the inspectable components of e in display order.
// Components e does not have are left out.
func (ins *Inspector) Sections(e ecs.Entity) []Section {
	var sections []Section
	add := func(title string, has bool, get func() any) {
		if !has {
			return
		}
		if fields := ExtractFields(get()); len(fields) > 0 {
			sections = append(sections, Section{Title: title, Fields: fields})
		}
	}
	add("POSITION", ins.posMap.Has(e), func() any { return ins.posMap.Get(e) })
	add("VELOCITY", ins.velMap.Has(e), func() any { return ins.velMap.Get(e) })
	add("COLLIDER", ins.colliderMap.Has(e), func() any { return ins.colliderMap.Get(e) })
	add("CONTACT", ins.contactMap.Has(e), func() any { return ins.contactMap.Get(e) })
	add("SPRITE", ins.spriteMap.Has(e), func() any { return ins.spriteMap.Get(e) })
	return sections
}

// Draw renders the panel for the selected entity, if any.
func (ins *Inspector) Draw() {
	if !ins.hasSelected {
		return
	}
	sections := ins.Sections(ins.selected)
	if len(sections) == 0 {
		ins.Deselect()
		return
	}

	height := int32(HeaderHeight + PanelPadding*2)
	for _, s := range sections {
		height += 22 + int32(len(s.Fields))*18
	}

	rl.DrawRectangle(ins.panelX, ins.panelY, PanelWidth, height, ColorPanelBg)
	rl.DrawRectangleLinesEx(
		rl.Rectangle{X: float32(ins.panelX), Y: float32(ins.panelY), Width: PanelWidth, Height: float32(height)},
		1,
		ColorPanelBorder,
	)
	rl.DrawRectangle(ins.panelX, ins.panelY, PanelWidth, HeaderHeight, ColorPanelHeader)
	rl.DrawText(fmt.Sprintf("INSPECTOR  #%d", ins.selected.ID()), ins.panelX+PanelPadding, ins.panelY+7, 16, ColorHeaderText)

	x := ins.panelX + PanelPadding
	y := ins.panelY + HeaderHeight + PanelPadding
	for _, s := range sections {
		ins.drawSectionHeader(x, y, s.Title)
		y += 22
		for _, f := range s.Fields {
			y += DrawField(x, y, f)
		}
	}
}

func (ins *Inspector) drawSectionHeader(x, y int32, title string) {
	rl.DrawRectangle(x-2, y-2, PanelWidth-2*PanelPadding+4, 18, ColorSection)
	rl.DrawText(title, x+2, y, 14, ColorSectionText)
}

// DrawSelectionHighlight outlines the selected entity's collider in screen
// space using toScreen.
func (ins *Inspector) DrawSelectionHighlight(toScreen func(wx, wy float32) (float32, float32), zoom float32) {
	if !ins.hasSelected || !ins.posMap.Has(ins.selected) || !ins.colliderMap.Has(ins.selected) {
		return
	}
	pos := ins.posMap.Get(ins.selected)
	col := ins.colliderMap.Get(ins.selected)
	sx, sy := toScreen(pos.X-col.Width/2, pos.Y-col.Height)
	rl.DrawRectangleLinesEx(
		rl.Rectangle{X: sx - 2, Y: sy - 2, Width: col.Width*zoom + 4, Height: col.Height*zoom + 4},
		2,
		ColorHighlight,
	)
}
