package pinboard

// Box is a headless Element: a rectangle positioned relative to its visual
// parent, with an optional fill color. Box trees back the board in tests,
// layouts loaded from TOML, and the Ebitengine view.
type Box struct {
	Name  string
	Color Color

	container     bool
	x, y          float64
	width, height float64

	parent   *Box
	children []*Box
}

// NewBox creates a container box at offset (x, y) with the given size.
func NewBox(name string, x, y, width, height float64) *Box {
	return &Box{Name: name, Color: ColorWhite, container: true, x: x, y: y, width: width, height: height}
}

// NewLeafBox creates a leaf box at offset (x, y) with the given size.
func NewLeafBox(name string, x, y, width, height float64) *Box {
	b := NewBox(name, x, y, width, height)
	b.container = false
	return b
}

// AddBox appends child to b and returns child, for chained construction.
func (b *Box) AddBox(child *Box) *Box {
	b.Adopt(child)
	return child
}

// Offset returns the box position relative to its visual parent.
func (b *Box) Offset() (x, y float64) {
	return b.x, b.y
}

// Size returns the box dimensions.
func (b *Box) Size() (width, height float64) {
	return b.width, b.height
}

// Boxes returns the child list. The returned slice MUST NOT be mutated by the caller.
func (b *Box) Boxes() []*Box {
	return b.children
}

// ParentBox returns the visual parent box, or nil.
func (b *Box) ParentBox() *Box {
	return b.parent
}

// --- Element ---

func (b *Box) IsContainer() bool {
	return b.container
}

func (b *Box) Bounds() Rect {
	r := Rect{X: b.x, Y: b.y, Width: b.width, Height: b.height}
	for p := b.parent; p != nil; p = p.parent {
		r.X += p.x
		r.Y += p.y
	}
	return r
}

func (b *Box) Elements() []Element {
	out := make([]Element, len(b.children))
	for i, c := range b.children {
		out[i] = c
	}
	return out
}

func (b *Box) Parent() Element {
	if b.parent == nil {
		return nil
	}
	return b.parent
}

// Adopt appends child to b. Panics if child is not a *Box or if adopting it
// would create a cycle.
func (b *Box) Adopt(child Element) {
	c, ok := child.(*Box)
	if !ok || c == nil {
		panic("pinboard: Box can only adopt a *Box")
	}
	for p := b; p != nil; p = p.parent {
		if p == c {
			panic("pinboard: adopting box would create a cycle")
		}
	}
	c.Detach()
	c.parent = b
	b.children = append(b.children, c)
}

func (b *Box) Detach() {
	if b.parent == nil {
		return
	}
	p := b.parent
	for i, c := range p.children {
		if c == b {
			copy(p.children[i:], p.children[i+1:])
			p.children[len(p.children)-1] = nil
			p.children = p.children[:len(p.children)-1]
			break
		}
	}
	b.parent = nil
}

func (b *Box) SetOffset(x, y float64) {
	b.x = x
	b.y = y
}

func (b *Box) CloneElement() Element {
	return b.clone()
}

func (b *Box) clone() *Box {
	c := &Box{
		Name:      b.Name,
		Color:     b.Color,
		container: b.container,
		x:         b.x,
		y:         b.y,
		width:     b.width,
		height:    b.height,
	}
	if len(b.children) > 0 {
		c.children = make([]*Box, len(b.children))
		for i, child := range b.children {
			cc := child.clone()
			cc.parent = c
			c.children[i] = cc
		}
	}
	return c
}
