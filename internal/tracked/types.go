package tracked

import "github.com/on-the-ground/vector_ive_go/element"

// Obj has a move constructor that cannot fail, so containers move it.
type Obj struct {
	V    int
	live bool
}

var (
	_ element.Initializer       = (*Obj)(nil)
	_ element.Destroyer         = (*Obj)(nil)
	_ element.Copier[Obj]       = (*Obj)(nil)
	_ element.CopyAssigner[Obj] = (*Obj)(nil)
	_ element.Mover[Obj]        = (*Obj)(nil)
	_ element.MoveAssigner[Obj] = (*Obj)(nil)
)

// New returns a live Obj.
func New(v int) Obj {
	st.live++
	return Obj{V: v, live: true}
}

func (o Obj) Value() int { return o.V }

func (o *Obj) Init() error {
	if err := hit(OpInit); err != nil {
		return err
	}
	*o = Obj{live: true}
	st.live++
	return nil
}

func (o *Obj) CopyFrom(src *Obj) error {
	if err := hit(OpCopy); err != nil {
		return err
	}
	*o = Obj{V: src.V, live: true}
	st.live++
	return nil
}

func (o *Obj) CopyAssign(src *Obj) error {
	if err := hit(OpCopyAssign); err != nil {
		return err
	}
	o.V = src.V
	return nil
}

func (o *Obj) MoveFrom(src *Obj) {
	st.counts[OpMove]++
	*o = Obj{V: src.V, live: true}
	src.V = 0
	st.live++
}

func (o *Obj) MoveAssign(src *Obj) error {
	if err := hit(OpMoveAssign); err != nil {
		return err
	}
	o.V, src.V = src.V, 0
	return nil
}

func (o *Obj) Destroy() { destroyed(&o.live) }

// FallibleObj is copyable but its move constructor may fail, so containers
// copy it when relocating.
type FallibleObj struct {
	V    int
	live bool
}

var (
	_ element.Initializer                = (*FallibleObj)(nil)
	_ element.Destroyer                  = (*FallibleObj)(nil)
	_ element.Copier[FallibleObj]        = (*FallibleObj)(nil)
	_ element.CopyAssigner[FallibleObj]  = (*FallibleObj)(nil)
	_ element.FallibleMover[FallibleObj] = (*FallibleObj)(nil)
	_ element.MoveAssigner[FallibleObj]  = (*FallibleObj)(nil)
)

// NewFallible returns a live FallibleObj.
func NewFallible(v int) FallibleObj {
	st.live++
	return FallibleObj{V: v, live: true}
}

func (o FallibleObj) Value() int { return o.V }

func (o *FallibleObj) Init() error {
	if err := hit(OpInit); err != nil {
		return err
	}
	*o = FallibleObj{live: true}
	st.live++
	return nil
}

func (o *FallibleObj) CopyFrom(src *FallibleObj) error {
	if err := hit(OpCopy); err != nil {
		return err
	}
	*o = FallibleObj{V: src.V, live: true}
	st.live++
	return nil
}

func (o *FallibleObj) CopyAssign(src *FallibleObj) error {
	if err := hit(OpCopyAssign); err != nil {
		return err
	}
	o.V = src.V
	return nil
}

func (o *FallibleObj) TryMoveFrom(src *FallibleObj) error {
	if err := hit(OpMove); err != nil {
		return err
	}
	*o = FallibleObj{V: src.V, live: true}
	src.V = 0
	st.live++
	return nil
}

func (o *FallibleObj) MoveAssign(src *FallibleObj) error {
	if err := hit(OpMoveAssign); err != nil {
		return err
	}
	o.V, src.V = src.V, 0
	return nil
}

func (o *FallibleObj) Destroy() { destroyed(&o.live) }

// UniqueObj cannot be copied and its move may fail; containers still move
// it because there is no alternative.
type UniqueObj struct {
	V    int
	live bool
}

var (
	_ element.NonCopyable              = (*UniqueObj)(nil)
	_ element.Destroyer                = (*UniqueObj)(nil)
	_ element.FallibleMover[UniqueObj] = (*UniqueObj)(nil)
	_ element.MoveAssigner[UniqueObj]  = (*UniqueObj)(nil)
)

// NewUnique returns a live UniqueObj.
func NewUnique(v int) UniqueObj {
	st.live++
	return UniqueObj{V: v, live: true}
}

func (o UniqueObj) Value() int { return o.V }

func (*UniqueObj) NonCopyable() {}

func (o *UniqueObj) TryMoveFrom(src *UniqueObj) error {
	if err := hit(OpMove); err != nil {
		return err
	}
	*o = UniqueObj{V: src.V, live: true}
	src.V = 0
	st.live++
	return nil
}

func (o *UniqueObj) MoveAssign(src *UniqueObj) error {
	if err := hit(OpMoveAssign); err != nil {
		return err
	}
	o.V, src.V = src.V, 0
	return nil
}

func (o *UniqueObj) Destroy() { destroyed(&o.live) }

// Plain has only Init and Destroy hooks, so containers copy, move and assign
// it with the defaults. Its copies are independent values, each destroyed
// on its own; Destroy on a zero or moved-from value records nothing.
type Plain struct {
	V    int
	live bool
}

var (
	_ element.Initializer = (*Plain)(nil)
	_ element.Destroyer   = (*Plain)(nil)
)

func NewPlain(v int) Plain {
	return Plain{V: v, live: true}
}

func (o Plain) Value() int { return o.V }

func (o *Plain) Init() error {
	if err := hit(OpInit); err != nil {
		return err
	}
	o.live = true
	return nil
}

func (o *Plain) Destroy() {
	_ = hit(OpDestroy)
	if o.live {
		st.dropped = append(st.dropped, o.V)
		o.live = false
	}
}
