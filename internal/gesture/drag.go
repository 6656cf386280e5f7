// Package gesture tracks pointer drags over a one dimensional control.
package gesture

// Mapper converts a pointer coordinate into the value being dragged.
type Mapper func(x int) float64

// Apply receives every value produced while a drag is in progress.
type Apply func(v float64) error

// Drag is an in-progress pointer drag. The zero value is idle.
type Drag struct {
	mapper Mapper
	apply  Apply
	name   string
}

// Begin starts a drag named name. Any drag already in progress is dropped
// without a final update.
func (d *Drag) Begin(name string, mapper Mapper, apply Apply) {
	d.name = name
	d.mapper = mapper
	d.apply = apply
}

// Active reports whether a drag is in progress.
func (d *Drag) Active() bool {
	return d.apply != nil
}

// Name returns the name given to Begin, or an empty string when idle.
func (d *Drag) Name() string {
	return d.name
}

// Move applies the value under x. It does nothing when idle.
func (d *Drag) Move(x int) error {
	if !d.Active() {
		return nil
	}

	return d.apply(d.mapper(x))
}

// End applies the value under x and finishes the drag.
func (d *Drag) End(x int) error {
	if !d.Active() {
		return nil
	}

	err := d.Move(x)

	d.Cancel()

	return err
}

// Cancel finishes the drag without applying anything.
func (d *Drag) Cancel() {
	d.name = ""
	d.mapper = nil
	d.apply = nil
}
