package game

// lookBuffer carries mouse motion across frames that run no sim tick, so slow
// sim speeds do not drop look input.
type lookBuffer struct {
	dx, dy float64
}

// merge adds the pending motion to in and empties the buffer.
func (b *lookBuffer) merge(in Input) Input {
	in.LookDX += b.dx
	in.LookDY += b.dy
	b.dx, b.dy = 0, 0
	return in
}

// hold keeps in's motion for the next frame that ticks.
func (b *lookBuffer) hold(in Input) {
	b.dx, b.dy = in.LookDX, in.LookDY
}
