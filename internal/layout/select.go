package layout

// SelectDirection moves the active selection to the best frame lying
// strictly in the given direction. Candidates with positive overlap along
// the perpendicular axis score by along-axis center distance minus half
// the overlap, rewarding aligned neighbors; candidates without overlap
// score by the sum of both axis distances, penalizing diagonal jumps.
// The lowest score wins; on a tie the first frame in sequence order is
// kept since the comparison is strict. A no-op with a single frame or
// when no candidate lies in the direction.
func (e *Engine) SelectDirection(dir Direction) {
	if len(e.frames) <= 1 {
		return
	}

	active := e.frames[e.active]

	bestIdx := -1
	var bestScore float64

	for idx, frame := range e.frames {
		if idx == e.active {
			continue
		}

		inDirection := false
		switch dir {
		case DirUp:
			inDirection = frame.Bottom() <= active.Y
		case DirDown:
			inDirection = frame.Y >= active.Bottom()
		case DirLeft:
			inDirection = frame.Right() <= active.X
		case DirRight:
			inDirection = frame.X >= active.Right()
		}
		if !inDirection {
			continue
		}

		dx := float64(abs(frame.CenterX() - active.CenterX()))
		dy := float64(abs(frame.CenterY() - active.CenterY()))
		overlapX := float64(frame.overlapX(active))
		overlapY := float64(frame.overlapY(active))

		var score float64
		switch dir {
		case DirLeft, DirRight:
			if overlapY > 0 {
				score = dx - overlapY*0.5
			} else {
				score = dx + dy
			}
		case DirUp, DirDown:
			if overlapX > 0 {
				score = dy - overlapX*0.5
			} else {
				score = dy + dx
			}
		}

		if bestIdx == -1 || score < bestScore {
			bestScore = score
			bestIdx = idx
		}
	}

	if bestIdx >= 0 {
		e.active = bestIdx
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
