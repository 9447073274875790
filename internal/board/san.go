package board

import "strings"

// Notation returns the short algebraic form of a move (e.g., "Nf3", "Bxe5",
// "dxe5"). Check markers are not produced since legality is not known here.
func Notation(m Move) string {
	p := m.MovedPiece()
	from := p.Position()
	to := m.Destination()

	var sb strings.Builder

	if p.Type() != PawnType {
		sb.WriteByte("PNBRQK"[p.Type()])
		sb.WriteString(disambiguation(m))
	}

	if IsCapture(m) {
		if p.Type() == PawnType {
			// Pawn captures include the file of origin
			sb.WriteByte('a' + byte(from.Column()))
		}
		sb.WriteByte('x')
	}

	sb.WriteString(to.String())
	return sb.String()
}

// disambiguation returns the origin hint needed when another piece of the
// same type and alliance can reach the same destination.
func disambiguation(m Move) string {
	p := m.MovedPiece()
	from := p.Position()
	b := m.Board()
	if b == nil {
		return ""
	}

	var candidates []Coordinate
	for _, other := range b.ActivePieces(p.Alliance()) {
		if other.Type() != p.Type() || other.Position() == from {
			continue
		}
		for _, om := range other.LegalMoves(b) {
			if om.Destination() == m.Destination() {
				candidates = append(candidates, other.Position())
				break
			}
		}
	}

	// No ambiguity
	if len(candidates) == 0 {
		return ""
	}

	sameColumn := false
	sameRow := false
	for _, c := range candidates {
		if c.Column() == from.Column() {
			sameColumn = true
		}
		if c.Row() == from.Row() {
			sameRow = true
		}
	}

	if !sameColumn {
		return string(rune('a' + from.Column()))
	}
	if !sameRow {
		return string(rune('0' + from.Rank()))
	}
	return from.String()
}
