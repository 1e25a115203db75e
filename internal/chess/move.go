package chess

// MoveKind classifies the kinds of moves a board implementation can
// report. There are exactly fourteen: the six basic kinds plus four
// promotion targets in plain and capturing form.
type MoveKind uint8

const (
	QuietMove MoveKind = iota
	DoublePawnPush
	KingCastle
	QueenCastle
	Capture
	EnPassantCapture
	KnightPromotion
	BishopPromotion
	RookPromotion
	QueenPromotion
	KnightPromotionCapture
	BishopPromotionCapture
	RookPromotionCapture
	QueenPromotionCapture
)

// String returns the string representation of a move kind.
func (k MoveKind) String() string {
	names := []string{
		"QuietMove",
		"DoublePawnPush",
		"KingCastle",
		"QueenCastle",
		"Capture",
		"EnPassantCapture",
		"KnightPromotion",
		"BishopPromotion",
		"RookPromotion",
		"QueenPromotion",
		"KnightPromotionCapture",
		"BishopPromotionCapture",
		"RookPromotionCapture",
		"QueenPromotionCapture",
	}
	if int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Move describes a single move: its classification, the origin and
// target tiles, the piece being moved, and the piece captured. The
// Capture field is only meaningful for capture-family kinds; for other
// kinds its content carries no meaning and consumers must not read it.
type Move struct {
	Kind MoveKind

	Origin Coordinate
	Target Coordinate

	Piece   Piece
	Capture Piece
}

// IsCapture reports whether the move removes an opposing piece.
func (m Move) IsCapture() bool {
	switch m.Kind {
	case Capture, EnPassantCapture,
		KnightPromotionCapture, BishopPromotionCapture,
		RookPromotionCapture, QueenPromotionCapture:
		return true
	default:
		return false
	}
}

// IsPromotion reports whether the move promotes a pawn.
func (m Move) IsPromotion() bool {
	_, ok := m.Promotion()
	return ok
}

// IsCastle reports whether the move is a castling move.
func (m Move) IsCastle() bool {
	switch m.Kind {
	case KingCastle, QueenCastle:
		return true
	default:
		return false
	}
}

// Promotion returns the chessman a pawn is promoted to. The boolean is
// false when the move is not a promotion.
func (m Move) Promotion() (Chessman, bool) {
	switch m.Kind {
	case KnightPromotion, KnightPromotionCapture:
		return Knight, true
	case BishopPromotion, BishopPromotionCapture:
		return Bishop, true
	case RookPromotion, RookPromotionCapture:
		return Rook, true
	case QueenPromotion, QueenPromotionCapture:
		return Queen, true
	default:
		return 0, false
	}
}

// String returns a compact representation such as "Capture e4->d5".
func (m Move) String() string {
	return m.Kind.String() + " " + m.Origin.String() + "->" + m.Target.String()
}
