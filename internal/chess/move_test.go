package chess

import (
	"testing"
)

func TestMovePredicates(t *testing.T) {
	tests := []struct {
		kind      MoveKind
		capture   bool
		promotion bool
		castle    bool
		promoteTo Chessman
	}{
		{QuietMove, false, false, false, 0},
		{DoublePawnPush, false, false, false, 0},
		{KingCastle, false, false, true, 0},
		{QueenCastle, false, false, true, 0},
		{Capture, true, false, false, 0},
		{EnPassantCapture, true, false, false, 0},
		{KnightPromotion, false, true, false, Knight},
		{BishopPromotion, false, true, false, Bishop},
		{RookPromotion, false, true, false, Rook},
		{QueenPromotion, false, true, false, Queen},
		{KnightPromotionCapture, true, true, false, Knight},
		{BishopPromotionCapture, true, true, false, Bishop},
		{RookPromotionCapture, true, true, false, Rook},
		{QueenPromotionCapture, true, true, false, Queen},
	}

	if len(tests) != 14 {
		t.Fatalf("truth table covers %d kinds; want 14", len(tests))
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			m := Move{Kind: tt.kind}

			if got := m.IsCapture(); got != tt.capture {
				t.Errorf("IsCapture() = %v; want %v", got, tt.capture)
			}
			if got := m.IsPromotion(); got != tt.promotion {
				t.Errorf("IsPromotion() = %v; want %v", got, tt.promotion)
			}
			if got := m.IsCastle(); got != tt.castle {
				t.Errorf("IsCastle() = %v; want %v", got, tt.castle)
			}

			promoteTo, ok := m.Promotion()
			if ok != tt.promotion {
				t.Errorf("Promotion() ok = %v; want %v", ok, tt.promotion)
			}
			if ok && promoteTo != tt.promoteTo {
				t.Errorf("Promotion() = %v; want %v", promoteTo, tt.promoteTo)
			}
		})
	}
}

func TestMoveKindString(t *testing.T) {
	if got := QuietMove.String(); got != "QuietMove" {
		t.Errorf("QuietMove.String() = %q; want %q", got, "QuietMove")
	}
	if got := QueenPromotionCapture.String(); got != "QueenPromotionCapture" {
		t.Errorf("QueenPromotionCapture.String() = %q; want %q", got, "QueenPromotionCapture")
	}
	if got := MoveKind(14).String(); got != "Unknown" {
		t.Errorf("MoveKind(14).String() = %q; want %q", got, "Unknown")
	}
}

func TestMoveString(t *testing.T) {
	origin, err := NewCoordinate(3, 4) // e4
	if err != nil {
		t.Fatal(err)
	}
	target, err := NewCoordinate(4, 3) // d5
	if err != nil {
		t.Fatal(err)
	}

	m := Move{
		Kind:    Capture,
		Origin:  origin,
		Target:  target,
		Piece:   NewPiece(White, Pawn),
		Capture: NewPiece(Black, Knight),
	}

	if got, want := m.String(), "Capture e4->d5"; got != want {
		t.Errorf("String() = %q; want %q", got, want)
	}
}

func TestMoveFields(t *testing.T) {
	origin, err := CoordinateFromIndex(12) // e2
	if err != nil {
		t.Fatal(err)
	}
	target, err := CoordinateFromIndex(28) // e4
	if err != nil {
		t.Fatal(err)
	}

	m := Move{
		Kind:   DoublePawnPush,
		Origin: origin,
		Target: target,
		Piece:  NewPiece(White, Pawn),
	}

	if m.Origin != origin || m.Target != target {
		t.Errorf("move squares = %v->%v; want %v->%v", m.Origin, m.Target, origin, target)
	}
	team, chessman, ok := m.Piece.Occupant()
	if !ok || team != White || chessman != Pawn {
		t.Errorf("moving piece = %v; want White Pawn", m.Piece)
	}
}
