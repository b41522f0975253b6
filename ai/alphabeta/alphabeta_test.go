package alphabeta

import (
	"errors"
	"testing"

	"github.com/matryer/is"
	"lukechampine.com/frand"

	"github.com/domino14/othello/board"
	"github.com/domino14/othello/equity"
	"github.com/domino14/othello/game"
	"github.com/domino14/othello/move"
	"github.com/domino14/othello/movegen"
)

// randomPosition plays up to plies random moves from the start, passing
// when forced. It returns the position and the side to move.
func randomPosition(plies int) (board.Board, board.Color) {
	b := board.InitialBoard()
	side := board.Dark
	for i := 0; i < plies && !game.IsTerminal(&b); i++ {
		moves := movegen.LegalMoves(&b, side)
		if len(moves) == 0 {
			side = side.Opponent()
			continue
		}
		m := moves[frand.Intn(len(moves))]
		b = b.WithMove(m.Row, m.Col, side)
		side = side.Opponent()
	}
	return b, side
}

func mustBoard(t *testing.T, s string) board.Board {
	t.Helper()
	b, err := board.FromPlaintext(s)
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func TestDepthZeroIsEvaluation(t *testing.T) {
	is := is.New(t)
	s := NewSolver()
	for i := 0; i < 200; i++ {
		b, side := randomPosition(frand.Intn(50))
		if game.IsTerminal(&b) {
			continue
		}
		is.Equal(s.Search(&b, side, board.Light, 0, -Infinity, Infinity), equity.Evaluate(&b))
		is.Equal(s.Search(&b, side, board.Dark, 0, -Infinity, Infinity), -equity.Evaluate(&b))
	}
}

func TestAlphaBetaMatchesMinimax(t *testing.T) {
	is := is.New(t)
	pruned := NewSolver()
	full := NewSolver()
	full.SetPruningDisabled(true)

	for i := 0; i < 60; i++ {
		b, side := randomPosition(frand.Intn(56))
		for depth := 0; depth <= 3; depth++ {
			for _, maximizer := range []board.Color{board.Light, board.Dark} {
				pruned.ResetNodes()
				full.ResetNodes()
				v1 := pruned.Search(&b, side, maximizer, depth, -Infinity, Infinity)
				v2 := full.Search(&b, side, maximizer, depth, -Infinity, Infinity)
				is.Equal(v1, v2)
				is.True(pruned.Nodes() <= full.Nodes())
			}
		}
	}
}

func TestTerminalValues(t *testing.T) {
	is := is.New(t)
	s := NewSolver()
	lightWon := mustBoard(t, `
		OOOOOOOO
		OOOOOOOO
		OOOOOOOO
		........
		........
		........
		........
		.......X`)
	is.Equal(s.Search(&lightWon, board.Dark, board.Light, 3, -Infinity, Infinity), WinValue)
	is.Equal(s.Search(&lightWon, board.Dark, board.Dark, 0, -Infinity, Infinity), -WinValue)

	tied := mustBoard(t, `
		XXXXXXXX
		XXXXXXXX
		XXXXXXXX
		XXXXXXXX
		OOOOOOOO
		OOOOOOOO
		OOOOOOOO
		OOOOOOOO`)
	is.Equal(s.Search(&tied, board.Light, board.Light, 2, -Infinity, Infinity), 0)
}

func TestPassKeepsDepth(t *testing.T) {
	is := is.New(t)
	s := NewSolver()
	// Dark has no move; light's only move (f8) takes the last dark disc.
	b := mustBoard(t, `
		OOOOOOOO
		OOOOOOOO
		OOOOOOOO
		OOOOOOOO
		OOOOOOOO
		OOOOOOOO
		OOOOOOOO
		OOOOO.XO`)
	is.True(!game.IsTerminal(&b))
	is.Equal(len(movegen.LegalMoves(&b, board.Dark)), 0)
	is.Equal(s.Search(&b, board.Dark, board.Light, 0, -Infinity, Infinity), 61)
	// With one ply left, dark passes and light still gets to move.
	is.Equal(s.Search(&b, board.Dark, board.Light, 1, -Infinity, Infinity), WinValue)
}

func TestChooseMoveInitialBoard(t *testing.T) {
	is := is.New(t)
	s := NewSolver()
	b := board.InitialBoard()
	for depth := 0; depth <= 4; depth++ {
		// All four openings are symmetric; the first one wins the tie.
		m, _, err := s.ChooseMove(b, board.Light, depth)
		is.NoErr(err)
		is.Equal(m, move.New(2, 4))
		m, _, err = s.ChooseMove(b, board.Dark, depth)
		is.NoErr(err)
		is.Equal(m, move.New(2, 3))
	}
	_, v, err := s.ChooseMove(b, board.Light, 0)
	is.NoErr(err)
	is.Equal(v, 3)
	_, v, err = s.ChooseMove(b, board.Dark, 0)
	is.NoErr(err)
	is.Equal(v, 3)
}

func TestChooseMoveNoLegalMove(t *testing.T) {
	is := is.New(t)
	s := NewSolver()
	b := mustBoard(t, `
		OOOOOOOO
		OOOOOOOO
		OOOOOOOO
		OOOOOOOO
		OOOOOOOO
		OOOOOOOO
		OOOOOOOO
		OOOOO.XO`)
	_, _, err := s.ChooseMove(b, board.Dark, 3)
	is.True(errors.Is(err, ErrNoLegalMove))
	_, _, err = s.ChooseMove(board.InitialBoard(), board.Dark, -1)
	is.True(err != nil)
}

func TestChooseMoveTakesWin(t *testing.T) {
	is := is.New(t)
	s := NewSolver()
	b := mustBoard(t, `
		OOOOOOOO
		OOOOOOOO
		OOOOOOOO
		OOOOOOOO
		OOOOOOOO
		OOOOOOOO
		OOOOOOOO
		OOOOO.XO`)
	m, v, err := s.ChooseMove(b, board.Light, 2)
	is.NoErr(err)
	is.Equal(m, move.New(7, 5))
	is.Equal(v, WinValue)
}

func TestThreadsDoNotChangeResult(t *testing.T) {
	is := is.New(t)
	single := NewSolver()
	multi := NewSolver()
	multi.SetThreads(4)
	for i := 0; i < 20; i++ {
		b, side := randomPosition(frand.Intn(40))
		if len(movegen.LegalMoves(&b, side)) == 0 {
			continue
		}
		r1, err := single.RankMoves(b, side, 2)
		is.NoErr(err)
		r2, err := multi.RankMoves(b, side, 2)
		is.NoErr(err)
		is.Equal(r1, r2)
	}
}

func TestPrincipalVariation(t *testing.T) {
	is := is.New(t)
	s := NewSolver()
	for depth := 0; depth <= 3; depth++ {
		m, v, err := s.ChooseMove(board.InitialBoard(), board.Dark, depth)
		is.NoErr(err)
		line, err := s.PrincipalVariation(board.InitialBoard(), board.Dark, depth)
		is.NoErr(err)
		is.Equal(line.GetPVMove().Move, m)
		is.Equal(line.Score(), v)
		is.Equal(len(line.Moves), depth+1)
	}
}

func TestPrincipalVariationWithPass(t *testing.T) {
	is := is.New(t)
	s := NewSolver()
	b := mustBoard(t, `
		XO......
		........
		........
		........
		........
		........
		........
		XO......`)
	line, err := s.PrincipalVariation(b, board.Dark, 1)
	is.NoErr(err)
	is.Equal(line.Score(), WinValue)
	is.Equal(line.NLBString(), "PV; val 100; 1: dark c1; 2: light pass; 3: dark c8")
}
