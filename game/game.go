// Package game decides when an Othello game is over and who won, checks
// moves at the boundary with the interaction layer, and keeps the turn
// bookkeeping (whose move, forced passes, history) for a single game.
//
// The board-level functions here are pure; only Game carries state.
package game

import (
	"errors"
	"fmt"

	"github.com/lithammer/shortuuid/v4"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/domino14/othello/board"
	"github.com/domino14/othello/move"
	"github.com/domino14/othello/movegen"
)

// Turn is one entry in a game's history: either a placement or a forced
// pass. Board is the position after the turn.
type Turn struct {
	Side  board.Color
	Move  move.Move
	Pass  bool
	Flips [][2]int
	Board board.Board
}

func (t Turn) ShortDescription() string {
	if t.Pass {
		return "(pass)"
	}
	return fmt.Sprintf("%s x%d", t.Move.BoardGameCoords(), len(t.Flips))
}

// Game is the business logic of a single game. It doesn't care who is
// playing; bots and humans drive it from outside.
type Game struct {
	uid     string
	players [2]PlayerInfo
	first   board.Color

	start   board.Board
	board   board.Board
	onturn  board.Color
	history []Turn
}

// NewGame starts a game from the initial position with first to move.
// An Empty first means Dark, the standard opening side.
func NewGame(players []PlayerInfo, first board.Color) (*Game, error) {
	if len(players) != 2 {
		return nil, errors.New("need exactly two players")
	}
	if first == board.Empty {
		first = board.Dark
	}
	g := &Game{
		uid:    shortuuid.New(),
		first:  first,
		start:  board.InitialBoard(),
		board:  board.InitialBoard(),
		onturn: first,
	}
	copy(g.players[:], players)
	log.Debug().Str("uid", g.uid).Stringer("first", first).Msg("new-game")
	return g, nil
}

// SetPosition discards the history and continues from b with onturn to
// move, e.g. for analysing a position typed in by hand. A side with no
// legal move passes straight away.
func (g *Game) SetPosition(b board.Board, onturn board.Color) error {
	if onturn != board.Dark && onturn != board.Light {
		return fmt.Errorf("%v cannot be on turn", onturn)
	}
	g.start = b
	g.board = b
	g.onturn = onturn
	g.history = nil
	g.passIfStuck()
	return nil
}

// PlayMove validates and plays m for the side on turn. If the other side
// then has no legal move while the game is still going, a pass is
// recorded for it and the turn comes straight back.
func (g *Game) PlayMove(m move.Move) error {
	if !g.Playing() {
		return ErrGameOver
	}
	flips := g.board.Flips(m.Row, m.Col, g.onturn)
	nb, err := ApplyMove(g.board, m, g.onturn)
	if err != nil {
		return err
	}
	g.board = nb
	g.history = append(g.history, Turn{
		Side: g.onturn, Move: m, Flips: flips, Board: nb,
	})
	g.onturn = g.onturn.Opponent()
	g.passIfStuck()
	return nil
}

func (g *Game) passIfStuck() {
	if IsTerminal(&g.board) || movegen.HasLegalMove(&g.board, g.onturn) {
		return
	}
	log.Debug().Stringer("side", g.onturn).Msg("forced-pass")
	g.history = append(g.history, Turn{Side: g.onturn, Pass: true, Board: g.board})
	g.onturn = g.onturn.Opponent()
}

// UnplayLastMove takes back the most recent placement along with any
// forced passes that followed it.
func (g *Game) UnplayLastMove() error {
	_, idx, found := lo.FindLastIndexOf(g.history, func(t Turn) bool { return !t.Pass })
	if !found {
		return errors.New("no moves to take back")
	}
	side := g.history[idx].Side
	g.history = g.history[:idx]
	if idx == 0 {
		g.board = g.start
	} else {
		g.board = g.history[idx-1].Board
	}
	g.onturn = side
	return nil
}

// Copy returns an independent copy of the game, sharing no history.
func (g *Game) Copy() *Game {
	cp := *g
	cp.history = make([]Turn, len(g.history))
	copy(cp.history, g.history)
	return &cp
}

func (g *Game) Board() board.Board {
	return g.board
}

func (g *Game) PlayerOnTurn() board.Color {
	return g.onturn
}

func (g *Game) Playing() bool {
	return !IsTerminal(&g.board)
}

func (g *Game) Outcome() Outcome {
	return EvaluateOutcome(&g.board)
}

func (g *Game) LegalMoves() []move.Move {
	return movegen.LegalMoves(&g.board, g.onturn)
}

func (g *Game) PlayerFor(side board.Color) PlayerInfo {
	return g.players[playerIndex(side)]
}

func (g *Game) NickOnTurn() string {
	return g.PlayerFor(g.onturn).Nickname
}

// PointsFor is side's disc count.
func (g *Game) PointsFor(side board.Color) int {
	return g.board.CountOf(side)
}

// Turn is the number of history entries, passes included.
func (g *Game) Turn() int {
	return len(g.history)
}

func (g *Game) History() []Turn {
	return g.history
}

func (g *Game) LastTurn() (Turn, bool) {
	if len(g.history) == 0 {
		return Turn{}, false
	}
	return g.history[len(g.history)-1], true
}

func (g *Game) Uid() string {
	return g.uid
}

func (g *Game) FirstPlayer() board.Color {
	return g.first
}
