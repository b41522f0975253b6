// Package automatic plays computer-vs-computer Othello games, logs every
// turn and adds up the results.
package automatic

import (
	"context"
	"fmt"

	"github.com/cespare/xxhash"
	"github.com/rs/zerolog/log"

	"github.com/domino14/othello/ai/player"
	"github.com/domino14/othello/board"
	"github.com/domino14/othello/game"
)

// GameResult is the final position count of one game, from the point of
// view of the two bots rather than the two colours.
type GameResult struct {
	GameID string
	// P1Side is the colour bot 1 played.
	P1Side board.Color
	P1     int
	P2     int
	Turns  int
}

func (r GameResult) Margin() int {
	return r.P1 - r.P2
}

// GameRunner is the master struct here for the automatic game logic.
type GameRunner struct {
	game      *game.Game
	logchan   chan string
	aiplayers [2]player.AIPlayer
	random    player.RandomPlayer
	// number of random moves played before the bots take over
	openingPlies int
}

// NewGameRunner just instantiates and initializes a game runner.
func NewGameRunner(logchan chan string, p1, p2 player.AIPlayer) *GameRunner {
	return &GameRunner{logchan: logchan, aiplayers: [2]player.AIPlayer{p1, p2}}
}

func (r *GameRunner) SetOpeningPlies(n int) {
	r.openingPlies = n
}

// p1Side picks bot 1's colour from the game id, so colours are balanced
// over many games and reproducible from the log.
func p1Side(gameID string) board.Color {
	if xxhash.Sum64String(gameID)%2 == 0 {
		return board.Dark
	}
	return board.Light
}

// openingPrefix marks log rows for moves the random opening chose rather
// than the assigned bot.
const openingPrefix = "opening:"

func (r *GameRunner) botIndex(side, p1 board.Color) int {
	if side == p1 {
		return 0
	}
	return 1
}

// PlayGame plays one game to the end. It stops early, returning the
// context's error, if ctx is cancelled.
func (r *GameRunner) PlayGame(ctx context.Context) (GameResult, error) {
	g, err := game.NewGame([]game.PlayerInfo{
		{Nickname: "dark", RealName: "dark"},
		{Nickname: "light", RealName: "light"},
	}, board.Dark)
	if err != nil {
		return GameResult{}, err
	}
	r.game = g
	p1 := p1Side(g.Uid())
	logged := 0

	for g.Playing() {
		if err := ctx.Err(); err != nil {
			return GameResult{}, err
		}
		side := g.PlayerOnTurn()
		var bot player.AIPlayer = r.aiplayers[r.botIndex(side, p1)]
		mover := bot.Name()
		if g.Turn() < r.openingPlies {
			bot = &r.random
			mover = openingPrefix + bot.Name()
		}
		m, err := bot.ChooseMove(g.Board(), side)
		if err != nil {
			return GameResult{}, fmt.Errorf("%s failed on turn %d: %w", bot.Name(), g.Turn(), err)
		}
		if err := g.PlayMove(m); err != nil {
			return GameResult{}, fmt.Errorf("%s chose %s: %w", bot.Name(), m.BoardGameCoords(), err)
		}
		logged = r.logTurns(p1, logged, mover)
	}

	b := g.Board()
	res := GameResult{
		GameID: g.Uid(),
		P1Side: p1,
		P1:     b.CountOf(p1),
		P2:     b.CountOf(p1.Opponent()),
		Turns:  g.Turn(),
	}
	log.Debug().Str("gameID", res.GameID).Stringer("p1-side", p1).
		Int("p1", res.P1).Int("p2", res.P2).Msg("autoplay-game-finished")
	return res, nil
}

// logTurns sends CSV rows for the history entries after the first from.
// The entry at from is the move mover just chose; any entries after it are
// forced passes and go to the bot assigned to that side.
func (r *GameRunner) logTurns(p1 board.Color, from int, mover string) int {
	hist := r.game.History()
	if r.logchan == nil {
		return len(hist)
	}
	for i := from; i < len(hist); i++ {
		t := hist[i]
		mv := "pass"
		if !t.Pass {
			mv = t.Move.BoardGameCoords()
		}
		name := r.aiplayers[r.botIndex(t.Side, p1)].Name()
		if i == from {
			name = mover
		}
		r.logchan <- fmt.Sprintf("%s,%d,%s,%s,%s,%d,%d,%d\n",
			r.game.Uid(),
			i+1,
			t.Side,
			name,
			mv,
			len(t.Flips),
			t.Board.CountOf(board.Dark),
			t.Board.CountOf(board.Light))
	}
	return len(hist)
}
