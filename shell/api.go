package shell

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/domino14/othello/ai/alphabeta"
	"github.com/domino14/othello/ai/player"
	"github.com/domino14/othello/automatic"
	"github.com/domino14/othello/board"
	"github.com/domino14/othello/config"
	"github.com/domino14/othello/equity"
	"github.com/domino14/othello/game"
	"github.com/domino14/othello/move"
)

type Response struct {
	message string
}

type CmdOptions map[string][]string

func (c CmdOptions) String(key string) string {
	v := c[key]
	if len(v) > 0 {
		return v[0]
	}
	return ""
}

func (c CmdOptions) Int(key string) (int, error) {
	v := c[key]
	if len(v) == 0 {
		return 0, errors.New(key + " not found in options")
	}
	return strconv.Atoi(v[0])
}

func (c CmdOptions) IntDefault(key string, defaultI int) (int, error) {
	v := c[key]
	if len(v) == 0 {
		return defaultI, nil
	}
	return strconv.Atoi(v[0])
}

func (c CmdOptions) Bool(key string) bool {
	v := c[key]
	if len(v) == 0 {
		return false
	}
	return strings.ToLower(v[0]) == "true"
}

func msg(message string) *Response {
	return &Response{message: message}
}

func defaultPlayers() []game.PlayerInfo {
	return []game.PlayerInfo{
		{Nickname: "p1", RealName: "Player 1"},
		{Nickname: "p2", RealName: "Player 2"},
	}
}

func (sc *ShellController) newGame(cmd *shellcmd) (*Response, error) {
	first := board.Dark
	if len(cmd.args) > 0 {
		var err error
		first, err = board.ColorFromString(strings.ToLower(cmd.args[0]))
		if err != nil {
			return nil, err
		}
	}
	g, err := game.NewGame(defaultPlayers(), first)
	if err != nil {
		return nil, err
	}
	sc.game = g
	return msg(g.ToDisplayText()), nil
}

// position sets up a board typed as eight rows separated by slashes,
// followed by the side to move.
func (sc *ShellController) position(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) != 2 {
		return nil, errors.New("usage: position <row1/row2/.../row8> <dark|light>")
	}
	b, err := board.FromPlaintext(strings.ReplaceAll(cmd.args[0], "/", "\n"))
	if err != nil {
		return nil, err
	}
	side, err := board.ColorFromString(strings.ToLower(cmd.args[1]))
	if err != nil {
		return nil, err
	}
	if sc.game == nil {
		if sc.game, err = game.NewGame(defaultPlayers(), side); err != nil {
			return nil, err
		}
	}
	if err := sc.game.SetPosition(b, side); err != nil {
		return nil, err
	}
	return msg(sc.game.ToDisplayText()), nil
}

func (sc *ShellController) show(cmd *shellcmd) (*Response, error) {
	if sc.game == nil {
		return nil, errNoGame
	}
	return msg(sc.game.ToDisplayText()), nil
}

func moveTableHeader() string {
	return "     Move  Flips  Value"
}

func moveTableRow(idx int, r alphabeta.RankedMove, flips int) string {
	return fmt.Sprintf("%3d: %-6s%-7d%d", idx+1, r.Move.BoardGameCoords(), flips, r.Value)
}

// generate lists the legal moves for the side on turn, best first, with
// the value a search of -depth plies gives each.
func (sc *ShellController) generate(cmd *shellcmd) (*Response, error) {
	if sc.game == nil {
		return nil, errNoGame
	}
	if !sc.game.Playing() {
		return nil, game.ErrGameOver
	}
	depth, err := cmd.options.IntDefault("depth", sc.bot.Depth())
	if err != nil {
		return nil, err
	}
	b := sc.game.Board()
	side := sc.game.PlayerOnTurn()
	ranked, err := sc.bot.Solver().RankMoves(b, side, depth)
	if err != nil {
		return nil, err
	}
	// stable, so equal values keep generator order
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Value > ranked[j].Value
	})
	lines := []string{fmt.Sprintf("%v to move, depth %d", side, depth), moveTableHeader()}
	for i, r := range ranked {
		lines = append(lines, moveTableRow(i, r, len(b.Flips(r.Move.Row, r.Move.Col, side))))
	}
	return msg(strings.Join(lines, "\n")), nil
}

func (sc *ShellController) play(cmd *shellcmd) (*Response, error) {
	if sc.game == nil {
		return nil, errNoGame
	}
	if len(cmd.args) != 1 {
		return nil, errors.New("usage: play <coord>, e.g. play d3")
	}
	m, err := move.FromBoardGameCoords(cmd.args[0])
	if err != nil {
		return nil, err
	}
	if err := sc.game.PlayMove(m); err != nil {
		return nil, err
	}
	return msg(sc.game.ToDisplayText()), nil
}

func (sc *ShellController) aiplay(cmd *shellcmd) (*Response, error) {
	if sc.game == nil {
		return nil, errNoGame
	}
	if !sc.game.Playing() {
		return nil, game.ErrGameOver
	}
	depth := sc.bot.Depth()
	if len(cmd.args) > 0 {
		var err error
		if depth, err = strconv.Atoi(cmd.args[0]); err != nil {
			return nil, err
		}
	}
	solver := sc.bot.Solver()
	solver.ResetNodes()
	pv, err := solver.PrincipalVariation(sc.game.Board(), sc.game.PlayerOnTurn(), depth)
	if err != nil {
		return nil, err
	}
	m := pv.GetPVMove().Move
	if err := sc.game.PlayMove(m); err != nil {
		return nil, err
	}
	return msg(fmt.Sprintf("Played %s (%d nodes)\n%s\n%s",
		m.BoardGameCoords(), solver.Nodes(), pv.NLBString(), sc.game.ToDisplayText())), nil
}

func (sc *ShellController) undo(cmd *shellcmd) (*Response, error) {
	if sc.game == nil {
		return nil, errNoGame
	}
	if err := sc.game.UnplayLastMove(); err != nil {
		return nil, err
	}
	return msg(sc.game.ToDisplayText()), nil
}

func (sc *ShellController) score(cmd *shellcmd) (*Response, error) {
	if sc.game == nil {
		return nil, errNoGame
	}
	return msg(fmt.Sprintf("dark %d - light %d",
		sc.game.PointsFor(board.Dark), sc.game.PointsFor(board.Light))), nil
}

func (sc *ShellController) outcome(cmd *shellcmd) (*Response, error) {
	if sc.game == nil {
		return nil, errNoGame
	}
	return msg(sc.game.Outcome().String()), nil
}

func (sc *ShellController) eval(cmd *shellcmd) (*Response, error) {
	if sc.game == nil {
		return nil, errNoGame
	}
	b := sc.game.Board()
	v := equity.Evaluate(&b)
	side := sc.game.PlayerOnTurn()
	return msg(fmt.Sprintf("material %d (light - dark); %d for %v",
		v, equity.ForSide(v, side), side)), nil
}

// set changes an option for this session. With no arguments it shows
// them all.
func (sc *ShellController) set(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) == 0 {
		return msg(fmt.Sprintf("depth: %d\nthreads: %d",
			sc.bot.Depth(), sc.config.GetInt(config.ConfigThreads))), nil
	}
	if len(cmd.args) != 2 {
		return nil, errors.New("usage: set <depth|difficulty|threads> <value>")
	}
	opt, val := cmd.args[0], cmd.args[1]
	switch opt {
	case "depth":
		d, err := strconv.Atoi(val)
		if err != nil {
			return nil, err
		}
		if d < 0 {
			return nil, errors.New("depth must not be negative")
		}
		sc.bot.SetDepth(d)
	case "difficulty":
		d, err := player.ParseDifficulty(val)
		if err != nil {
			return nil, err
		}
		sc.bot.SetDepth(player.DepthForDifficulty(d))
		val = fmt.Sprintf("%v (depth %d)", d, sc.bot.Depth())
	case "threads":
		n, err := strconv.Atoi(val)
		if err != nil {
			return nil, err
		}
		sc.config.Set(config.ConfigThreads, n)
		sc.bot.Solver().SetThreads(n)
	default:
		return nil, fmt.Errorf("unknown option %q", opt)
	}
	return msg("set " + opt + " to " + val), nil
}

// configCmd shows the configuration, or with `config <key> <value>` sets
// a key and saves the file.
func (sc *ShellController) configCmd(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) == 0 {
		return msg(sc.config.ToDisplayText()), nil
	}
	if len(cmd.args) != 2 {
		return nil, errors.New("usage: config [<key> <value>]")
	}
	key, value := cmd.args[0], cmd.args[1]
	sc.config.Set(key, value)
	if err := sc.config.Write(); err != nil {
		return nil, fmt.Errorf("failed to save configuration: %w", err)
	}
	return msg(fmt.Sprintf("set %s to %s and saved", key, value)), nil
}

func (sc *ShellController) autoplay(cmd *shellcmd) (*Response, error) {
	if lo.Contains(cmd.args, "stop") {
		run := sc.takeAutoplay(nil)
		if run == nil {
			return nil, errors.New("no autoplay is running")
		}
		run.cancel()
		return msg("stopping autoplay"), nil
	}
	sc.autoplayMu.Lock()
	running := sc.autoplayRun != nil
	sc.autoplayMu.Unlock()
	if running {
		return nil, errors.New("autoplay is already running; use `autoplay stop` first")
	}
	games, err := cmd.options.IntDefault("games", 100)
	if err != nil {
		return nil, err
	}
	threads, err := cmd.options.IntDefault("threads", sc.config.GetInt(config.ConfigThreads))
	if err != nil {
		return nil, err
	}
	p1 := lo.CoalesceOrEmpty(cmd.options.String("p1"), strconv.Itoa(sc.bot.Depth()))
	p2 := lo.CoalesceOrEmpty(cmd.options.String("p2"), "random")
	logfile := lo.CoalesceOrEmpty(cmd.options.String("logfile"),
		sc.config.GetString(config.ConfigAutoplayLogfile))

	ctx, cancel := context.WithCancel(context.Background())
	summary, err := automatic.StartCompVComp(ctx, sc.config, p1, p2, games, threads, logfile)
	if err != nil {
		cancel()
		return nil, err
	}
	run := &autoplayRun{cancel: cancel, done: make(chan struct{})}
	sc.autoplayMu.Lock()
	sc.autoplayRun = run
	sc.autoplayMu.Unlock()
	go func() {
		defer close(run.done)
		s := <-summary
		if sc.takeAutoplay(run) != nil {
			cancel()
		}
		sc.showMessage(s.String())
		log.Info().Str("logfile", logfile).Msg("autoplay-done")
	}()
	return msg(fmt.Sprintf("playing %d games, logging to %s", games, logfile)), nil
}
