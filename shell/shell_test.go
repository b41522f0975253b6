package shell

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/othello/board"
	"github.com/domino14/othello/config"
	"github.com/domino14/othello/game"
)

func TestExtractFields(t *testing.T) {
	is := is.New(t)
	type testdata struct {
		line   string
		expCmd *shellcmd
		expErr error
	}
	cases := []testdata{
		{"", nil, errNoData},
		{"autoplay -logfile /path/to/log.txt",
			&shellcmd{"autoplay", nil, CmdOptions{"logfile": {"/path/to/log.txt"}}},
			nil},
		{"autoplay stop",
			&shellcmd{"autoplay", []string{"stop"}, CmdOptions{}},
			nil},
		{"autoplay -p1 hard -p2 'minimax:2' -games 10 ",
			&shellcmd{"autoplay", nil,
				CmdOptions{"p1": {"hard"}, "p2": {"minimax:2"}, "games": {"10"}}},
			nil,
		},
		{"set depth -1",
			&shellcmd{"set", []string{"depth", "-1"}, CmdOptions{}},
			nil},
		{"autoplay -games",
			nil, errWrongOptionSyntax},
	}
	for _, t := range cases {
		cmd, err := extractFields(t.line)
		is.Equal(cmd, t.expCmd)
		is.Equal(err, t.expErr)
	}
}

func testController() *ShellController {
	cfg := config.DefaultConfig()
	cfg.Set(config.ConfigDefaultDepth, 2)
	return newController(cfg, "", "test")
}

func run(t *testing.T, sc *ShellController, line string) (*Response, error) {
	t.Helper()
	return sc.standardModeSwitch(line, nil)
}

func TestGameCommands(t *testing.T) {
	is := is.New(t)
	sc := testController()

	_, err := run(t, sc, "show")
	is.Equal(err, errNoGame)

	_, err = run(t, sc, "new")
	is.NoErr(err)
	is.Equal(sc.game.PlayerOnTurn(), board.Dark)

	_, err = run(t, sc, "play d3")
	is.NoErr(err)
	r, err := run(t, sc, "score")
	is.NoErr(err)
	is.Equal(r.message, "dark 4 - light 1")

	_, err = run(t, sc, "play a1")
	is.True(err != nil)

	r, err = run(t, sc, "gen")
	is.NoErr(err)
	// three light replies, plus the two header lines
	is.Equal(len(strings.Split(r.message, "\n")), 5)

	_, err = run(t, sc, "aiplay 1")
	is.NoErr(err)
	is.Equal(sc.game.PlayerOnTurn(), board.Dark)
	is.Equal(sc.game.Turn(), 2)

	_, err = run(t, sc, "undo")
	is.NoErr(err)
	_, err = run(t, sc, "undo")
	is.NoErr(err)
	is.Equal(sc.game.Board(), board.InitialBoard())

	r, err = run(t, sc, "outcome")
	is.NoErr(err)
	is.Equal(r.message, game.Ongoing.String())

	r, err = run(t, sc, "eval")
	is.NoErr(err)
	is.True(strings.HasPrefix(r.message, "material 0"))
}

func TestPosition(t *testing.T) {
	is := is.New(t)
	sc := testController()
	rows := strings.Repeat("OOOOOOOO/", 7) + "OOOOO.XO"
	_, err := run(t, sc, "position "+rows+" dark")
	is.NoErr(err)
	// dark has nothing, so it passes straight away
	is.Equal(sc.game.PlayerOnTurn(), board.Light)
	_, err = run(t, sc, "aiplay")
	is.NoErr(err)
	is.Equal(sc.game.Outcome(), game.LightWins)
	_, err = run(t, sc, "aiplay")
	is.Equal(err, game.ErrGameOver)
}

func TestSet(t *testing.T) {
	is := is.New(t)
	sc := testController()
	is.Equal(sc.bot.Depth(), 2)
	_, err := run(t, sc, "set difficulty expert")
	is.NoErr(err)
	is.Equal(sc.bot.Depth(), 7)
	_, err = run(t, sc, "set depth 4")
	is.NoErr(err)
	is.Equal(sc.bot.Depth(), 4)
	_, err = run(t, sc, "set depth -1")
	is.True(err != nil)
	_, err = run(t, sc, "set colour blue")
	is.True(err != nil)
}

func TestHelp(t *testing.T) {
	is := is.New(t)
	sc := testController()
	r, err := run(t, sc, "help")
	is.NoErr(err)
	is.True(strings.Contains(r.message, "autoplay"))
	r, err = run(t, sc, "help set")
	is.NoErr(err)
	is.True(strings.Contains(r.message, "expert"))
	_, err = run(t, sc, "help nonsense")
	is.True(err != nil)
	_, err = run(t, sc, "frobnicate")
	is.True(err != nil)
}

func TestScript(t *testing.T) {
	is := is.New(t)
	sc := testController()
	script := filepath.Join(t.TempDir(), "test.lua")
	err := os.WriteFile(script, []byte(`
local json = require("json")
othello_new("dark")
othello_play("d3")
local st = othello_state()
if st.dark ~= 4 or st.light ~= 1 then
	error("unexpected counts " .. json.encode(st))
end
if st.onturn ~= "light" or #st.legal ~= 3 then
	error("unexpected state " .. json.encode(st))
end
othello_aiplay(1)
`), 0o644)
	is.NoErr(err)
	_, err = run(t, sc, "script "+script)
	is.NoErr(err)
	is.Equal(sc.game.Turn(), 2)

	bad := filepath.Join(t.TempDir(), "bad.lua")
	is.NoErr(os.WriteFile(bad, []byte(`error("boom")`), 0o644))
	_, err = run(t, sc, "script "+bad)
	is.True(err != nil)
}

func TestCompleter(t *testing.T) {
	is := is.New(t)
	sc := testController()
	c := NewShellCompleter(sc)

	matches, n := c.Do([]rune("aut"), 3)
	is.Equal(n, 3)
	is.Equal(matches, [][]rune{[]rune("oplay")})

	line := "autoplay -p1 ha"
	matches, n = c.Do([]rune(line), len(line))
	is.Equal(n, 2)
	is.Equal(matches, [][]rune{[]rune("rd")})

	_, err := run(t, sc, "new")
	is.NoErr(err)
	line = "play "
	matches, _ = c.Do([]rune(line), len(line))
	is.Equal(len(matches), 4)
}

func TestAutoplayClearsWhenFinished(t *testing.T) {
	is := is.New(t)
	sc := testController()
	logfile := filepath.Join(t.TempDir(), "auto.csv")

	_, err := run(t, sc, "autoplay stop")
	is.True(err != nil)

	_, err = run(t, sc, "autoplay -p1 random -p2 random -games 2 -threads 1 -logfile "+logfile)
	is.NoErr(err)
	sc.autoplayMu.Lock()
	cur := sc.autoplayRun
	sc.autoplayMu.Unlock()
	is.True(cur != nil)
	<-cur.done

	sc.autoplayMu.Lock()
	is.Equal(sc.autoplayRun, nil)
	sc.autoplayMu.Unlock()
	_, err = run(t, sc, "autoplay stop")
	is.True(err != nil)
	is.True(strings.Contains(err.Error(), "no autoplay"))
}

func TestAutoplayStop(t *testing.T) {
	is := is.New(t)
	sc := testController()
	logfile := filepath.Join(t.TempDir(), "auto.csv")

	_, err := run(t, sc, "autoplay -p1 random -p2 random -games 100000 -threads 1 -logfile "+logfile)
	is.NoErr(err)
	sc.autoplayMu.Lock()
	cur := sc.autoplayRun
	sc.autoplayMu.Unlock()

	_, err = run(t, sc, "autoplay -games 1")
	is.True(err != nil)

	r, err := run(t, sc, "autoplay stop")
	is.NoErr(err)
	is.True(strings.Contains(r.message, "stopping"))
	<-cur.done
	_, err = run(t, sc, "autoplay stop")
	is.True(err != nil)
}
