package shell

import (
	"encoding/json"
	"errors"
	"strconv"

	"github.com/rs/zerolog/log"
	lua "github.com/yuin/gopher-lua"
	luajson "layeh.com/gopher-json"

	"github.com/domino14/othello/board"
)

func getShell(L *lua.LState) *ShellController {
	shell := L.GetGlobal("othello_shell")
	ud, ok := shell.(*lua.LUserData)
	if !ok {
		panic("luserdata not right type")
	}
	sc, ok := ud.Value.(*ShellController)
	if !ok {
		panic("shellcontroller not right type")
	}
	return sc
}

// luaCommand wraps a shell handler. Lua arguments become the command's
// positional arguments; the handler's message (or "ERROR: ...") is
// returned to the script.
func luaCommand(name string, handler func(*ShellController, *shellcmd) (*Response, error)) lua.LGFunction {
	return func(L *lua.LState) int {
		sc := getShell(L)
		cmd := &shellcmd{cmd: name, options: CmdOptions{}}
		for i := 1; i <= L.GetTop(); i++ {
			cmd.args = append(cmd.args, L.ToString(i))
		}
		r, err := handler(sc, cmd)
		if err != nil {
			log.Err(err).Msg("error-executing-" + name)
			L.Push(lua.LString("ERROR: " + err.Error()))
			return 1
		}
		L.Push(lua.LString(r.message))
		// return number of results pushed to stack.
		return 1
	}
}

// Gen takes an optional depth, which gen expects as an option.
func Gen(L *lua.LState) int {
	sc := getShell(L)
	cmd := &shellcmd{cmd: "gen", options: CmdOptions{}}
	if L.GetTop() > 0 {
		cmd.options["depth"] = []string{strconv.Itoa(L.ToInt(1))}
	}
	r, err := sc.generate(cmd)
	if err != nil {
		log.Err(err).Msg("error-executing-gen")
		L.Push(lua.LString("ERROR: " + err.Error()))
		return 1
	}
	L.Push(lua.LString(r.message))
	return 1
}

type gameState struct {
	Board   string   `json:"board"`
	OnTurn  string   `json:"onturn"`
	Dark    int      `json:"dark"`
	Light   int      `json:"light"`
	Outcome string   `json:"outcome"`
	Legal   []string `json:"legal"`
}

// State returns the current game as a Lua table.
func State(L *lua.LState) int {
	sc := getShell(L)
	if sc.game == nil {
		L.Push(lua.LNil)
		return 1
	}
	b := sc.game.Board()
	st := gameState{
		Board:   b.String(),
		OnTurn:  sc.game.PlayerOnTurn().String(),
		Dark:    b.CountOf(board.Dark),
		Light:   b.CountOf(board.Light),
		Outcome: sc.game.Outcome().String(),
		Legal:   []string{},
	}
	for _, m := range sc.game.LegalMoves() {
		st.Legal = append(st.Legal, m.BoardGameCoords())
	}
	bts, err := json.Marshal(st)
	if err != nil {
		L.RaiseError("marshalling state: %v", err)
		return 0
	}
	lv, err := luajson.Decode(L, bts)
	if err != nil {
		L.RaiseError("decoding state: %v", err)
		return 0
	}
	L.Push(lv)
	return 1
}

func (sc *ShellController) script(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) == 0 {
		return nil, errors.New("need arguments for script")
	}

	filepath := cmd.args[0]

	L := lua.NewState()
	defer L.Close()
	luajson.Preload(L)

	lsc := L.NewUserData()
	lsc.Value = sc

	L.SetGlobal("othello_shell", lsc)
	L.SetGlobal("othello_new", L.NewFunction(luaCommand("new", (*ShellController).newGame)))
	L.SetGlobal("othello_play", L.NewFunction(luaCommand("play", (*ShellController).play)))
	L.SetGlobal("othello_aiplay", L.NewFunction(luaCommand("aiplay", (*ShellController).aiplay)))
	L.SetGlobal("othello_set", L.NewFunction(luaCommand("set", (*ShellController).set)))
	L.SetGlobal("othello_score", L.NewFunction(luaCommand("score", (*ShellController).score)))
	L.SetGlobal("othello_outcome", L.NewFunction(luaCommand("outcome", (*ShellController).outcome)))
	L.SetGlobal("othello_undo", L.NewFunction(luaCommand("undo", (*ShellController).undo)))
	L.SetGlobal("othello_gen", L.NewFunction(Gen))
	L.SetGlobal("othello_state", L.NewFunction(State))

	if err := L.DoFile(filepath); err != nil {
		log.Err(err).Msg("error-running-script")
		return nil, err
	}
	return msg(""), nil
}
