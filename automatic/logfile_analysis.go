package automatic

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/domino14/othello/board"
)

// AnalyzeLogFile rebuilds the summary from an autoplay CSV log. Bot 1 is
// the bot that played dark in the first game. Rows from the random opening
// are not used to tell the bots apart. When both bots have the same name,
// the colours are worked out from the game id the way the autoplayer
// assigned them.
func AnalyzeLogFile(filepath string) (*Summary, error) {
	file, err := os.Open(filepath)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return analyzeLog(file)
}

type gameTally struct {
	id     string
	bySide map[board.Color]string
	dark   int
	light  int
}

func analyzeLog(rd io.Reader) (*Summary, error) {
	r := csv.NewReader(rd)
	// Record looks like:
	// gameID,turn,side,player,move,flips,dark,light
	games := map[string]*gameTally{}
	var order []string
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if record[0] == "gameID" {
			continue
		}
		side, err := board.ColorFromString(record[2])
		if err != nil {
			return nil, err
		}
		dark, err := strconv.Atoi(record[6])
		if err != nil {
			return nil, err
		}
		light, err := strconv.Atoi(record[7])
		if err != nil {
			return nil, err
		}
		g, ok := games[record[0]]
		if !ok {
			g = &gameTally{id: record[0], bySide: map[board.Color]string{}}
			games[record[0]] = g
			order = append(order, record[0])
		}
		if !strings.HasPrefix(record[3], openingPrefix) {
			g.bySide[side] = record[3]
		}
		g.dark, g.light = dark, light
	}
	if len(order) == 0 {
		return nil, fmt.Errorf("no games in log")
	}

	first := games[order[0]]
	p1 := first.bySide[board.Dark]
	p2 := first.bySide[board.Light]
	s := NewSummary(p1, p2)
	for _, id := range order {
		g := games[id]
		var side board.Color
		switch {
		case p1 == p2:
			side = p1Side(id)
		case g.bySide[board.Light] == p1 || g.bySide[board.Dark] == p2:
			side = board.Light
		default:
			side = board.Dark
		}
		res := GameResult{GameID: id, P1Side: side, P1: g.dark, P2: g.light}
		if side == board.Light {
			res.P1, res.P2 = g.light, g.dark
		}
		s.Add(res)
	}
	return s, nil
}
