package automatic

// Data collection for automatic games.

import (
	"context"
	"errors"
	"expvar"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/domino14/othello/ai/player"
	"github.com/domino14/othello/config"
)

var (
	GamesPlayed *expvar.Int
	IsPlaying   *expvar.Int
)

func init() {
	GamesPlayed = expvar.NewInt("othelloGamesPlayed")
	IsPlaying = expvar.NewInt("othelloIsPlaying")
}

const logHeader = "gameID,turn,side,player,move,flips,dark,light\n"

type Job struct{}

var errNoPlayers = errors.New("both players must be set")

// StartCompVComp plays numGames games between the bots described by p1
// and p2 (see player.FromSpec) on threads goroutines, writing every turn
// to logfile. It returns at once; the summary arrives on the channel once
// all games are done or ctx is cancelled.
func StartCompVComp(ctx context.Context, cfg *config.Config, p1, p2 string,
	numGames, threads int, logfile string) (<-chan *Summary, error) {

	if IsPlaying.Value() > 0 {
		return nil, errors.New("games are already being played, please wait till complete")
	}
	if threads < 1 {
		threads = 1
	}
	// Build one pair up front so bad specs fail here rather than in a
	// worker.
	bot1, err := player.FromSpec(p1, 1)
	if err != nil {
		return nil, err
	}
	bot2, err := player.FromSpec(p2, 1)
	if err != nil {
		return nil, err
	}
	var out io.WriteCloser
	if logfile != "" {
		out, err = os.Create(logfile)
		if err != nil {
			return nil, err
		}
	}
	log.Debug().Int("games", numGames).Int("threads", threads).
		Str("p1", bot1.Name()).Str("p2", bot2.Name()).Msg("starting-autoplay")

	openingPlies := cfg.GetInt(config.ConfigOpeningPlies)
	GamesPlayed.Set(0)
	jobs := make(chan Job, 100)
	logChan := make(chan string, 100)
	results := make(chan GameResult, 100)
	summaryChan := make(chan *Summary, 1)
	var wg sync.WaitGroup
	wg.Add(threads)
	IsPlaying.Add(int64(threads))

	for i := 0; i < threads; i++ {
		go func(i int) {
			defer wg.Done()
			defer IsPlaying.Add(-1)
			r := NewGameRunner(logChan, bot1, bot2)
			if i > 0 {
				// Each worker gets its own bots; search state is not shared.
				b1, _ := player.FromSpec(p1, 1)
				b2, _ := player.FromSpec(p2, 1)
				r = NewGameRunner(logChan, b1, b2)
			}
			r.SetOpeningPlies(openingPlies)
			for range jobs {
				res, err := r.PlayGame(ctx)
				if err != nil {
					if !errors.Is(err, context.Canceled) {
						log.Err(err).Int("worker", i).Msg("autoplay-game-error")
					}
					continue
				}
				results <- res
				GamesPlayed.Add(1)
			}
		}(i)
	}

	go func() {
	gameLoop:
		for i := 1; i < numGames+1; i++ {
			select {
			case <-ctx.Done():
				log.Info().Msg("got-stop-signal")
				break gameLoop
			case jobs <- Job{}:
			}
			if i%1000 == 0 {
				log.Info().Int("queued", i).Msg("queued-jobs")
			}
		}
		close(jobs)
		wg.Wait()
		log.Info().Msg("all-games-finished")
		close(logChan)
		close(results)
	}()

	var logDone sync.WaitGroup
	logDone.Add(1)
	go func() {
		defer logDone.Done()
		if out == nil {
			for range logChan {
			}
			return
		}
		io.WriteString(out, logHeader)
		for msg := range logChan {
			io.WriteString(out, msg)
		}
		out.Close()
	}()

	go func() {
		s := NewSummary(bot1.Name(), bot2.Name())
		for res := range results {
			s.Add(res)
		}
		logDone.Wait()
		log.Info().Int("games", s.Games).Msg("autoplay-summary-ready")
		summaryChan <- s
		close(summaryChan)
	}()

	return summaryChan, nil
}

// PlayOne is a convenience for a single synchronous game between two bots.
func PlayOne(ctx context.Context, p1, p2 player.AIPlayer) (GameResult, error) {
	if p1 == nil || p2 == nil {
		return GameResult{}, errNoPlayers
	}
	return NewGameRunner(nil, p1, p2).PlayGame(ctx)
}

func (r GameResult) String() string {
	return fmt.Sprintf("%s: p1 (%v) %d - %d p2", r.GameID, r.P1Side, r.P1, r.P2)
}
