package main

import (
	"fmt"
	"image/color"
	"log"
	"math"
	"os"
	"time"

	"github.com/tideray/beatfall/internal/audio"
	"github.com/tideray/beatfall/internal/config"
	"github.com/tideray/beatfall/internal/game"
	"github.com/tideray/beatfall/internal/generator"
	"github.com/tideray/beatfall/internal/input"
	"github.com/tideray/beatfall/internal/render"
	"github.com/tideray/beatfall/internal/score"
	"github.com/tideray/beatfall/internal/theme"
	"golang.org/x/term"
)

func main() {
	if err := run(); nil != err {
		log.Fatalln(err)
	}
}

func isRowInField(rc int, row int) bool {
	return row < rc && row > 0
}

// rowFor maps a field position onto a console row, with the visible
// ceiling landing on the last row.
func rowFor(position float64, rc int, ceiling float64) int {
	return 1 + int(math.Round(position*float64(rc-2)/ceiling))
}

type cell struct {
	row, col int
}

func saveRun(store score.Store, s *game.Session) error {
	c := s.Chart()
	return store.Save(&score.Result{
		Sum:        score.Sum(c),
		Tempo:      c.Tempo,
		Difficulty: c.Difficulty,
		Seed:       c.Seed,
		Score:      s.Score(),
		MaxCombo:   s.MaxCombo(),
		Perfects:   s.JudgementCount(0),
		Goods:      s.JudgementCount(1),
		Misses:     s.Misses(),
		PlayedAt:   time.Now(),
	})
}

func run() error {
	// Ensure our Default implementations are used as interfaces
	var r render.Renderer = &render.DefaultRenderer{}
	var th theme.Theme = &theme.DefaultTheme{}
	var store score.Store = &score.DefaultStore{Path: *config.Database}

	gen := generator.New(config.Seed)
	source := func() *game.Chart {
		return gen.Generate(*config.Tempo, config.Difficulty, *config.Beats, config.Engine.Lanes)
	}
	session := game.NewSession(config.Engine, source)

	if err := store.Init(); nil != err {
		return fmt.Errorf("unable to open result store: %w", err)
	}
	defer store.Deinit()

	if *config.ShowHistory {
		results, err := store.History(score.Sum(session.Chart()))
		if nil != err {
			return fmt.Errorf("unable to read history: %w", err)
		}
		for _, res := range results {
			fmt.Printf("%v  %6v  combo %3v  %3vx Perfect  %3vx Good  %3vx Miss\n",
				res.PlayedAt.Format("2006-01-02 15:04"), res.Score, res.MaxCombo,
				res.Perfects, res.Goods, res.Misses)
		}
		return nil
	}

	columns, rows, err := term.GetSize(int(os.Stdout.Fd()))
	if nil != err {
		return fmt.Errorf("unable to get terminal size: %w", err)
	}
	rc, cc := rows, columns

	keys, err := input.Listen(config.Keys())
	if nil != err {
		return err
	}
	defer func() {
		if err := keys.Close(); nil != err {
			log.Println("unable to close keyboard:", err)
		}
	}()

	best, err := store.Best(score.Sum(session.Chart()))
	if nil != err {
		return fmt.Errorf("unable to read best result: %w", err)
	}

	player := audio.Muted()
	if !*config.Quiet {
		player, err = audio.Open(*config.Music)
		if nil != err {
			return err
		}
	}
	defer player.Close()

	lanes := config.Engine.Lanes
	mc := cc >> 1
	cen := rc >> 1
	cis := make([]int, lanes)
	for i := range cis {
		cis[i] = mc + (2*i-lanes+1)*int(*config.ColumnSpacing)
	}
	sideCol := cis[0] - 36
	if sideCol < 2 {
		sideCol = 2
	}
	barRow := rowFor(config.Engine.HitLine, rc, config.Engine.VisibleMax)

	travel := config.Engine.TravelTime()
	interval := generator.Interval(*config.Tempo)

	// Clear the screen and hide the cursor
	if err := r.Init(); nil != err {
		return err
	}
	defer func() {
		// Restore the terminal state
		r.Deinit()
	}()

	time.Sleep(*config.Delay)

	quit := false
	saved := false
	var saveErr error
	lastBeat := -1
	lastJudgement := ""
	lastCells := map[int]cell{}

	r.RenderLoop(*config.FramePeriod, func(delta time.Duration) bool {
		for _, ev := range keys.Drain() {
			switch ev.Kind {
			case input.Quit:
				quit = true
				return false
			case input.PauseToggle:
				session.SetPaused(session.State() != game.Paused)
				player.SetPaused(session.State() == game.Paused)
			case input.Restart:
				session.Restart()
				player.Rewind()
				best = score.BestFor(store, session.Chart())
				saved = false
				lastBeat = -1
				lastJudgement = ""
				lastCells = map[int]cell{}
				r.Fill(1, 1, "\033[J")
			case input.LanePress:
				res := session.Press(ev.Lane)
				if nil != res.Note {
					player.Hit(res.Index)
					lastJudgement = th.RenderJudgement(res.Index, fmt.Sprintf("%-8v", res.Judgement.Name))
				}
			}
		}

		wasOver := session.State() == game.Over
		missesBefore := session.Misses()
		session.Advance(delta)

		if session.Misses() > missesBefore {
			player.Miss()
			lastJudgement = th.RenderJudgement(-1, fmt.Sprintf("%-8v", "Miss"))
			r.AddDecoration(cen-1, mc-1, "\033[1;31m╭\033[0m", 15)
			r.AddDecoration(cen-1, mc+1, "\033[1;31m╮\033[0m", 15)
			r.AddDecoration(cen, mc-1, "\033[1;31m╰\033[0m", 15)
			r.AddDecoration(cen, mc+1, "\033[1;31m╯\033[0m", 15)
		}

		if !wasOver && session.State() == game.Over {
			player.Over()
			if !saved {
				saved = true
				if err := saveRun(store, session); nil != err {
					saveErr = fmt.Errorf("unable to save result: %w", err)
				}
			}
		}

		// The track starts when the first note reaches the hit line
		if session.State() == game.Running {
			player.Start(session.Clock(), travel)
		}

		// Tick on the beat a note would be hit on
		if !player.HasTrack() && session.State() == game.Running && session.Clock() >= travel {
			b := int((session.Clock() - travel) / interval)
			if b != lastBeat {
				lastBeat = b
				player.Tick(b%4 == 0)
			}
		}

		// Clear the cells notes left behind, then draw the hit bar under them
		views := session.VisibleNotes()
		seen := make(map[int]cell, len(views))
		for _, v := range views {
			seen[v.Note.ID] = cell{rowFor(v.Position, rc, config.Engine.VisibleMax), cis[v.Note.Lane]}
		}
		for id, c := range lastCells {
			if seen[id] == c {
				continue
			}
			if isRowInField(rc, c.row) {
				r.Fill(c.row, c.col, " ")
			}
			delete(lastCells, id)
		}
		for i := 0; i < lanes; i++ {
			r.Fill(barRow, cis[i], th.RenderHitField(i))
		}
		for _, v := range views {
			c := seen[v.Note.ID]
			if isRowInField(rc, c.row) {
				r.Fill(c.row, c.col, th.RenderNote(v.Note.Lane))
			}
			lastCells[v.Note.ID] = c
		}

		chart := session.Chart()
		r.Fill(1, 2, fmt.Sprintf("beatfall  %v bpm  %v  seed %v  %.0fs",
			chart.Tempo, chart.Difficulty, chart.Seed, (chart.Duration()+travel).Seconds()))
		if session.State() == game.Over {
			r.FillColor(2, sideCol, color.RGBA{R: 236, G: 30, B: 0, A: 255}, fmt.Sprintf("      State:  %-9v", session.State()))
		} else {
			r.Fill(2, sideCol, fmt.Sprintf("      State:  %-9v", session.State()))
		}
		r.Fill(4, sideCol, fmt.Sprintf("      Score:  %6v", session.Score()))
		r.Fill(5, sideCol, fmt.Sprintf("      Combo:  %6v", session.Combo()))
		r.Fill(6, sideCol, fmt.Sprintf("  Max Combo:  %6v", session.MaxCombo()))
		r.Fill(7, sideCol, fmt.Sprintf("     Misses:  %6v", session.Misses()))
		st := session.Stats()
		r.Fill(9, sideCol, fmt.Sprintf("       Mean:  %6.2f", st.Mean))
		r.Fill(10, sideCol, fmt.Sprintf("      Stdev:  %6.2f", st.Stdev))
		r.Fill(11, sideCol, fmt.Sprintf("      Total:  %6v", len(chart.Notes)))
		if nil != best {
			r.Fill(12, sideCol, fmt.Sprintf("       Best:  %6v", best.Score))
		}
		if lastJudgement != "" {
			r.Fill(14, sideCol, fmt.Sprintf("       Last:  %v", lastJudgement))
		}
		for i, j := range config.Engine.Judgements {
			r.Fill(16+i, sideCol, fmt.Sprintf("%v:  %6v", th.RenderJudgement(i, fmt.Sprintf("%10v", j.Name)), session.JudgementCount(i)))
		}

		if session.Finished() {
			if !saved {
				saved = true
				if err := saveRun(store, session); nil != err {
					saveErr = fmt.Errorf("unable to save result: %w", err)
				}
			}
			return false
		}
		return true
	})

	if !quit {
		keys.Wait()
	}
	return saveErr
}
