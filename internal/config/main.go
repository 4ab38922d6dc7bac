package config

import (
	"time"

	"github.com/tideray/beatfall/internal/game"
	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	Tempo         = kingpin.Flag("tempo", "Beats per minute").Default("120").Short('t').Float64()
	difficulty    = kingpin.Flag("difficulty", "easy, normal or hard").Default("normal").Short('d').String()
	Beats         = kingpin.Flag("beats", "Length of the chart in beats").Default("60").Short('b').Int()
	seed          = kingpin.Flag("seed", "Chart seed, 0 picks one").Default("0").Int64()
	keys          = kingpin.Flag("keys", "One key per lane").Default("dfjk").Short('k').String()
	speed         = kingpin.Flag("speed", "Scroll speed, higher is faster").Default("2").Float64()
	frameUnit     = kingpin.Flag("frame-unit", "Milliseconds per scroll step").Default("16").Float64()
	hitLine       = kingpin.Flag("hit-line", "Target position of the hit bar").Default("550").Float64()
	missLine      = kingpin.Flag("miss-line", "Position a note counts as missed").Default("650").Float64()
	perfectWindow = kingpin.Flag("perfect-window", "Perfect window around the hit bar").Default("30").Float64()
	hitWindow     = kingpin.Flag("hit-window", "Widest window around the hit bar").Default("100").Float64()
	failThreshold = kingpin.Flag("fail-threshold", "Misses in a row before game over").Default("10").Int()
	FramePeriod   = kingpin.Flag("frame-period", "Render frame period").Default("16ms").Short('p').Duration()
	Delay         = kingpin.Flag("delay", "Start delay").Default("1.5s").Duration()
	Music         = kingpin.Flag("music", "Path to an .mp3 or .ogg backing track").String()
	Quiet         = kingpin.Flag("quiet", "Disable all audio").Short('q').Bool()
	Database      = kingpin.Flag("db", "Path to the results database").Default("./beatfall.db").String()
	ShowHistory   = kingpin.Flag("history", "Print past results for this chart and exit").Bool()
	ColumnSpacing = kingpin.Flag("spacing", "Columns between lanes").Default("6").Short('S').Uint()
	Difficulty    game.Difficulty
	Seed          int64
	Engine        game.Config
)

func Keys() []rune {
	return []rune(*keys)
}

func init() {
	kingpin.Version("0.1.0")
	kingpin.Parse()

	d, err := game.ParseDifficulty(*difficulty)
	if nil != err {
		kingpin.Fatalf("%v", err)
	}
	Difficulty = d

	if len(Keys()) == 0 {
		kingpin.Fatalf("at least one lane key is required")
	}

	Seed = *seed
	if Seed == 0 {
		Seed = time.Now().UnixNano()
	}

	Engine = game.DefaultConfig()
	Engine.Lanes = len(Keys())
	Engine.Speed = *speed
	Engine.FrameUnit = *frameUnit
	Engine.HitLine = *hitLine
	Engine.MissLine = *missLine
	Engine.VisibleMax = *missLine + 50 // a little past the miss line so notes fall off screen
	Engine.FailThreshold = *failThreshold
	Engine.Judgements = []game.Judgement{
		{Window: *perfectWindow, Points: 300, Name: "Perfect"},
		{Window: *hitWindow, Points: 100, Name: "Good"},
	}
}
