package score

import (
	"crypto/sha256"
	"database/sql"
	"encoding/base64"
	"encoding/binary"
	"math"
	"time"

	"github.com/tideray/beatfall/internal/game"
	_ "github.com/mattn/go-sqlite3"
)

type DefaultStore struct {
	Path string
	db   *sql.DB
}

func (s *DefaultStore) Init() error {
	if s.Path == "" {
		s.Path = "./beatfall.db"
	}
	db, err := sql.Open("sqlite3", s.Path)
	if nil != err {
		return err
	}

	initStatement := `
	create table if not exists results
	  (
		  id integer not null primary key,
		  sum text,
		  tempo real,
		  difficulty text,
		  seed integer,
		  score integer,
		  max_combo integer,
		  perfects integer,
		  goods integer,
		  misses integer,
		  played_at integer
	  );
	`
	if _, err := db.Exec(initStatement); nil != err {
		db.Close()
		return err
	}

	s.db = db
	return nil
}

func (s *DefaultStore) Deinit() {
	if nil != s.db {
		s.db.Close()
	}
}

// Sum identifies a chart by its content, so results only ever compare
// against runs over the same notes.
func Sum(c *game.Chart) string {
	h := sha256.New()
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], math.Float64bits(c.Tempo))
	h.Write(buf[:])
	h.Write([]byte(c.Difficulty.String()))
	for _, n := range c.Notes {
		binary.LittleEndian.PutUint64(buf[:], uint64(n.Lane))
		h.Write(buf[:])
		binary.LittleEndian.PutUint64(buf[:], uint64(n.Time))
		h.Write(buf[:])
	}
	return base64.StdEncoding.EncodeToString(h.Sum(nil))
}

func (s *DefaultStore) Save(r *Result) error {
	_, err := s.db.Exec(
		"insert into results(sum, tempo, difficulty, seed, score, max_combo, perfects, goods, misses, played_at) values(?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
		r.Sum, r.Tempo, r.Difficulty.String(), r.Seed, r.Score, r.MaxCombo, r.Perfects, r.Goods, r.Misses, r.PlayedAt.Unix(),
	)
	return err
}

func (s *DefaultStore) Best(sum string) (*Result, error) {
	row := s.db.QueryRow(
		"select sum, tempo, difficulty, seed, score, max_combo, perfects, goods, misses, played_at from results where sum = ? order by score desc, max_combo desc limit 1",
		sum,
	)
	r, err := scanResult(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if nil != err {
		return nil, err
	}
	return r, nil
}

func (s *DefaultStore) History(sum string) ([]Result, error) {
	rows, err := s.db.Query(
		"select sum, tempo, difficulty, seed, score, max_combo, perfects, goods, misses, played_at from results where sum = ? order by played_at",
		sum,
	)
	if nil != err {
		return nil, err
	}
	defer rows.Close()

	results := []Result{}
	for rows.Next() {
		r, err := scanResult(rows.Scan)
		if nil != err {
			return nil, err
		}
		results = append(results, *r)
	}
	return results, rows.Err()
}

func scanResult(scan func(...interface{}) error) (*Result, error) {
	var r Result
	var difficulty string
	var playedAt int64
	if err := scan(&r.Sum, &r.Tempo, &difficulty, &r.Seed, &r.Score,
		&r.MaxCombo, &r.Perfects, &r.Goods, &r.Misses, &playedAt); nil != err {
		return nil, err
	}
	r.Difficulty, _ = game.ParseDifficulty(difficulty)
	r.PlayedAt = time.Unix(playedAt, 0)
	return &r, nil
}
