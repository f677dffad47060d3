// Package storage persists puzzles and saved games in a single bbolt
// file, JSON-encoded values keyed by id.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"

	"svw.info/sudoku-master/internal/domain"
)

var (
	bucketPuzzles = []byte("puzzles")
	bucketGames   = []byte("games")

	bucketNames = [][]byte{bucketPuzzles, bucketGames}
)

// ErrNotFound is returned when no record exists under the given id.
var ErrNotFound = errors.New("storage: not found")

type Bolt struct {
	db *bolt.DB
}

// Open creates or opens the database file and ensures the buckets
// exist. The open timeout guards against a stale flock from a crashed
// process.
func Open(path string) (*Bolt, error) {
	db, err := bolt.Open(path, 0o666, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		for _, name := range bucketNames {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Bolt{db: db}, nil
}

func (s *Bolt) Close() error { return s.db.Close() }

func (s *Bolt) SavePuzzle(ctx context.Context, p *domain.Puzzle) error {
	if p == nil || p.ID == "" {
		return errors.New("storage: puzzle missing id")
	}
	return s.put(bucketPuzzles, p.ID, p)
}

func (s *Bolt) LoadPuzzle(ctx context.Context, id string) (*domain.Puzzle, error) {
	var out domain.Puzzle
	if err := s.get(bucketPuzzles, id, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Bolt) ListPuzzles(ctx context.Context) ([]domain.PuzzleMeta, error) {
	var out []domain.PuzzleMeta
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketPuzzles).ForEach(func(k, v []byte) error {
			var p domain.Puzzle
			if err := json.Unmarshal(v, &p); err != nil {
				return nil // skip unreadable records
			}
			out = append(out, domain.PuzzleMeta{
				ID:         p.ID,
				Name:       p.Name,
				Difficulty: p.Difficulty,
				Clues:      p.Clues,
				CreatedAt:  p.CreatedAt,
			})
			return nil
		})
	})
	return out, err
}

func (s *Bolt) SaveGame(ctx context.Context, g *domain.SavedGame) error {
	if g == nil || g.ID == "" {
		return errors.New("storage: saved game missing id")
	}
	return s.put(bucketGames, g.ID, g)
}

func (s *Bolt) LoadGame(ctx context.Context, id string) (*domain.SavedGame, error) {
	var out domain.SavedGame
	if err := s.get(bucketGames, id, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Bolt) put(bucket []byte, id string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucket).Put([]byte(id), data)
	})
}

func (s *Bolt) get(bucket []byte, id string, v any) error {
	return s.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket(bucket).Get([]byte(id))
		if data == nil {
			return ErrNotFound
		}
		return json.Unmarshal(data, v)
	})
}
