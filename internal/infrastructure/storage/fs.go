package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"svw.info/elevator/internal/domain"
)

// FS keeps one JSON file per solution, bucketed by outcome.
type FS struct{ dir string }

func NewFS(dir string) *FS { return &FS{dir: dir} }

func bucket(solved bool) string {
	if solved {
		return "solved"
	}
	return "unsolved"
}

// cleanID rejects IDs that would resolve outside the store.
func cleanID(id string) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" || id == "." || id == ".." || strings.ContainsAny(id, `/\`) {
		return "", fmt.Errorf("%w: invalid solution id %q", domain.ErrMalformed, id)
	}
	return id, nil
}

func (s *FS) pathFor(id string, solved bool) string {
	return filepath.Join(s.dir, bucket(solved), id+".json")
}

func (s *FS) Save(ctx context.Context, sol *domain.Solution) error {
	if sol == nil || sol.ID == "" {
		return errors.New("invalid solution: missing ID")
	}
	id, err := cleanID(sol.ID)
	if err != nil {
		return err
	}
	// Ensure directory ./data/{solved|unsolved} exists
	target := s.pathFor(id, sol.Solved)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	f, err := os.Create(target)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(sol)
}

func (s *FS) Load(ctx context.Context, id string) (*domain.Solution, error) {
	id, err := cleanID(id)
	if err != nil {
		return nil, err
	}
	candidates := []string{
		s.pathFor(id, true),
		s.pathFor(id, false),
		filepath.Join(s.dir, id+".json"), // flat layout
	}
	var data []byte
	for _, c := range candidates {
		b, err := os.ReadFile(c)
		if err == nil {
			data = b
			break
		}
		if !os.IsNotExist(err) {
			return nil, err
		}
	}
	if data == nil {
		return nil, os.ErrNotExist
	}
	var out domain.Solution
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *FS) List(ctx context.Context) ([]domain.SolutionMeta, error) {
	var out []domain.SolutionMeta
	for _, dir := range []string{
		filepath.Join(s.dir, bucket(true)),
		filepath.Join(s.dir, bucket(false)),
		s.dir,
	} {
		metas, err := s.scan(dir)
		if err != nil {
			return nil, err
		}
		out = append(out, metas...)
	}
	return out, nil
}

func (s *FS) scan(dir string) ([]domain.SolutionMeta, error) {
	ents, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var out []domain.SolutionMeta
	for _, e := range ents {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			continue
		}
		var sol domain.Solution
		if err := json.Unmarshal(data, &sol); err != nil || sol.ID == "" {
			continue
		}
		out = append(out, meta(&sol))
	}
	return out, nil
}

func meta(s *domain.Solution) domain.SolutionMeta {
	return domain.SolutionMeta{
		ID:        s.ID,
		Name:      s.Name,
		Part:      s.Part,
		Solved:    s.Solved,
		Cost:      s.Cost,
		CreatedAt: s.CreatedAt,
	}
}
