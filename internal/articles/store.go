// Package articles serves the source texts fresh questions are generated
// from: a directory of plain .txt files managed by the user.
package articles

import (
	"errors"
	"math/rand"
	"os"
	"path/filepath"
	"strings"

	"github.com/example/lingodrill/internal/logger"
)

// ErrNoArticles is returned when the directory holds no usable article.
var ErrNoArticles = errors.New("no articles available")

type Store struct {
	dir string
}

func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// List returns the article file names in the directory.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".txt") {
			continue
		}
		names = append(names, e.Name())
	}
	return names, nil
}

// Pick chooses a random article, preferring ones absent from used. When every
// article has been used already it falls back to any of them rather than
// refusing.
func (s *Store) Pick(rng *rand.Rand, used map[string]bool) (name, content string, err error) {
	log := logger.Default().WithPrefix("articles")

	names, err := s.List()
	if err != nil {
		return "", "", err
	}
	if len(names) == 0 {
		return "", "", ErrNoArticles
	}

	fresh := names[:0:0]
	for _, n := range names {
		if !used[n] {
			fresh = append(fresh, n)
		}
	}
	pool := fresh
	if len(pool) == 0 {
		log.Debug("all %d articles used, recycling", len(names))
		pool = names
	}

	name = pool[rng.Intn(len(pool))]
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		log.Warn("failed to read article %s: %v", name, err)
		return "", "", err
	}
	log.Debug("picked article: %s (%d bytes)", name, len(data))
	return name, string(data), nil
}
