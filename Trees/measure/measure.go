// Package measure times membership queries against a LinkedBST built in
// different ways, with a plain list and a few other ordered and hashed
// containers as reference points.
package measure

import (
	"fmt"
	"io"
	"math/rand"
	"slices"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"gopkg.in/op/go-logging.v1"
)

var log = logging.MustGetLogger("measure")

// Config of a Run.
type Config struct {
	// Queries is the number of words looked up. Values <= 0, or larger than
	// the number of words, mean all of them.
	Queries int
	// Seed for picking the queries and for the shuffled backends.
	Seed int64
	// Backends to run, by name. Empty means all of Backends.
	Backends []string
}

// Result of one backend.
type Result struct {
	Name    string
	Elapsed time.Duration
	Found   int
	// Height is -1 unless the backend is a LinkedBST.
	Height   int
	Balanced bool
}

// Report of a Run.
type Report struct {
	Words, Queries int
	Results        []Result
}

type shaped interface {
	Height() uint
	IsBalanced() bool
}

// Run builds each selected backend from words and times looking up a random
// selection of them. Only the lookups are timed; building isn't.
func Run(cfg Config, words []string, clock Clock) (*Report, error) {
	bs, err := selectBackends(cfg.Backends)
	if err != nil {
		return nil, err
	}
	rg := rand.New(rand.NewSource(cfg.Seed))
	queries := slices.Clone(words)
	rg.Shuffle(len(queries), func(i, j int) {
		queries[i], queries[j] = queries[j], queries[i]
	})
	if cfg.Queries > 0 && cfg.Queries < len(queries) {
		queries = queries[:cfg.Queries]
	}
	r := &Report{Words: len(words), Queries: len(queries)}
	for _, b := range bs {
		s := b.Build(words, rg)
		res := Result{Name: b.Name, Height: -1}
		if t, ok := s.(shaped); ok {
			res.Height, res.Balanced = int(t.Height()), t.IsBalanced()
		}
		start := clock.Now()
		for _, q := range queries {
			if s.Has(q) {
				res.Found++
			}
		}
		res.Elapsed = clock.Now().Sub(start)
		log.Info("%s: found %d of %d in %s", res.Name, res.Found, len(queries), res.Elapsed)
		r.Results = append(r.Results, res)
	}
	return r, nil
}

func selectBackends(names []string) ([]Backend, error) {
	if len(names) == 0 {
		return Backends, nil
	}
	bs := make([]Backend, 0, len(names))
	for _, n := range names {
		i := slices.IndexFunc(Backends, func(b Backend) bool { return b.Name == n })
		if i < 0 {
			return nil, fmt.Errorf("unknown backend %q, available: %s", n, strings.Join(backendNames(), ", "))
		}
		bs = append(bs, Backends[i])
	}
	return bs, nil
}

// WriteTo writes one line per Result.
func (r *Report) WriteTo(w io.Writer) (int64, error) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Searching %s random words out of %s\n", humanize.Comma(int64(r.Queries)), humanize.Comma(int64(r.Words)))
	for _, res := range r.Results {
		fmt.Fprintf(&sb, "%-16s %14s  found %s", res.Name, res.Elapsed, humanize.Comma(int64(res.Found)))
		if res.Height >= 0 {
			fmt.Fprintf(&sb, "  height %d", res.Height)
			if !res.Balanced {
				sb.WriteString(" (unbalanced)")
			}
		}
		sb.WriteByte('\n')
	}
	n, err := io.WriteString(w, sb.String())
	return int64(n), err
}
