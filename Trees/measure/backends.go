package measure

import (
	"math/rand"
	"slices"

	"github.com/alphadose/haxmap"
	"github.com/cornelk/hashmap"
	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"

	"github.com/g-m-twostay/go-bst/Trees"
)

// Searcher answers membership queries over a fixed set of words.
type Searcher interface {
	Has(w string) bool
}

// Backend is a named way of building a Searcher. rg is only used by backends
// that need their input in random order.
type Backend struct {
	Name  string
	Build func(words []string, rg *rand.Rand) Searcher
}

// Backends lists every available Backend. The first four are the ones the
// demonstration is about; the rest are reference points from other libraries.
var Backends = []Backend{
	{"list", func(ws []string, _ *rand.Rand) Searcher {
		return listSearcher(ws)
	}},
	{"bst-ordered", func(ws []string, _ *rand.Rand) Searcher {
		return Trees.From(ws...)
	}},
	{"bst-shuffled", func(ws []string, rg *rand.Rand) Searcher {
		s := slices.Clone(ws)
		rg.Shuffle(len(s), func(i, j int) {
			s[i], s[j] = s[j], s[i]
		})
		return Trees.From(s...)
	}},
	{"bst-rebalanced", func(ws []string, _ *rand.Rand) Searcher {
		t := Trees.From(ws...)
		t.Rebalance()
		return t
	}},
	{"btree", func(ws []string, _ *rand.Rand) Searcher {
		t := btree.NewOrderedG[string](32)
		for _, w := range ws {
			t.ReplaceOrInsert(w)
		}
		return t
	}},
	{"llrb", func(ws []string, _ *rand.Rand) Searcher {
		t := llrb.New()
		for _, w := range ws {
			t.ReplaceOrInsert(llrbWord(w))
		}
		return llrbSearcher{t}
	}},
	{"gods-rbt", func(ws []string, _ *rand.Rand) Searcher {
		t := redblacktree.NewWithStringComparator()
		for _, w := range ws {
			t.Put(w, struct{}{})
		}
		return godsSearcher{t}
	}},
	{"haxmap", func(ws []string, _ *rand.Rand) Searcher {
		m := haxmap.New[string, struct{}]()
		for _, w := range ws {
			m.Set(w, struct{}{})
		}
		return haxSearcher{m}
	}},
	{"hashmap", func(ws []string, _ *rand.Rand) Searcher {
		m := hashmap.New[string, struct{}]()
		for _, w := range ws {
			m.Set(w, struct{}{})
		}
		return hashSearcher{m}
	}},
}

type listSearcher []string

func (u listSearcher) Has(w string) bool {
	return slices.Index(u, w) >= 0
}

type llrbWord string

func (u llrbWord) Less(than llrb.Item) bool {
	return u < than.(llrbWord)
}

type llrbSearcher struct{ t *llrb.LLRB }

func (u llrbSearcher) Has(w string) bool {
	return u.t.Has(llrbWord(w))
}

type godsSearcher struct{ t *redblacktree.Tree }

func (u godsSearcher) Has(w string) bool {
	_, found := u.t.Get(w)
	return found
}

type haxSearcher struct{ m *haxmap.Map[string, struct{}] }

func (u haxSearcher) Has(w string) bool {
	_, ok := u.m.Get(w)
	return ok
}

type hashSearcher struct{ m *hashmap.Map[string, struct{}] }

func (u hashSearcher) Has(w string) bool {
	_, ok := u.m.Get(w)
	return ok
}

// backendNames returns the names of all Backends.
func backendNames() []string {
	names := make([]string, len(Backends))
	for i, b := range Backends {
		names[i] = b.Name
	}
	return names
}
