package parse

import (
	"slices"
	"strings"

	"github.com/explodesh/explodesh/debug"

	"github.com/pelletier/go-toml/v2/unstable"
)

// keyRanks maps a key path (array indices dropped) to the position of its
// first appearance in the source text.
type keyRanks map[string]int

const pathSep = "\x00"

func (r keyRanks) rank(path []string, key string) (int, bool) {
	if r == nil {
		return 0, false
	}
	n, ok := r[strings.Join(append(slices.Clip(path), key), pathSep)]
	return n, ok
}

func (r keyRanks) note(path []string) {
	for i := 1; i <= len(path); i++ {
		k := strings.Join(path[:i], pathSep)
		if _, ok := r[k]; !ok {
			r[k] = len(r)
		}
	}
}

func orderKeys(d []byte) (keyRanks, error) {
	ranks := keyRanks{}
	p := &unstable.Parser{}
	p.Reset(d)
	var prefix []string
	for p.NextExpression() {
		e := p.Expression()
		switch e.Kind {
		case unstable.Table, unstable.ArrayTable:
			prefix = keyParts(e.Key())
			ranks.note(prefix)
		case unstable.KeyValue:
			path := append(slices.Clip(prefix), keyParts(e.Key())...)
			ranks.note(path)
			ranks.noteValue(path, e.Value())
		}
	}
	if err := p.Error(); err != nil {
		return nil, err
	}
	if debug.Order() {
		debug.Logf("key order: %d paths\n", len(ranks))
	}
	return ranks, nil
}

func (r keyRanks) noteValue(path []string, n *unstable.Node) {
	switch n.Kind {
	case unstable.InlineTable:
		it := n.Children()
		for it.Next() {
			kv := it.Node()
			kPath := append(slices.Clip(path), keyParts(kv.Key())...)
			r.note(kPath)
			r.noteValue(kPath, kv.Value())
		}
	case unstable.Array:
		it := n.Children()
		for it.Next() {
			r.noteValue(path, it.Node())
		}
	}
}

func keyParts(it unstable.Iterator) []string {
	var res []string
	for it.Next() {
		res = append(res, string(it.Node().Data))
	}
	return res
}
