package caesarlang

import "github.com/emirpasic/gods/v2/trees/redblacktree"

// expecting deduplicates kinds and sorts them in declaration order.
func expecting(kinds ...TokenKind) []TokenKind {
	set := redblacktree.New[TokenKind, struct{}]()
	for _, kind := range kinds {
		set.Put(kind, struct{}{})
	}
	return set.Keys()
}
