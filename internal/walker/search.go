package walker

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/charlievieth/fastwalk"

	"github.com/wardfs/wardfs/internal/sandbox"
)

// Search walks the tree rooted at root and collects the full path of every
// entry whose name contains pattern case-insensitively. A subdirectory whose
// root-relative path starts with any exclude pattern is pruned: neither it
// nor its descendants are visited. Entries failing sandbox validation are
// skipped. Results are sorted; fastwalk's workers report in arbitrary order.
func Search(ctx context.Context, sb *sandbox.Sandbox, root, pattern string, excludes []string) ([]string, error) {
	needle := strings.ToLower(pattern)

	var mu sync.Mutex
	matches := []string{}

	conf := fastwalk.Config{Follow: false}
	err := fastwalk.Walk(&conf, root, func(path string, d os.DirEntry, err error) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err != nil || path == root {
			return nil
		}

		rel, rerr := filepath.Rel(root, path)
		if rerr != nil {
			return nil
		}

		if d.IsDir() {
			for _, exclude := range excludes {
				if exclude != "" && strings.HasPrefix(rel, exclude) {
					return filepath.SkipDir
				}
			}
		}

		if _, verr := sb.Validate(path); verr != nil {
			return nil
		}

		if strings.Contains(strings.ToLower(d.Name()), needle) {
			mu.Lock()
			matches = append(matches, path)
			mu.Unlock()
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(matches)
	return matches, nil
}
