package repository

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/alexanderramin/mdplanner/internal/domain"
	"github.com/alexanderramin/mdplanner/internal/idalloc"
	"github.com/alexanderramin/mdplanner/internal/markdown"
)

// atomicWriteFile writes through a temp file in the target directory and
// renames it into place, so readers never see a partial document.
func atomicWriteFile(path string, data []byte, perm fs.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp := filepath.Join(dir, fmt.Sprintf(".tmp-%d", time.Now().UnixNano()))
	if err := os.WriteFile(tmp, data, perm); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	// Rename is atomic on same filesystem.
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}

// allocatorFor seeds an allocator from the raw text and raises it past every
// ID in the parsed model, which may hold IDs the parse itself generated.
func allocatorFor(content string, doc *markdown.Document) *idalloc.Allocator {
	alloc := idalloc.New(content)
	domain.WalkTasks(doc.Tasks, func(t *domain.Task, _ int) { alloc.Observe(t.ID) })
	for _, n := range doc.Info.Notes {
		alloc.Observe(n.ID)
	}
	for _, g := range doc.Info.Goals {
		alloc.Observe(g.ID)
	}
	for _, p := range doc.Info.PostIts {
		alloc.Observe(p.ID)
	}
	for _, m := range doc.Info.Mindmaps {
		alloc.Observe(m.ID)
	}
	return alloc
}

// fallback tries primary and switches to secondary when primary cannot find
// the block it patches.
type fallback struct {
	primary   markdown.Rewriter
	secondary markdown.Rewriter
}

func (f fallback) Rewrite(content string) (string, error) {
	out, err := f.primary.Rewrite(content)
	if errors.Is(err, markdown.ErrBlockNotFound) {
		return f.secondary.Rewrite(content)
	}
	return out, err
}
