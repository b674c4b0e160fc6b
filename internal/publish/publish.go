package publish

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"todo-cli/internal/model"
)

type WriteOptions struct {
	IncludeDone bool
	Overwrite   bool
	Title       string
}

type WriteResult struct {
	Written []string `json:"written"`
}

// WriteList writes <toDir>/todo.md plus one page per item under
// <toDir>/items/. Existing files are kept unless Overwrite is set.
func WriteList(items []model.Item, toDir string, opt WriteOptions) (WriteResult, error) {
	toDir = strings.TrimSpace(toDir)
	if toDir == "" {
		return WriteResult{}, errors.New("missing --to")
	}
	toDir = filepath.Clean(toDir)

	itemsDir := filepath.Join(toDir, "items")
	if err := os.MkdirAll(itemsDir, 0o755); err != nil {
		return WriteResult{}, err
	}

	indexPath := filepath.Join(toDir, "todo.md")
	indexMD := RenderListMarkdown(items, RenderOptions{IncludeDone: opt.IncludeDone, Title: opt.Title})
	if err := writeFile(indexPath, []byte(indexMD), opt.Overwrite); err != nil {
		return WriteResult{}, err
	}

	// Stop on first error.
	written := []string{indexPath}
	for _, it := range items {
		if it.Done && !opt.IncludeDone {
			continue
		}
		if strings.TrimSpace(it.ID) == "" || strings.ContainsAny(it.ID, `/\`) {
			return WriteResult{}, errors.New("item has unusable id: " + it.ID)
		}
		p := filepath.Join(itemsDir, it.ID+".md")
		if err := writeFile(p, []byte(RenderItemMarkdown(it)), opt.Overwrite); err != nil {
			return WriteResult{}, err
		}
		written = append(written, p)
	}

	return WriteResult{Written: written}, nil
}

func writeFile(path string, b []byte, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return errors.New("file exists (use --overwrite): " + path)
		}
	}
	return os.WriteFile(path, b, 0o644)
}
