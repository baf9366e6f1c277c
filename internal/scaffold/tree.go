// Package scaffold materializes the project tree and seeds placeholder
// content into it without overwriting anything that already exists.
package scaffold

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/Faultbox/roomseed/internal/logger"
)

// Kind distinguishes directory nodes from file nodes.
type Kind uint8

// Node kinds.
const (
	KindDir Kind = iota
	KindFile
)

// String returns "dir" or "file".
func (k Kind) String() string {
	switch k {
	case KindDir:
		return "dir"
	case KindFile:
		return "file"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// Node is either a directory with ordered children or a file with
// optional seed content.
type Node struct {
	Name     string
	Kind     Kind
	Children []Node // directories only
	Seed     string // files only; written when the file is first created
}

// Dir returns a directory node.
func Dir(name string, children ...Node) Node {
	return Node{Name: name, Kind: KindDir, Children: children}
}

// File returns an empty file node.
func File(name string) Node {
	return Node{Name: name, Kind: KindFile}
}

// Files returns empty file nodes for each name.
func Files(names ...string) []Node {
	nodes := make([]Node, len(names))
	for i, n := range names {
		nodes[i] = File(n)
	}
	return nodes
}

// SeededFile returns a file node that is created with content.
func SeededFile(name, seed string) Node {
	return Node{Name: name, Kind: KindFile, Seed: seed}
}

// Stats counts what Materialize did.
type Stats struct {
	Dirs    int // directories created
	Files   int // files created
	Skipped int // files left untouched because they already existed
}

// Without returns a copy of n with the nodes at the given slash-separated
// paths, relative to n's parent, left out.
func Without(n Node, paths ...string) Node {
	drop := make(map[string]bool, len(paths))
	for _, p := range paths {
		drop[p] = true
	}
	return without("", n, drop)
}

func without(parent string, n Node, drop map[string]bool) Node {
	rel := path.Join(parent, n.Name)
	out := n
	out.Children = nil
	for _, c := range n.Children {
		if drop[path.Join(rel, c.Name)] {
			continue
		}
		out.Children = append(out.Children, without(rel, c, drop))
	}
	return out
}

// Walk visits n and its descendants depth-first in declaration order.
// rel is the slash-separated path of each node relative to n's parent;
// a root with an empty name has rel "".
func Walk(n Node, fn func(rel string, n Node) error) error {
	return walk("", n, fn)
}

func walk(parent string, n Node, fn func(string, Node) error) error {
	rel := path.Join(parent, n.Name)
	if err := fn(rel, n); err != nil {
		return err
	}
	for _, c := range n.Children {
		if err := walk(rel, c, fn); err != nil {
			return err
		}
	}
	return nil
}

// Materialize creates n under root. Directories are created as needed;
// files are created only when absent and are never truncated.
func Materialize(root string, n Node) (Stats, error) {
	var st Stats
	err := Walk(n, func(rel string, n Node) error {
		p := filepath.Join(root, filepath.FromSlash(rel))
		switch n.Kind {
		case KindDir:
			created, err := ensureDir(p)
			if err != nil {
				return err
			}
			if created {
				st.Dirs++
				logger.Debug("created directory", logger.Path(p))
			}
		case KindFile:
			created, err := createFile(p, n.Seed)
			if err != nil {
				return err
			}
			if created {
				st.Files++
				logger.Debug("created file", logger.Path(p))
			} else {
				st.Skipped++
			}
		}
		return nil
	})
	return st, err
}

func ensureDir(p string) (bool, error) {
	info, err := os.Stat(p)
	if err == nil {
		if !info.IsDir() {
			return false, fmt.Errorf("creating directory %s: %w", p, ErrNotDir)
		}
		return false, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return false, err
	}
	if err := os.MkdirAll(p, 0755); err != nil {
		return false, fmt.Errorf("creating directory %s: %w", p, err)
	}
	return true, nil
}

// createFile creates p exclusively. An existing file is reported as not
// created and left untouched.
func createFile(p, seed string) (bool, error) {
	if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
		return false, fmt.Errorf("creating directory for %s: %w", p, err)
	}
	f, err := os.OpenFile(p, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return false, nil
		}
		return false, fmt.Errorf("creating %s: %w", p, err)
	}
	if seed != "" {
		if _, err := f.WriteString(seed); err != nil {
			f.Close()
			return false, fmt.Errorf("writing %s: %w", p, err)
		}
	}
	if err := f.Close(); err != nil {
		return false, fmt.Errorf("closing %s: %w", p, err)
	}
	return true, nil
}
