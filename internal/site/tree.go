package site

import (
	"fmt"
	"html"
	"path"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// FileTree is a node in the sidebar navigation tree.
type FileTree struct {
	Name     string
	Title    string // Display name: the page H1, or a formatted directory name.
	Path     string // Slash-separated path relative to the docs directory.
	IsDir    bool
	Children []*FileTree
}

// BuildTree constructs a FileTree from slash-separated page paths.
// titleMap optionally maps a page path to its display title.
func BuildTree(paths []string, titleMap map[string]string) *FileTree {
	root := &FileTree{Name: "docs", IsDir: true}

	for _, p := range paths {
		parts := strings.Split(p, "/")
		node := root
		for i, part := range parts {
			last := i == len(parts)-1
			next := node.child(part)
			if next == nil {
				next = &FileTree{Name: part, IsDir: !last, Path: strings.Join(parts[:i+1], "/")}
				if last {
					next.Title = titleMap[p]
				} else {
					next.Title = formatDirName(part)
				}
				node.Children = append(node.Children, next)
			}
			node = next
		}
	}

	root.sort()
	return root
}

func (t *FileTree) child(name string) *FileTree {
	for _, c := range t.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// sort orders children directories first, then by name, recursively.
func (t *FileTree) sort() {
	sort.Slice(t.Children, func(i, j int) bool {
		a, b := t.Children[i], t.Children[j]
		if a.IsDir != b.IsDir {
			return a.IsDir
		}
		return a.Name < b.Name
	})
	for _, c := range t.Children {
		if c.IsDir {
			c.sort()
		}
	}
}

// ToHTML renders the tree as nested lists for the sidebar. basePath leads
// back to the site root from the active page, e.g. "../".
func (t *FileTree) ToHTML(activePath, basePath string) string {
	open := make(map[string]bool)
	parts := strings.Split(activePath, "/")
	for i := 1; i < len(parts); i++ {
		open[strings.Join(parts[:i], "/")] = true
	}

	var b strings.Builder
	home := ""
	if activePath == "index.md" {
		home = ` class="active"`
	}
	fmt.Fprintf(&b, `<ul><li class="file home-link"><a href="%sindex.html"%s>Home</a></li></ul>`+"\n", basePath, home)

	t.render(&b, activePath, basePath, open)
	return b.String()
}

func (t *FileTree) render(b *strings.Builder, activePath, basePath string, open map[string]bool) {
	if len(t.Children) == 0 {
		return
	}
	b.WriteString("<ul>\n")
	for _, c := range t.Children {
		if c.IsDir {
			state := ""
			if open[c.Path] {
				state = "expanded"
			}
			fmt.Fprintf(b, `<li class="dir %s"><span class="dir-toggle">%s</span>`+"\n", state, html.EscapeString(c.label()))
			c.render(b, activePath, basePath, open)
			b.WriteString("</li>\n")
			continue
		}
		if c.Path == "index.md" {
			continue
		}
		active := ""
		if c.Path == activePath {
			active = ` class="active"`
		}
		fmt.Fprintf(b, `<li class="file"><a href="%s%s"%s>%s</a></li>`+"\n",
			basePath, mdPathToHTML(c.Path), active, html.EscapeString(c.label()))
	}
	b.WriteString("</ul>\n")
}

func (t *FileTree) label() string {
	if t.Title != "" {
		return t.Title
	}
	return strings.TrimSuffix(t.Name, path.Ext(t.Name))
}

// mdPathToHTML converts a Markdown page path to its HTML output path.
func mdPathToHTML(p string) string {
	switch ext := path.Ext(p); ext {
	case ".md", ".markdown":
		return strings.TrimSuffix(p, ext) + ".html"
	}
	return p
}

// formatDirName converts a directory slug to a display name:
// "getting-started" becomes "Getting Started".
func formatDirName(name string) string {
	words := strings.FieldsFunc(name, func(c rune) bool {
		return c == '-' || c == '_'
	})
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}
