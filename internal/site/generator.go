package site

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/ziadkadry99/abbrtip/internal/progress"
	"github.com/ziadkadry99/abbrtip/internal/walker"
)

// PageHooks transforms every page of a build. PageMarkdown runs on the raw
// Markdown source and reports how many markers it wrote; PostPage runs once
// on the finished HTML document.
type PageHooks interface {
	PageMarkdown(src string) (string, int)
	PostPage(html string) string
}

// keyLister is implemented by hooks that can name their abbreviations for
// the build manifest.
type keyLister interface {
	Keys() []string
}

// SiteGenerator converts a Markdown docs directory into a static HTML site.
type SiteGenerator struct {
	DocsDir        string
	OutputDir      string
	ProjectName    string
	Include        []string
	Exclude        []string
	HighlightStyle string
	LiveReload     bool // add the live reload client to every page
	Hooks          PageHooks
	Reporter       progress.Reporter
}

// NewSiteGenerator creates a SiteGenerator with the given directories.
func NewSiteGenerator(docsDir, outputDir, projectName string) *SiteGenerator {
	return &SiteGenerator{
		DocsDir:        docsDir,
		OutputDir:      outputDir,
		ProjectName:    projectName,
		HighlightStyle: "github",
	}
}

// pageData holds the data passed to the HTML template for each page.
type pageData struct {
	Title       string
	ProjectName string
	Content     template.HTML
	TreeHTML    template.HTML
	BasePath    string
	LiveReload  bool
}

// Generate builds the full static site and writes its manifest.
func (g *SiteGenerator) Generate() (*Manifest, error) {
	pages, err := walker.Walk(walker.WalkerConfig{
		RootDir: g.DocsDir,
		Include: g.Include,
		Exclude: g.Exclude,
	})
	if err != nil {
		return nil, fmt.Errorf("walking docs dir: %w", err)
	}
	if len(pages) == 0 {
		return nil, fmt.Errorf("no markdown files found in %s", g.DocsDir)
	}

	sources := make(map[string]string, len(pages))
	titleMap := make(map[string]string, len(pages))
	relPaths := make([]string, 0, len(pages))
	for _, p := range pages {
		content, err := os.ReadFile(p.Path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", p.RelPath, err)
		}
		sources[p.RelPath] = string(content)
		titleMap[p.RelPath] = extractTitle(string(content), p.RelPath)
		relPaths = append(relPaths, p.RelPath)
	}

	tree := BuildTree(relPaths, titleMap)

	if err := os.MkdirAll(g.OutputDir, 0o755); err != nil {
		return nil, err
	}

	// The search index is built from the raw sources, before any hook runs.
	entries := BuildSearchIndex(pages, sources)
	if err := WriteSearchIndex(entries, filepath.Join(g.OutputDir, "search-index.json")); err != nil {
		return nil, fmt.Errorf("writing search index: %w", err)
	}

	if err := os.WriteFile(filepath.Join(g.OutputDir, "style.css"), []byte(cssContent), 0o644); err != nil {
		return nil, err
	}
	if err := os.WriteFile(filepath.Join(g.OutputDir, "script.js"), []byte(jsContent), 0o644); err != nil {
		return nil, err
	}

	style := g.HighlightStyle
	if style == "" {
		style = "github"
	}
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle(style),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			// Marker spans are raw HTML inside the Markdown source.
			html.WithUnsafe(),
		),
	)

	tmpl, err := template.New("page").Parse(pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing page template: %w", err)
	}

	reporter := g.Reporter
	if reporter == nil {
		reporter = progress.Nop{}
	}
	reporter.Start(len(pages))

	manifest := newManifest(g.ProjectName)
	if kl, ok := g.Hooks.(keyLister); ok {
		manifest.Abbreviations = kl.Keys()
	}

	for i, p := range pages {
		rec, err := g.renderPage(md, tmpl, tree, p, sources[p.RelPath])
		if err != nil {
			reporter.Finish()
			return nil, fmt.Errorf("rendering %s: %w", p.RelPath, err)
		}
		manifest.add(rec)
		reporter.Update(i+1, p.RelPath)
	}
	reporter.Finish()

	if err := manifest.Write(g.OutputDir); err != nil {
		return nil, err
	}
	return manifest, nil
}

// renderPage converts a single Markdown page to an HTML document.
func (g *SiteGenerator) renderPage(md goldmark.Markdown, tmpl *template.Template, tree *FileTree, page walker.Page, src string) (PageRecord, error) {
	markers := 0
	if g.Hooks != nil {
		src, markers = g.Hooks.PageMarkdown(src)
	}

	var body bytes.Buffer
	if err := md.Convert([]byte(src), &body); err != nil {
		return PageRecord{}, fmt.Errorf("converting markdown: %w", err)
	}

	htmlRelPath := mdPathToHTML(page.RelPath)
	basePath := strings.Repeat("../", strings.Count(htmlRelPath, "/"))

	data := pageData{
		Title:       extractTitle(src, page.RelPath),
		ProjectName: g.ProjectName,
		Content:     template.HTML(rewriteMDLinks(body.String())),
		TreeHTML:    template.HTML(tree.ToHTML(page.RelPath, basePath)),
		BasePath:    basePath,
		LiveReload:  g.LiveReload,
	}

	var doc bytes.Buffer
	if err := tmpl.Execute(&doc, data); err != nil {
		return PageRecord{}, fmt.Errorf("executing page template: %w", err)
	}

	out := doc.String()
	if g.Hooks != nil {
		out = g.Hooks.PostPage(out)
	}

	outPath := filepath.Join(g.OutputDir, filepath.FromSlash(htmlRelPath))
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return PageRecord{}, err
	}
	if err := os.WriteFile(outPath, []byte(out), 0o644); err != nil {
		return PageRecord{}, err
	}

	return PageRecord{
		Source:      page.RelPath,
		Output:      htmlRelPath,
		ContentHash: page.ContentHash,
		Markers:     markers,
	}, nil
}

// extractTitle pulls the first # heading from Markdown content, or falls back to the file name.
func extractTitle(content, relPath string) string {
	inFence := false
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "```") || strings.HasPrefix(line, "~~~") {
			inFence = !inFence
			continue
		}
		if !inFence && strings.HasPrefix(line, "# ") {
			return stripTags(strings.TrimPrefix(line, "# "))
		}
	}
	base := path.Base(relPath)
	return strings.TrimSuffix(base, path.Ext(base))
}

// stripTags drops inline markup, such as marker spans, from a heading.
func stripTags(s string) string {
	if !strings.Contains(s, "<") {
		return s
	}
	var b strings.Builder
	depth := 0
	for _, r := range s {
		switch {
		case r == '<':
			depth++
		case r == '>' && depth > 0:
			depth--
		case depth == 0:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// rewriteMDLinks changes .md links in HTML content to .html links.
func rewriteMDLinks(content string) string {
	r := strings.NewReplacer(
		`.md"`, `.html"`,
		`.md#`, `.html#`,
		`.markdown"`, `.html"`,
		`.markdown#`, `.html#`,
	)
	return r.Replace(content)
}
