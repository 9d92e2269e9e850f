package library

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"repkit/internal/textutil"
)

// ParsedSection is the strict intermediate result of parsing one exercise
// section. Validation happens at parse time; a section failing it never
// reaches the index.
type ParsedSection struct {
	Title        string
	Difficulty   string
	Instructions []string
	Media        []string
	Notes        []string
}

// ParsedDocument is one muscle-group document after parsing.
type ParsedDocument struct {
	Slug     string
	Label    string
	Sections []ParsedSection
}

// ParseDocument parses a markdown library document. The slug identifies the
// muscle group (typically the source filename without extension).
func ParseDocument(slug string, source []byte) (ParsedDocument, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return ParsedDocument{}, fmt.Errorf("parse document: slug required")
	}

	md := goldmark.New()
	root := md.Parser().Parse(text.NewReader(source))

	doc := ParsedDocument{Slug: slug}
	var current *ParsedSection
	flush := func() {
		if current != nil {
			doc.Sections = append(doc.Sections, *current)
			current = nil
		}
	}

	for node := root.FirstChild(); node != nil; node = node.NextSibling() {
		switch n := node.(type) {
		case *ast.Heading:
			switch n.Level {
			case 1:
				if doc.Label == "" {
					doc.Label = nodeText(n, source)
				}
			case 2:
				flush()
				current = &ParsedSection{Title: nodeText(n, source)}
			}
		case *ast.List:
			if current == nil {
				continue
			}
			items := listItems(n, source)
			if n.IsOrdered() {
				current.Instructions = append(current.Instructions, items...)
			} else {
				current.Notes = append(current.Notes, items...)
			}
		case *ast.Blockquote:
			if current == nil {
				continue
			}
			if note := nodeText(n, source); note != "" {
				current.Notes = append(current.Notes, note)
			}
		case *ast.Paragraph:
			if current == nil {
				continue
			}
			collectImages(n, source, &current.Media)
			body := nodeText(n, source)
			if body == "" {
				continue
			}
			if difficulty, ok := cutDifficulty(body); ok {
				current.Difficulty = difficulty
				continue
			}
			current.Notes = append(current.Notes, body)
		}
	}
	flush()

	if doc.Label == "" {
		doc.Label = labelFromSlug(slug)
	}
	return doc, nil
}

// LoadDocuments parses every *.md file in dir in lexical order, keeping
// document processing deterministic for index construction.
func LoadDocuments(dir string) ([]ParsedDocument, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*.md"))
	if err != nil {
		return nil, fmt.Errorf("library documents: %w", err)
	}
	sort.Strings(matches)

	docs := make([]ParsedDocument, 0, len(matches))
	for _, path := range matches {
		source, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("library documents: read %s: %w", filepath.Base(path), err)
		}
		slug := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		doc, err := ParseDocument(slug, source)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

func cutDifficulty(body string) (string, bool) {
	const prefix = "difficulty:"
	if !strings.HasPrefix(strings.ToLower(body), prefix) {
		return "", false
	}
	return strings.TrimSpace(body[len(prefix):]), true
}

func labelFromSlug(slug string) string {
	parts := strings.FieldsFunc(slug, func(r rune) bool { return r == '-' || r == '_' })
	for i, part := range parts {
		if part == "" {
			continue
		}
		parts[i] = strings.ToUpper(part[:1]) + part[1:]
	}
	return strings.Join(parts, " ")
}

func listItems(list *ast.List, source []byte) []string {
	var items []string
	for item := list.FirstChild(); item != nil; item = item.NextSibling() {
		if body := nodeText(item, source); body != "" {
			items = append(items, body)
		}
	}
	return items
}

func collectImages(node ast.Node, source []byte, media *[]string) {
	_ = ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if image, ok := n.(*ast.Image); ok {
			if dest := strings.TrimSpace(string(image.Destination)); dest != "" {
				*media = append(*media, dest)
			}
		}
		return ast.WalkContinue, nil
	})
}

func nodeText(node ast.Node, source []byte) string {
	var b strings.Builder
	_ = ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := n.(type) {
		case *ast.Text:
			b.Write(t.Segment.Value(source))
			if t.SoftLineBreak() || t.HardLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(t.Value)
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(b.String())
}

// Slug returns the normalized muscle slug for a label.
func Slug(label string) string {
	return textutil.Slugify(label)
}
