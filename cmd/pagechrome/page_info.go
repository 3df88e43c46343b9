package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"

	"github.com/PuerkitoBio/goquery"
	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
	"github.com/iancoleman/strcase"
	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	pageOutputFileExt       = ".html"
	pageOutputFallbackTitle = "page"
)

var (
	errUnrecognizedContentExt = errors.New("unrecognized content file extension")
)

type pageInfo struct {
	Title                 string   `json:"title"`
	BodyID                string   `json:"body_id"`
	Scripts               []string `json:"scripts"`
	Stylesheets           []string `json:"stylesheets"`
	DisableHeader         bool     `json:"disable_header"`
	DisableFooter         bool     `json:"disable_footer"`
	ShouldCapitalizeTitle bool     `json:"should_capitalize_title"`
	ShouldSanitizeContent bool     `json:"should_sanitize_content"`
	ShouldMinify          bool     `json:"should_minify"`
	Paths                 struct {
		Content string `json:"content"`
		Output  string `json:"output"`
	} `json:"paths"`

	output struct {
		content []byte
		title   string
		path    string
	}
}

type pageInfoOutputInitHandler = func(*pageInfo) error

var (
	pageInfoOutputInitHandlerList = []pageInfoOutputInitHandler{
		pageInfoOutputInitContent,
		pageInfoOutputInitTitle,
		pageInfoOutputInitPath,
	}
)

func pageInfoOutputInit(pi *pageInfo) (err error) {
	for _, handler := range pageInfoOutputInitHandlerList {
		if err = handler(pi); err != nil {
			return
		}
	}

	return
}

func pageInfoOutputInitContent(pi *pageInfo) (err error) {
	if pi.Paths.Content == "" {
		return
	}

	b, err := os.ReadFile(pi.Paths.Content)
	if err != nil {
		return
	}

	switch filepath.Ext(pi.Paths.Content) {
	case ".md":
		p := parser.New()

		document := p.Parse(b)
		renderer := html.NewRenderer(html.RendererOptions{
			Flags: html.CommonFlags,
		})

		b = markdown.Render(document, renderer)
	case ".html", ".xhtml":
		var doc *goquery.Document

		doc, err = goquery.NewDocumentFromReader(bytes.NewReader(b))
		if err != nil {
			return
		}

		var docString string

		docString, err = doc.Find("body").Html()
		if err != nil {
			return
		}

		b = []byte(docString)
	default:
		return errUnrecognizedContentExt
	}

	if pi.ShouldSanitizeContent {
		b = bluemonday.UGCPolicy().SanitizeBytes(b)
	}

	pi.output.content = b

	return
}

func pageInfoOutputInitTitle(pi *pageInfo) (err error) {
	pi.output.title = pi.Title

	if pi.ShouldCapitalizeTitle {
		pi.output.title = cases.Title(language.English).String(pi.Title)
	}

	return
}

func pageInfoOutputInitPath(pi *pageInfo) (err error) {
	if pi.Paths.Output != "" {
		pi.output.path = pi.Paths.Output
		return
	}

	name := strcase.ToSnake(pi.output.title)
	if name == "" {
		name = pageOutputFallbackTitle
	}

	pi.output.path = name + pageOutputFileExt

	return
}
