package main

import (
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	log "github.com/sirupsen/logrus"

	pagechrome "github.com/theTardigrade/golang-pageChrome"
)

func generate(pi *pageInfo) (err error) {
	page, err := generatePage(pi)
	if err != nil {
		return
	}

	if err = os.WriteFile(pi.output.path, []byte(page), 0o644); err != nil {
		return
	}

	log.WithFields(log.Fields{
		"output": pi.output.path,
		"size":   humanize.Bytes(uint64(len(page))),
	}).Info("Page generated")

	return
}

func generatePage(pi *pageInfo) (page string, err error) {
	header := generateHeader(pi)
	footer := pagechrome.NewFooter()

	if pi.DisableFooter {
		footer.Disable()
	}

	if header.Enabled() != footer.Enabled() {
		log.WithFields(log.Fields{
			"header": header.Enabled(),
			"footer": footer.Enabled(),
		}).Warn("Header and footer chrome disagree; wrapper divs will not pair")
	}

	var builder strings.Builder

	builder.WriteString(header.Render())
	builder.Write(pi.output.content)
	builder.WriteString(footer.Render())

	page = builder.String()

	if pi.ShouldMinify {
		page, err = minifier.String("text/html", page)
		if err != nil {
			return
		}
	}

	return
}

func generateHeader(pi *pageInfo) *pagechrome.Header {
	header := pagechrome.NewHeader()

	header.SetTitle(pi.output.title)

	if pi.BodyID != "" {
		header.SetBodyID(pi.BodyID)
	}

	for _, filename := range pi.Stylesheets {
		header.AddFile(filename, pagechrome.Stylesheet)
	}

	for _, filename := range pi.Scripts {
		header.AddFile(filename, pagechrome.Script)
	}

	if pi.DisableHeader {
		header.Disable()
	}

	return header
}
