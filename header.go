package pagechrome

import (
	"html"
	"strings"
)

const (
	defaultTitle = "Hostel-J"

	faviconPath        = "favicon.ico"
	scriptsEndpoint    = "js/get_scripts.php"
	stylesheetEndpoint = "css/get_stylesheets.php"
)

var (
	defaultScripts = []string{
		"jquery/jquery-1.10.2.min.js",
		"jquery/jquery-ui.min.js",
		"common.js",
	}
	defaultStylesheets = []string{
		"reset.css",
		"absolution.css",
		"common.css",
	}
)

// Header accumulates the page metadata and renders the leading HTML fragment.
type Header struct {
	enabled     bool
	title       string
	bodyID      string
	scripts     *fileSet
	stylesheets *fileSet
}

// NewHeader returns an enabled header with the site-wide scripts and
// stylesheets already registered.
func NewHeader() *Header {
	h := &Header{
		enabled:     true,
		scripts:     newFileSet(),
		stylesheets: newFileSet(),
	}

	for _, filename := range defaultScripts {
		h.AddFile(filename, Script)
	}

	for _, filename := range defaultStylesheets {
		h.AddFile(filename, Stylesheet)
	}

	return h
}

// SetTitle stores the escaped page title. An empty title renders as the
// site name.
func (h *Header) SetTitle(title string) {
	h.title = html.EscapeString(title)
}

// Title returns the stored, escaped title. After Render it holds the site
// name if no title had been set.
func (h *Header) Title() string {
	return h.title
}

// SetBodyID sets the escaped id attribute of the body tag.
func (h *Header) SetBodyID(id string) {
	h.bodyID = html.EscapeString(id)
}

// AddFile registers a script or stylesheet. Files already registered under
// the same kind and unknown kinds are ignored.
func (h *Header) AddFile(filename string, kind FileKind) {
	switch kind {
	case Script:
		h.scripts.add(filename)
	case Stylesheet:
		h.stylesheets.add(filename)
	}
}

func (h *Header) Scripts() []string {
	return h.scripts.list()
}

func (h *Header) Stylesheets() []string {
	return h.stylesheets.list()
}

// Disable turns the header off for good; Render then returns "".
func (h *Header) Disable() {
	h.enabled = false
}

func (h *Header) Enabled() bool {
	return h.enabled
}

// Render builds the header from the current state.
func (h *Header) Render() string {
	if !h.enabled {
		return ""
	}

	var builder strings.Builder

	builder.WriteString(`<!DOCTYPE HTML>`)
	builder.WriteString(`<html lang='en' >`)
	builder.WriteString(`<meta http-equiv="Content-Type" content="text/html; charset=UTF-8">`)
	builder.WriteString(`<link rel="icon" href="` + faviconPath + `" type="image/x-icon" />`)
	builder.WriteString(`<link rel="shortcut icon" href="` + faviconPath + `" type="image/x-icon" />`)
	builder.WriteString(`<link rel="stylesheet" type="text/css" href="`)
	builder.WriteString(html.EscapeString(aggregatorURL(stylesheetEndpoint, "stylesheets", h.stylesheets.names)))
	builder.WriteString(`" />`)
	builder.WriteString(`<title>` + h.pageTitle() + `</title>`)
	builder.WriteString(`<script type="text/javascript" src="`)
	builder.WriteString(html.EscapeString(aggregatorURL(scriptsEndpoint, "scripts", h.scripts.names)))
	builder.WriteString(`"></script>`)
	builder.WriteString(`</head>`)

	if h.bodyID != "" {
		builder.WriteString(`<body id='` + h.bodyID + `'>`)
	} else {
		builder.WriteString(`<body>`)
	}

	builder.WriteString(bodyBanner)

	return builder.String()
}

// pageTitle falls back to the site name and keeps it, so Title reports what
// was rendered.
func (h *Header) pageTitle() string {
	if h.title == "" {
		h.title = defaultTitle
	}

	return h.title
}

// aggregatorURL lists every name as a repeated array-style query parameter.
// Names are joined raw; the caller escapes the whole URL for the attribute.
func aggregatorURL(endpoint, param string, names []string) string {
	var builder strings.Builder

	builder.WriteString(endpoint)
	builder.WriteString("?" + param + "[]=")
	builder.WriteString(strings.Join(names, "&"+param+"[]="))

	return builder.String()
}

const bodyBanner = `<header class="green_grad"><table><tr>` +
	`<td class="td_small"><img height="80" width="250" src="img/jlogo.png" alt="Hostel-J Logo"/></td>` +
	`<td class="td_big"><h1>Hostel-J, Thapar University</h1></td>` +
	`<td class="td_small"><img height="100" width="160" src="img/tulogo.png" alt="Thapar Logo"/></td>` +
	`</tr></table></header>` +
	`<div class="body_area">` +
	`<div class="body_content">`
