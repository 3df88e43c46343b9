package pagechrome

import (
	"strings"
	"testing"
)

func TestFooterRender(t *testing.T) {
	f := NewFooter()
	if !f.Enabled() {
		t.Fatalf("expected new footer to be enabled")
	}

	if got, want := f.Render(), "</div></div></body></html>"; got != want {
		t.Fatalf("footer = %q, want %q", got, want)
	}
}

func TestFooterDisable(t *testing.T) {
	f := NewFooter()
	f.Disable()

	if got := f.Render(); got != "" {
		t.Fatalf("expected empty output from disabled footer, got %q", got)
	}
}

func TestHeaderFooterBalanced(t *testing.T) {
	page := NewHeader().Render() + "<p>content</p>" + NewFooter().Render()

	pairs := []struct {
		open  string
		close string
	}{
		{open: "<div", close: "</div>"},
		{open: "<body", close: "</body>"},
		{open: "<html", close: "</html>"},
		{open: "<header", close: "</header>"},
		{open: "<table", close: "</table>"},
	}

	for _, pair := range pairs {
		opened := strings.Count(page, pair.open)
		closed := strings.Count(page, pair.close)
		if opened == 0 {
			t.Fatalf("expected at least one %s in page", pair.open)
		}
		if opened != closed {
			t.Fatalf("%s opened %d times but %s closed %d times", pair.open, opened, pair.close, closed)
		}
	}

	doc := parseRendered(t, page)
	if got := doc.Find("div.body_area > div.body_content > p").Text(); got != "content" {
		t.Fatalf("expected content nested in wrappers, got %q", got)
	}
}
