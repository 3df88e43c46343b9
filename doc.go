// Package pagechrome renders the HTML boilerplate that wraps every page of the
// site: the leading fragment (doctype, meta and asset tags, title, body open
// and the site banner) and the trailing fragment that closes it.
//
// A page is assembled by concatenating Header.Render, the page content and
// Footer.Render. The header leaves two wrapper divs open that only the footer
// closes, so callers disabling one must disable the other too.
//
// Headers and footers are built once per page render and must not be shared
// between goroutines.
package pagechrome
