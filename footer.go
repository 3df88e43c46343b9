package pagechrome

// Footer renders the trailing fragment closing what Header opened.
type Footer struct {
	enabled bool
}

func NewFooter() *Footer {
	return &Footer{enabled: true}
}

func (f *Footer) Disable() {
	f.enabled = false
}

func (f *Footer) Enabled() bool {
	return f.enabled
}

func (f *Footer) Render() string {
	if !f.enabled {
		return ""
	}

	return `</div></div></body></html>`
}
