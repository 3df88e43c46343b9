package pagechrome

// FileKind selects which asset list a file is registered under.
type FileKind string

const (
	Script     FileKind = "js"
	Stylesheet FileKind = "css"
)

// fileSet keeps filenames in insertion order and ignores repeats.
type fileSet struct {
	names []string
	seen  map[string]struct{}
}

func newFileSet() *fileSet {
	return &fileSet{
		seen: make(map[string]struct{}),
	}
}

func (fs *fileSet) add(name string) {
	if _, found := fs.seen[name]; found {
		return
	}

	fs.seen[name] = struct{}{}
	fs.names = append(fs.names, name)
}

func (fs *fileSet) list() []string {
	names := make([]string, len(fs.names))
	copy(names, fs.names)

	return names
}
