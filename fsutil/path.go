package fsutil

import "path"

// Path is a slash separated filesystem path, either
// absolute or relative to a Transaction root.
type Path string

// Join returns the path joined with a relative part.
func (pt Path) Join(part string) Path {
	return Path(path.Join(string(pt), part))
}

// JoinP returns the path joined with a relative Path.
func (pt Path) JoinP(part Path) Path {
	return Path(path.Join(string(pt), string(part)))
}

func (pt Path) String() string {
	return string(pt)
}
