package treenode

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Path selects a descendant by child index, one index per depth.
// The empty path selects the starting node.
type Path []int

// ParsePath parses the forms produced by [Path.String] ("/" and "0/1/2",
// with or without a leading slash) as well as bracketed segments like
// "[0][1]". The empty string is the empty path.
func ParsePath(s string) (Path, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "/" {
		return Path{}, nil
	}
	var parts []string
	if strings.HasPrefix(s, "[") {
		if !strings.HasSuffix(s, "]") {
			return nil, fmt.Errorf("invalid path %q: unterminated bracket", s)
		}
		parts = strings.Split(s[1:len(s)-1], "][")
	} else {
		parts = strings.Split(strings.TrimPrefix(s, "/"), "/")
	}
	path := make(Path, 0, len(parts))
	for _, part := range parts {
		index, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid path %q: bad segment %q", s, part)
		}
		if index < 0 {
			return nil, fmt.Errorf("invalid path %q: negative segment %d", s, index)
		}
		path = append(path, index)
	}
	return path, nil
}

// MustParsePath is like ParsePath but panics on error.
func MustParsePath(s string) Path {
	p, err := ParsePath(s)
	if err != nil {
		panic(err)
	}
	return p
}

func (p Path) String() string {
	if len(p) == 0 {
		return "/"
	}
	parts := make([]string, len(p))
	for i, index := range p {
		parts[i] = strconv.Itoa(index)
	}
	return strings.Join(parts, "/")
}

// Append returns a new path with the given indices added at the end.
func (p Path) Append(indices ...int) Path {
	out := make(Path, 0, len(p)+len(indices))
	out = append(out, p...)
	return append(out, indices...)
}

// Parent returns the path with its last segment removed. The parent of the
// empty path is the empty path.
func (p Path) Parent() Path {
	if len(p) == 0 {
		return Path{}
	}
	return p[:len(p)-1].Clone()
}

// Last returns the final segment, or -1 for the empty path.
func (p Path) Last() int {
	if len(p) == 0 {
		return -1
	}
	return p[len(p)-1]
}

func (p Path) Clone() Path {
	if p == nil {
		return Path{}
	}
	return slices.Clone(p)
}

func (p Path) Equal(other Path) bool {
	return slices.Equal(p, other)
}

// HasPrefix reports whether prefix addresses p or one of its ancestors.
func (p Path) HasPrefix(prefix Path) bool {
	return len(prefix) <= len(p) && slices.Equal(p[:len(prefix)], prefix)
}

// Compare orders paths in pre-order: an ancestor sorts before its
// descendants and siblings sort by index.
func (p Path) Compare(other Path) int {
	return slices.Compare(p, other)
}

func (p Path) reverse() Path {
	slices.Reverse(p)
	return p
}
