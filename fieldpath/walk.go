package fieldpath

import (
	"errors"
	"fmt"
	"strconv"
)

// SkipGroup may be returned by a WalkFunc visiting a group to skip its members.
var SkipGroup = errors.New("skip this group")

// WalkFunc is called for every group and leaf reachable from the root, with
// the concrete (indexed) path of the field. Absent groups are not visited.
type WalkFunc func(path string, f Field) error

// Walk visits the fields of root depth-first in PathFieldNames order. List
// elements are visited as groups named "list[i]".
func Walk(root Grouper, fn WalkFunc) error {
	return walkGroup(root, "", fn)
}

func walkGroup(g Grouper, prefix string, fn WalkFunc) error {
	for _, name := range g.PathFieldNames() {
		f, ok := g.PathField(name)
		if !ok {
			return fmt.Errorf("%s: listed field %q does not resolve", prefix, name)
		}

		if err := walkField(f, Join(prefix, Segment{Name: name}), fn); err != nil {
			return err
		}
	}

	return nil
}

func walkField(f Field, path string, fn WalkFunc) error {
	switch {
	case f.absent:
		return nil

	case f.IsLeaf():
		return fn(path, f)

	case f.group != nil:
		if err := fn(path, f); err != nil {
			if errors.Is(err, SkipGroup) {
				return nil
			}

			return err
		}

		return walkGroup(f.group, path, fn)

	case f.list != nil:
		for i := range f.Len() {
			if err := walkField(Group(f.Elem(i)), path+"["+strconv.Itoa(i)+"]", fn); err != nil {
				return err
			}
		}
	}

	return nil
}

// Leaves returns the concrete paths of every leaf reachable from root.
func Leaves(root Grouper) []string {
	var paths []string

	_ = Walk(root, func(path string, f Field) error {
		if f.IsLeaf() {
			paths = append(paths, path)
		}

		return nil
	})

	return paths
}
