// SPDX-License-Identifier: MIT

package enums

import "fmt"

// family describes one enumeration: member i has names[i] and natives[i].
type family struct {
	kind    string
	names   []string
	natives []int32
}

func (f *family) native(i uint8) int32 {
	if int(i) >= len(f.natives) {
		panic(fmt.Sprintf("enums: undeclared %s value %d", f.kind, i))
	}

	return f.natives[i]
}

func (f *family) name(i uint8) string {
	if int(i) >= len(f.names) {
		return fmt.Sprintf("%s(%d)", f.kind, i)
	}

	return f.names[i]
}

func fromNative[E ~uint8](f *family, code int32) E {
	for i, c := range f.natives {
		if c == code {
			return E(i)
		}
	}
	panic(fmt.Sprintf("enums: unknown %s native value %d", f.kind, code))
}

// Member is one catalog entry.
type Member struct {
	Name   string
	Native int32
}

// Family is one enumeration in the catalog.
type Family struct {
	Name    string
	Members []Member
}

var families = []*family{
	&orderFamily, &transposeFamily, &uploFamily, &diagFamily, &sideFamily,
	&eigenSortFamily, &filterEndFamily, &filterScaleFamily, &precFamily,
	&vegasModeFamily, &waveletFamily, &legendreFamily,
}

// Catalog returns every family in declaration order.
func Catalog() []Family {
	out := make([]Family, 0, len(families))
	for _, f := range families {
		ms := make([]Member, len(f.names))
		for i := range f.names {
			ms[i] = Member{Name: f.names[i], Native: f.natives[i]}
		}
		out = append(out, Family{Name: f.kind, Members: ms})
	}

	return out
}
