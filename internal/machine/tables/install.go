package tables

import "github.com/shapestone/yeast/internal/machine"

// Install registers every production this package implements into r, under
// its grammar-rule name with no t or context parameter; s-indent is filed
// under the n-taking table, the others under the plain one. Mirrors
// _examples/original_source/test_src.c's per-production registration, which
// drives one machine at a time by name for isolated testing rather than
// only ever running the full top-level stream production.
func Install(r *machine.Registry) {
	r.Register("l-comment", false, false, "", Comment())
	r.Register("l-directive", false, false, "", Directive())
	r.Register("s-indent", true, false, "", Indent())
}
