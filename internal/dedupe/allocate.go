package dedupe

import (
	"strconv"

	"bibmerge/internal/bib"
)

// AllocateKey returns preferred when it is free in c, otherwise the first
// free key of the form preferred_1, preferred_2, ... It only reads c.
func AllocateKey(preferred string, c *bib.Collection) string {
	if !c.Has(preferred) {
		return preferred
	}
	for n := 1; ; n++ {
		key := preferred + "_" + strconv.Itoa(n)
		if !c.Has(key) {
			return key
		}
	}
}
