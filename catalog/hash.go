package catalog

import (
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/pokedex"
)

// ContentHash fingerprints catalog entries with xxhash. Two catalogs with
// the same entries in the same order share a hash.
func ContentHash(entries []pokedex.Entry) string {
	d := xxhash.New()
	for _, e := range entries {
		_, _ = d.WriteString(e.Name)
		_, _ = d.WriteString("\x00")
		_, _ = d.WriteString(e.URL)
		_, _ = d.WriteString("\x00")
		_, _ = d.WriteString(strings.Join(e.Types, ","))
		_, _ = d.WriteString("\n")
	}
	return fmt.Sprintf("%x", d.Sum64())
}
