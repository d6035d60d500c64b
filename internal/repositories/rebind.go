package repositories

import (
	"strconv"
	"strings"
)

// rebind rewrites `?` placeholders to `$1..$n` for the postgres
// driver. Queries in this package contain no literal question marks,
// so a plain scan is sufficient.
func rebind(driver, query string) string {
	if driver != "postgres" {
		return query
	}
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
