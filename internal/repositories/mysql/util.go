// internal/repositories/mysql/util.go
package mysql

import "strings"

// placeholders menghasilkan "?, ?, ?, ..." sebanyak n.
func placeholders(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat("?,", n-1) + "?"
}

// tuples menghasilkan "(?,?),(?,?),..." untuk INSERT multi-baris.
func tuples(rows, cols int) string {
	if rows <= 0 || cols <= 0 {
		return ""
	}
	one := "(" + placeholders(cols) + ")"
	return strings.Repeat(one+",", rows-1) + one
}
