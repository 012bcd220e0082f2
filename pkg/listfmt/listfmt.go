// Package listfmt renders a list as "k0->k1->...->kn" followed by a newline.
package listfmt

import (
	"io"
	"reflect"
	"strconv"
	"strings"
)

const (
	separator  = "->"
	emptyMsg   = "list is empty"
	missingMsg = "list does not exist"
)

// Reader is the read-only view the formatter needs. *linearlist.List
// satisfies it.
type Reader interface {
	Len() int
	At(i int) (int, bool)
}

// Fprint writes the rendered list to w.
func Fprint(w io.Writer, l Reader) error {
	_, err := io.WriteString(w, Sprint(l))
	return err
}

// Sprint returns the rendered list, including the trailing newline.
func Sprint(l Reader) string {
	if isNil(l) {
		return missingMsg + "\n"
	}
	n := l.Len()
	if n == 0 {
		return emptyMsg + "\n"
	}
	var b strings.Builder
	for i := 0; i < n; i++ {
		v, ok := l.At(i)
		if !ok {
			break
		}
		if i > 0 {
			b.WriteString(separator)
		}
		b.WriteString(strconv.Itoa(v))
	}
	b.WriteByte('\n')
	return b.String()
}

// isNil also catches a typed nil pointer stored in the interface.
func isNil(l Reader) bool {
	if l == nil {
		return true
	}
	v := reflect.ValueOf(l)
	return v.Kind() == reflect.Ptr && v.IsNil()
}
