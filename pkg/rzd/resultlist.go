package rzd

import (
	"fmt"
	"strings"
)

// ResultList is an ordered, immutable sequence of decoded records. The
// order always mirrors the upstream response order; decoders never
// re-sort or deduplicate it.
type ResultList[T fmt.Stringer] []T

func NewResultList[T fmt.Stringer](items []T) ResultList[T] {
	return ResultList[T](items)
}

func (l ResultList[T]) IsEmpty() bool {
	return len(l) == 0
}

func (l ResultList[T]) Len() int {
	return len(l)
}

func (l ResultList[T]) String() string {
	var b strings.Builder
	for _, item := range l {
		b.WriteString(item.String())
		b.WriteString("\n")
	}

	return b.String()
}
