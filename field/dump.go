// SPDX-License-Identifier: MIT

package field

import (
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
)

// String renders every row as bracketed cells followed by a newline:
//
//	[1][2][3]
//	[4][5][6]
//
// It is meant for debugging and is not a stable format.
func (f *Field[T]) String() string {
	var b strings.Builder
	for _, row := range f.data {
		writeRow(&b, row)
		b.WriteByte('\n')
	}
	return b.String()
}

// Dump writes String() to w.
func (f *Field[T]) Dump(w io.Writer) error {
	_, err := io.WriteString(w, f.String())
	return err
}

// DebugLog emits one debug entry per row on the package logger.
func (f *Field[T]) DebugLog(msg string) {
	l := Logger()
	if ce := l.Check(zap.DebugLevel, msg); ce == nil {
		return
	}
	for r, row := range f.data {
		var b strings.Builder
		writeRow(&b, row)
		l.Debug(msg, zap.Int("row", r), zap.String("cells", b.String()))
	}
}

func writeRow[T any](b *strings.Builder, row []T) {
	for _, v := range row {
		fmt.Fprintf(b, "[%v]", v)
	}
}
