// Package ioutil provides the writer used by the RenderTo implementations.
package ioutil

import (
	"fmt"
	"io"
	"sync"

	"braces.dev/errtrace"
)

// CountingWriter accumulates the number of bytes written and the first write error.
// After an error all further writes are skipped, so a chain of writes needs
// a single check of [CountingWriter.Result] at the end.
type CountingWriter struct {
	w   io.Writer
	num int
	err error
}

func NewCountingWriter(w io.Writer) *CountingWriter { return &CountingWriter{w: w} }

func (cw *CountingWriter) track(n int, err error) (int, error) {
	cw.num += n
	if err != nil {
		cw.err = errtrace.Wrap(err)
	}
	return n, errtrace.Wrap(cw.err)
}

func (cw *CountingWriter) Write(p []byte) (int, error) {
	if cw.err != nil {
		return 0, errtrace.Wrap(cw.err)
	}
	return errtrace.Wrap2(cw.track(cw.w.Write(p)))
}

func (cw *CountingWriter) WriteString(s string) (int, error) {
	if cw.err != nil {
		return 0, errtrace.Wrap(cw.err)
	}
	return errtrace.Wrap2(cw.track(io.WriteString(cw.w, s)))
}

func (cw *CountingWriter) Fprint(args ...any) (int, error) {
	if cw.err != nil {
		return 0, errtrace.Wrap(cw.err)
	}
	return errtrace.Wrap2(cw.track(fmt.Fprint(cw.w, args...)))
}

// Call runs a RenderTo style function against the underlying writer.
func (cw *CountingWriter) Call(fn func(io.Writer) (int, error)) *CountingWriter {
	if cw.err == nil {
		cw.track(fn(cw.w)) //nolint:errcheck
	}
	return cw
}

// Each calls fn for every index in [0, n) and writes sep between the calls.
func (cw *CountingWriter) Each(n int, sep string, fn func(i int, w io.Writer) (int, error)) *CountingWriter {
	for i := 0; i < n && cw.err == nil; i++ {
		if i > 0 {
			cw.WriteString(sep) //nolint:errcheck
		}
		cw.Call(func(w io.Writer) (int, error) { return errtrace.Wrap2(fn(i, w)) })
	}
	return cw
}

// Result returns the total number of bytes written and the first error.
func (cw *CountingWriter) Result() (int, error) { return cw.num, errtrace.Wrap(cw.err) }

var cwPool = sync.Pool{
	New: func() any { return new(CountingWriter) },
}

// GetCountingWriter takes a writer from the pool, return it with [FreeCountingWriter].
func GetCountingWriter(w io.Writer) *CountingWriter {
	cw := cwPool.Get().(*CountingWriter) //nolint:forcetypeassert
	cw.w = w
	return cw
}

func FreeCountingWriter(cw *CountingWriter) {
	*cw = CountingWriter{}
	cwPool.Put(cw)
}
