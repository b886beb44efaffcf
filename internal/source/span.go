package source

import "fmt"

// Span is a half-open byte range [Start, End) inside a single file.
type Span struct {
	File  FileID
	Start uint32
	End   uint32
}

// NewSpan builds a Span; it panics when end < start because that is
// always a programmer error, never a user error.
func NewSpan(file FileID, start, end uint32) Span {
	if end < start {
		panic(fmt.Sprintf("source: invalid span [%d, %d)", start, end))
	}
	return Span{File: file, Start: start, End: end}
}

// Empty reports whether the span covers zero bytes.
func (s Span) Empty() bool { return s.Start == s.End }

// Len returns the number of bytes the span covers.
func (s Span) Len() uint32 { return s.End - s.Start }

// Contains reports whether the byte offset off lies inside the span.
func (s Span) Contains(off uint32) bool { return s.Start <= off && off < s.End }

// Cover returns the smallest span covering both s and other.
// Оба span'а должны принадлежать одному файлу.
func (s Span) Cover(other Span) Span {
	if s.File != other.File {
		panic("source: cover of spans from different files")
	}
	out := s
	if other.Start < out.Start {
		out.Start = other.Start
	}
	if other.End > out.End {
		out.End = other.End
	}
	return out
}

func (s Span) String() string {
	return fmt.Sprintf("%d:[%d,%d)", s.File, s.Start, s.End)
}
