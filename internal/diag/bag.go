package diag

import (
	"math"
	"sort"

	"fortio.org/safecast"

	"owl/internal/source"
)

// Bag accumulates diagnostics for one compilation unit up to a fixed cap.
type Bag struct {
	items   []Diagnostic
	max     uint16
	dropped int
}

// NewBag creates a Bag that holds at most max diagnostics.
// max is clamped to [0, 65535].
func NewBag(max int) *Bag {
	capped := clampCap(max)
	return &Bag{
		items: make([]Diagnostic, 0, capped),
		max:   capped,
	}
}

func clampCap(n int) uint16 {
	if n < 0 {
		return 0
	}
	capped, err := safecast.Conv[uint16](n)
	if err != nil {
		return math.MaxUint16
	}
	return capped
}

// Add добавляет диагностику, учитывая лимит.
// Возвращает false, если диагностика не добавлена (достигнут лимит).
func (b *Bag) Add(d Diagnostic) bool {
	if len(b.items) >= int(b.max) {
		b.dropped++
		return false
	}
	b.items = append(b.items, d)
	return true
}

func (b *Bag) Cap() uint16 {
	return b.max
}

// Dropped returns how many diagnostics were rejected by the cap.
func (b *Bag) Dropped() int {
	return b.dropped
}

// HasErrors возвращает true, если есть хотя бы одна диагностика с Severity >= Error
func (b *Bag) HasErrors() bool {
	for i := range b.items {
		if b.items[i].Severity >= SevError {
			return true
		}
	}
	return false
}

// HasWarnings возвращает true, если есть хотя бы одна диагностика с Severity >= Warning
func (b *Bag) HasWarnings() bool {
	for i := range b.items {
		if b.items[i].Severity >= SevWarning {
			return true
		}
	}
	return false
}

// ErrorCount returns the number of diagnostics with exactly SevError.
func (b *Bag) ErrorCount() int {
	n := 0
	for i := range b.items {
		if b.items[i].Severity == SevError {
			n++
		}
	}
	return n
}

// WarningCount returns the number of diagnostics with exactly SevWarning.
func (b *Bag) WarningCount() int {
	n := 0
	for i := range b.items {
		if b.items[i].Severity == SevWarning {
			n++
		}
	}
	return n
}

// длина
func (b *Bag) Len() int {
	return len(b.items)
}

// Items возвращает read-only slice диагностик.
// ВАЖНО: не модифицируйте возвращаемый срез! (он указывает на внутренний массив Bag)
func (b *Bag) Items() []Diagnostic {
	return b.items
}

// Merge объединяет диагностики из другого Bag.
// Увеличивает max, если нужно вместить все элементы.
func (b *Bag) Merge(other *Bag) {
	if other == nil {
		return
	}
	newTotal := clampCap(len(b.items) + len(other.items))
	if newTotal > b.max {
		b.max = newTotal
	}
	b.items = append(b.items, other.items...)
	b.dropped += other.dropped
}

// Sort сортирует диагностики по: file, start, end, severity (desc), code (asc)
// для стабильного и детерминированного порядка вывода.
// Равные по всем ключам элементы сохраняют порядок добавления.
func (b *Bag) Sort() {
	sort.SliceStable(b.items, func(i, j int) bool {
		di, dj := b.items[i], b.items[j]
		if di.Primary.File != dj.Primary.File {
			return di.Primary.File < dj.Primary.File
		}
		if di.Primary.Start != dj.Primary.Start {
			return di.Primary.Start < dj.Primary.Start
		}
		if di.Primary.End != dj.Primary.End {
			return di.Primary.End < dj.Primary.End
		}
		// severity по убыванию: Error > Warning > Info
		if di.Severity != dj.Severity {
			return di.Severity > dj.Severity
		}
		return di.Code < dj.Code
	})
}

// Dedup removes duplicates that share (code, primary span, message).
// Diagnostics without a span are kept as-is: whole-file notices may
// legitimately repeat.
func (b *Bag) Dedup() {
	type dupKey struct {
		code Code
		span source.Span
		msg  string
	}
	seen := make(map[dupKey]struct{}, len(b.items))
	newitems := make([]Diagnostic, 0, len(b.items))
	for _, d := range b.items {
		if d.HasSpan() {
			key := dupKey{code: d.Code, span: d.Primary, msg: d.Message}
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
		}
		newitems = append(newitems, d)
	}
	b.items = newitems
}
