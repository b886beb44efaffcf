package driver

// Stage identifies where a file currently is in the pipeline.
type Stage uint8

const (
	// StageLex — файл лексируется.
	StageLex Stage = iota
	// StageParse — строится AST.
	StageParse
	// StageCheck — идёт семантический проход.
	StageCheck
	// StageDone — файл прошёл без ошибок.
	StageDone
	// StageError — файл дал хотя бы одну ошибку.
	StageError
)

func (s Stage) String() string {
	switch s {
	case StageLex:
		return "lex"
	case StageParse:
		return "parse"
	case StageCheck:
		return "check"
	case StageDone:
		return "done"
	default:
		return "error"
	}
}

// Event is one progress notification from CheckDir. Index/Total нумеруют
// файлы в отсортированном порядке обхода.
type Event struct {
	Path      string
	Index     int
	Total     int
	Stage     Stage
	FromCache bool
}

// ProgressFunc receives progress events. Вызывается из рабочих горутин —
// реализация обязана быть потокобезопасной (обычно это отправка в канал).
type ProgressFunc func(Event)

func (f ProgressFunc) emit(ev Event) {
	if f != nil {
		f(ev)
	}
}
