package diagfmt

// PathMode specifies how file paths are displayed.
type PathMode uint8

const (
	// PathModeAuto chooses relative or absolute path automatically.
	PathModeAuto PathMode = iota
	// PathModeAbsolute always uses absolute paths.
	PathModeAbsolute
	PathModeRelative
	PathModeBasename
)

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	Color    bool
	PathMode PathMode
	// DenyWarnings раскрашивает warning'и цветом ошибок: под -W они
	// фатальны и должны выглядеть соответствующе.
	DenyWarnings bool
	ShowHints    bool
	ShowNotes    bool
}

// JSONOpts configures JSON output of diagnostics.
type JSONOpts struct {
	// Version попадает в корень отчёта, чтобы потребители могли
	// зафиксировать схему.
	Version  string
	PathMode PathMode
	Max      int // обрезка вывода, не Bag
}
