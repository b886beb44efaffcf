package ast

import "owl/internal/source"

// ImportItem represents a `from python ... import ...` declaration.
//
// Две формы из грамматики:
//
//	from python import math as m          → Module пуст, Names = [math as m]
//	from python.os.path import join, exists → Module = [os, path]
//
// Семантика у обеих одинаковая: каждое имя (или его алиас) входит в
// файловую область с типом Any. Корень `python` не хранится — парсер
// проверяет его и дальше он всегда одинаковый.
type ImportItem struct {
	Module     []source.StringID // сегменты пути после `python`
	ModuleSpan source.Span       // охватывает python и сегменты
	Names      []ImportName
	Span       source.Span
}

// ImportName is one imported name with its optional alias.
type ImportName struct {
	Name      source.StringID
	NameSpan  source.Span
	Alias     source.StringID // NoStringID, если алиаса нет
	AliasSpan source.Span
	Span      source.Span
}

// Binding returns the name the import introduces into scope.
func (n ImportName) Binding() source.StringID {
	if n.Alias != source.NoStringID {
		return n.Alias
	}
	return n.Name
}

// BindingSpan returns the span of the introduced name.
func (n ImportName) BindingSpan() source.Span {
	if n.Alias != source.NoStringID {
		return n.AliasSpan
	}
	return n.NameSpan
}

// Import returns the ImportItem for the given ItemID, or nil/false if invalid.
func (i *Items) Import(id ItemID) (*ImportItem, bool) {
	item := i.Arena.Get(uint32(id))
	if item == nil || item.Kind != ItemImport {
		return nil, false
	}
	return i.Imports.Get(uint32(item.Payload)), true
}

// NewImport creates a new import item.
func (i *Items) NewImport(
	span source.Span,
	module []source.StringID,
	moduleSpan source.Span,
	names []ImportName,
) ItemID {
	payload := i.Imports.Allocate(ImportItem{
		Module:     append([]source.StringID(nil), module...),
		ModuleSpan: moduleSpan,
		Names:      append([]ImportName(nil), names...),
		Span:       span,
	})
	return i.New(ItemImport, span, PayloadID(payload))
}
