package ast

import (
	"owl/internal/source"
)

type ItemKind uint8

const (
	// ItemFn is a function declaration.
	ItemFn ItemKind = iota
	// ItemImport is a `from python ... import ...` declaration.
	ItemImport
	// ItemStmt wraps a top-level statement (script mode).
	ItemStmt
	// ItemBad marks a malformed top-level region produced by recovery.
	ItemBad
)

type Item struct {
	Kind    ItemKind
	Span    source.Span
	Payload PayloadID
}

// Items allocates top-level declarations and their payloads. Для ItemStmt
// Payload хранит сам StmtID — отдельная арена под одну ссылку не нужна.
type Items struct {
	Arena    *Arena[Item]
	Fns      *Arena[FnItem]
	FnParams *Arena[FnParam]
	Imports  *Arena[ImportItem]
}

func NewItems(capHint uint) *Items {
	if capHint == 0 {
		capHint = 1 << 6
	}
	return &Items{
		Arena:    NewArena[Item](capHint),
		Fns:      NewArena[FnItem](capHint),
		FnParams: NewArena[FnParam](capHint),
		Imports:  NewArena[ImportItem](capHint),
	}
}

func (i *Items) New(kind ItemKind, span source.Span, payloadID PayloadID) ItemID {
	return ItemID(i.Arena.Allocate(Item{
		Kind:    kind,
		Span:    span,
		Payload: payloadID,
	}))
}

func (i *Items) Get(id ItemID) *Item {
	return i.Arena.Get(uint32(id))
}

// NewStmtItem wraps a top-level statement into an item.
func (i *Items) NewStmtItem(span source.Span, stmt StmtID) ItemID {
	return i.New(ItemStmt, span, PayloadID(stmt))
}

// Stmt returns the wrapped statement of an ItemStmt.
func (i *Items) Stmt(id ItemID) (StmtID, bool) {
	item := i.Get(id)
	if item == nil || item.Kind != ItemStmt {
		return NoStmtID, false
	}
	return StmtID(item.Payload), true
}

// NewBad records a malformed top-level region.
func (i *Items) NewBad(span source.Span) ItemID {
	return i.New(ItemBad, span, NoPayloadID)
}
