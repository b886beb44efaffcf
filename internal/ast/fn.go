package ast

import (
	"fmt"

	"fortio.org/safecast"

	"owl/internal/source"
)

// FnItem is a function declaration. ReturnType is NoTypeID when the arrow
// clause is absent (функция тогда Void); параметры лежат непрерывным
// блоком в Items.FnParams.
type FnItem struct {
	Name        source.StringID
	NameSpan    source.Span
	ParamsStart FnParamID
	ParamsCount uint32
	ReturnType  TypeID
	Body        StmtID // блок StmtBlock
	Span        source.Span
}

// FnParam is a single declared parameter. Type is NoTypeID when the
// annotation is omitted (параметр тогда Any).
type FnParam struct {
	Name     source.StringID
	NameSpan source.Span
	Type     TypeID
	Span     source.Span
}

// FnParamSpec is the parser-side shape of a parameter before allocation.
type FnParamSpec struct {
	Name     source.StringID
	NameSpan source.Span
	Type     TypeID
	Span     source.Span
}

func (i *Items) Fn(id ItemID) (*FnItem, bool) {
	item := i.Arena.Get(uint32(id))
	if item == nil || item.Kind != ItemFn {
		return nil, false
	}
	return i.Fns.Get(uint32(item.Payload)), true
}

func (i *Items) allocateParams(params []FnParamSpec) (start FnParamID, count uint32) {
	if len(params) == 0 {
		return NoFnParamID, 0
	}
	for idx, spec := range params {
		id := FnParamID(i.FnParams.Allocate(FnParam(spec)))
		if idx == 0 {
			start = id
		}
	}
	count, err := safecast.Conv[uint32](len(params))
	if err != nil {
		panic(fmt.Errorf("params count overflow: %w", err))
	}
	return start, count
}

// CollectParams returns a copy of the parameters starting at paramsStart.
func (i *Items) CollectParams(paramsStart FnParamID, paramsCount uint32) []FnParam {
	if paramsCount == 0 || !paramsStart.IsValid() {
		return nil
	}
	result := make([]FnParam, 0, paramsCount)

	base := uint32(paramsStart)
	for offset := range paramsCount {
		param := i.FnParams.Get(base + offset)
		if param == nil {
			continue
		}
		result = append(result, *param)
	}
	return result
}

func (i *Items) NewFn(
	name source.StringID,
	nameSpan source.Span,
	params []FnParamSpec,
	returnType TypeID,
	body StmtID,
	span source.Span,
) ItemID {
	paramsStart, paramsCount := i.allocateParams(params)
	payload := i.Fns.Allocate(FnItem{
		Name:        name,
		NameSpan:    nameSpan,
		ParamsStart: paramsStart,
		ParamsCount: paramsCount,
		ReturnType:  returnType,
		Body:        body,
		Span:        span,
	})
	return i.New(ItemFn, span, PayloadID(payload))
}
