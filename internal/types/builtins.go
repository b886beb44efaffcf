package types

// Signature describes a callable's parameter and return types.
type Signature struct {
	Params []TypeID
	Result TypeID
	// Variadic disables the arity check; каждый аргумент всё равно
	// проверяется на совместимость с единственным параметром.
	Variadic bool
}

var builtinNames = []string{"print", "len", "is_empty", "get", "push", "range"}

// BuiltinNames returns the builtin function names in registration order.
func BuiltinNames() []string {
	return builtinNames
}

// BuiltinFuncs builds the builtin signature table against the interner.
// print takes any number of arguments; get and push return Any/List[Any]
// rather than recovering the element type, matching the language's
// declared signatures.
func BuiltinFuncs(in *Interner) map[string]Signature {
	b := in.Builtins()
	listAny := in.List(b.Any)
	return map[string]Signature{
		"print":    {Params: []TypeID{b.Any}, Result: b.Void, Variadic: true},
		"len":      {Params: []TypeID{listAny}, Result: b.Int},
		"is_empty": {Params: []TypeID{listAny}, Result: b.Bool},
		"get":      {Params: []TypeID{listAny, b.Int}, Result: b.Any},
		"push":     {Params: []TypeID{listAny, b.Any}, Result: listAny},
		"range":    {Params: []TypeID{b.Int, b.Int}, Result: in.List(b.Int)},
	}
}
