package types

import "testing"

func TestInternerBuiltins(t *testing.T) {
	in := NewInterner()
	b := in.Builtins()
	if b.Int == NoTypeID || b.Bool == NoTypeID || b.Any == NoTypeID {
		t.Fatalf("builtins not initialized")
	}
	intT, _ := in.Lookup(b.Int)
	if intT.Kind != KindInt {
		t.Fatalf("expected int kind, got %v", intT.Kind)
	}
	// Invalid зарезервирован за нулевым ID
	if b.Invalid != NoTypeID {
		t.Fatalf("Invalid = %d, want NoTypeID", b.Invalid)
	}
}

func TestInternerDeduplicatesDescriptors(t *testing.T) {
	in := NewInterner()
	opt1 := in.Option(in.Builtins().Int)
	opt2 := in.Option(in.Builtins().Int)
	if opt1 != opt2 {
		t.Fatalf("Option[Int] should be deduplicated")
	}
	list1 := in.List(in.Builtins().String)
	list2 := in.Intern(MakeList(in.Builtins().String))
	if list1 != list2 {
		t.Fatalf("List[String] should be deduplicated across helper and Intern")
	}
}

func TestResultArgumentsAffectIdentity(t *testing.T) {
	in := NewInterner()
	b := in.Builtins()
	ok := in.Result(b.Int, b.String)
	swapped := in.Result(b.String, b.Int)
	if ok == swapped {
		t.Fatalf("Result[Int, String] and Result[String, Int] must differ")
	}
}

func TestInternerString(t *testing.T) {
	in := NewInterner()
	b := in.Builtins()

	tests := []struct {
		id   TypeID
		want string
	}{
		{b.Int, "Int"},
		{b.Float, "Float"},
		{b.String, "String"},
		{b.Bool, "Bool"},
		{b.Void, "Void"},
		{b.Any, "Any"},
		{b.Unknown, "Unknown"},
		{in.Option(b.Int), "Option[Int]"},
		{in.Result(b.Int, b.String), "Result[Int, String]"},
		{in.List(b.Float), "List[Float]"},
		{in.Option(in.List(b.Int)), "Option[List[Int]]"},
		{NoTypeID, "?"},
	}
	for _, tt := range tests {
		if got := in.String(tt.id); got != tt.want {
			t.Errorf("String(%d) = %q, want %q", tt.id, got, tt.want)
		}
	}
}

func TestPrimitiveByName(t *testing.T) {
	in := NewInterner()
	b := in.Builtins()

	tests := []struct {
		name string
		want TypeID
		ok   bool
	}{
		{"Int", b.Int, true},
		{"Float", b.Float, true},
		{"String", b.String, true},
		{"Bool", b.Bool, true},
		{"Void", b.Void, true},
		// Any не является примитивом для аннотаций
		{"Any", NoTypeID, false},
		{"Unknown", NoTypeID, false},
		{"int", NoTypeID, false},
		{"MyType", NoTypeID, false},
	}
	for _, tt := range tests {
		got, ok := in.PrimitiveByName(tt.name)
		if got != tt.want || ok != tt.ok {
			t.Errorf("PrimitiveByName(%q) = %d, %v; want %d, %v", tt.name, got, ok, tt.want, tt.ok)
		}
	}
}

func TestGenericArity(t *testing.T) {
	tests := []struct {
		name  string
		arity int
		ok    bool
	}{
		{"Option", 1, true},
		{"Result", 2, true},
		{"List", 1, true},
		{"Int", 0, false},
		{"Some", 0, false},
	}
	for _, tt := range tests {
		arity, ok := GenericArity(tt.name)
		if arity != tt.arity || ok != tt.ok {
			t.Errorf("GenericArity(%q) = %d, %v; want %d, %v", tt.name, arity, ok, tt.arity, tt.ok)
		}
	}
}

func TestInstantiateGeneric(t *testing.T) {
	in := NewInterner()
	b := in.Builtins()

	opt, ok := in.InstantiateGeneric("Option", []TypeID{b.Int})
	if !ok || opt != in.Option(b.Int) {
		t.Errorf("InstantiateGeneric Option = %d, %v", opt, ok)
	}
	res, ok := in.InstantiateGeneric("Result", []TypeID{b.Int, b.String})
	if !ok || res != in.Result(b.Int, b.String) {
		t.Errorf("InstantiateGeneric Result = %d, %v", res, ok)
	}
	if _, ok := in.InstantiateGeneric("Option", []TypeID{b.Int, b.Int}); ok {
		t.Error("InstantiateGeneric must reject wrong arity")
	}
	if _, ok := in.InstantiateGeneric("Map", []TypeID{b.Int}); ok {
		t.Error("InstantiateGeneric must reject unknown constructors")
	}
}

func TestBuiltinFuncs(t *testing.T) {
	in := NewInterner()
	b := in.Builtins()
	funcs := BuiltinFuncs(in)

	for _, name := range BuiltinNames() {
		if _, ok := funcs[name]; !ok {
			t.Errorf("builtin %q missing from the table", name)
		}
	}
	if len(funcs) != len(BuiltinNames()) {
		t.Errorf("table has %d entries, names list has %d", len(funcs), len(BuiltinNames()))
	}

	printSig := funcs["print"]
	if !printSig.Variadic || printSig.Result != b.Void {
		t.Errorf("print signature = %+v", printSig)
	}
	lenSig := funcs["len"]
	if lenSig.Variadic || lenSig.Result != b.Int || len(lenSig.Params) != 1 {
		t.Errorf("len signature = %+v", lenSig)
	}
	if lenSig.Params[0] != in.List(b.Any) {
		t.Errorf("len param = %s, want List[Any]", in.String(lenSig.Params[0]))
	}
	rangeSig := funcs["range"]
	if rangeSig.Result != in.List(b.Int) {
		t.Errorf("range result = %s, want List[Int]", in.String(rangeSig.Result))
	}
}
