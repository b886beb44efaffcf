package types

// PrimitiveByName resolves the canonical primitive annotation names.
// Any намеренно отсутствует: пользователь не может его написать.
func (in *Interner) PrimitiveByName(name string) (TypeID, bool) {
	switch name {
	case "Int":
		return in.builtins.Int, true
	case "Float":
		return in.builtins.Float, true
	case "String":
		return in.builtins.String, true
	case "Bool":
		return in.builtins.Bool, true
	case "Void":
		return in.builtins.Void, true
	default:
		return NoTypeID, false
	}
}

// GenericArity returns the type-parameter count for the parameterized
// type constructors.
func GenericArity(name string) (int, bool) {
	switch name {
	case "Option":
		return 1, true
	case "Result":
		return 2, true
	case "List":
		return 1, true
	default:
		return 0, false
	}
}

// InstantiateGeneric builds the parameterized type for a constructor name
// whose arity has already been validated.
func (in *Interner) InstantiateGeneric(name string, args []TypeID) (TypeID, bool) {
	switch {
	case name == "Option" && len(args) == 1:
		return in.Option(args[0]), true
	case name == "Result" && len(args) == 2:
		return in.Result(args[0], args[1]), true
	case name == "List" && len(args) == 1:
		return in.List(args[0]), true
	default:
		return NoTypeID, false
	}
}
