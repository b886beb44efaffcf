package types

// Compatible reports whether a value of type actual can be used where
// expected is required. The predicate is reflexive; Any and Unknown are
// compatible in both directions (Any is the interop wildcard, Unknown
// means the mismatch was already reported upstream); Int widens to Float
// but never the reverse; parameterized types compare constructor first,
// then arguments recursively, so List[Any] matches any List[T].
func (in *Interner) Compatible(expected, actual TypeID) bool {
	if expected == actual {
		return true
	}
	exp, okE := in.Lookup(expected)
	act, okA := in.Lookup(actual)
	if !okE || !okA {
		return false
	}

	if exp.Kind == KindAny || act.Kind == KindAny {
		return true
	}
	if exp.Kind == KindUnknown || act.Kind == KindUnknown {
		return true
	}

	// расширение Int -> Float, обратного нет
	if exp.Kind == KindFloat && act.Kind == KindInt {
		return true
	}

	if exp.Kind != act.Kind {
		return false
	}
	switch exp.Kind {
	case KindOption, KindList:
		return in.Compatible(exp.Elem, act.Elem)
	case KindResult:
		return in.Compatible(exp.Elem, act.Elem) && in.Compatible(exp.Err, act.Err)
	default:
		// одинаковые примитивы интернируются в один ID и ловятся
		// рефлексивной веткой выше
		return false
	}
}

// EqualityComparable reports whether `==`/`!=` accept the pair: the types
// must be interchangeable in both directions, so Int/Float mixes are
// rejected while Option[Any] still matches any Option[T].
func (in *Interner) EqualityComparable(left, right TypeID) bool {
	return in.Compatible(left, right) && in.Compatible(right, left)
}
