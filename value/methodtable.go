// ==============================================================================================
// FILE: value/methodtable.go
// ==============================================================================================
// PACKAGE: value
// PURPOSE: Per-type name→method dispatch with layered inheritance-like fallback to a base table,
//          per §4.1. Tables are composed once at package-init time and never mutated afterward.
// ==============================================================================================

package value

// Method is a callable bound to a receiver: (self, args) -> Value. A Proc
// supplied as a block is passed as the trailing element of args; methods
// that accept a block inspect the last argument themselves.
type Method func(recv Value, args []Value) (Value, error)

// MethodTable is a name→Method mapping that optionally extends a base
// table. Lookup walks from the most specific layer upward; first hit wins,
// matching Object → Enumerable → Array-style composition.
type MethodTable struct {
	base  *MethodTable
	local map[string]Method
}

// NewMethodTable creates an empty table extending base (which may be nil).
func NewMethodTable(base *MethodTable) *MethodTable {
	return &MethodTable{base: base, local: make(map[string]Method)}
}

// RegisterFunc adds or overwrites a method under name in this table only.
func (t *MethodTable) RegisterFunc(name string, m Method) {
	t.local[name] = m
}

// Alias registers existing under alias as well, sharing the same callable.
func (t *MethodTable) Alias(alias, existing string) {
	if m, ok := t.local[existing]; ok {
		t.local[alias] = m
	}
}

// Lookup finds the method bound to name, searching this table then each
// base in turn.
func (t *MethodTable) Lookup(name string) (Method, bool) {
	for table := t; table != nil; table = table.base {
		if m, ok := table.local[name]; ok {
			return m, true
		}
	}
	return nil, false
}

// Call resolves name on recv's table and invokes it, or fails with
// NoMethodError per §4.1's total-dispatch contract.
func Call(recv Value, table *MethodTable, name string, args []Value) (Value, error) {
	m, ok := table.Lookup(name)
	if !ok {
		return nil, &NoMethodError{Receiver: recv.Type(), Name: name}
	}
	return m(recv, args)
}

// TableOf returns the MethodTable governing recv's dynamic type: one of
// the built-in per-variant tables, or a ViewModel's own table.
func TableOf(recv Value) *MethodTable {
	switch v := recv.(type) {
	case *Nil:
		return nilTable
	case *Boolean:
		return booleanTable
	case *Number:
		return numberTable
	case *String:
		return stringTable
	case *Symbol:
		return symbolTable
	case *Array:
		return arrayTable
	case *Hash:
		return hashTable
	case *Proc:
		return procTable
	case *Enumerator:
		return enumeratorTable
	case ViewModel:
		return v.MethodTable()
	default:
		return baseTable
	}
}

// tableOf is TableOf, bound in init so that the table initializers (whose
// methods call Dispatch) and TableOf (which names those tables) do not
// form a package initialization cycle.
var tableOf func(Value) *MethodTable

func init() { tableOf = TableOf }

// Dispatch is the single entry point eval uses to invoke a method call:
// resolve recv's table and call name on it with args.
func Dispatch(recv Value, name string, args []Value) (Value, error) {
	return Call(recv, tableOf(recv), name, args)
}
