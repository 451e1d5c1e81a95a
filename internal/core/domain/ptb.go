package domain

type ObjectArgKind string

const (
	// ObjectArgImmOrOwned references an address-owned object at a pinned
	// version and digest.
	ObjectArgImmOrOwned ObjectArgKind = "imm_or_owned"
	// ObjectArgShared references a shared object by its initial shared
	// version, mutably or not.
	ObjectArgShared ObjectArgKind = "shared"
)

// ObjectArg is an object input of a programmable transaction.
type ObjectArg struct {
	Kind                 ObjectArgKind
	Ref                  ObjectRef
	InitialSharedVersion uint64
	Mutable              bool
}

// SharedObjectArg builds a mutably or immutably borrowed shared object input.
func SharedObjectArg(id ObjectID, initialVersion uint64, mutable bool) ObjectArg {
	return ObjectArg{
		Kind:                 ObjectArgShared,
		Ref:                  ObjectRef{ID: id},
		InitialSharedVersion: initialVersion,
		Mutable:              mutable,
	}
}

// OwnedObjectArg builds an imm-or-owned object input from a pinned reference.
func OwnedObjectArg(ref ObjectRef) ObjectArg {
	return ObjectArg{Kind: ObjectArgImmOrOwned, Ref: ref}
}

// CallInput is one input slot of a programmable transaction: either an object
// or a pure (BCS-encodable) value. Inputs are registered once and may be
// referenced as arguments by every call in the same transaction.
type CallInput struct {
	Object *ObjectArg
	// Pure holds a uint64, a uint8 or an Address.
	Pure any
}

// Argument refers to a registered input slot by position.
type Argument struct {
	Input int
}

// MoveCall is one programmable Move call.
type MoveCall struct {
	Package  ObjectID
	Module   string
	Function string
	TypeArgs []string
	Args     []Argument
}

// ProgrammableTx is the transaction-agnostic representation of a programmable
// transaction block: ordered input slots plus ordered Move calls referencing
// them. The infrastructure adapter translates it into the SDK's builder; the
// core only ever constructs and inspects it.
type ProgrammableTx struct {
	Inputs []CallInput
	Calls  []MoveCall
}

// AddObject registers an object input slot and returns the argument that
// refers to it.
func (p *ProgrammableTx) AddObject(arg ObjectArg) Argument {
	obj := arg
	p.Inputs = append(p.Inputs, CallInput{Object: &obj})
	return Argument{Input: len(p.Inputs) - 1}
}

// AddPure registers a pure value input slot and returns the argument that
// refers to it.
func (p *ProgrammableTx) AddPure(value any) Argument {
	p.Inputs = append(p.Inputs, CallInput{Pure: value})
	return Argument{Input: len(p.Inputs) - 1}
}

// AddCall appends a Move call. Call order is execution order.
func (p *ProgrammableTx) AddCall(call MoveCall) {
	p.Calls = append(p.Calls, call)
}
