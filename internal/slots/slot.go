package slots

import "fmt"

// ID identifies a single slot position.
type ID uint8

const (
	Repr ID = iota
	Str
	Hash
	Call
	GetAttribute
	GetAttr
	SetAttr
	DelAttr
	Eq
	Ne
	Lt
	Le
	Gt
	Ge
	Iter
	Next
	DescrGet
	DescrSet
	DescrDelete
	Init
	New
	Del
	Bool
	Len
	GetItem
	SetItem
	DelItem
	Contains
	Add
	RAdd
	Sub
	RSub
	Mul
	RMul
	TrueDiv
	RTrueDiv
	FloorDiv
	RFloorDiv
	Mod
	RMod
	And
	RAnd
	Or
	ROr
	Xor
	RXor
	Neg
	Pos
	Abs
	Invert
	Index
	Int
	Float
	InplaceAdd
	Await
	AIter
	ANext

	numSlots
)

// Count is the number of slot positions.
const Count = int(numSlots)

var slotNames = [numSlots]string{
	Repr:         "__repr__",
	Str:          "__str__",
	Hash:         "__hash__",
	Call:         "__call__",
	GetAttribute: "__getattribute__",
	GetAttr:      "__getattr__",
	SetAttr:      "__setattr__",
	DelAttr:      "__delattr__",
	Eq:           "__eq__",
	Ne:           "__ne__",
	Lt:           "__lt__",
	Le:           "__le__",
	Gt:           "__gt__",
	Ge:           "__ge__",
	Iter:         "__iter__",
	Next:         "__next__",
	DescrGet:     "__get__",
	DescrSet:     "__set__",
	DescrDelete:  "__delete__",
	Init:         "__init__",
	New:          "__new__",
	Del:          "__del__",
	Bool:         "__bool__",
	Len:          "__len__",
	GetItem:      "__getitem__",
	SetItem:      "__setitem__",
	DelItem:      "__delitem__",
	Contains:     "__contains__",
	Add:          "__add__",
	RAdd:         "__radd__",
	Sub:          "__sub__",
	RSub:         "__rsub__",
	Mul:          "__mul__",
	RMul:         "__rmul__",
	TrueDiv:      "__truediv__",
	RTrueDiv:     "__rtruediv__",
	FloorDiv:     "__floordiv__",
	RFloorDiv:    "__rfloordiv__",
	Mod:          "__mod__",
	RMod:         "__rmod__",
	And:          "__and__",
	RAnd:         "__rand__",
	Or:           "__or__",
	ROr:          "__ror__",
	Xor:          "__xor__",
	RXor:         "__rxor__",
	Neg:          "__neg__",
	Pos:          "__pos__",
	Abs:          "__abs__",
	Invert:       "__invert__",
	Index:        "__index__",
	Int:          "__int__",
	Float:        "__float__",
	InplaceAdd:   "__iadd__",
	Await:        "__await__",
	AIter:        "__aiter__",
	ANext:        "__anext__",
}

// String returns the dunder name of the slot.
func (id ID) String() string {
	if id < numSlots {
		return slotNames[id]
	}
	return fmt.Sprintf("slot(%d)", uint8(id))
}

// Valid reports whether id names a known slot.
func (id ID) Valid() bool {
	return id < numSlots
}

// Group returns the group id belongs to.
func (id ID) Group() Group {
	return groupOf[id]
}

// ByName returns the slot with the given dunder name.
func ByName(name string) (ID, bool) {
	for i, n := range slotNames {
		if n == name {
			return ID(i), true
		}
	}
	return 0, false
}

// Group is a family of slots that is overridden as a unit.
type Group uint8

const (
	GroupRepr Group = iota
	GroupStr
	GroupHash
	GroupCall
	GroupGetAttro
	GroupSetAttro
	GroupRichCompare
	GroupIter
	GroupIterNext
	GroupDescrGet
	GroupDescrSet
	GroupInit
	GroupNew
	GroupDel
	GroupBool
	GroupLength
	GroupSubscript
	GroupAssSubscript
	GroupContains
	GroupAdd
	GroupSubtract
	GroupMultiply
	GroupTrueDivide
	GroupFloorDivide
	GroupRemainder
	GroupAnd
	GroupOr
	GroupXor
	GroupNegative
	GroupPositive
	GroupAbsolute
	GroupInvert
	GroupIndex
	GroupInt
	GroupFloat
	GroupInplaceAdd
	GroupAwait
	GroupAIter
	GroupANext

	numGroups
)

var groupNames = [numGroups]string{
	GroupRepr:         "tp_repr",
	GroupStr:          "tp_str",
	GroupHash:         "tp_hash",
	GroupCall:         "tp_call",
	GroupGetAttro:     "tp_getattro",
	GroupSetAttro:     "tp_setattro",
	GroupRichCompare:  "tp_richcompare",
	GroupIter:         "tp_iter",
	GroupIterNext:     "tp_iternext",
	GroupDescrGet:     "tp_descr_get",
	GroupDescrSet:     "tp_descr_set",
	GroupInit:         "tp_init",
	GroupNew:          "tp_new",
	GroupDel:          "tp_finalize",
	GroupBool:         "nb_bool",
	GroupLength:       "sq_length",
	GroupSubscript:    "mp_subscript",
	GroupAssSubscript: "mp_ass_subscript",
	GroupContains:     "sq_contains",
	GroupAdd:          "nb_add",
	GroupSubtract:     "nb_subtract",
	GroupMultiply:     "nb_multiply",
	GroupTrueDivide:   "nb_true_divide",
	GroupFloorDivide:  "nb_floor_divide",
	GroupRemainder:    "nb_remainder",
	GroupAnd:          "nb_and",
	GroupOr:           "nb_or",
	GroupXor:          "nb_xor",
	GroupNegative:     "nb_negative",
	GroupPositive:     "nb_positive",
	GroupAbsolute:     "nb_absolute",
	GroupInvert:       "nb_invert",
	GroupIndex:        "nb_index",
	GroupInt:          "nb_int",
	GroupFloat:        "nb_float",
	GroupInplaceAdd:   "nb_inplace_add",
	GroupAwait:        "am_await",
	GroupAIter:        "am_aiter",
	GroupANext:        "am_anext",
}

var groupOf = [numSlots]Group{
	Repr:         GroupRepr,
	Str:          GroupStr,
	Hash:         GroupHash,
	Call:         GroupCall,
	GetAttribute: GroupGetAttro,
	GetAttr:      GroupGetAttro,
	SetAttr:      GroupSetAttro,
	DelAttr:      GroupSetAttro,
	Eq:           GroupRichCompare,
	Ne:           GroupRichCompare,
	Lt:           GroupRichCompare,
	Le:           GroupRichCompare,
	Gt:           GroupRichCompare,
	Ge:           GroupRichCompare,
	Iter:         GroupIter,
	Next:         GroupIterNext,
	DescrGet:     GroupDescrGet,
	DescrSet:     GroupDescrSet,
	DescrDelete:  GroupDescrSet,
	Init:         GroupInit,
	New:          GroupNew,
	Del:          GroupDel,
	Bool:         GroupBool,
	Len:          GroupLength,
	GetItem:      GroupSubscript,
	SetItem:      GroupAssSubscript,
	DelItem:      GroupAssSubscript,
	Contains:     GroupContains,
	Add:          GroupAdd,
	RAdd:         GroupAdd,
	Sub:          GroupSubtract,
	RSub:         GroupSubtract,
	Mul:          GroupMultiply,
	RMul:         GroupMultiply,
	TrueDiv:      GroupTrueDivide,
	RTrueDiv:     GroupTrueDivide,
	FloorDiv:     GroupFloorDivide,
	RFloorDiv:    GroupFloorDivide,
	Mod:          GroupRemainder,
	RMod:         GroupRemainder,
	And:          GroupAnd,
	RAnd:         GroupAnd,
	Or:           GroupOr,
	ROr:          GroupOr,
	Xor:          GroupXor,
	RXor:         GroupXor,
	Neg:          GroupNegative,
	Pos:          GroupPositive,
	Abs:          GroupAbsolute,
	Invert:       GroupInvert,
	Index:        GroupIndex,
	Int:          GroupInt,
	Float:        GroupFloat,
	InplaceAdd:   GroupInplaceAdd,
	Await:        GroupAwait,
	AIter:        GroupAIter,
	ANext:        GroupANext,
}

// groupMembers is derived from groupOf at init.
var groupMembers [numGroups][]ID

func init() {
	for i := ID(0); i < numSlots; i++ {
		g := groupOf[i]
		groupMembers[g] = append(groupMembers[g], i)
	}
}

// String returns the conventional C-level name of the group.
func (g Group) String() string {
	if g < numGroups {
		return groupNames[g]
	}
	return fmt.Sprintf("group(%d)", uint8(g))
}

// Members returns the slots belonging to g in slot order.
func (g Group) Members() []ID {
	if g >= numGroups {
		return nil
	}
	out := make([]ID, len(groupMembers[g]))
	copy(out, groupMembers[g])
	return out
}
