package typedesc

import (
	"fmt"
	"sort"
	"strings"
)

// MethodFlags is a bitmask summarizing which fast-path operation categories
// a type declares itself. It is never inherited from the base type.
type MethodFlags uint64

const (
	NbAdd MethodFlags = 1 << iota
	NbSubtract
	NbMultiply
	NbRemainder
	NbDivmod
	NbPower
	NbNegative
	NbPositive
	NbAbsolute
	NbBool
	NbInvert
	NbLshift
	NbRshift
	NbAnd
	NbXor
	NbOr
	NbInt
	NbFloat
	NbInplaceAdd
	NbInplaceSubtract
	NbInplaceMultiply
	NbInplaceOr
	NbFloorDivide
	NbTrueDivide
	NbIndex
	NbMatrixMultiply
	SqLength
	SqConcat
	SqRepeat
	SqItem
	SqAssItem
	SqContains
	SqInplaceConcat
	SqInplaceRepeat
	MpLength
	MpSubscript
	MpAssSubscript
	AmAwait
	AmAiter
	AmAnext
	AmSend
)

// DefaultMethods is used by types that declare no fast-path operations.
const DefaultMethods MethodFlags = 0

const numericMethods = NbAdd | NbSubtract | NbMultiply | NbRemainder | NbDivmod | NbPower |
	NbNegative | NbPositive | NbAbsolute | NbBool | NbTrueDivide | NbFloorDivide | NbInt | NbFloat

const (
	IntMethods     = numericMethods | NbInvert | NbLshift | NbRshift | NbAnd | NbXor | NbOr | NbIndex
	BooleanMethods = IntMethods
	FloatMethods   = numericMethods
	ComplexMethods = NbAdd | NbSubtract | NbMultiply | NbPower | NbNegative | NbPositive |
		NbAbsolute | NbBool | NbTrueDivide
	StringMethods    = NbRemainder | SqLength | SqConcat | SqRepeat | SqItem | SqContains | MpLength | MpSubscript
	BytesMethods     = StringMethods
	ByteArrayMethods = BytesMethods | SqAssItem | SqInplaceConcat | SqInplaceRepeat | MpAssSubscript
	ListMethods      = SqLength | SqConcat | SqRepeat | SqItem | SqAssItem | SqContains |
		SqInplaceConcat | SqInplaceRepeat | MpLength | MpSubscript | MpAssSubscript
	TupleMethods                = SqLength | SqConcat | SqRepeat | SqItem | SqContains | MpLength | MpSubscript
	DictMethods                 = NbOr | NbInplaceOr | SqContains | MpLength | MpSubscript | MpAssSubscript
	SetMethods                  = NbSubtract | NbAnd | NbXor | NbOr | NbInplaceSubtract | NbInplaceOr | SqLength | SqContains
	FrozenSetMethods            = NbSubtract | NbAnd | NbXor | NbOr | SqLength | SqContains
	RangeMethods                = NbBool | SqLength | SqItem | SqContains | MpLength | MpSubscript
	MemoryViewMethods           = SqLength | SqItem | MpLength | MpSubscript | MpAssSubscript
	NoneMethods                 = NbBool
	TypeMethods                 = NbOr
	GenericAliasMethods         = NbOr | MpSubscript
	UnionTypeMethods            = NbOr
	DictKeysViewMethods         = NbSubtract | NbAnd | NbXor | NbOr | SqLength | SqContains
	DictItemsViewMethods        = DictKeysViewMethods
	DictValuesViewMethods       = SqLength
	DequeMethods                = SqLength | SqConcat | SqRepeat | SqItem | SqAssItem | SqContains | SqInplaceConcat | SqInplaceRepeat
	DefaultDictMethods          = DictMethods
	MappingProxyMethods         = NbOr | SqContains | MpLength | MpSubscript
	ContextMethods              = SqContains | MpLength | MpSubscript
	GeneratorMethods            = DefaultMethods
	CoroutineMethods            = AmAwait | AmSend
	AsyncGeneratorMethods       = AmAiter | AmAnext
	AsyncGeneratorASendMethods  = AmAwait
	AsyncGeneratorAThrowMethods = AmAwait
	ArrayMethods                = ListMethods
	MMapMethods                 = SqLength | SqItem | SqAssItem | SqContains | MpLength | MpSubscript | MpAssSubscript
	ForeignNumberMethods        = numericMethods | NbInvert | NbAnd | NbOr | NbXor | NbIndex
	PyCArrayMethods             = SqLength | SqItem | SqAssItem | MpSubscript | MpAssSubscript
	PyCPointerMethods           = NbBool | SqItem | SqAssItem | MpSubscript
	PyCTypeMethods              = SqRepeat
	SimpleCDataMethods          = NbBool
	PyCFuncPtrMethods           = NbBool
)

var bitNames = []string{
	"nb_add", "nb_subtract", "nb_multiply", "nb_remainder", "nb_divmod", "nb_power",
	"nb_negative", "nb_positive", "nb_absolute", "nb_bool", "nb_invert", "nb_lshift",
	"nb_rshift", "nb_and", "nb_xor", "nb_or", "nb_int", "nb_float", "nb_inplace_add",
	"nb_inplace_subtract", "nb_inplace_multiply", "nb_inplace_or", "nb_floor_divide",
	"nb_true_divide", "nb_index", "nb_matrix_multiply", "sq_length", "sq_concat",
	"sq_repeat", "sq_item", "sq_ass_item", "sq_contains", "sq_inplace_concat",
	"sq_inplace_repeat", "mp_length", "mp_subscript", "mp_ass_subscript", "am_await",
	"am_aiter", "am_anext", "am_send",
}

var methodPresets = map[string]MethodFlags{
	"default":                DefaultMethods,
	"int":                    IntMethods,
	"boolean":                BooleanMethods,
	"float":                  FloatMethods,
	"complex":                ComplexMethods,
	"string":                 StringMethods,
	"bytes":                  BytesMethods,
	"bytearray":              ByteArrayMethods,
	"list":                   ListMethods,
	"tuple":                  TupleMethods,
	"dict":                   DictMethods,
	"set":                    SetMethods,
	"frozenset":              FrozenSetMethods,
	"range":                  RangeMethods,
	"memoryview":             MemoryViewMethods,
	"none":                   NoneMethods,
	"type":                   TypeMethods,
	"generic_alias":          GenericAliasMethods,
	"union_type":             UnionTypeMethods,
	"dict_keys_view":         DictKeysViewMethods,
	"dict_items_view":        DictItemsViewMethods,
	"dict_values_view":       DictValuesViewMethods,
	"deque":                  DequeMethods,
	"defaultdict":            DefaultDictMethods,
	"mappingproxy":           MappingProxyMethods,
	"context":                ContextMethods,
	"generator":              GeneratorMethods,
	"coroutine":              CoroutineMethods,
	"async_generator":        AsyncGeneratorMethods,
	"async_generator_asend":  AsyncGeneratorASendMethods,
	"async_generator_athrow": AsyncGeneratorAThrowMethods,
	"array":                  ArrayMethods,
	"mmap":                   MMapMethods,
	"foreign_number":         ForeignNumberMethods,
	"pyc_array":              PyCArrayMethods,
	"pyc_pointer":            PyCPointerMethods,
	"pyc_type":               PyCTypeMethods,
	"simple_cdata":           SimpleCDataMethods,
	"pyc_funcptr":            PyCFuncPtrMethods,
}

// MethodPresets returns a copy of the named method-flag values available to
// manifests: every preset plus every individual bit under its C-level name.
func MethodPresets() map[string]MethodFlags {
	out := make(map[string]MethodFlags, len(methodPresets)+len(bitNames))
	for name, v := range methodPresets {
		out[name] = v
	}
	for i, name := range bitNames {
		out[name] = MethodFlags(1) << i
	}
	return out
}

// Has reports whether every bit of other is set in f.
func (f MethodFlags) Has(other MethodFlags) bool {
	return f&other == other
}

// Names returns the C-level names of the set bits in bit order.
func (f MethodFlags) Names() []string {
	var names []string
	for i, name := range bitNames {
		if f&(MethodFlags(1)<<i) != 0 {
			names = append(names, name)
		}
	}
	return names
}

func (f MethodFlags) String() string {
	if f == 0 {
		return "0"
	}
	names := f.Names()
	sort.Strings(names)
	return fmt.Sprintf("%#x(%s)", uint64(f), strings.Join(names, "|"))
}
