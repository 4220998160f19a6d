package builtins

import (
	"github.com/vk/typeslots/internal/slots"
	"github.com/vk/typeslots/internal/units"
)

// containerUnits contributes the slots of the strings, sequences, mappings and sets.
var containerUnits = []*units.Unit{
	unit("StringBuiltins", []string{"PString"},
		slots.Repr, slots.Str, slots.Hash, slots.Eq, slots.Ne, slots.Lt, slots.Le, slots.Gt, slots.Ge,
		slots.Iter, slots.Len, slots.GetItem, slots.Contains, slots.Add, slots.Mul, slots.RMul,
		slots.Mod, slots.RMod, slots.New),
	unit("BytesCommonBuiltins", []string{"PBytes", "PByteArray"},
		slots.Iter, slots.Len, slots.GetItem, slots.Contains, slots.Add, slots.Mul, slots.RMul,
		slots.Mod, slots.RMod),
	unit("BytesBuiltins", []string{"PBytes"},
		slots.Repr, slots.Str, slots.Hash, slots.Eq, slots.Ne, slots.Lt, slots.Le, slots.Gt, slots.Ge,
		slots.New),
	unit("ByteArrayBuiltins", []string{"PByteArray"},
		slots.Repr, slots.Str, slots.Eq, slots.Ne, slots.Lt, slots.Le, slots.Gt, slots.Ge, slots.SetItem,
		slots.DelItem, slots.InplaceAdd, slots.Init),
	unit("ListBuiltins", []string{"PList"},
		slots.Repr, slots.Eq, slots.Ne, slots.Lt, slots.Le, slots.Gt, slots.Ge, slots.Iter, slots.Init,
		slots.Len, slots.GetItem, slots.SetItem, slots.DelItem, slots.Contains, slots.Add, slots.Mul,
		slots.RMul, slots.InplaceAdd, slots.New),
	unit("TupleBuiltins", []string{"PTuple"},
		slots.Repr, slots.Hash, slots.Eq, slots.Ne, slots.Lt, slots.Le, slots.Gt, slots.Ge, slots.Iter,
		slots.Len, slots.GetItem, slots.Contains, slots.Add, slots.Mul, slots.RMul, slots.New),
	unit("RangeBuiltins", []string{"PRange"},
		slots.Repr, slots.Hash, slots.Eq, slots.Ne, slots.Lt, slots.Le, slots.Gt, slots.Ge, slots.Bool,
		slots.Iter, slots.Len, slots.GetItem, slots.Contains, slots.New),
	unit("MemoryViewBuiltins", []string{"PMemoryView"},
		slots.Repr, slots.Hash, slots.Eq, slots.Ne, slots.Lt, slots.Le, slots.Gt, slots.Ge, slots.Iter,
		slots.Len, slots.GetItem, slots.SetItem, slots.DelItem, slots.New),
	unit("ArrayBuiltins", []string{"PArray"},
		slots.Repr, slots.Eq, slots.Ne, slots.Lt, slots.Le, slots.Gt, slots.Ge, slots.Iter, slots.Len,
		slots.GetItem, slots.SetItem, slots.DelItem, slots.Contains, slots.Add, slots.Mul, slots.RMul,
		slots.InplaceAdd, slots.New),
	unit("MMapBuiltins", []string{"PMMap"},
		slots.Repr, slots.Len, slots.GetItem, slots.SetItem, slots.DelItem, slots.Iter, slots.Next,
		slots.New),
	unit("IteratorBuiltins", []string{
		"PArrayIterator", "PIterator", "PDictKeyIterator", "PDictReverseKeyIterator",
		"PDictValueIterator", "PDictReverseValueIterator", "PDictItemIterator",
		"PDictReverseItemIterator",
	},
		slots.Iter, slots.Next),
	unit("SentinelIteratorBuiltins", []string{"PSentinelIterator"}, slots.Iter, slots.Next),
	unit("EnumerateBuiltins", []string{"PEnumerate"}, slots.Iter, slots.Next, slots.New),
	unit("MapBuiltins", []string{"PMap"}, slots.Iter, slots.Next, slots.New),
	unit("PZipBuiltins", []string{"PZip"}, slots.Iter, slots.Next, slots.New),
	unit("ReversedBuiltins", []string{"PReverseIterator"}, slots.Iter, slots.Next, slots.New),
	unit("StructSequenceBuiltins", []string{
		"PStatResult", "PStatvfsResult", "PTerminalSize", "PUnameResult", "PStructTime",
		"PProfilerEntry", "PProfilerSubentry", "PStructPasswd", "PStructRusage", "PVersionInfo",
		"PWindowsVersion", "PFlags", "PFloatInfo", "PIntInfo", "PHashInfo", "PThreadInfo",
		"PUnraisableHookArgs",
	},
		slots.Repr, slots.New),
	unit("DictBuiltins", []string{"PDict"},
		slots.Eq, slots.Ne, slots.Lt, slots.Le, slots.Gt, slots.Ge, slots.Iter, slots.Init, slots.Len,
		slots.GetItem, slots.SetItem, slots.DelItem, slots.Contains, slots.Or, slots.ROr, slots.New),
	unit("DictReprBuiltin", []string{"PDict", "PDictKeysView", "PDictItemsView", "PDictValuesView"},
		slots.Repr),
	unit("DictViewBuiltins", []string{"PDictKeysView", "PDictItemsView"},
		slots.Iter, slots.Len, slots.Contains, slots.Eq, slots.Ne, slots.Lt, slots.Le, slots.Gt,
		slots.Ge, slots.Sub, slots.RSub, slots.And, slots.RAnd, slots.Or, slots.ROr, slots.Xor,
		slots.RXor),
	unit("DictValuesBuiltins", []string{"PDictValuesView"}, slots.Iter, slots.Len),
	unit("BaseSetBuiltins", []string{"PSet", "PFrozenSet"},
		slots.Repr, slots.Iter, slots.Len, slots.Contains, slots.Eq, slots.Ne, slots.Lt, slots.Le,
		slots.Gt, slots.Ge, slots.Sub, slots.RSub, slots.And, slots.RAnd, slots.Or, slots.ROr, slots.Xor,
		slots.RXor),
	unit("SetBuiltins", []string{"PSet"}, slots.Init, slots.New),
	unit("DefaultDictBuiltins", []string{"PDefaultDict"}, slots.Repr, slots.Init, slots.Or, slots.ROr),
	unit("OrderedDictBuiltins", []string{"POrderedDict"},
		slots.Repr, slots.Eq, slots.Ne, slots.Lt, slots.Le, slots.Gt, slots.Ge, slots.Iter, slots.Init,
		slots.SetItem, slots.DelItem, slots.Or, slots.ROr),
	unit("OrderedDictKeysBuiltins", []string{"POrderedDictKeys"}, slots.Iter),
	unit("OrderedDictValuesBuiltins", []string{"POrderedDictValues"}, slots.Iter),
	unit("OrderedDictItemsBuiltins", []string{"POrderedDictItems"}, slots.Iter),
	unit("OrderedDictIteratorBuiltins", []string{"POrderedDictIterator"}, slots.Iter, slots.Next),
	unit("DequeBuiltins", []string{"PDeque"},
		slots.Repr, slots.Eq, slots.Ne, slots.Lt, slots.Le, slots.Gt, slots.Ge, slots.Iter, slots.Init,
		slots.Bool, slots.Len, slots.GetItem, slots.SetItem, slots.DelItem, slots.Contains, slots.Add,
		slots.Mul, slots.RMul, slots.InplaceAdd, slots.New),
	unit("DequeIterBuiltins", []string{"PDequeIter", "PDequeRevIter"},
		slots.Iter, slots.Next, slots.New),
	unit("TupleGetterBuiltins", []string{"PTupleGetter"},
		slots.DescrGet, slots.DescrSet, slots.DescrDelete, slots.New),
	unit("PartialBuiltins", []string{"PPartial"}, slots.Repr, slots.Call, slots.New),
	unit("LruCacheWrapperBuiltins", []string{"PLruCacheWrapper"},
		slots.Call, slots.DescrGet, slots.New),
	unit("ContextBuiltins", []string{"ContextVarsContext"},
		slots.Iter, slots.Len, slots.GetItem, slots.Contains, slots.New),
	unit("ContextIteratorBuiltins", []string{"ContextIterator"}, slots.Iter, slots.Next),
}
