package builtins

import (
	"github.com/vk/typeslots/internal/slots"
	"github.com/vk/typeslots/internal/units"
)

// moduleUnits contributes the slots of the extension modules.
var moduleUnits = []*units.Unit{
	unit("TeeBuiltins", []string{"PTee"}, slots.Iter, slots.Next, slots.New),
	unit("AccumulateBuiltins", []string{"PAccumulate"}, slots.Iter, slots.Next, slots.New),
	unit("CompressBuiltins", []string{"PCompress"}, slots.Iter, slots.Next, slots.New),
	unit("CycleBuiltins", []string{"PCycle"}, slots.Iter, slots.Next, slots.New),
	unit("DropwhileBuiltins", []string{"PDropwhile"}, slots.Iter, slots.Next, slots.New),
	unit("FilterfalseBuiltins", []string{"PFilterfalse"}, slots.Iter, slots.Next, slots.New),
	unit("GroupByBuiltins", []string{"PGroupBy"}, slots.Iter, slots.Next, slots.New),
	unit("PairwiseBuiltins", []string{"PPairwise"}, slots.Iter, slots.Next, slots.New),
	unit("PermutationsBuiltins", []string{"PPermutations"}, slots.Iter, slots.Next, slots.New),
	unit("ProductBuiltins", []string{"PProduct"}, slots.Iter, slots.Next, slots.New),
	unit("ChainBuiltins", []string{"PChain"}, slots.Iter, slots.Next, slots.New),
	unit("CountBuiltins", []string{"PCount"}, slots.Iter, slots.Next, slots.New),
	unit("IsliceBuiltins", []string{"PIslice"}, slots.Iter, slots.Next, slots.New),
	unit("StarmapBuiltins", []string{"PStarmap"}, slots.Iter, slots.Next, slots.New),
	unit("TakewhileBuiltins", []string{"PTakewhile"}, slots.Iter, slots.Next, slots.New),
	unit("ZipLongestBuiltins", []string{"PZipLongest"}, slots.Iter, slots.Next, slots.New),
	unit("CombinationsBuiltins", []string{"PCombinations", "PCombinationsWithReplacement"},
		slots.Iter, slots.Next, slots.New),
	unit("GrouperBuiltins", []string{"PGrouper"}, slots.Iter, slots.Next),
	unit("RepeatBuiltins", []string{"PRepeat"}, slots.Repr, slots.Iter, slots.Next, slots.New),
	unit("IOBaseBuiltins", []string{"PIOBase", "PRawIOBase", "PTextIOBase", "PBufferedIOBase"},
		slots.Iter, slots.Next, slots.Del),
	unit("BufferedReaderMixinBuiltins", []string{"PBufferedReader", "PBufferedRandom"}, slots.Next),
	unit("BufferedIOMixinBuiltins", []string{"PBufferedReader", "PBufferedWriter", "PBufferedRandom"},
		slots.Repr, slots.Init),
	unit("FileIOBuiltins", []string{"PFileIO"}, slots.Repr, slots.Init, slots.New, slots.Del),
	unit("TextIOWrapperBuiltins", []string{"PTextIOWrapper"}, slots.Repr, slots.Next, slots.Init),
	unit("StringIOBuiltins", []string{"PStringIO"}, slots.Next, slots.Init, slots.New),
	unit("BytesIOBuiltins", []string{"PBytesIO"}, slots.Iter, slots.Next, slots.Init, slots.New),
	unit("StgDictBuiltins", []string{"StgDict"}, slots.Init),
	unit("CDataTypeSequenceBuiltins", []string{
		"PyCStructType", "UnionType", "PyCPointerType", "PyCArrayType", "PyCSimpleType",
		"PyCFuncPtrType",
	},
		slots.Mul, slots.RMul),
	unit("PyCStructTypeBuiltins", []string{"PyCStructType"}, slots.SetAttr, slots.DelAttr),
	unit("CtypesUnionTypeBuiltins", []string{"UnionType"}, slots.SetAttr, slots.DelAttr),
	unit("PyCPointerBuiltins", []string{"PyCPointer"},
		slots.Bool, slots.GetItem, slots.SetItem, slots.DelItem, slots.Init, slots.New),
	unit("PyCArrayBuiltins", []string{"PyCArray"},
		slots.Len, slots.GetItem, slots.SetItem, slots.DelItem, slots.Init, slots.New),
	unit("SimpleCDataBuiltins", []string{"SimpleCData"},
		slots.Repr, slots.Bool, slots.Init, slots.New),
	unit("PyCFuncPtrBuiltins", []string{"PyCFuncPtr"}, slots.Repr, slots.Bool, slots.Call, slots.New),
	unit("CFieldBuiltins", []string{"CField"},
		slots.Repr, slots.DescrGet, slots.DescrSet, slots.DescrDelete),
	unit("CArgObjectBuiltins", []string{"CArgObject"}, slots.Repr),
	unit("ThreadLocalBuiltins", []string{"PThreadLocal"},
		slots.GetAttribute, slots.SetAttr, slots.DelAttr, slots.New),
	unit("LockBuiltins", []string{"PLock", "PRLock"}, slots.Repr, slots.New),
	unit("SocketBuiltins", []string{"PSocket"}, slots.Repr, slots.Init, slots.Del),
	unit("DirEntryBuiltins", []string{"PDirEntry"}, slots.Repr),
	unit("ScandirIteratorBuiltins", []string{"PScandirIterator"}, slots.Iter, slots.Next, slots.Del),
	unit("StructUnpackIteratorBuiltins", []string{"PStructUnpackIterator"},
		slots.Iter, slots.Next, slots.New),
	unit("HashObjectBuiltins", []string{"HashlibHash", "HashlibHmac"}, slots.Repr),
	unit("CSVReaderBuiltins", []string{"CSVReader"}, slots.Iter, slots.Next),
	unit("TokenizerIterBuiltins", []string{"PTokenizerIter"}, slots.Iter, slots.Next, slots.New),
	unit("ForeignObjectBuiltins", []string{"ForeignObject"},
		slots.Repr, slots.Str, slots.Hash, slots.Bool, slots.Call, slots.GetAttribute, slots.SetAttr,
		slots.DelAttr, slots.Eq, slots.Ne, slots.Lt, slots.Le, slots.Gt, slots.Ge, slots.Iter, slots.Len,
		slots.GetItem, slots.SetItem, slots.DelItem, slots.Contains, slots.New),
	unit("ForeignNumberBuiltins", []string{"ForeignNumber"},
		slots.Bool, slots.Eq, slots.Ne, slots.Lt, slots.Le, slots.Gt, slots.Ge, slots.Add, slots.RAdd,
		slots.Sub, slots.RSub, slots.Mul, slots.RMul, slots.TrueDiv, slots.RTrueDiv, slots.FloorDiv,
		slots.RFloorDiv, slots.Neg, slots.Pos, slots.Abs, slots.Index, slots.Int, slots.Float),
	unit("ForeignBooleanBuiltins", []string{"ForeignBoolean"},
		slots.Bool, slots.And, slots.RAnd, slots.Or, slots.ROr, slots.Xor, slots.RXor),
	unit("ForeignIterableBuiltins", []string{"ForeignIterable"}, slots.Iter),
}
