package builtins

import (
	"github.com/vk/typeslots/internal/slots"
	"github.com/vk/typeslots/internal/units"
)

// coreUnits contributes the slots of the object model, numbers and generators.
var coreUnits = []*units.Unit{
	unit("ObjectBuiltins", []string{"PythonObject"},
		slots.Repr, slots.Str, slots.Hash, slots.GetAttribute, slots.SetAttr, slots.DelAttr, slots.Eq,
		slots.Ne, slots.Lt, slots.Le, slots.Gt, slots.Ge, slots.Init, slots.New),
	unit("TypeBuiltins", []string{"PythonClass"},
		slots.Repr, slots.Call, slots.GetAttribute, slots.SetAttr, slots.DelAttr, slots.Or, slots.ROr,
		slots.Init, slots.New),
	unit("ModuleBuiltins", []string{"PythonModule"},
		slots.Repr, slots.GetAttribute, slots.SetAttr, slots.DelAttr, slots.Init, slots.New),
	unit("SuperBuiltins", []string{"Super"},
		slots.Repr, slots.GetAttribute, slots.DescrGet, slots.Init, slots.New),
	unit("NoneBuiltins", []string{"PNone"}, slots.Repr, slots.Hash, slots.Bool, slots.New),
	unit("NotImplementedBuiltins", []string{"PNotImplemented"}, slots.Repr, slots.New),
	unit("EllipsisBuiltins", []string{"PEllipsis"}, slots.Repr, slots.New),
	unit("CellBuiltins", []string{"PCell"},
		slots.Repr, slots.Eq, slots.Ne, slots.Lt, slots.Le, slots.Gt, slots.Ge, slots.New),
	unit("CodeBuiltins", []string{"PCode"},
		slots.Repr, slots.Hash, slots.Eq, slots.Ne, slots.Lt, slots.Le, slots.Gt, slots.Ge, slots.New),
	unit("FrameBuiltins", []string{"PFrame"}, slots.Repr),
	unit("FunctionBuiltins", []string{"PFunction"}, slots.Repr, slots.Call, slots.DescrGet, slots.New),
	unit("MethodBuiltins", []string{"PMethod"},
		slots.Repr, slots.Hash, slots.Call, slots.GetAttribute, slots.Eq, slots.Ne, slots.Lt, slots.Le,
		slots.Gt, slots.Ge, slots.DescrGet, slots.New),
	unit("MethodDescriptorBuiltins", []string{"PBuiltinFunction"},
		slots.Repr, slots.Call, slots.DescrGet),
	unit("BuiltinFunctionOrMethodBuiltins", []string{"PBuiltinFunctionOrMethod"},
		slots.Repr, slots.Hash, slots.Call, slots.Eq, slots.Ne, slots.Lt, slots.Le, slots.Gt, slots.Ge),
	unit("WrapperDescriptorBuiltins", []string{"WrapperDescriptor"},
		slots.Repr, slots.Call, slots.DescrGet),
	unit("MethodWrapperBuiltins", []string{"MethodWrapper"},
		slots.Repr, slots.Hash, slots.Call, slots.Eq, slots.Ne, slots.Lt, slots.Le, slots.Gt, slots.Ge),
	unit("ClassmethodCommonBuiltins", []string{"PBuiltinClassMethod", "PClassmethod"},
		slots.Repr, slots.Init),
	unit("BuiltinClassmethodBuiltins", []string{"PBuiltinClassMethod"}, slots.Call, slots.DescrGet),
	unit("ClassmethodBuiltins", []string{"PClassmethod"}, slots.DescrGet, slots.New),
	unit("GetSetDescriptorTypeBuiltins", []string{"GetSetDescriptor"},
		slots.Repr, slots.DescrGet, slots.DescrSet, slots.DescrDelete),
	unit("MemberDescriptorBuiltins", []string{"MemberDescriptor"},
		slots.Repr, slots.DescrGet, slots.DescrSet, slots.DescrDelete),
	unit("PropertyBuiltins", []string{"PProperty"},
		slots.DescrGet, slots.DescrSet, slots.DescrDelete, slots.Init, slots.New),
	unit("StaticmethodBuiltins", []string{"PStaticmethod"},
		slots.Repr, slots.Call, slots.DescrGet, slots.Init, slots.New),
	unit("InstancemethodBuiltins", []string{"PInstancemethod"},
		slots.Repr, slots.Call, slots.GetAttribute, slots.DescrGet, slots.Eq, slots.Ne, slots.Lt,
		slots.Le, slots.Gt, slots.Ge, slots.Init, slots.New),
	unit("MappingproxyBuiltins", []string{"PMappingproxy"},
		slots.Repr, slots.Str, slots.Iter, slots.Len, slots.GetItem, slots.Contains, slots.Or, slots.ROr,
		slots.Eq, slots.Ne, slots.Lt, slots.Le, slots.Gt, slots.Ge, slots.New),
	unit("SimpleNamespaceBuiltins", []string{"PSimpleNamespace"},
		slots.Repr, slots.Eq, slots.Ne, slots.Lt, slots.Le, slots.Gt, slots.Ge, slots.Init),
	unit("GenericAliasBuiltins", []string{"PGenericAlias"},
		slots.Repr, slots.Hash, slots.Call, slots.GetAttribute, slots.Iter, slots.GetItem, slots.Or,
		slots.ROr, slots.Eq, slots.Ne, slots.Lt, slots.Le, slots.Gt, slots.Ge, slots.New),
	unit("GenericAliasIteratorBuiltins", []string{"PGenericAliasIterator"}, slots.Iter, slots.Next),
	unit("UnionTypeBuiltins", []string{"PUnionType"},
		slots.Repr, slots.Hash, slots.GetAttribute, slots.GetItem, slots.Or, slots.ROr, slots.Eq,
		slots.Ne, slots.Lt, slots.Le, slots.Gt, slots.Ge),
	unit("SliceBuiltins", []string{"PSlice"},
		slots.Repr, slots.Hash, slots.Eq, slots.Ne, slots.Lt, slots.Le, slots.Gt, slots.Ge, slots.New),
	unit("ReferenceTypeBuiltins", []string{"PReferenceType"},
		slots.Repr, slots.Hash, slots.Call, slots.Eq, slots.Ne, slots.Lt, slots.Le, slots.Gt, slots.Ge,
		slots.Init, slots.New),
	unit("IntBuiltins", []string{"PInt"},
		slots.Repr, slots.Hash, slots.Bool, slots.Eq, slots.Ne, slots.Lt, slots.Le, slots.Gt, slots.Ge,
		slots.Add, slots.RAdd, slots.Sub, slots.RSub, slots.Mul, slots.RMul, slots.TrueDiv,
		slots.RTrueDiv, slots.FloorDiv, slots.RFloorDiv, slots.Mod, slots.RMod, slots.And, slots.RAnd,
		slots.Or, slots.ROr, slots.Xor, slots.RXor, slots.Neg, slots.Pos, slots.Abs, slots.Invert,
		slots.Index, slots.Int, slots.Float, slots.New),
	unit("BoolBuiltins", []string{"Boolean"},
		slots.Repr, slots.And, slots.RAnd, slots.Or, slots.ROr, slots.Xor, slots.RXor, slots.New),
	unit("FloatBuiltins", []string{"PFloat"},
		slots.Repr, slots.Hash, slots.Bool, slots.Eq, slots.Ne, slots.Lt, slots.Le, slots.Gt, slots.Ge,
		slots.Add, slots.RAdd, slots.Sub, slots.RSub, slots.Mul, slots.RMul, slots.TrueDiv,
		slots.RTrueDiv, slots.FloorDiv, slots.RFloorDiv, slots.Mod, slots.RMod, slots.Neg, slots.Pos,
		slots.Abs, slots.Int, slots.Float, slots.New),
	unit("ComplexBuiltins", []string{"PComplex"},
		slots.Repr, slots.Hash, slots.Bool, slots.Eq, slots.Ne, slots.Lt, slots.Le, slots.Gt, slots.Ge,
		slots.Add, slots.RAdd, slots.Sub, slots.RSub, slots.Mul, slots.RMul, slots.TrueDiv,
		slots.RTrueDiv, slots.Neg, slots.Pos, slots.Abs, slots.New),
	unit("GeneratorBuiltins", []string{"PGenerator"}, slots.Repr, slots.Iter, slots.Next),
	unit("CoroutineBuiltins", []string{"PCoroutine"}, slots.Repr, slots.Await),
	unit("CoroutineWrapperBuiltins", []string{"PCoroutineWrapper"}, slots.Iter, slots.Next),
	unit("AsyncGenSendBuiltins", []string{"PAsyncGenASend"}, slots.Iter, slots.Next, slots.Await),
	unit("AsyncGenThrowBuiltins", []string{"PAsyncGenAThrow"}, slots.Iter, slots.Next, slots.Await),
}
