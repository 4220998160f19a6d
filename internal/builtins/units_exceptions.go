package builtins

import (
	"github.com/vk/typeslots/internal/slots"
	"github.com/vk/typeslots/internal/units"
)

var exceptionUnits = []*units.Unit{
	unit("BaseExceptionBuiltins", []string{"PBaseException"},
		slots.Repr, slots.Str, slots.Init, slots.New),
	unit("BaseExceptionGroupBuiltins", []string{"PBaseExceptionGroup"},
		slots.Str, slots.Init, slots.New),
	unit("ImportErrorBuiltins", []string{"ImportError"}, slots.Str, slots.Init),
	unit("KeyErrorBuiltins", []string{"KeyError"}, slots.Str),
	unit("OsErrorBuiltins", []string{"OSError"}, slots.Str, slots.Init, slots.New),
	unit("SyntaxErrorBuiltins", []string{"SyntaxError", "IndentationError", "TabError"},
		slots.Str, slots.Init),
	unit("UnicodeDecodeErrorBuiltins", []string{"UnicodeDecodeError"}, slots.Str, slots.Init),
	unit("UnicodeEncodeErrorBuiltins", []string{"UnicodeEncodeError"}, slots.Str, slots.Init),
	unit("UnicodeTranslateErrorBuiltins", []string{"UnicodeTranslateError"}, slots.Str, slots.Init),
	unit("SSLErrorBuiltins", []string{"SSLError"}, slots.Str),
}
