package renamer

// Reserved builds the Go-specific reserved-name set: the 25 Go
// keywords, the predeclared identifiers (types, constants, built-in
// functions), and the package qualifiers the runtime support packages
// are imported under, since a translated identifier named e.g. "cptr"
// would otherwise shadow the import and break every pointer-arithmetic
// call site in the same file.
func Reserved() map[string]bool {
	names := make(map[string]bool)
	addAll(names, goKeywords)
	addAll(names, predeclaredTypes)
	addAll(names, predeclaredConstants)
	addAll(names, predeclaredFuncs)
	addAll(names, runtimeImportNames)
	return names
}

func addAll(set map[string]bool, names []string) {
	for _, n := range names {
		set[n] = true
	}
}

var goKeywords = []string{
	"break", "case", "chan", "const", "continue",
	"default", "defer", "else", "fallthrough", "for",
	"func", "go", "goto", "if", "import",
	"interface", "map", "package", "range", "return",
	"select", "struct", "switch", "type", "var",
}

var predeclaredTypes = []string{
	"any", "bool", "byte", "comparable", "complex64", "complex128",
	"error", "float32", "float64",
	"int", "int8", "int16", "int32", "int64",
	"rune", "string",
	"uint", "uint8", "uint16", "uint32", "uint64", "uintptr",
}

var predeclaredConstants = []string{
	"true", "false", "iota", "nil",
}

var predeclaredFuncs = []string{
	"append", "cap", "close", "complex", "copy", "delete", "imag",
	"len", "make", "new", "panic", "print", "println", "real", "recover",
}

// runtimeImportNames are the package identifiers translated code
// imports to call into runtime/cptr and runtime/cnum.
var runtimeImportNames = []string{"cptr", "cnum"}
