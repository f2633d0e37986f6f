// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package highlight

// defaultKeywords is the static IEC 61131-3 / TwinCAT keyword list:
// elementary types, declaration blocks, and control-flow words.
var defaultKeywords = []string{
	"__UXINT", "__XINT", "__XWORD", "BIT", "BOOL", "BYTE", "DATE",
	"DATE_AND_TIME", "DINT", "DT", "DWORD", "INT", "LDATE",
	"LDATE_AND_TIME", "LDT", "LINT", "LREAL", "LTIME", "LTOD", "LWORD",
	"REAL", "SINT", "STRING", "TIME", "TOD", "TIME_OF_DAY", "UDINT",
	"UINT", "ULINT", "USINT", "WORD", "WSTRING",
	"FUNCTION", "FUNCTION_BLOCK", "PROGRAM", "METHOD", "PROPERTY",
	"IMPLEMENTS", "INTERFACE", "EXTENDS",
	"VAR", "VAR_INPUT", "VAR_OUTPUT", "VAR_IN_OUT", "VAR_GLOBAL",
	"VAR_TEMP", "END_VAR", "PERSISTENT", "RETAIN", "CONSTANT",
	"PUBLIC", "PRIVATE", "AT",
	"TYPE", "END_TYPE", "STRUCT", "END_STRUCT", "POINTER", "REFERENCE",
	"ARRAY", "TO", "OF", "ADR", "THIS",
	"IF", "THEN", "ELSIF", "ELSE", "END_IF", "CASE", "END_CASE",
	"FOR", "DO", "END_FOR", "WHILE", "END_WHILE", "REPEAT", "UNTIL",
	"END_REPEAT", "RETURN", "EXIT",
	"AND", "AND_THEN", "OR", "OR_ELSE", "XOR", "NOT", "MOD",
}

// DefaultKeywords returns the built-in keyword set.
func DefaultKeywords() map[string]bool {
	return NewSet(defaultKeywords)
}

// NewSet builds a keyword set from a word list.
func NewSet(words []string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}
