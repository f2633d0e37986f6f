// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the shared data model and configuration for the
// tcdoc pipeline: discovered source files, extracted code sections,
// chapters, and the table of contents.
package types

// FileKind identifies the category of a TwinCAT source file.
type FileKind string

const (
	// KindPOU is a Program Organization Unit (function block, function,
	// program, or interface).
	KindPOU FileKind = "POU"
	// KindDUT is a user-defined data type.
	KindDUT FileKind = "DUT"
	// KindGVL is a global variable list.
	KindGVL FileKind = "GVL"
	// KindIO is an IO configuration (logical-to-physical channel mapping).
	KindIO FileKind = "IO"
)

// kindByExtension maps the vendor file extensions to their kind.
var kindByExtension = map[string]FileKind{
	".TcPOU": KindPOU,
	".TcDUT": KindDUT,
	".TcGVL": KindGVL,
	".TcIO":  KindIO,
}

// KindForExtension returns the FileKind for a file extension. The second
// return value is false for unsupported extensions.
func KindForExtension(ext string) (FileKind, bool) {
	k, ok := kindByExtension[ext]
	return k, ok
}

// SourceFile describes one discovered TwinCAT file. It carries no content;
// the extractor reads each file exactly once.
type SourceFile struct {
	// Path is the absolute or root-relative path used to read the file.
	Path string
	// RelPath is the path relative to the input root, slash-separated.
	// Discovery order is lexicographic on this field.
	RelPath string
	// Kind is the extension category.
	Kind FileKind
}

// CodeSection is one labeled block of source text extracted from a file,
// e.g. "Declaration" or "Method Reset Implementation".
type CodeSection struct {
	Label string
	Lines []string
}

// Chapter is the rendered unit for one source file: a number assigned in
// discovery order (monotonic, never reused), a derived title, and the
// ordered sections extracted from the file.
type Chapter struct {
	Number   int
	Title    string
	Folder   string
	Sections []CodeSection
}

// TOCEntry is one table-of-contents row. Page is resolved only after the
// layout pass has measured where the chapter header lands.
type TOCEntry struct {
	Number int
	Title  string
	Page   int
}
