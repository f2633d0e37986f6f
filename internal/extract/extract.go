// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract parses TwinCAT XML files and pulls out their code
// sections (declarations, implementations, methods, properties) as plain
// text, preserving the original line breaks.
package extract

import (
	"encoding/xml"
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/pdiddy/tcdoc/pkg/types"
)

// File reads one source file and extracts its chapter. The chapter number
// is left zero; the pipeline assigns numbers in discovery order. A file
// that is not well-formed XML yields an error wrapping
// types.ErrMalformedInput, which the caller recovers from by skipping the
// file.
func File(src types.SourceFile, cfg types.ExtractConfig) (types.Chapter, error) {
	raw, err := os.ReadFile(src.Path)
	if err != nil {
		return types.Chapter{}, fmt.Errorf("reading %s: %w", src.Path, err)
	}
	return Parse(src, raw, cfg)
}

// Parse extracts the chapter for one file from its raw XML content.
func Parse(src types.SourceFile, raw []byte, cfg types.ExtractConfig) (types.Chapter, error) {
	var root node
	if err := xml.Unmarshal(raw, &root); err != nil {
		return types.Chapter{}, fmt.Errorf("%w: %v", types.ErrMalformedInput, err)
	}

	// TwinCAT wraps the object in a TcPlcObject envelope; the object
	// element (POU, DUT, GVL, ...) is its first child.
	obj := &root
	if root.XMLName.Local == "TcPlcObject" {
		if c := root.firstElement(); c != nil {
			obj = c
		}
	}

	ch := types.Chapter{
		Folder: folderOf(src.RelPath),
	}

	switch obj.XMLName.Local {
	case "POU":
		ch.Title = objectTitle("POU", obj, src)
		ch.Sections = pouSections(obj, cfg)
	case "Itf":
		ch.Title = objectTitle("Interface", obj, src)
		ch.Sections = pouSections(obj, cfg)
	case "DUT":
		ch.Title = objectTitle("DUT", obj, src)
		ch.Sections = declarationSection(obj, cfg)
	case "GVL":
		ch.Title = objectTitle("GVL", obj, src)
		ch.Sections = declarationSection(obj, cfg)
	default:
		// IO configurations and anything else without a known object
		// structure: collect every Declaration in document order.
		ch.Title = path.Base(src.RelPath)
		ch.Sections = collectDeclarations(&root, "", cfg)
	}

	return ch, nil
}

// objectTitle derives the chapter title from the object element, falling
// back to the file name when the Name attribute is missing.
func objectTitle(prefix string, obj *node, src types.SourceFile) string {
	name := obj.attr("Name")
	if name == "" {
		return path.Base(src.RelPath)
	}
	title := prefix + ": " + name
	if sf := obj.attr("SpecialFunc"); sf != "" && sf != "None" {
		title += " " + sf
	}
	return title
}

// pouSections extracts the full POU traversal: the main declaration and
// implementation, then every method and property in document order.
func pouSections(obj *node, cfg types.ExtractConfig) []types.CodeSection {
	var sections []types.CodeSection

	add := func(label string, n *node) {
		if s, ok := section(label, n.text(), cfg); ok {
			sections = append(sections, s)
		}
	}

	add("Declaration", obj.child("Declaration"))
	add("Implementation", obj.child("Implementation").child("ST"))

	for _, m := range obj.children("Method") {
		name := m.attr("Name")
		add("Method "+name+" Declaration", m.child("Declaration"))
		add("Method "+name+" Implementation", m.child("Implementation").child("ST"))
	}

	for _, p := range obj.children("Property") {
		name := p.attr("Name")
		add("Property "+name+" Declaration", p.child("Declaration"))
		for _, accessor := range []string{"Get", "Set"} {
			a := p.child(accessor)
			if a == nil {
				continue
			}
			add("Property "+name+" "+accessor+" Declaration", a.child("Declaration"))
			add("Property "+name+" "+accessor+" Implementation", a.child("Implementation").child("ST"))
		}
	}

	return sections
}

// declarationSection extracts the single Declaration block of a DUT or GVL.
func declarationSection(obj *node, cfg types.ExtractConfig) []types.CodeSection {
	if s, ok := section("Declaration", obj.child("Declaration").text(), cfg); ok {
		return []types.CodeSection{s}
	}
	return nil
}

// collectDeclarations gathers every Declaration element in document order,
// labeling each with the nearest enclosing Name attribute.
func collectDeclarations(n *node, owner string, cfg types.ExtractConfig) []types.CodeSection {
	if name := n.attr("Name"); name != "" {
		owner = name
	}
	if n.XMLName.Local == "Declaration" {
		label := "Declaration"
		if owner != "" {
			label = owner + " Declaration"
		}
		if s, ok := section(label, n.text(), cfg); ok {
			return []types.CodeSection{s}
		}
		return nil
	}
	var sections []types.CodeSection
	for _, c := range n.Children {
		sections = append(sections, collectDeclarations(c, owner, cfg)...)
	}
	return sections
}

// section builds one CodeSection from raw element text. Empty blocks are
// omitted. Literal CDATA markers are unwrapped for files that embed them
// as escaped text rather than real CDATA sections.
func section(label, text string, cfg types.ExtractConfig) (types.CodeSection, bool) {
	text = unwrapCDATA(strings.TrimSpace(text))
	if text == "" {
		return types.CodeSection{}, false
	}
	tab := strings.Repeat(" ", cfg.TabWidth)
	raw := strings.Split(text, "\n")
	lines := make([]string, len(raw))
	for i, l := range raw {
		l = strings.TrimSuffix(l, "\r")
		lines[i] = strings.ReplaceAll(l, "\t", tab)
	}
	return types.CodeSection{Label: label, Lines: lines}, true
}

// unwrapCDATA strips a literal <![CDATA[...]]> wrapper if present.
func unwrapCDATA(text string) string {
	const opener, closer = "<![CDATA[", "]]>"
	start := strings.Index(text, opener)
	if start < 0 {
		return text
	}
	end := strings.LastIndex(text, closer)
	if end <= start {
		return text
	}
	return strings.TrimSpace(text[start+len(opener) : end])
}

// folderOf returns the slash-separated directory of a relative path, or ""
// for files at the input root.
func folderOf(relPath string) string {
	dir := path.Dir(relPath)
	if dir == "." {
		return ""
	}
	return dir
}
