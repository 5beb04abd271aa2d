package sourcepawn

import "fortio.org/log"

// writeSourceFile walks the root node's children, the same flat list
// parseSourceFile built, dispatching each to its writer (spec.md §4.2).
func (w *Writer) writeSourceFile(root *Node) {
	for i := 0; i < len(root.Children); i++ {
		if w.skip > 0 {
			w.skip--
			continue
		}
		w.writeTopLevelItem(root.Children[i])
	}
}

func (w *Writer) writeTopLevelItem(n *Node) {
	switch n.Kind {
	case "comment":
		w.writeIndent()
		w.writeComment(n)
	case "preproc_include", "preproc_tryinclude", "preproc_define", "preproc_macro",
		"preproc_undefine", "preproc_if", "preproc_elseif", "preproc_else", "preproc_endif",
		"preproc_endinput", "preproc_pragma", "preproc_error", "preproc_warning", "preproc_assert":
		w.writePreproc(n)
	case "enum":
		w.writeEnum(n)
	case "enum_struct":
		w.writeEnumStruct(n)
	case "struct":
		w.writeStruct(n)
	case "struct_declaration":
		w.writeStructDeclaration(n)
	case "typedef":
		w.writeTypedef(n)
	case "typeset":
		w.writeTypeset(n)
	case "functag":
		w.writeFunctag(n)
	case "funcenum":
		w.writeFuncenum(n)
	case "methodmap":
		w.writeMethodmap(n)
	case "hardcoded_symbol":
		w.writeHardcodedSymbol(n)
	case "assertion":
		w.writeAssertion(n)
	case "alias_declaration":
		w.writeAliasDeclaration(n)
	case "alias_assignment":
		w.writeAliasAssignment(n)
	case "function_declaration":
		w.writeFunctionDeclaration(n)
	case "function_definition":
		w.writeFunctionDefinition(n)
	case "global_variable_declaration":
		w.writeIndent()
		w.writeGlobalVariableDeclaration(n)
	case "old_global_variable_declaration":
		w.writeIndent()
		w.writeOldGlobalVariableDeclaration(n)
	default:
		log.Warnf("unhandled top-level CST node kind %q", n.Kind)
		w.writeIndent()
		w.write(n.RawText(w.source))
		w.insertBreak(n)
	}
}
