// Package lz parses the lz configuration format into named records.
//
// The format is two levels deep. Unindented lines start a record; indented
// lines add key:value attributes to the most recent record:
//
//	Superman:
//	    power:fly
//	    age:30
//
//	#comment
//
//	Batman:
//	    power:money
//	    home:Gotham
//
// A header may carry extra values separated by ':' or ',', which become the
// attributes ext0, ext1, and so on ("dave,3,4" gives ext0=3 and ext1=4).
//
// Records are looked up by "Record.attribute". YAML, TOML and HCL documents of
// the same two-level shape decode into the same List type.
package lz
