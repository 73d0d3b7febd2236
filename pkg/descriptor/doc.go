// Package descriptor reads installation descriptors and flattens their pack
// definitions into one ordered list.
//
// A descriptor declares packs inline, references other descriptor files
// (refpack) and scans directories for descriptor files (refpackset).
// Referenced files are loaded recursively. Within one file, inline packs come
// first, then refpacks in declaration order, then refpacksets with their
// files in lexical order.
//
// Three encodings are accepted, chosen by file extension:
//
//	.xml          <installation version="5.0"><packs>...</packs></installation>
//	.yaml, .yml   version: "5.0"; packs: [...]; refpacks: [...]; refpacksets: [...]
//	.toml         version = "5.0"; [[packs]]; [[refpacks]]; [[refpacksets]]
package descriptor
