// Package object implements the ordinary ECMAScript object model of
// spec.md §4.4: property storage, the [[Get]]/[[Set]]/[[Delete]]/
// [[DefineOwnProperty]]/[[OwnKeys]] internal methods, and the prototype
// chain.
//
// Storage follows the teacher's NK/ValueList split (hive.NK holds a fixed
// header plus a reference to a separately-allocated list cell of VK
// offsets): an object Header is a fixed-size cell referencing a separately
// allocated PropList cell, itself an array of CellRefs to individual
// Property cells. Every piece is a zero-cost view over an arena payload,
// never a parsed Go struct retained across calls.
package object
