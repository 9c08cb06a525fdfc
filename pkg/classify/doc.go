// Package classify maps file entries to destination categories using a
// configurable extension-to-category table.
//
// Classification is a pure lookup: the extension is normalized
// (lower-cased, leading dot) and matched exactly against the table.
// Unknown extensions, extension-less files, and directories all map to
// the reserved fallback category. Classification never fails.
package classify
