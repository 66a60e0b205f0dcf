// Package palette derives the set of matchable brick colors from the
// catalog CSV datasets.
//
// Four datasets participate: colors, parts, part_categories and
// inventory_parts. Only colors that appear in an inventory on a flat
// 1 x 1 tile or plate, are still in production, were produced recently
// and are not transparent become palette entries. The resulting Palette
// is ordered, indexed by id and RGB, and strictly read-only after
// construction; every matching worker shares the same instance.
//
// The inventory dataset is streamed in bounded chunks because it is the
// largest of the four by two orders of magnitude. Chunking is purely a
// memory bound: the eligible color set is identical for any chunk size.
package palette
