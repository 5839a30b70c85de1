// Package formulas provides the formula catalog.
//
// The catalog groups formulas by subject and topic. Built-in formulas are
// immutable; callers receive copies. Catalog files in YAML or TOML can add
// subjects, topics and formulas at startup.
//
// Components:
//   - Registry: browsing, lookup and case-insensitive search
//   - NewCustomFormula: user formulas with derived variables
//   - NewFavorite: favorite entries with their own ids
//   - LoadCatalog: YAML and TOML catalog files
//
// Example Usage:
//
//	reg := formulas.NewRegistry(logger)
//	results := reg.Search("area")
//	f, ok := reg.Formula("geometry", "area_perimeter", "Circle Area")
package formulas
