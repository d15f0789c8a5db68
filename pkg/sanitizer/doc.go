// Package sanitizer provides composable value transforms used to normalize
// record attributes before validation.
//
// Transforms are plain functions of the shape func(T) T, combined with Apply
// for one-off chains or Compose for reusable pipelines. The package holds no
// state and every transform is pure, so pipelines are safe to share across
// goroutines.
//
// # Usage
//
//	email := sanitizer.Apply(input, sanitizer.Trim, sanitizer.ToLower)
//
//	normalizeName := sanitizer.Compose(sanitizer.Trim, sanitizer.CollapseWhitespace)
//	name := normalizeName("  Jane   Doe ")
package sanitizer
