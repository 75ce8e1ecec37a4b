// Package pathutil provides helpers for URL path templates and for the JSON
// pointers built while walking a document.
//
// # Path templates
//
// A path template such as "/pets/{petId}/medical-records" is made of
// segments; segments wrapped in braces are variables and are ignored by the
// naming helpers:
//
//	pathutil.NonSpinalSegments("/petOwners/{ownerId}") // ["petOwners"]
//	pathutil.ToSpinalCase("petOwners")                  // "pet-owners"
//
// # PointerBuilder
//
// [PointerBuilder] uses push/pop semantics to track the JSON pointer of the
// node being visited without allocating intermediate strings. The pointer is
// only materialized when String() is called, typically when reporting an
// error:
//
//	p := pathutil.AcquirePointer()
//	defer p.Release()
//
//	p.Push("paths")
//	p.Push("/pets") // escaped as "~1pets"
//	p.PushIndex(0)
//	p.String() // "/paths/~1pets/0"
package pathutil
