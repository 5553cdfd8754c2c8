// Package duo provides three generic two-variant containers that make
// absence and failure explicit values: Option for a value that may be
// missing, Result for an operation that may fail, and Either for a value
// that is one of two things.
//
// Key operations:
// - Some/None/OfNullable, Ok/Err/FromTuple, Left/Right: construct containers
// - IsSome/IsOk/IsLeft and the ...And forms: test the active variant
// - Map/MapOr/MapOrElse methods: transform payloads within one type
// - MapOption, Map, MapLeft families: package-level transforms that change
//   the payload type, which Go methods cannot do
// - And/AndThen/Or/OrElse/Xor/Filter: compose with short-circuiting
// - Unwrap/Expect/UnwrapOr/UnwrapOrElse/UnwrapOrZero/Get: extract payloads
// - OkOr, Ok/Err and Left/Right projections, EitherToResult/ResultToEither:
//   convert between containers
// - Try/Catch/CatchOnly and their Async forms: adapt fallible computations
//   into Results
// - Tag: constant-time variant discrimination for code generic over all
//   three containers
//
// Containers are immutable values. Every operation returns a new container
// and never mutates payloads in place, so values can be shared across
// goroutines whenever their payloads can.
package duo
