// Package divergent holds what Try and Maybe have in common: the Monad
// contract both wrappers satisfy, the error taxonomy their operations report,
// and small reflection helpers used to decide absence and error kinds.
//
// Highlights:
// - Monad/ValueProvider: interfaces implemented by try.Try and maybe.Maybe
// - Chain: fold same-type binds over any Monad
// - NoSuchElementError/UnsupportedOperationError/PredicateError/PanicError: errors
// - IsNil/MatchesKind/AsError: helpers shared by the two wrappers
//
// The wrappers themselves live in the try and maybe subpackages.
package divergent
