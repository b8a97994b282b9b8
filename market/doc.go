// Package market provides the read-mostly market-data collaborators consumed
// by the process engines: term structures (yield curves), spot quotes, and
// day-count conventions.
//
// What lives here:
//
//   - DayCounter    — calendar-date → year-fraction conventions (Act/365F, Act/360).
//   - Quote         — a single observable market level; SimpleQuote is the
//     lock-guarded reference implementation.
//   - TermStructure — continuously-compounded forward rates over a time
//     interval; FlatForward is the constant-rate reference implementation.
//
// Concurrency contract:
//
//	Everything in this package is safe for concurrent reads. SimpleQuote
//	additionally serializes asynchronous SetValue updates against readers
//	with an RWMutex; change propagation to dependents is the caller's
//	responsibility, not an implicit push mechanism.
//
// Errors (sentinel):
//
//   - ErrUnknownDayCounter — a DayCounter value outside the defined set.
package market
