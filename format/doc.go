// Package format holds the leaf formatters cronies applies to single
// elements: date pattern rendering, decimal rounding, thousands grouping,
// character removal and string insertion.
//
// Every function here is a pure function of its arguments. The only side
// effect in the package is the diagnostic log line [DateFormatter] emits for
// an unrecognized pattern token, and that goes to an injected *zap.Logger.
package format
