// Package core defines the severity scale shared across slogger.
//
// Levels are ordered from most to least severe: Fatal, Error, Warning,
// Info, Debug, Trace. Two sentinels bracket the scale. SuppressLevel (0)
// used as a threshold lets nothing through, AllowAllLevel used as a
// threshold lets everything through. Neither may be attached to a
// message, and neither has a printable name.
//
// A message at level l is emitted under threshold t iff l.Valid() and
// l <= t. The numeric ordering is part of the contract; reordering the
// constants silently changes which messages are filtered.
package core
