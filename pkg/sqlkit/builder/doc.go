// Package builder assembles SQLite SELECT/INSERT/UPDATE/DELETE statements
// from a fluent, order-independent API.
//
// Configuration calls mutate an in-memory model; a single BuildQuery or
// BuildCommand pass walks the model once. BuildQuery renders values inline
// and is only safe for display and logging. BuildCommand binds every
// user-supplied value as a positional @P<n> parameter and returns the SQL
// together with the ordered parameter list.
//
// Raw(...) embeds text verbatim with no escaping or parameterization; treat
// it as trusted-code-only.
package builder
