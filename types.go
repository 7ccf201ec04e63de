package respell

import (
	"github.com/jward/respell/internal/lexis"
	"github.com/jward/respell/internal/rewrite"
	"github.com/jward/respell/internal/table"
)

// Public type aliases for internal types used in the Fixer and Rewrite
// APIs. These are Go type aliases (=): identical to the internal types at
// compile time, so no conversion is needed anywhere.

type Table = table.Table
type CanonicalEntry = table.CanonicalEntry
type ConfigError = table.ConfigError
type Token = lexis.Token
type TokenKind = lexis.TokenKind
type Change = rewrite.Change
type Result = rewrite.Result

// Token kinds, re-exported. Other is the TokenKind zero value, so a
// zero-valued Token is inert.
const (
	Other      = lexis.Other
	Identifier = lexis.Identifier
)
