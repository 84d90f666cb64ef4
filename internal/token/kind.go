package token

// Kind represents the category of a Python source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident

	// Keywords.
	KwFalse    // False
	KwNone     // None
	KwTrue     // True
	KwAnd      // and
	KwAs       // as
	KwAssert   // assert
	KwAsync    // async
	KwAwait    // await
	KwBreak    // break
	KwClass    // class
	KwContinue // continue
	KwDef      // def
	KwDel      // del
	KwElif     // elif
	KwElse     // else
	KwExcept   // except
	KwFinally  // finally
	KwFor      // for
	KwFrom     // from
	KwGlobal   // global
	KwIf       // if
	KwImport   // import
	KwIn       // in
	KwIs       // is
	KwLambda   // lambda
	KwNonlocal // nonlocal
	KwNot      // not
	KwOr       // or
	KwPass     // pass
	KwRaise    // raise
	KwReturn   // return
	KwTry      // try
	KwWhile    // while
	KwWith     // with
	KwYield    // yield

	// Literals.
	IntLit    // 42
	FloatLit  // 3.14
	ImagLit   // 2j
	StringLit // 'text', "text", r'\raw', '''triple'''

	// Operators and delimiters.
	Plus         // +
	Minus        // -
	Star         // *
	StarStar     // **
	Slash        // /
	SlashSlash   // //
	Percent      // %
	At           // @
	Shl          // <<
	Shr          // >>
	Amp          // &
	Pipe         // |
	Caret        // ^
	Tilde        // ~
	Lt           // <
	Gt           // >
	LtEq         // <=
	GtEq         // >=
	EqEq         // ==
	BangEq       // !=
	Assign       // =
	PlusAssign   // +=
	MinusAssign  // -=
	StarAssign   // *=
	SlashAssign  // /=
	DblSlashEq   // //=
	PercentEq    // %=
	AtAssign     // @=
	AmpAssign    // &=
	PipeAssign   // |=
	CaretAssign  // ^=
	ShlAssign    // <<=
	ShrAssign    // >>=
	StarStarEq   // **=
	Arrow        // ->
	Walrus       // :=
	LParen       // (
	RParen       // )
	LBracket     // [
	RBracket     // ]
	LBrace       // {
	RBrace       // }
	Comma        // ,
	Colon        // :
	Dot          // .
	Ellipsis     // ...
	Semicolon    // ;
	Bang         // ! (only valid inside f-string conversions; kept for recovery)

	// Newline is a physical line break outside any literal. Whether it ends
	// a statement depends on the surrounding bracket depth, which is the
	// consumer's concern.
	Newline
)

var kindNames = map[Kind]string{
	Invalid:     "Invalid",
	EOF:         "EOF",
	Ident:       "Ident",
	KwFalse:     "False",
	KwNone:      "None",
	KwTrue:      "True",
	KwAnd:       "and",
	KwAs:        "as",
	KwAssert:    "assert",
	KwAsync:     "async",
	KwAwait:     "await",
	KwBreak:     "break",
	KwClass:     "class",
	KwContinue:  "continue",
	KwDef:       "def",
	KwDel:       "del",
	KwElif:      "elif",
	KwElse:      "else",
	KwExcept:    "except",
	KwFinally:   "finally",
	KwFor:       "for",
	KwFrom:      "from",
	KwGlobal:    "global",
	KwIf:        "if",
	KwImport:    "import",
	KwIn:        "in",
	KwIs:        "is",
	KwLambda:    "lambda",
	KwNonlocal:  "nonlocal",
	KwNot:       "not",
	KwOr:        "or",
	KwPass:      "pass",
	KwRaise:     "raise",
	KwReturn:    "return",
	KwTry:       "try",
	KwWhile:     "while",
	KwWith:      "with",
	KwYield:     "yield",
	IntLit:      "IntLit",
	FloatLit:    "FloatLit",
	ImagLit:     "ImagLit",
	StringLit:   "StringLit",
	Plus:        "+",
	Minus:       "-",
	Star:        "*",
	StarStar:    "**",
	Slash:       "/",
	SlashSlash:  "//",
	Percent:     "%",
	At:          "@",
	Shl:         "<<",
	Shr:         ">>",
	Amp:         "&",
	Pipe:        "|",
	Caret:       "^",
	Tilde:       "~",
	Lt:          "<",
	Gt:          ">",
	LtEq:        "<=",
	GtEq:        ">=",
	EqEq:        "==",
	BangEq:      "!=",
	Assign:      "=",
	PlusAssign:  "+=",
	MinusAssign: "-=",
	StarAssign:  "*=",
	SlashAssign: "/=",
	DblSlashEq:  "//=",
	PercentEq:   "%=",
	AtAssign:    "@=",
	AmpAssign:   "&=",
	PipeAssign:  "|=",
	CaretAssign: "^=",
	ShlAssign:   "<<=",
	ShrAssign:   ">>=",
	StarStarEq:  "**=",
	Arrow:       "->",
	Walrus:      ":=",
	LParen:      "(",
	RParen:      ")",
	LBracket:    "[",
	RBracket:    "]",
	LBrace:      "{",
	RBrace:      "}",
	Comma:       ",",
	Colon:       ":",
	Dot:         ".",
	Ellipsis:    "...",
	Semicolon:   ";",
	Bang:        "!",
	Newline:     "Newline",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Kind(?)"
}
