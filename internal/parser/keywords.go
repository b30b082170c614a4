package parser

var KEYWORDS = map[string]TokenType{
	"module":     MODULE,
	"interface":  INTERFACE,
	"class":      CLASS,
	"implements": IMPLEMENTS,
	"if":         IF,
	"else":       ELSE,
	"while":      WHILE,
	"return":     RETURN,
	"await":      AWAIT,
	"get":        GET,
	"lattice":    LATTICE,
	"label":      LABEL,
	"void":       VOID,
	"true":       TRUE,
	"false":      FALSE,
}
