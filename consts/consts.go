package consts

const (
	VERSION = "0.1.0"

	// SourceExt is the extension of kale source files.
	SourceExt = ".kl"
	// AstExt is appended to a source path when dumping its AST.
	AstExt = ".ast.json"

	// ParseCacheSize is how many parsed files are kept in memory.
	ParseCacheSize = 16
)

var (
	// Debug enables logger output.
	Debug = false
)
