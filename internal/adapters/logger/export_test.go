package logger

// Private helpers exported for white-box tests.
var (
	CollectMessages  = collectMessages
	FormatErrorChain = formatErrorChain
)
