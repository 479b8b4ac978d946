package constants

// ReRunWithDebug is printed after a fatal error when no debug log was written
const ReRunWithDebug = "Please re-run with --log-level=debug and include the output in any support inquiries."
