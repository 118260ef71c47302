package exitcodes

// Exit codes for the logsweep binaries
// These codes form the operational contract with CI/CD and operators
const (
	Success        = 0 // Successful execution, including runs that removed nothing
	InvalidConfig  = 2 // Configuration file invalid or missing
	PathResolution = 3 // Workspace root could not be determined
	RuntimeError   = 4 // Runtime error during execution
)
