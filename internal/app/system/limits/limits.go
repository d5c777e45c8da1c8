// internal/app/system/limits/limits.go
package limits

// Request body size limits.
const (
	// MaxJSONBody caps entity create/update payloads.
	MaxJSONBody = 64 << 10 // 64 KB

	// MaxReportBody caps a whole daily-report save. A report holds one row
	// per enrolled child, so this is larger than MaxJSONBody.
	MaxReportBody = 1 << 20 // 1 MB
)
