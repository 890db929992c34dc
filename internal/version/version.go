package version

// Version is the server release string reported by /health.
const Version = "1.0.0"
