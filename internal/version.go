package internal

// Version is the current wordexplorer release
const Version = "0.3.0"
