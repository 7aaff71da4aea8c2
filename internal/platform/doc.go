package platform

// Package platform contains OS integration glue: the default export
// directory, export file naming, and revealing or opening exported images.
