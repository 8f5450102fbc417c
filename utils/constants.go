// File: utils/constants.go
package utils

import "time"

// AdminTokenTTL is the lifetime of an admin JWT.
const AdminTokenTTL = 12 * time.Hour

// PublishedContentTTL bounds how long published page content stays cached.
const PublishedContentTTL = 10 * time.Minute

// WorkspaceTTL is how long an untouched admin editing workspace survives.
const WorkspaceTTL = 24 * time.Hour
