package migrations

import "embed"

// FS holds the schema for campaigns, platform connections and leads.
//
//go:embed *.sql
var FS embed.FS

// Version is the schema version the service expects.
const Version = 1
