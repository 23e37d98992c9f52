// Package domain contains the core model of radarskill: skill values, records, the
// pivoted skill table, chart specs and the error taxonomy.
//
// The domain does not depend on YAML parsing, drawing libraries, or the filesystem.
// Infra/adapters map into/from these types.
package domain
