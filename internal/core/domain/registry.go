package domain

import (
	"strconv"
	"strings"
)

// FormatVersion is the artifact format version written into every backup.
// Only the major component is checked for compatibility on restore.
const FormatVersion = "2.1.0"

// CollectionRegistry is the static, ordered list of collection names the
// engine is willing to touch. Anything outside this list is either rejected
// (validation) or skipped (defensive filtering during restore).
var CollectionRegistry = []string{
	"products",
	"production_lines",
	"production_reports",
	"work_orders",
	"material_costs",
	"payroll_entries",
	"employees",
	"attendance_records",
	"quality_checks",
	"notifications",
	"report_columns",
	"print_templates",
	"app_settings",
}

// SettingsRegistry is the subset of the Collection Registry holding
// configuration-only collections, used by settings-only exports.
var SettingsRegistry = []string{
	"report_columns",
	"print_templates",
	"app_settings",
}

// WindowedRegistry is the subset of time-bearing collections eligible for a
// windowed (per-month) export.
var WindowedRegistry = []string{
	"production_reports",
	"work_orders",
	"material_costs",
	"payroll_entries",
	"attendance_records",
	"quality_checks",
	"notifications",
}

// DateFieldPriority is the ordered list of fields consulted when deciding
// whether a document falls inside a windowed export's month. The first
// present string field wins; documents carrying none of them are kept.
var DateFieldPriority = []string{"date", "period", "createdAt"}

// IsKnownCollection reports whether name belongs to the Collection Registry.
func IsKnownCollection(name string) bool {
	for _, c := range CollectionRegistry {
		if c == name {
			return true
		}
	}
	return false
}

// IsSettingsCollection reports whether name belongs to the Settings Registry.
func IsSettingsCollection(name string) bool {
	for _, c := range SettingsRegistry {
		if c == name {
			return true
		}
	}
	return false
}

// MajorVersion extracts the MAJOR component of a semantic version string.
// Returns -1 if the string does not start with an integer component.
func MajorVersion(version string) int {
	head, _, _ := strings.Cut(version, ".")
	major, err := strconv.Atoi(head)
	if err != nil || major < 0 {
		return -1
	}
	return major
}
