// ============================================================================
// RoboScript - robot-control language toolkit
// ============================================================================
//
// Package:     version
// Description: Central version management for the toolkit components
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package version

// Version constants for the RoboScript components
const (
	// Toolkit version
	Toolkit = "0.2.0"

	// Language revision accepted by the parser
	Language = "1.0.0"

	// Component versions
	Parser = "0.2.0"
	Engine = "0.2.0"
	Sim    = "0.1.0"
	CLI    = "0.2.0"
)


// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "language":
		return Language
	case "parser":
		return Parser
	case "engine":
		return Engine
	case "sim":
		return Sim
	case "cli", "robo":
		return CLI
	default:
		return Toolkit
	}
}

// Components lists the component names in display order
func Components() []string {
	return []string{"language", "parser", "engine", "sim", "cli"}
}
