// Package error provides coded, severity-tagged errors for RoboScript.
//
// Package: error
// Title: RoboScript Error Handling
// Description: Structured errors with a classification code, a severity derived
//              from that code, free-form details and the operation that failed.
//              Errors wrap their cause and interoperate with errors.Is/As.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-14 v0.2.0: Reduced to the codes used by the robot language toolchain
//
// Usage:
//
//	import roboerr "github.com/msto63/roboscript/foundation/core/error"
//
//	err := roboerr.Wrap(perr, "program rejected").
//		WithCode(roboerr.CodeSyntax).
//		WithOperation("robo.LoadFile").
//		WithDetail("path", path)
//
//	if roboerr.HasCode(err, roboerr.CodeSyntax) {
//		// report to the user, do not execute
//	}
package error
