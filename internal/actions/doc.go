// Package actions implements the release workflow operations behind the CLI
// commands: branch creation, shipping to staging, promotion to trunk,
// repository setup and diagnostics.
package actions
