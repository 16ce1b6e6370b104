// Package core is the orchestration layer.  It turns a Config into a
// runnable Mode: list the catalog, pick an exercise from a menu, or
// run one exercise directly.
//
// Architecture layers (bottom → top):
//
//	console  →  prompt  →  session  →  exercise  →  core  →  cmd (CLI)
package core

import "context"

// Mode is a complete operational mode of drills.  Each mode owns its
// session from creation to teardown.
type Mode interface {
	Run(ctx context.Context) error
}
