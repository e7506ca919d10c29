// Package checks implements the content integrity checks.
//
// Three sources must agree before content ships: the authored JSON (the
// truth), the asset bucket (icons the client renders) and the live-ops
// content catalog (what the backend believes exists). Each check compares
// the authored registry against one of them and reports differences. The
// only mutation lives in FixIcons, which uploads placeholder images on
// explicit request.
package checks
