// Package netrecord defines the normalized network-request model handed
// to the downstream dependency-graph and simulation collaborator: one
// Request per observed network request (plus one per synthesized
// redirect hop), causally linked through initiator and redirect
// references.
package netrecord
