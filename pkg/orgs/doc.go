// Package orgs holds the organization directory: the catalog of academic
// and corporate organizations members can join.
package orgs
