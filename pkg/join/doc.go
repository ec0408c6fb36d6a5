// Package join implements the organization join workflow: form entry,
// emailed verification codes, and membership completion.
package join
