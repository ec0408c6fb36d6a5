// Package wallet manages the connection to a browser wallet provider:
// account access, chain tracking, and network switching.
package wallet
