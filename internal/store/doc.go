// Package store persists subjects and their evaluations as a single JSON
// document on local disk. Saves always rewrite the whole file.
package store
