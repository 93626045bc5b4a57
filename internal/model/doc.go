// Package model defines the gradebook domain: subjects, their weighted
// evaluations, and the aggregation rules that derive averages, the
// pessimistic projection and the subject status from them.
package model
