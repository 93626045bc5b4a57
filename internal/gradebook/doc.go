package gradebook

// Package gradebook is the session layer of the app. It owns the in-memory
// list of subjects, applies validated commands to it and persists the full
// list after every mutation through a Repository.
