package model

// Package model defines the domain data used across the app: search queries,
// decoded search results, the fixed image grid and the state enums for the
// search and slideshow controls.
