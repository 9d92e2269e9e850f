// Package services defines the shared error taxonomy for external
// collaborators (coaching-content generation, catalog sync) and houses
// their client implementations in subpackages.
package services
