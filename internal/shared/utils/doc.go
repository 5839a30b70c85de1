// Package utils provides input validation and sanitizing for API handlers.
//
// Validators return descriptive errors suitable for a 400 response.
// SanitizeText runs labels (formula names, descriptions, topics, search
// text) through bluemonday's strict policy. Problem text and expressions
// keep their < and > and are only checked for length and control
// characters.
package utils
