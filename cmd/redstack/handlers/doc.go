// Package handlers contains the business logic behind the redstack CLI
// commands. Commands parse flags and delegate here.
package handlers
