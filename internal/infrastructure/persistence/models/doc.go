// Package models contains the GORM database models and their conversions
// to and from the domain entities.
package models
