// Package domain contains the core vocabulary-quiz entities, value objects,
// and domain logic of the application. It represents the heart of the system,
// independent of any specific infrastructure or delivery mechanism.
package domain
