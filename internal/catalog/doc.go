// Package catalog loads deck resources, merges duplicate vocabulary entries
// into canonical words, and resolves words to example sentences.
package catalog
