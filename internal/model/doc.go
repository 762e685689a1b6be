// Package model defines the identifiers, guest languages and example
// descriptors shared by the catalog index and the instantiator.
package model
