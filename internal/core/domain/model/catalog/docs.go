// Package catalog holds the client and menu records orders refer to.
// They are reference data: orders check that they exist and read the menu
// unit price, nothing else.
package catalog
