// File: doc.go
// Title: Package Documentation for catalog
// Description: Package documentation for the operation catalog.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial documentation

// Package catalog exposes the stringx functions as named operations that
// take textual arguments, so they can be driven from a command line or a
// script.
//
// Each Operation declares ordered parameters. Text parameters pass through,
// integer parameters are parsed. A nil argument is an absent value: it is
// handed to parameters marked Nullable, whose operations define a result for
// it, and rejected for every other parameter with INVALID_ARGUMENT
// "invalid argument: expected text, received absent value".
//
//	reg, _ := catalog.New(catalog.Options{})
//	res, _ := reg.Invoke("padLeft", catalog.Call{Args: catalog.Args("bat", "8", "yz")})
//	fmt.Println(res) // yzyzybat
//
//	res, _ = reg.Invoke("isBlank", catalog.Call{Args: []*string{nil}})
//	fmt.Println(res) // true
//
//	_, err := reg.Invoke("charAt", catalog.Call{Args: []*string{nil, catalog.Text("0")}})
//	// err has code INVALID_ARGUMENT
//
// Names and aliases are matched without regard to case.
package catalog
