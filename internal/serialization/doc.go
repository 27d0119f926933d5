// Package serialization saves and loads named float64 arrays in SafeTensors
// format, for checkpointing Variables and optimizer state.
//
//	Format Structure:
//	  [8 bytes: Header Size (uint64 LE)]
//	  [Header: JSON, one entry per array plus optional "__metadata__"]
//	  [Array data: float64 little-endian, arrays in alphabetical order]
//
// The writer stores a SHA-256 checksum of the data section in the metadata
// under "sha256"; the reader verifies it when present.
//
// Example usage:
//
//	state, err := serialization.VariablesStateDict(params)
//	if err != nil {
//	    return err
//	}
//	if err := serialization.SaveFile("params.safetensors", state, nil); err != nil {
//	    return err
//	}
//
//	state, _, err = serialization.LoadFile("params.safetensors")
//	if err != nil {
//	    return err
//	}
//	err = serialization.LoadVariables(params, state)
package serialization
